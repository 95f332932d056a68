package model

import "strings"

// Role is one of the three static access levels of the admin panel.  The
// value is carried in the "role" claim of the session token.
type Role string

const (
	RoleSystemAdmin      Role = "SYSTEM_ADMIN"
	RoleContentEditor    Role = "CONTENT_EDITOR"
	RoleAdmissionsViewer Role = "ADMISSIONS_VIEWER"
)

// Roles lists every role in display order.
var Roles = []Role{RoleSystemAdmin, RoleContentEditor, RoleAdmissionsViewer}

var roleDisplay = map[Role]string{
	RoleSystemAdmin:      "System Admin",
	RoleContentEditor:    "Content Editor",
	RoleAdmissionsViewer: "Admissions Viewer",
}

// Display returns the human label shown in the header, e.g. "System Admin".
func (r Role) Display() string {
	if s, ok := roleDisplay[r]; ok {
		return s
	}
	return string(r)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleDisplay[r]
	return ok
}

// ParseRole normalises s (case and surrounding spaces) into a Role.  The
// second result is false when s names no known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}
