package model

// MenuItem is an entry of the navigation shell.  Roles is the static
// inclusion list: a role sees the item, and may call the routes behind it,
// only when it appears here.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

// Page identifiers used both by the menu and by route gating.
const (
	PageDashboard    = "dashboard"
	PageEvents       = "events"
	PageAchievements = "achievements"
	PageBlogs        = "blogs"
	PageGallery      = "gallery"
	PageAdmissions   = "admissions"
	PageStaff        = "staff"
	PageHero         = "hero"
)

// MenuItems is the navigation table in display order.
var MenuItems = []MenuItem{
	{ID: PageDashboard, Label: "Dashboard", Roles: []Role{RoleSystemAdmin, RoleContentEditor, RoleAdmissionsViewer}},
	{ID: PageEvents, Label: "Events", Roles: []Role{RoleSystemAdmin, RoleContentEditor}},
	{ID: PageAchievements, Label: "Achievements", Roles: []Role{RoleSystemAdmin, RoleContentEditor}},
	{ID: PageBlogs, Label: "Blog Posts", Roles: []Role{RoleSystemAdmin, RoleContentEditor}},
	{ID: PageGallery, Label: "Gallery", Roles: []Role{RoleSystemAdmin, RoleContentEditor}},
	{ID: PageAdmissions, Label: "Admissions", Roles: []Role{RoleSystemAdmin, RoleAdmissionsViewer}},
	{ID: PageStaff, Label: "Staff List", Roles: []Role{RoleSystemAdmin}},
	{ID: PageHero, Label: "Hero Section", Roles: []Role{RoleSystemAdmin, RoleContentEditor}},
}

// MenuFor returns the items visible to role, preserving table order.
func MenuFor(role Role) []MenuItem {
	out := make([]MenuItem, 0, len(MenuItems))
	for _, item := range MenuItems {
		if item.Allows(role) {
			out = append(out, item)
		}
	}
	return out
}

// Allows reports whether role is in the item's inclusion list.
func (m MenuItem) Allows(role Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FindMenuItem looks up a menu entry by id.
func FindMenuItem(id string) (MenuItem, bool) {
	for _, item := range MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// RolesFor returns the inclusion list of the page with the given id, or nil
// when no such page exists.
func RolesFor(id string) []Role {
	item, ok := FindMenuItem(id)
	if !ok {
		return nil
	}
	out := make([]Role, len(item.Roles))
	copy(out, item.Roles)
	return out
}
