package model

import "sort"

// Staff is a faculty member listed on the website.  Order is the display
// position; it is not required to be unique.
type Staff struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order"`
}

// SortStaff returns a copy of members ordered by Order.  Members sharing an
// order keep their insertion order.
func SortStaff(members []Staff) []Staff {
	out := make([]Staff, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
