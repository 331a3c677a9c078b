package view

type NavLink struct {
	Href   string
	Label  string
	Active bool
}

var navLinks = []NavLink{
	{Href: "/", Label: "Predictor"},
	{Href: "/add-absence", Label: "Register Absence"},
	{Href: "/dashboard", Label: "Dashboard"},
}

// Links returns the navigation with the link whose path equals currentPath
// marked active. Matching is exact, so "/dashboard/" activates nothing.
func Links(currentPath string) []NavLink {
	out := make([]NavLink, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Href == currentPath
		out[i] = l
	}
	return out
}
