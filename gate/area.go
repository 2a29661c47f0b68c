package gate

import "strings"

const (
	// UnauthorizedPath is where authenticated users lacking a required role are sent.
	UnauthorizedPath = "/unauthorized"
	// CallbackParam carries the originally requested path to the login page.
	CallbackParam = "callbackUrl"
)

// Area is a protected path prefix with its own login page, landing page and
// optional role requirement.
type Area struct {
	Name         string
	Prefix       string
	PublicPaths  []string
	LoginPath    string
	Landing      string
	RequiredRole string // empty means any authenticated user
}

// AdminArea is the administrator area. Only its login and forgot-password pages
// are reachable without a session.
func AdminArea(role string) Area {
	return Area{
		Name:         "admin",
		Prefix:       "/admin",
		PublicPaths:  []string{"/admin/login", "/admin/forgot-password"},
		LoginPath:    "/admin/login",
		Landing:      "/admin/portal",
		RequiredRole: role,
	}
}

// PlannerArea is the customer area. It needs a session but no role.
func PlannerArea() Area {
	return Area{
		Name:      "planner",
		Prefix:    "/planner",
		LoginPath: "/login",
		Landing:   "/planner",
	}
}

func DefaultAreas(adminRole string) []Area {
	return []Area{AdminArea(adminRole), PlannerArea()}
}

// Contains reports whether path falls inside the area.
func (a Area) Contains(path string) bool {
	return underPath(path, a.Prefix)
}

// IsPublic reports whether path is one of the area's public pages or nested under one.
func (a Area) IsPublic(path string) bool {
	for _, p := range a.PublicPaths {
		if underPath(path, p) {
			return true
		}
	}
	return false
}

// underPath matches on segment boundaries so "/administrator" is not under "/admin".
func underPath(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return strings.HasPrefix(path, "/")
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
