package entity

// Routes of the client views.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteHome      = "/"
	RouteKitchen   = "/kitchen"
	RouteServer    = "/server"
	RouteOrderView = "/orderView"
	RouteMenu      = "/menu"
	RouteReceipt   = "/receipt"
	RouteAdmin     = "/admin"
)

// Location is a navigation target together with the state the target view needs.
type Location struct {
	Route string      `json:"route"`
	State *SessionRef `json:"state,omitempty"`
}

func Navigate(route string, ref SessionRef) Location {
	return Location{Route: route, State: &ref}
}

// Confirmer answers a yes/no prompt shown to the staff member.
type Confirmer func(prompt string) bool

func Confirmed(ok bool) Confirmer {
	return func(string) bool { return ok }
}
