package entity

type Role string

const (
	RoleNone  Role = ""
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

const AuthorityAdmin = "ROLE_ADMIN"

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}

	return string(r)
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	EmployeeID      int64  `json:"employeeId"`
}

type Staff struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	EmployeeID int64  `json:"employeeId"`
	Role       string `json:"role"`
}

type StaffAdded struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employeeId"`
}
