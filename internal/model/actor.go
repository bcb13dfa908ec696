package model

// Actor identifies the caller of a core operation for ownership checks and
// department scoping. Resolved from the users table by the directory service;
// real authentication is handled upstream.
type Actor struct {
	UserID       uint
	Role         string
	DepartmentID *uint
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
func (a Actor) IsHR() bool    { return a.Role == RoleHR }
