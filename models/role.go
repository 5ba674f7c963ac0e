package models

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleLearner Role = "LEARNER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleLearner
}

// CanManageContent reports whether the role may create or modify
// courses and their content hierarchy.
func (r Role) CanManageContent() bool {
	return r == RoleAdmin
}

// CanListUsers reports whether the role may read other accounts.
func (r Role) CanListUsers() bool {
	return r == RoleAdmin
}
