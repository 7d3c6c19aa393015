package dto

// UpdateUserRequest is a partial user update. Roles are applied only when
// the caller is an admin; for everyone else the field is silently dropped.
type UpdateUserRequest struct {
	Email     *string  `json:"email" binding:"omitempty,email"`
	Password  *string  `json:"password" binding:"omitempty,min=8"`
	FirstName *string  `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string  `json:"last_name" binding:"omitempty,max=100"`
	IsActive  *bool    `json:"is_active"`
	Roles     []string `json:"roles" binding:"omitempty,dive,oneof=user admin"`
}

type CurrentUser struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}
