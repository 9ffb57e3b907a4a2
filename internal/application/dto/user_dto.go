package dto

import "time"

// CreateUserRequest datos para crear un usuario (solo ADMIN).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateUserRequest actualización parcial. Password vacío conserva el hash
// existente; presente se re-hashea.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// UserResponse representación pública de un usuario. El hash de password
// nunca sale del store.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
