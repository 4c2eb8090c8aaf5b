package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case). Roles son nombres de roles existentes.
type CreateUserRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// RoleRequest entrada para crear un rol.
type RoleRequest struct {
	Name string `json:"name"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
