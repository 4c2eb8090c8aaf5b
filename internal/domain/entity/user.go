package entity

// Nombres de rol conocidos. Los roles son datos de referencia en DB;
// estas constantes existen para las decisiones de autorización.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Role rol de autorización (referencia estática, tabla roles).
type Role struct {
	ID   int64
	Name string
}

// User usuario del sistema. Roles se carga eager junto al usuario;
// PasswordHash es bcrypt, nunca texto plano después de persistir.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Roles        []Role
}

// RoleNames devuelve los nombres de rol del usuario.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
