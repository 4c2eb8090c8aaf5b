package repository

import "github.com/hws/travel-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios. Las consultas cargan los
// roles junto al usuario; nil sin error significa "no existe".
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	FindIDByEmail(email string) (int64, error)
	List() ([]*entity.User, error)
	Delete(id int64) error
}

// RoleRepository puerto de persistencia de roles (datos de referencia).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Delete(id int64) error
}
