package usecase

import (
	"fmt"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios (solo admin) y resolución de la
// identidad del llamante.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// ResolveCallerID resuelve la identidad del llamante: prefiere el user_id del
// token verificado; si no viene, busca el usuario por el subject (email). Las
// dos vías deben producir el mismo ID para el mismo principal.
func (uc *UserUseCase) ResolveCallerID(tokenUserID int64, email string) (int64, error) {
	if tokenUserID > 0 {
		return tokenUserID, nil
	}
	id, err := uc.userRepo.FindIDByEmail(email)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}

// Create crea un usuario: email único, password hasheado con bcrypt y al
// menos un rol existente.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: el email es obligatorio", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: el password es obligatorio", domain.ErrInvalidInput)
	}
	if len(in.Roles) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un rol", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	roles := make([]entity.Role, 0, len(in.Roles))
	for _, name := range in.Roles {
		r, err := uc.roleRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, fmt.Errorf("%w: rol inválido: %q", domain.ErrInvalidInput, name)
		}
		roles = append(roles, *r)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario. Si sigue invitado a algún guía el repo devuelve
// ErrReferenced (integridad referencial).
func (uc *UserUseCase) Delete(id int64) error {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Roles: u.RoleNames(),
	}
}
