package usecase

import (
	"fmt"
	"strings"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
)

// RoleUseCase administración de roles (datos de referencia, solo admin).
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol con nombre único.
func (uc *RoleUseCase) Create(in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del rol es obligatorio", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el rol %q ya existe", domain.ErrConflict, name)
	}
	role := &entity.Role{Name: name}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id int64) (*dto.RoleResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRoleNotFound
	}
	return &dto.RoleResponse{ID: r.ID, Name: r.Name}, nil
}

// List devuelve todos los roles.
func (uc *RoleUseCase) List() ([]dto.RoleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return items, nil
}

// Delete elimina un rol. Si algún usuario lo tiene asignado el repo devuelve
// ErrReferenced.
func (uc *RoleUseCase) Delete(id int64) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrRoleNotFound
	}
	return uc.repo.Delete(id)
}
