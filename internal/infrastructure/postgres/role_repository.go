package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol nuevo.
func (r *RoleRepo) Create(role *entity.Role) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO roles (name) VALUES ($1) RETURNING id`, role.Name,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el rol %q ya existe", domain.ErrConflict, role.Name)
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID. nil sin error si no existe.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	return r.findOne(`SELECT id, name FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre. nil sin error si no existe.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.findOne(`SELECT id, name FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) findOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List devuelve todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete elimina un rol por ID. Si algún usuario lo tiene asignado la FK de
// user_roles lo impide.
func (r *RoleRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}
