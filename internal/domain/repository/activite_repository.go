package repository

import "github.com/hws/travel-api/internal/domain/entity"

// ActiviteRepository puerto de persistencia del catálogo de actividades.
type ActiviteRepository interface {
	Create(a *entity.Activite) error
	GetByID(id int64) (*entity.Activite, error)
	List() ([]*entity.Activite, error)
	Update(a *entity.Activite) error
	// Delete devuelve ErrReferenced si la actividad sigue colocada en algún
	// guía (restricción de clave foránea), ErrActiviteNotFound si no existe.
	Delete(id int64) error
}
