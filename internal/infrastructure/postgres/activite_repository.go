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

var _ repository.ActiviteRepository = (*ActiviteRepo)(nil)

const activiteColumns = `id, titre, description, categorie, adresse, telephone, horaires_ouverture, COALESCE(site_internet, '')`

// ActiviteRepo implementación del puerto ActiviteRepository sobre PostgreSQL (usable con pool o tx).
type ActiviteRepo struct {
	q Querier
}

// NewActiviteRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewActiviteRepository(q Querier) *ActiviteRepo {
	return &ActiviteRepo{q: q}
}

// Create persiste una actividad nueva.
func (r *ActiviteRepo) Create(a *entity.Activite) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO activites (titre, description, categorie, adresse, telephone, horaires_ouverture, site_internet)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id`,
		a.Titre, a.Description, string(a.Categorie), a.Adresse, a.Telephone, a.HorairesOuverture, a.SiteInternet,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert activite: %w", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID. nil sin error si no existe.
func (r *ActiviteRepo) GetByID(id int64) (*entity.Activite, error) {
	var a entity.Activite
	var cat string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+activiteColumns+` FROM activites WHERE id = $1`, id,
	).Scan(&a.ID, &a.Titre, &a.Description, &cat, &a.Adresse, &a.Telephone, &a.HorairesOuverture, &a.SiteInternet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activite: %w", err)
	}
	a.Categorie = entity.ActiviteCategorie(cat)
	return &a, nil
}

// List devuelve todas las actividades del catálogo.
func (r *ActiviteRepo) List() ([]*entity.Activite, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+activiteColumns+` FROM activites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activite
	for rows.Next() {
		var a entity.Activite
		var cat string
		if err := rows.Scan(&a.ID, &a.Titre, &a.Description, &cat, &a.Adresse, &a.Telephone, &a.HorairesOuverture, &a.SiteInternet); err != nil {
			return nil, fmt.Errorf("scan activite: %w", err)
		}
		a.Categorie = entity.ActiviteCategorie(cat)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update reescribe los campos de una actividad.
func (r *ActiviteRepo) Update(a *entity.Activite) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE activites
		SET titre = $2, description = $3, categorie = $4, adresse = $5, telephone = $6,
		    horaires_ouverture = $7, site_internet = NULLIF($8, '')
		WHERE id = $1`,
		a.ID, a.Titre, a.Description, string(a.Categorie), a.Adresse, a.Telephone, a.HorairesOuverture, a.SiteInternet,
	)
	if err != nil {
		return fmt.Errorf("update activite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActiviteNotFound
	}
	return nil
}

// Delete elimina una actividad. La FK de guide_activites impide eliminar una
// actividad que siga colocada en algún guía.
func (r *ActiviteRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM activites WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete activite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActiviteNotFound
	}
	return nil
}
