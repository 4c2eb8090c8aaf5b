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

var _ repository.GuideRepository = (*GuideRepo)(nil)

// GuideRepo implementación del puerto GuideRepository sobre PostgreSQL
// (usable con pool o tx). Las escrituras del agregado completo deben
// ejecutarse dentro de TxRunner para ser atómicas.
type GuideRepo struct {
	q Querier
}

// NewGuideRepository construye el adaptador del agregado Guide. Pasar pool o tx (Querier).
func NewGuideRepository(q Querier) *GuideRepo {
	return &GuideRepo{q: q}
}

// Create inserta el guía con tags, colocaciones e invitaciones y rellena los
// IDs generados.
func (r *GuideRepo) Create(g *entity.Guide) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO guides (titre, description, nombre_jours)
		VALUES ($1, $2, $3) RETURNING id`,
		g.Titre, g.Description, g.NombreJours,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("insert guide: %w", err)
	}
	if err := r.insertTags(ctx, g); err != nil {
		return err
	}
	for i := range g.Activites {
		g.Activites[i].GuideID = g.ID
		if err := r.insertPlacement(ctx, &g.Activites[i]); err != nil {
			return err
		}
	}
	for _, userID := range g.InvitedUserIDs {
		if err := r.insertInvitation(ctx, g.ID, userID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID carga el agregado completo. nil sin error si no existe.
func (r *GuideRepo) GetByID(id int64) (*entity.Guide, error) {
	var g entity.Guide
	err := r.q.QueryRow(context.Background(),
		`SELECT id, titre, description, nombre_jours FROM guides WHERE id = $1`, id,
	).Scan(&g.ID, &g.Titre, &g.Description, &g.NombreJours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guide: %w", err)
	}
	if err := r.hydrate(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// List devuelve todos los guías como agregados completos.
func (r *GuideRepo) List() ([]*entity.Guide, error) {
	return r.list(`SELECT id, titre, description, nombre_jours FROM guides ORDER BY id`)
}

// ListByInvitedUser devuelve exactamente los guías donde el usuario está invitado.
func (r *GuideRepo) ListByInvitedUser(userID int64) ([]*entity.Guide, error) {
	return r.list(`
		SELECT g.id, g.titre, g.description, g.nombre_jours
		FROM guides g
		JOIN guide_invitations gi ON gi.guide_id = g.id
		WHERE gi.user_id = $1 ORDER BY g.id`, userID)
}

func (r *GuideRepo) list(query string, args ...any) ([]*entity.Guide, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guide
	for rows.Next() {
		var g entity.Guide
		if err := rows.Scan(&g.ID, &g.Titre, &g.Description, &g.NombreJours); err != nil {
			return nil, fmt.Errorf("scan guide: %w", err)
		}
		list = append(list, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, g := range list {
		if err := r.hydrate(g); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update reescribe los campos escalares y los tags; las colecciones marcadas
// se reemplazan con semántica clear-then-set.
func (r *GuideRepo) Update(g *entity.Guide, replacePlacements, replaceInvitations bool) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `
		UPDATE guides SET titre = $2, description = $3, nombre_jours = $4 WHERE id = $1`,
		g.ID, g.Titre, g.Description, g.NombreJours,
	)
	if err != nil {
		return fmt.Errorf("update guide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuideNotFound
	}
	if err := r.deleteTags(ctx, g.ID); err != nil {
		return err
	}
	if err := r.insertTags(ctx, g); err != nil {
		return err
	}
	if replacePlacements {
		if _, err := r.q.Exec(ctx, `DELETE FROM guide_activites WHERE guide_id = $1`, g.ID); err != nil {
			return fmt.Errorf("clear guide_activites: %w", err)
		}
		for i := range g.Activites {
			g.Activites[i].GuideID = g.ID
			if err := r.insertPlacement(ctx, &g.Activites[i]); err != nil {
				return err
			}
		}
	}
	if replaceInvitations {
		if _, err := r.q.Exec(ctx, `DELETE FROM guide_invitations WHERE guide_id = $1`, g.ID); err != nil {
			return fmt.Errorf("clear guide_invitations: %w", err)
		}
		for _, userID := range g.InvitedUserIDs {
			if err := r.insertInvitation(ctx, g.ID, userID); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete elimina el guía; tags, colocaciones e invitaciones caen en cascada.
func (r *GuideRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM guides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuideNotFound
	}
	return nil
}

// AddPlacement inserta una colocación. El índice único (guide_id, jour, ordre)
// respalda la verificación en memoria del use case.
func (r *GuideRepo) AddPlacement(guideID int64, p *entity.GuideActivite) error {
	p.GuideID = guideID
	return r.insertPlacement(context.Background(), p)
}

// AddPlacements inserta un lote de colocaciones. Llamar dentro de TxRunner
// para que el lote sea atómico.
func (r *GuideRepo) AddPlacements(guideID int64, ps []*entity.GuideActivite) error {
	ctx := context.Background()
	for _, p := range ps {
		p.GuideID = guideID
		if err := r.insertPlacement(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RemovePlacement elimina una colocación por su propio ID dentro del guía.
func (r *GuideRepo) RemovePlacement(guideID, placementID int64) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM guide_activites WHERE guide_id = $1 AND id = $2`, guideID, placementID)
	if err != nil {
		return fmt.Errorf("delete placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: el guía no tiene una colocación con id=%d", domain.ErrNotFound, placementID)
	}
	return nil
}

// Invite añade al usuario al conjunto de invitados del guía.
func (r *GuideRepo) Invite(guideID, userID int64) error {
	return r.insertInvitation(context.Background(), guideID, userID)
}

// Revoke elimina la invitación; la fila de users no se toca.
func (r *GuideRepo) Revoke(guideID, userID int64) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM guide_invitations WHERE guide_id = $1 AND user_id = $2`, guideID, userID)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: el usuario %d no estaba invitado", domain.ErrNotFound, userID)
	}
	return nil
}

func (r *GuideRepo) insertPlacement(ctx context.Context, p *entity.GuideActivite) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO guide_activites (guide_id, activite_id, jour, ordre)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		p.GuideID, p.ActiviteID, p.Jour, p.Ordre,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe una actividad en el día %d con orden %d",
				domain.ErrConflict, p.Jour, p.Ordre)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w (id=%d)", domain.ErrActiviteNotFound, p.ActiviteID)
		}
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}

func (r *GuideRepo) insertInvitation(ctx context.Context, guideID, userID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO guide_invitations (guide_id, user_id) VALUES ($1, $2)`, guideID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el usuario %d ya está invitado", domain.ErrConflict, userID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w (id=%d)", domain.ErrUserNotFound, userID)
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

func (r *GuideRepo) insertTags(ctx context.Context, g *entity.Guide) error {
	for _, m := range g.Mobilites {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO guide_mobilites (guide_id, valeur) VALUES ($1, $2)`, g.ID, string(m)); err != nil {
			return fmt.Errorf("insert mobilite: %w", err)
		}
	}
	for _, s := range g.Saisons {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO guide_saisons (guide_id, valeur) VALUES ($1, $2)`, g.ID, string(s)); err != nil {
			return fmt.Errorf("insert saison: %w", err)
		}
	}
	for _, p := range g.PourQui {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO guide_pour_qui (guide_id, valeur) VALUES ($1, $2)`, g.ID, string(p)); err != nil {
			return fmt.Errorf("insert pour_qui: %w", err)
		}
	}
	return nil
}

func (r *GuideRepo) deleteTags(ctx context.Context, guideID int64) error {
	for _, table := range []string{"guide_mobilites", "guide_saisons", "guide_pour_qui"} {
		if _, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE guide_id = $1`, guideID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// hydrate carga tags, colocaciones (con detalle de actividad) e invitados.
func (r *GuideRepo) hydrate(g *entity.Guide) error {
	ctx := context.Background()
	var err error
	if g.Mobilites, err = scanTags[entity.Mobilite](r.q, ctx, "guide_mobilites", g.ID); err != nil {
		return err
	}
	if g.Saisons, err = scanTags[entity.Saison](r.q, ctx, "guide_saisons", g.ID); err != nil {
		return err
	}
	if g.PourQui, err = scanTags[entity.PourQui](r.q, ctx, "guide_pour_qui", g.ID); err != nil {
		return err
	}

	rows, err := r.q.Query(ctx, `
		SELECT ga.id, ga.guide_id, ga.activite_id, ga.jour, ga.ordre,
		       a.id, a.titre, a.description, a.categorie, a.adresse, a.telephone,
		       a.horaires_ouverture, COALESCE(a.site_internet, '')
		FROM guide_activites ga
		JOIN activites a ON a.id = ga.activite_id
		WHERE ga.guide_id = $1
		ORDER BY ga.jour, ga.ordre`, g.ID)
	if err != nil {
		return fmt.Errorf("list placements: %w", err)
	}
	defer rows.Close()
	g.Activites = nil
	for rows.Next() {
		var p entity.GuideActivite
		var a entity.Activite
		var cat string
		if err := rows.Scan(&p.ID, &p.GuideID, &p.ActiviteID, &p.Jour, &p.Ordre,
			&a.ID, &a.Titre, &a.Description, &cat, &a.Adresse, &a.Telephone,
			&a.HorairesOuverture, &a.SiteInternet); err != nil {
			return fmt.Errorf("scan placement: %w", err)
		}
		a.Categorie = entity.ActiviteCategorie(cat)
		p.Activite = &a
		g.Activites = append(g.Activites, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	userRows, err := r.q.Query(ctx,
		`SELECT user_id FROM guide_invitations WHERE guide_id = $1 ORDER BY user_id`, g.ID)
	if err != nil {
		return fmt.Errorf("list invitations: %w", err)
	}
	defer userRows.Close()
	g.InvitedUserIDs = nil
	for userRows.Next() {
		var id int64
		if err := userRows.Scan(&id); err != nil {
			return fmt.Errorf("scan invitation: %w", err)
		}
		g.InvitedUserIDs = append(g.InvitedUserIDs, id)
	}
	return userRows.Err()
}

func scanTags[T ~string](q Querier, ctx context.Context, table string, guideID int64) ([]T, error) {
	rows, err := q.Query(ctx, `SELECT valeur FROM `+table+` WHERE guide_id = $1 ORDER BY valeur`, guideID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, T(s))
	}
	return out, rows.Err()
}
