package repository

import "github.com/hws/travel-api/internal/domain/entity"

// GuideRepository puerto de persistencia del agregado Guide. GetByID y los
// listados devuelven el agregado completo (tags, colocaciones con detalle de
// actividad e IDs de invitados).
type GuideRepository interface {
	// Create inserta el guía con sus tags, colocaciones e invitaciones.
	// Rellena los IDs generados en g.
	Create(g *entity.Guide) error
	GetByID(id int64) (*entity.Guide, error)
	List() ([]*entity.Guide, error)
	ListByInvitedUser(userID int64) ([]*entity.Guide, error)
	// Update reescribe los campos escalares y los tags; si replacePlacements
	// o replaceInvitations es true, la colección correspondiente se borra y
	// se vuelve a insertar desde g (clear-then-set).
	Update(g *entity.Guide, replacePlacements, replaceInvitations bool) error
	Delete(id int64) error

	AddPlacement(guideID int64, p *entity.GuideActivite) error
	AddPlacements(guideID int64, ps []*entity.GuideActivite) error
	// RemovePlacement elimina una colocación por su propio ID dentro del guía.
	// Devuelve ErrNotFound si no existe.
	RemovePlacement(guideID, placementID int64) error

	// Invite añade al usuario al conjunto de invitados; ErrConflict si ya
	// estaba invitado. Revoke devuelve ErrNotFound si no estaba invitado.
	Invite(guideID, userID int64) error
	Revoke(guideID, userID int64) error
}
