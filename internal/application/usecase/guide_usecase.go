package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
)

// GuideTxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type GuideTxRunner interface {
	Run(ctx context.Context, fn func(
		guides repository.GuideRepository,
		activites repository.ActiviteRepository,
		users repository.UserRepository,
	) error) error
}

// GuideUseCase servicio de consistencia del agregado Guide: creación,
// actualización parcial con reemplazo completo de colecciones, mutaciones
// incrementales de colocaciones e invitaciones, y control de acceso por
// invitación. Toda la validación se calcula en memoria contra el agregado
// recién cargado y se persiste como una unidad.
type GuideUseCase struct {
	tx           GuideTxRunner
	guideRepo    repository.GuideRepository
	activiteRepo repository.ActiviteRepository
	userRepo     repository.UserRepository
}

// NewGuideUseCase construye el caso de uso.
func NewGuideUseCase(tx GuideTxRunner, guideRepo repository.GuideRepository, activiteRepo repository.ActiviteRepository, userRepo repository.UserRepository) *GuideUseCase {
	return &GuideUseCase{tx: tx, guideRepo: guideRepo, activiteRepo: activiteRepo, userRepo: userRepo}
}

// ListAll devuelve todos los guías (solo admin, la ruta lo garantiza).
func (uc *GuideUseCase) ListAll() ([]dto.GuideResponse, error) {
	list, err := uc.guideRepo.List()
	if err != nil {
		return nil, err
	}
	return toGuideResponses(list), nil
}

// GetByIDForUser devuelve un guía aplicando el control de acceso: un admin
// accede siempre; un usuario normal solo si su ID está en el conjunto de
// invitados del guía.
func (uc *GuideUseCase) GetByIDForUser(id, callerID int64, isAdmin bool) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	if !isAdmin && !g.IsInvited(callerID) {
		return nil, domain.ErrForbidden
	}
	out := toGuideResponse(g)
	return &out, nil
}

// ListForUser devuelve exactamente los guías donde el usuario está invitado.
func (uc *GuideUseCase) ListForUser(userID int64) ([]dto.GuideResponse, error) {
	list, err := uc.guideRepo.ListByInvitedUser(userID)
	if err != nil {
		return nil, err
	}
	return toGuideResponses(list), nil
}

// Create valida y persiste un guía completo (tags, colocaciones e
// invitaciones) en una sola transacción. Si cualquier verificación falla no se
// persiste nada.
func (uc *GuideUseCase) Create(ctx context.Context, in dto.CreateGuideRequest) (*dto.GuideResponse, error) {
	g := &entity.Guide{
		Titre:       strings.TrimSpace(in.Titre),
		Description: strings.TrimSpace(in.Description),
		NombreJours: in.NombreJours,
	}
	if g.Titre == "" {
		return nil, fmt.Errorf("%w: el titre es obligatorio", domain.ErrInvalidInput)
	}
	if g.Description == "" {
		return nil, fmt.Errorf("%w: la description es obligatoria", domain.ErrInvalidInput)
	}
	if g.NombreJours <= 0 {
		return nil, fmt.Errorf("%w: nombreJours debe ser mayor que 0", domain.ErrInvalidInput)
	}
	var err error
	if g.Mobilites, err = parseMobilites(in.Mobilites); err != nil {
		return nil, err
	}
	if g.Saisons, err = parseSaisons(in.Saisons); err != nil {
		return nil, err
	}
	if g.PourQui, err = parsePourQui(in.PourQui); err != nil {
		return nil, err
	}

	placements, err := buildPlacements(in.GuideActivites)
	if err != nil {
		return nil, err
	}
	if err := entity.CheckPlacements(nil, placements); err != nil {
		return nil, err
	}
	g.Activites = placements
	g.InvitedUserIDs = dedupeIDs(in.InvitedUserIDs)

	err = uc.tx.Run(ctx, func(guides repository.GuideRepository, activites repository.ActiviteRepository, users repository.UserRepository) error {
		if err := resolveActivites(activites, g.Activites); err != nil {
			return err
		}
		if err := checkUsersExist(users, g.InvitedUserIDs); err != nil {
			return err
		}
		return guides.Create(g)
	})
	if err != nil {
		return nil, err
	}
	out := toGuideResponse(g)
	return &out, nil
}

// Update aplica una actualización parcial: cada campo nil queda sin tocar;
// una colección presente reemplaza por completo a la anterior. Los tags
// presentes pero vacíos se rechazan con la misma regla que en create.
func (uc *GuideUseCase) Update(ctx context.Context, id int64, in dto.UpdateGuideRequest) (*dto.GuideResponse, error) {
	var out *dto.GuideResponse
	err := uc.tx.Run(ctx, func(guides repository.GuideRepository, activites repository.ActiviteRepository, users repository.UserRepository) error {
		g, err := guides.GetByID(id)
		if err != nil {
			return err
		}
		if g == nil {
			return domain.ErrGuideNotFound
		}
		if in.Titre != nil {
			if strings.TrimSpace(*in.Titre) == "" {
				return fmt.Errorf("%w: el titre no puede estar vacío", domain.ErrInvalidInput)
			}
			g.Titre = strings.TrimSpace(*in.Titre)
		}
		if in.Description != nil {
			if strings.TrimSpace(*in.Description) == "" {
				return fmt.Errorf("%w: la description no puede estar vacía", domain.ErrInvalidInput)
			}
			g.Description = strings.TrimSpace(*in.Description)
		}
		if in.NombreJours != nil {
			if *in.NombreJours <= 0 {
				return fmt.Errorf("%w: nombreJours debe ser mayor que 0", domain.ErrInvalidInput)
			}
			g.NombreJours = *in.NombreJours
		}
		if in.Mobilites != nil {
			if g.Mobilites, err = parseMobilites(*in.Mobilites); err != nil {
				return err
			}
		}
		if in.Saisons != nil {
			if g.Saisons, err = parseSaisons(*in.Saisons); err != nil {
				return err
			}
		}
		if in.PourQui != nil {
			if g.PourQui, err = parsePourQui(*in.PourQui); err != nil {
				return err
			}
		}

		replacePlacements := in.GuideActivites != nil
		if replacePlacements {
			placements, err := buildPlacements(*in.GuideActivites)
			if err != nil {
				return err
			}
			if err := entity.CheckPlacements(nil, placements); err != nil {
				return err
			}
			if err := resolveActivites(activites, placements); err != nil {
				return err
			}
			g.Activites = placements
		}
		replaceInvitations := in.InvitedUserIDs != nil
		if replaceInvitations {
			invited := dedupeIDs(*in.InvitedUserIDs)
			if err := checkUsersExist(users, invited); err != nil {
				return err
			}
			g.InvitedUserIDs = invited
		}

		if err := guides.Update(g, replacePlacements, replaceInvitations); err != nil {
			return err
		}
		resp := toGuideResponse(g)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el guía; sus colocaciones, tags e invitaciones caen en
// cascada. Las actividades del catálogo y los usuarios no se tocan.
func (uc *GuideUseCase) Delete(id int64) error {
	g, err := uc.guideRepo.GetByID(id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrGuideNotFound
	}
	return uc.guideRepo.Delete(id)
}

// AddActivity añade una colocación al guía. Falla con conflicto si su
// (jour, ordre) choca con una colocación existente.
func (uc *GuideUseCase) AddActivity(guideID int64, in dto.PlacementRequest) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(guideID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	placements, err := buildPlacements([]dto.PlacementRequest{in})
	if err != nil {
		return nil, err
	}
	if err := entity.CheckPlacements(g.Activites, placements); err != nil {
		return nil, err
	}
	if err := resolveActivites(uc.activiteRepo, placements); err != nil {
		return nil, err
	}
	if err := uc.guideRepo.AddPlacement(guideID, &placements[0]); err != nil {
		return nil, err
	}
	return uc.reload(guideID)
}

// AddActivities añade un lote de colocaciones de forma atómica: si cualquiera
// choca con una colocación existente o con otra del mismo lote, se rechaza el
// lote completo y no se persiste ninguna.
func (uc *GuideUseCase) AddActivities(ctx context.Context, guideID int64, in []dto.PlacementRequest) (*dto.GuideResponse, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: el lote de actividades no puede estar vacío", domain.ErrInvalidInput)
	}
	err := uc.tx.Run(ctx, func(guides repository.GuideRepository, activites repository.ActiviteRepository, _ repository.UserRepository) error {
		g, err := guides.GetByID(guideID)
		if err != nil {
			return err
		}
		if g == nil {
			return domain.ErrGuideNotFound
		}
		placements, err := buildPlacements(in)
		if err != nil {
			return err
		}
		if err := entity.CheckPlacements(g.Activites, placements); err != nil {
			return err
		}
		if err := resolveActivites(activites, placements); err != nil {
			return err
		}
		ps := make([]*entity.GuideActivite, len(placements))
		for i := range placements {
			ps[i] = &placements[i]
		}
		return guides.AddPlacements(guideID, ps)
	})
	if err != nil {
		return nil, err
	}
	return uc.reload(guideID)
}

// RemoveActivity elimina una colocación por su propio ID dentro del guía.
func (uc *GuideUseCase) RemoveActivity(guideID, placementID int64) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(guideID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	if err := uc.guideRepo.RemovePlacement(guideID, placementID); err != nil {
		return nil, err
	}
	return uc.reload(guideID)
}

// InviteUser añade un usuario al conjunto de invitados del guía.
func (uc *GuideUseCase) InviteUser(guideID, userID int64) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(guideID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w (id=%d)", domain.ErrUserNotFound, userID)
	}
	if g.IsInvited(userID) {
		return nil, fmt.Errorf("%w: el usuario %d ya está invitado", domain.ErrConflict, userID)
	}
	if err := uc.guideRepo.Invite(guideID, userID); err != nil {
		return nil, err
	}
	return uc.reload(guideID)
}

// RevokeUser retira la invitación de un usuario. Falla con not found si el
// usuario no estaba invitado; la fila de users no se toca.
func (uc *GuideUseCase) RevokeUser(guideID, userID int64) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(guideID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	if !g.IsInvited(userID) {
		return nil, fmt.Errorf("%w: el usuario %d no estaba invitado", domain.ErrNotFound, userID)
	}
	if err := uc.guideRepo.Revoke(guideID, userID); err != nil {
		return nil, err
	}
	return uc.reload(guideID)
}

func (uc *GuideUseCase) reload(guideID int64) (*dto.GuideResponse, error) {
	g, err := uc.guideRepo.GetByID(guideID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuideNotFound
	}
	out := toGuideResponse(g)
	return &out, nil
}

// buildPlacements convierte las colocaciones de entrada validando que los
// identificadores y posiciones sean positivos.
func buildPlacements(in []dto.PlacementRequest) ([]entity.GuideActivite, error) {
	placements := make([]entity.GuideActivite, 0, len(in))
	for _, p := range in {
		if p.ActiviteID <= 0 {
			return nil, fmt.Errorf("%w: activiteId debe ser positivo", domain.ErrInvalidInput)
		}
		if p.Jour <= 0 {
			return nil, fmt.Errorf("%w: jour debe ser mayor que 0", domain.ErrInvalidInput)
		}
		if p.Ordre <= 0 {
			return nil, fmt.Errorf("%w: ordre debe ser mayor que 0", domain.ErrInvalidInput)
		}
		placements = append(placements, entity.GuideActivite{
			ActiviteID: p.ActiviteID,
			Jour:       p.Jour,
			Ordre:      p.Ordre,
		})
	}
	return placements, nil
}

// resolveActivites comprueba que cada colocación referencia una actividad
// existente y adjunta el detalle para la vista de respuesta.
func resolveActivites(repo repository.ActiviteRepository, placements []entity.GuideActivite) error {
	for i := range placements {
		a, err := repo.GetByID(placements[i].ActiviteID)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("%w (id=%d)", domain.ErrActiviteNotFound, placements[i].ActiviteID)
		}
		placements[i].Activite = a
	}
	return nil
}

func dedupeIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkUsersExist(repo repository.UserRepository, ids []int64) error {
	for _, id := range ids {
		u, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("%w (id=%d)", domain.ErrUserNotFound, id)
		}
	}
	return nil
}

// Las colecciones de etiquetas son conjuntos: los valores repetidos del
// payload se colapsan para no chocar con la clave primaria de las tablas
// de etiquetas.
func parseMobilites(in []string) ([]entity.Mobilite, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una mobilité", domain.ErrInvalidInput)
	}
	out := make([]entity.Mobilite, 0, len(in))
	seen := make(map[entity.Mobilite]struct{}, len(in))
	for _, s := range in {
		v, err := entity.ParseMobilite(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func parseSaisons(in []string) ([]entity.Saison, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una saison", domain.ErrInvalidInput)
	}
	out := make([]entity.Saison, 0, len(in))
	seen := make(map[entity.Saison]struct{}, len(in))
	for _, s := range in {
		v, err := entity.ParseSaison(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func parsePourQui(in []string) ([]entity.PourQui, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un valor de pourQui", domain.ErrInvalidInput)
	}
	out := make([]entity.PourQui, 0, len(in))
	seen := make(map[entity.PourQui]struct{}, len(in))
	for _, s := range in {
		v, err := entity.ParsePourQui(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func toGuideResponses(list []*entity.Guide) []dto.GuideResponse {
	items := make([]dto.GuideResponse, 0, len(list))
	for _, g := range list {
		items = append(items, toGuideResponse(g))
	}
	return items
}

func toGuideResponse(g *entity.Guide) dto.GuideResponse {
	resp := dto.GuideResponse{
		ID:             g.ID,
		Titre:          g.Titre,
		Description:    g.Description,
		NombreJours:    g.NombreJours,
		Mobilites:      enumNames(g.Mobilites),
		Saisons:        enumNames(g.Saisons),
		PourQui:        enumNames(g.PourQui),
		GuideActivites: make([]dto.PlacementResponse, 0, len(g.Activites)),
		InvitedUserIDs: g.InvitedUserIDs,
	}
	if resp.InvitedUserIDs == nil {
		resp.InvitedUserIDs = []int64{}
	}
	for _, p := range g.Activites {
		resp.GuideActivites = append(resp.GuideActivites, dto.PlacementResponse{
			ID:         p.ID,
			GuideID:    p.GuideID,
			ActiviteID: p.ActiviteID,
			Jour:       p.Jour,
			Ordre:      p.Ordre,
			Activite:   toActiviteResponse(p.Activite),
		})
	}
	return resp
}

func enumNames[T ~string](values []T) []string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}
	return names
}
