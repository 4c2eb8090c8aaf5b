package usecase_test

import (
	"context"
	"fmt"

	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Copian en lectura y en
// escritura para que las mutaciones del caso de uso no atraviesen el "storage"
// sin pasar por el repo: así los tests pueden afirmar que tras un rechazo no
// quedó nada persistido.
// ──────────────────────────────────────────────────────────────────────────────

type fakeGuideRepo struct {
	guides       map[int64]*entity.Guide
	seq          int64
	placementSeq int64
}

var _ repository.GuideRepository = (*fakeGuideRepo)(nil)

func newFakeGuideRepo() *fakeGuideRepo {
	return &fakeGuideRepo{guides: make(map[int64]*entity.Guide)}
}

func cloneGuide(g *entity.Guide) *entity.Guide {
	c := *g
	c.Mobilites = append([]entity.Mobilite(nil), g.Mobilites...)
	c.Saisons = append([]entity.Saison(nil), g.Saisons...)
	c.PourQui = append([]entity.PourQui(nil), g.PourQui...)
	c.Activites = append([]entity.GuideActivite(nil), g.Activites...)
	c.InvitedUserIDs = append([]int64(nil), g.InvitedUserIDs...)
	return &c
}

func (r *fakeGuideRepo) Create(g *entity.Guide) error {
	r.seq++
	g.ID = r.seq
	for i := range g.Activites {
		r.placementSeq++
		g.Activites[i].ID = r.placementSeq
		g.Activites[i].GuideID = g.ID
	}
	r.guides[g.ID] = cloneGuide(g)
	return nil
}

func (r *fakeGuideRepo) GetByID(id int64) (*entity.Guide, error) {
	g, ok := r.guides[id]
	if !ok {
		return nil, nil
	}
	return cloneGuide(g), nil
}

func (r *fakeGuideRepo) List() ([]*entity.Guide, error) {
	out := make([]*entity.Guide, 0, len(r.guides))
	for _, g := range r.guides {
		out = append(out, cloneGuide(g))
	}
	return out, nil
}

func (r *fakeGuideRepo) ListByInvitedUser(userID int64) ([]*entity.Guide, error) {
	var out []*entity.Guide
	for _, g := range r.guides {
		if g.IsInvited(userID) {
			out = append(out, cloneGuide(g))
		}
	}
	return out, nil
}

func (r *fakeGuideRepo) Update(g *entity.Guide, replacePlacements, replaceInvitations bool) error {
	stored, ok := r.guides[g.ID]
	if !ok {
		return domain.ErrGuideNotFound
	}
	stored.Titre = g.Titre
	stored.Description = g.Description
	stored.NombreJours = g.NombreJours
	stored.Mobilites = append([]entity.Mobilite(nil), g.Mobilites...)
	stored.Saisons = append([]entity.Saison(nil), g.Saisons...)
	stored.PourQui = append([]entity.PourQui(nil), g.PourQui...)
	if replacePlacements {
		stored.Activites = nil
		for _, p := range g.Activites {
			r.placementSeq++
			p.ID = r.placementSeq
			p.GuideID = g.ID
			stored.Activites = append(stored.Activites, p)
		}
		g.Activites = append([]entity.GuideActivite(nil), stored.Activites...)
	}
	if replaceInvitations {
		stored.InvitedUserIDs = append([]int64(nil), g.InvitedUserIDs...)
	}
	return nil
}

func (r *fakeGuideRepo) Delete(id int64) error {
	if _, ok := r.guides[id]; !ok {
		return domain.ErrGuideNotFound
	}
	delete(r.guides, id)
	return nil
}

func (r *fakeGuideRepo) AddPlacement(guideID int64, p *entity.GuideActivite) error {
	g, ok := r.guides[guideID]
	if !ok {
		return domain.ErrGuideNotFound
	}
	// Mismo contrato que la restricción UNIQUE (guide_id, jour, ordre).
	for _, ex := range g.Activites {
		if ex.Jour == p.Jour && ex.Ordre == p.Ordre {
			return fmt.Errorf("%w: ya existe una actividad en el día %d con orden %d",
				domain.ErrConflict, p.Jour, p.Ordre)
		}
	}
	r.placementSeq++
	p.ID = r.placementSeq
	p.GuideID = guideID
	g.Activites = append(g.Activites, *p)
	return nil
}

func (r *fakeGuideRepo) AddPlacements(guideID int64, ps []*entity.GuideActivite) error {
	for _, p := range ps {
		if err := r.AddPlacement(guideID, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeGuideRepo) RemovePlacement(guideID, placementID int64) error {
	g, ok := r.guides[guideID]
	if !ok {
		return domain.ErrGuideNotFound
	}
	for i, p := range g.Activites {
		if p.ID == placementID {
			g.Activites = append(g.Activites[:i], g.Activites[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: colocación %d", domain.ErrNotFound, placementID)
}

func (r *fakeGuideRepo) Invite(guideID, userID int64) error {
	g, ok := r.guides[guideID]
	if !ok {
		return domain.ErrGuideNotFound
	}
	if g.IsInvited(userID) {
		return fmt.Errorf("%w: el usuario %d ya está invitado", domain.ErrConflict, userID)
	}
	g.InvitedUserIDs = append(g.InvitedUserIDs, userID)
	return nil
}

func (r *fakeGuideRepo) Revoke(guideID, userID int64) error {
	g, ok := r.guides[guideID]
	if !ok {
		return domain.ErrGuideNotFound
	}
	for i, id := range g.InvitedUserIDs {
		if id == userID {
			g.InvitedUserIDs = append(g.InvitedUserIDs[:i], g.InvitedUserIDs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: el usuario %d no estaba invitado", domain.ErrNotFound, userID)
}

type fakeActiviteRepo struct {
	activites map[int64]*entity.Activite
	// IDs de actividades colocadas en algún guía; Delete sobre ellas
	// devuelve ErrReferenced como haría la clave foránea.
	referenced map[int64]bool
	seq        int64
}

var _ repository.ActiviteRepository = (*fakeActiviteRepo)(nil)

func newFakeActiviteRepo() *fakeActiviteRepo {
	return &fakeActiviteRepo{
		activites:  make(map[int64]*entity.Activite),
		referenced: make(map[int64]bool),
	}
}

func (r *fakeActiviteRepo) Create(a *entity.Activite) error {
	r.seq++
	a.ID = r.seq
	c := *a
	r.activites[a.ID] = &c
	return nil
}

func (r *fakeActiviteRepo) GetByID(id int64) (*entity.Activite, error) {
	a, ok := r.activites[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *fakeActiviteRepo) List() ([]*entity.Activite, error) {
	out := make([]*entity.Activite, 0, len(r.activites))
	for _, a := range r.activites {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeActiviteRepo) Update(a *entity.Activite) error {
	if _, ok := r.activites[a.ID]; !ok {
		return domain.ErrActiviteNotFound
	}
	c := *a
	r.activites[a.ID] = &c
	return nil
}

func (r *fakeActiviteRepo) Delete(id int64) error {
	if _, ok := r.activites[id]; !ok {
		return domain.ErrActiviteNotFound
	}
	if r.referenced[id] {
		return fmt.Errorf("%w: la actividad %d sigue colocada en un guía", domain.ErrReferenced, id)
	}
	delete(r.activites, id)
	return nil
}

type fakeUserRepo struct {
	users map[int64]*entity.User
	seq   int64
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	u.ID = r.seq
	c := *u
	c.Roles = append([]entity.Role(nil), u.Roles...)
	r.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindIDByEmail(email string) (int64, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u.ID, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles map[int64]*entity.Role
	seq   int64
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[int64]*entity.Role)}
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	for _, ex := range r.roles {
		if ex.Name == role.Name {
			return fmt.Errorf("%w: el rol %q ya existe", domain.ErrConflict, role.Name)
		}
	}
	r.seq++
	role.ID = r.seq
	c := *role
	r.roles[role.ID] = &c
	return nil
}

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	c := *role
	return &c, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			c := *role
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		c := *role
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeRoleRepo) Delete(id int64) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre los mismos fakes, sin rollback.
// El caso de uso valida todo en memoria antes de persistir, así que los tests
// de atomicidad siguen siendo significativos con este runner.
type fakeTxRunner struct {
	guides    repository.GuideRepository
	activites repository.ActiviteRepository
	users     repository.UserRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	guides repository.GuideRepository,
	activites repository.ActiviteRepository,
	users repository.UserRepository,
) error) error {
	return fn(t.guides, t.activites, t.users)
}
