package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/application/usecase"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type guideFixture struct {
	uc        *usecase.GuideUseCase
	guides    *fakeGuideRepo
	activites *fakeActiviteRepo
	users     *fakeUserRepo
	// IDs sembrados
	musee, parc, chateau int64
	ana, bruno           int64
}

// newGuideFixture siembra tres actividades y dos usuarios.
func newGuideFixture(t *testing.T) *guideFixture {
	t.Helper()
	guides := newFakeGuideRepo()
	activites := newFakeActiviteRepo()
	users := newFakeUserRepo()
	tx := &fakeTxRunner{guides: guides, activites: activites, users: users}

	f := &guideFixture{
		uc:        usecase.NewGuideUseCase(tx, guides, activites, users),
		guides:    guides,
		activites: activites,
		users:     users,
	}

	seed := func(titre string, cat entity.ActiviteCategorie) int64 {
		a := &entity.Activite{
			Titre: titre, Description: "demo", Categorie: cat,
			Adresse: "Paris", Telephone: "+33 1 00 00 00 00", HorairesOuverture: "09:00-18:00",
		}
		require.NoError(t, activites.Create(a))
		return a.ID
	}
	f.musee = seed("Musée du Louvre", entity.CategorieMusee)
	f.parc = seed("Jardin du Luxembourg", entity.CategorieParc)
	f.chateau = seed("Château de Versailles", entity.CategorieChateau)

	ana := &entity.User{Email: "ana@travel.local", PasswordHash: "x", Roles: []entity.Role{{ID: 1, Name: entity.RoleUser}}}
	require.NoError(t, users.Create(ana))
	bruno := &entity.User{Email: "bruno@travel.local", PasswordHash: "x", Roles: []entity.Role{{ID: 1, Name: entity.RoleUser}}}
	require.NoError(t, users.Create(bruno))
	f.ana, f.bruno = ana.ID, bruno.ID
	return f
}

func validCreateRequest(f *guideFixture) dto.CreateGuideRequest {
	return dto.CreateGuideRequest{
		Titre:       "Paris en deux jours",
		Description: "Clásicos del centro",
		NombreJours: 2,
		Mobilites:   []string{"A_PIED", "VELO"},
		Saisons:     []string{"PRINTEMPS"},
		PourQui:     []string{"FAMILLE"},
		GuideActivites: []dto.PlacementRequest{
			{ActiviteID: f.musee, Jour: 1, Ordre: 1},
			{ActiviteID: f.parc, Jour: 1, Ordre: 2},
			{ActiviteID: f.chateau, Jour: 2, Ordre: 1},
		},
		InvitedUserIDs: []int64{f.ana},
	}
}

// createGuide crea un guía válido y devuelve su respuesta.
func createGuide(t *testing.T, f *guideFixture) *dto.GuideResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), validCreateRequest(f))
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestGuideCreate_Completo(t *testing.T) {
	f := newGuideFixture(t)
	out := createGuide(t, f)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Paris en deux jours", out.Titre)
	assert.Equal(t, 2, out.NombreJours)
	assert.Equal(t, []string{"A_PIED", "VELO"}, out.Mobilites)
	assert.Equal(t, []string{"PRINTEMPS"}, out.Saisons)
	assert.Equal(t, []string{"FAMILLE"}, out.PourQui)
	assert.Equal(t, []int64{f.ana}, out.InvitedUserIDs)

	require.Len(t, out.GuideActivites, 3)
	first := out.GuideActivites[0]
	assert.NotZero(t, first.ID, "cada colocación recibe su propio ID")
	require.NotNil(t, first.Activite, "la respuesta adjunta el detalle de la actividad")
	assert.Equal(t, "Musée du Louvre", first.Activite.Titre)
}

func TestGuideCreate_SlotDuplicadoEnPayload_NoPersisteNada(t *testing.T) {
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.GuideActivites = []dto.PlacementRequest{
		{ActiviteID: f.musee, Jour: 1, Ordre: 1},
		{ActiviteID: f.parc, Jour: 1, Ordre: 1},
	}

	_, err := f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrConflict),
		"dos colocaciones en el mismo (jour, ordre) deben rechazarse")
	assert.Empty(t, f.guides.guides, "un create rechazado no deja ningún guía persistido")
}

func TestGuideCreate_ActividadInexistente_NoPersisteNada(t *testing.T) {
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.GuideActivites = append(in.GuideActivites, dto.PlacementRequest{ActiviteID: 999, Jour: 2, Ordre: 2})

	_, err := f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrActiviteNotFound))
	assert.Empty(t, f.guides.guides)
}

func TestGuideCreate_InvitadoInexistente_NoPersisteNada(t *testing.T) {
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.InvitedUserIDs = []int64{f.ana, 777}

	_, err := f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.Empty(t, f.guides.guides)
}

func TestGuideCreate_EnumInvalido(t *testing.T) {
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.Saisons = []string{"PRINTEMPS", "MOUSSON"}

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), `"MOUSSON"`)
}

func TestGuideCreate_TagsVacios(t *testing.T) {
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.Mobilites = nil

	_, err := f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"se requiere al menos una mobilité")
}

func TestGuideCreate_ValoresRepetidosColapsan(t *testing.T) {
	// Los tags y los invitados son conjuntos: repetir un valor en el payload
	// no debe duplicar filas ni terminar en error.
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.Mobilites = []string{"VELO", "VELO", "A_PIED"}
	in.Saisons = []string{"ETE", "ETE"}
	in.PourQui = []string{"FAMILLE", "AMIS", "FAMILLE"}
	in.InvitedUserIDs = []int64{f.ana, f.ana}

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"VELO", "A_PIED"}, out.Mobilites)
	assert.Equal(t, []string{"ETE"}, out.Saisons)
	assert.Equal(t, []string{"FAMILLE", "AMIS"}, out.PourQui)
	assert.Equal(t, []int64{f.ana}, out.InvitedUserIDs)

	stored := f.guides.guides[out.ID]
	assert.Len(t, stored.Mobilites, 2)
	assert.Len(t, stored.Saisons, 1)
	assert.Len(t, stored.InvitedUserIDs, 1)
}

func TestGuideCreate_CamposObligatorios(t *testing.T) {
	f := newGuideFixture(t)

	in := validCreateRequest(f)
	in.Titre = "   "
	_, err := f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "titre en blanco")

	in = validCreateRequest(f)
	in.NombreJours = 0
	_, err = f.uc.Create(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "nombreJours debe ser positivo")
}

func TestGuideCreate_SinColocacionesNiInvitados(t *testing.T) {
	// Las colecciones son opcionales en create; solo los tags son obligatorios.
	f := newGuideFixture(t)
	in := validCreateRequest(f)
	in.GuideActivites = nil
	in.InvitedUserIDs = nil

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.GuideActivites)
	assert.Equal(t, []int64{}, out.InvitedUserIDs,
		"invitedUserIds serializa como lista vacía, no null")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura y control de acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestGuideGetByIDForUser_ControlDeAcceso(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f) // ana invitada, bruno no

	_, err := f.uc.GetByIDForUser(g.ID, f.bruno, true)
	assert.NoError(t, err, "un admin accede siempre, invitado o no")

	out, err := f.uc.GetByIDForUser(g.ID, f.ana, false)
	require.NoError(t, err, "un invitado accede a su guía")
	assert.Equal(t, g.ID, out.ID)

	_, err = f.uc.GetByIDForUser(g.ID, f.bruno, false)
	assert.True(t, errors.Is(err, domain.ErrForbidden),
		"un usuario no invitado recibe acceso denegado")

	_, err = f.uc.GetByIDForUser(9999, f.ana, true)
	assert.True(t, errors.Is(err, domain.ErrGuideNotFound))
}

func TestGuideListForUser_SoloGuiasInvitados(t *testing.T) {
	f := newGuideFixture(t)
	g1 := createGuide(t, f) // invita a ana

	in := validCreateRequest(f)
	in.Titre = "Escapada a Versailles"
	in.InvitedUserIDs = []int64{f.bruno}
	_, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	mine, err := f.uc.ListForUser(f.ana)
	require.NoError(t, err)
	require.Len(t, mine, 1, "ana solo ve los guías donde está invitada")
	assert.Equal(t, g1.ID, mine[0].ID)

	none, err := f.uc.ListForUser(12345)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGuideUpdate_CamposAusentesNoSeTocan(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	out, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{
		Titre: strPtr("Paris revisité"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Paris revisité", out.Titre)
	assert.Equal(t, g.Description, out.Description, "description ausente queda intacta")
	assert.Equal(t, g.Mobilites, out.Mobilites, "tags ausentes quedan intactos")
	assert.Len(t, out.GuideActivites, 3, "colocaciones ausentes quedan intactas")
	assert.Equal(t, g.InvitedUserIDs, out.InvitedUserIDs, "invitaciones ausentes quedan intactas")
}

func TestGuideUpdate_ColeccionPresenteReemplazaPorCompleto(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	nuevas := []dto.PlacementRequest{{ActiviteID: f.chateau, Jour: 1, Ordre: 1}}
	out, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{
		GuideActivites: &nuevas,
	})
	require.NoError(t, err)

	require.Len(t, out.GuideActivites, 1, "la colección presente sustituye a las 3 anteriores")
	assert.Equal(t, f.chateau, out.GuideActivites[0].ActiviteID)

	stored, err := f.guides.GetByID(g.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Activites, 1, "lo almacenado refleja el reemplazo completo")
}

func TestGuideUpdate_ColeccionVaciaPresenteLimpia(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	vacias := []dto.PlacementRequest{}
	ninguno := []int64{}
	out, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{
		GuideActivites: &vacias,
		InvitedUserIDs: &ninguno,
	})
	require.NoError(t, err)
	assert.Empty(t, out.GuideActivites, "una colección vacía pero presente vacía el guía")
	assert.Equal(t, []int64{}, out.InvitedUserIDs)
}

func TestGuideUpdate_ValoresRepetidosColapsan(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	saisons := []string{"HIVER", "HIVER"}
	invitados := []int64{f.bruno, f.bruno}
	out, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{
		Saisons:        &saisons,
		InvitedUserIDs: &invitados,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"HIVER"}, out.Saisons)
	assert.Equal(t, []int64{f.bruno}, out.InvitedUserIDs)
}

func TestGuideUpdate_TagsPresentesPeroVacios_Rechazado(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	vacios := []string{}
	_, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{
		Saisons: &vacios,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"los tags presentes pero vacíos se rechazan igual que en create")
}

func TestGuideUpdate_SlotDuplicado_OriginalIntacto(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	dup := []dto.PlacementRequest{
		{ActiviteID: f.musee, Jour: 1, Ordre: 1},
		{ActiviteID: f.parc, Jour: 1, Ordre: 1},
	}
	_, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{GuideActivites: &dup})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	stored, err := f.guides.GetByID(g.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Activites, 3, "un update rechazado no altera las colocaciones")
}

func TestGuideUpdate_GuiaInexistente(t *testing.T) {
	f := newGuideFixture(t)
	_, err := f.uc.Update(context.Background(), 404, dto.UpdateGuideRequest{Titre: strPtr("x")})
	assert.True(t, errors.Is(err, domain.ErrGuideNotFound))
}

func TestGuideUpdate_NombreJoursMenor_NoInvalidaColocaciones(t *testing.T) {
	// Reducir nombreJours no recoloca ni valida los días existentes; las
	// colocaciones fuera de rango quedan tal cual.
	f := newGuideFixture(t)
	g := createGuide(t, f)

	out, err := f.uc.Update(context.Background(), g.ID, dto.UpdateGuideRequest{NombreJours: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, out.NombreJours)
	assert.Len(t, out.GuideActivites, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones incrementales de colocaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestGuideAddActivity_OK(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	out, err := f.uc.AddActivity(g.ID, dto.PlacementRequest{ActiviteID: f.parc, Jour: 2, Ordre: 2})
	require.NoError(t, err)
	assert.Len(t, out.GuideActivites, 4, "la respuesta es el agregado recargado")
}

func TestGuideAddActivity_SlotOcupado(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	_, err := f.uc.AddActivity(g.ID, dto.PlacementRequest{ActiviteID: f.parc, Jour: 1, Ordre: 1})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	stored, _ := f.guides.GetByID(g.ID)
	assert.Len(t, stored.Activites, 3, "nada persistido tras el conflicto")
}

func TestGuideAddActivities_LoteAtomico(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	// El segundo elemento choca con una colocación existente: el lote entero
	// se rechaza y el primero tampoco se persiste.
	lote := []dto.PlacementRequest{
		{ActiviteID: f.parc, Jour: 2, Ordre: 2},
		{ActiviteID: f.musee, Jour: 1, Ordre: 1},
	}
	_, err := f.uc.AddActivities(context.Background(), g.ID, lote)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	stored, _ := f.guides.GetByID(g.ID)
	assert.Len(t, stored.Activites, 3, "el lote es todo o nada")
}

func TestGuideAddActivities_DuplicadoInternoDelLote(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	lote := []dto.PlacementRequest{
		{ActiviteID: f.parc, Jour: 3, Ordre: 1},
		{ActiviteID: f.musee, Jour: 3, Ordre: 1},
	}
	_, err := f.uc.AddActivities(context.Background(), g.ID, lote)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	stored, _ := f.guides.GetByID(g.ID)
	assert.Len(t, stored.Activites, 3)
}

func TestGuideAddActivities_LoteVacio(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	_, err := f.uc.AddActivities(context.Background(), g.ID, nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGuideRemoveActivity(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)
	victim := g.GuideActivites[1]

	out, err := f.uc.RemoveActivity(g.ID, victim.ID)
	require.NoError(t, err)
	assert.Len(t, out.GuideActivites, 2)
	for _, p := range out.GuideActivites {
		assert.NotEqual(t, victim.ID, p.ID)
	}

	_, err = f.uc.RemoveActivity(g.ID, victim.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"quitar una colocación inexistente es not found")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invitaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestGuideInvitaciones_CicloCompleto(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f) // ana ya invitada

	out, err := f.uc.InviteUser(g.ID, f.bruno)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{f.ana, f.bruno}, out.InvitedUserIDs)

	_, err = f.uc.InviteUser(g.ID, f.bruno)
	assert.True(t, errors.Is(err, domain.ErrConflict),
		"invitar dos veces al mismo usuario es conflicto")

	_, err = f.uc.InviteUser(g.ID, 555)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	out, err = f.uc.RevokeUser(g.ID, f.bruno)
	require.NoError(t, err)
	assert.Equal(t, []int64{f.ana}, out.InvitedUserIDs)

	_, err = f.uc.RevokeUser(g.ID, f.bruno)
	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"revocar una invitación que no existe es not found")

	// La fila del usuario sobrevive a la revocación.
	u, err := f.users.GetByID(f.bruno)
	require.NoError(t, err)
	assert.NotNil(t, u)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestGuideDelete_NoTocaCatalogoNiUsuarios(t *testing.T) {
	f := newGuideFixture(t)
	g := createGuide(t, f)

	require.NoError(t, f.uc.Delete(g.ID))

	assert.Empty(t, f.guides.guides, "el guía desaparece con sus colocaciones e invitaciones")
	assert.Len(t, f.activites.activites, 3, "el catálogo de actividades no se toca")
	assert.Len(t, f.users.users, 2, "los usuarios no se tocan")

	err := f.uc.Delete(g.ID)
	assert.True(t, errors.Is(err, domain.ErrGuideNotFound))
}
