// seed puebla la base de datos con datos de arranque: roles ADMIN/USER, un
// administrador y un usuario de demo, un catálogo de actividades y un guía de
// ejemplo con colocaciones e invitación. Es idempotente: lo que ya existe se
// deja tal cual.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/infrastructure/postgres"
	"github.com/hws/travel-api/pkg/config"
	"github.com/hws/travel-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	roles := postgres.NewRoleRepository(pool)
	users := postgres.NewUserRepository(pool)
	activites := postgres.NewActiviteRepository(pool)
	guides := postgres.NewGuideRepository(pool)

	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		existing, err := roles.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("consultar rol")
		}
		if existing != nil {
			continue
		}
		if err := roles.Create(&entity.Role{Name: name}); err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("crear rol")
		}
		log.Info().Str("role", name).Msg("rol creado")
	}

	seedUser(log, users, roles, "admin@travel.local", "admin123", entity.RoleAdmin)
	userID := seedUser(log, users, roles, "voyageur@travel.local", "voyage123", entity.RoleUser)

	existing, err := activites.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar actividades")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("catálogo ya poblado, nada que sembrar")
		return
	}

	catalogue := []*entity.Activite{
		{
			Titre:             "Musée du Louvre",
			Description:       "El museo de arte más visitado del mundo, en el antiguo palacio real.",
			Categorie:         entity.CategorieMusee,
			Adresse:           "Rue de Rivoli, 75001 Paris",
			Telephone:         "+33 1 40 20 50 50",
			HorairesOuverture: "09:00-18:00, cerrado los martes",
			SiteInternet:      "https://www.louvre.fr",
		},
		{
			Titre:             "Château de Versailles",
			Description:       "Residencia de los reyes de Francia, con los jardines de Le Nôtre.",
			Categorie:         entity.CategorieChateau,
			Adresse:           "Place d'Armes, 78000 Versailles",
			Telephone:         "+33 1 30 83 78 00",
			HorairesOuverture: "09:00-18:30, cerrado los lunes",
			SiteInternet:      "https://www.chateauversailles.fr",
		},
		{
			Titre:             "Jardin du Luxembourg",
			Description:       "Parque del Senado, estanque central y sillas verdes.",
			Categorie:         entity.CategorieParc,
			Adresse:           "75006 Paris",
			Telephone:         "+33 1 42 34 20 00",
			HorairesOuverture: "07:30 hasta el anochecer",
		},
		{
			Titre:             "Grotte de Lascaux IV",
			Description:       "Réplica integral de la cueva con pinturas del paleolítico.",
			Categorie:         entity.CategorieGrotte,
			Adresse:           "Avenue de Lascaux, 24290 Montignac",
			Telephone:         "+33 5 53 50 99 10",
			HorairesOuverture: "09:30-19:00 en temporada",
			SiteInternet:      "https://www.lascaux.fr",
		},
		{
			Titre:             "Croisière sur la Seine",
			Description:       "Paseo en barco de una hora por el centro de París.",
			Categorie:         entity.CategorieActivite,
			Adresse:           "Port de la Conférence, 75008 Paris",
			Telephone:         "+33 1 42 25 96 10",
			HorairesOuverture: "10:00-22:00",
			SiteInternet:      "https://www.bateaux-mouches.fr",
		},
	}
	for _, a := range catalogue {
		if err := activites.Create(a); err != nil {
			log.Fatal().Err(err).Str("titre", a.Titre).Msg("crear actividad")
		}
	}
	log.Info().Int("count", len(catalogue)).Msg("catálogo de actividades sembrado")

	demo := &entity.Guide{
		Titre:       "Paris en trois jours",
		Description: "Clásicos de París a pie, con una escapada a Versailles.",
		NombreJours: 3,
		Mobilites:   []entity.Mobilite{entity.MobiliteAPied, entity.MobiliteVelo},
		Saisons:     []entity.Saison{entity.SaisonPrintemps, entity.SaisonEte},
		PourQui:     []entity.PourQui{entity.PourQuiFamille, entity.PourQuiAmis},
		Activites: []entity.GuideActivite{
			{ActiviteID: catalogue[0].ID, Jour: 1, Ordre: 1},
			{ActiviteID: catalogue[4].ID, Jour: 1, Ordre: 2},
			{ActiviteID: catalogue[2].ID, Jour: 2, Ordre: 1},
			{ActiviteID: catalogue[1].ID, Jour: 3, Ordre: 1},
		},
		InvitedUserIDs: []int64{userID},
	}
	if err := guides.Create(demo); err != nil {
		log.Fatal().Err(err).Msg("crear guía de demo")
	}
	log.Info().Int64("guide_id", demo.ID).Msg("guía de demo sembrado")
}

// seedUser crea el usuario si no existe y devuelve su ID.
func seedUser(log *logger.Logger, users *postgres.UserRepo, roles *postgres.RoleRepo, email, password, roleName string) int64 {
	id, err := users.FindIDByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("consultar usuario")
	}
	if id > 0 {
		return id
	}
	role, err := roles.GetByName(roleName)
	if err != nil || role == nil {
		log.Fatal().Err(err).Str("role", roleName).Msg("resolver rol")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	u := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []entity.Role{*role},
	}
	if err := users.Create(u); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("crear usuario")
	}
	log.Info().Str("email", email).Str("role", role.Name).Msg("usuario creado")
	return u.ID
}
