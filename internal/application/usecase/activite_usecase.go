package usecase

import (
	"fmt"
	"strings"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/entity"
	"github.com/hws/travel-api/internal/domain/repository"
)

// ActiviteUseCase CRUD del catálogo de actividades con validación por campo.
type ActiviteUseCase struct {
	repo repository.ActiviteRepository
}

// NewActiviteUseCase construye el caso de uso.
func NewActiviteUseCase(repo repository.ActiviteRepository) *ActiviteUseCase {
	return &ActiviteUseCase{repo: repo}
}

// Create valida y persiste una actividad nueva.
func (uc *ActiviteUseCase) Create(in dto.CreateActiviteRequest) (*dto.ActiviteResponse, error) {
	a := &entity.Activite{
		Titre:             strings.TrimSpace(in.Titre),
		Description:       strings.TrimSpace(in.Description),
		Adresse:           strings.TrimSpace(in.Adresse),
		Telephone:         strings.TrimSpace(in.Telephone),
		HorairesOuverture: strings.TrimSpace(in.HorairesOuverture),
		SiteInternet:      strings.TrimSpace(in.SiteInternet),
	}
	if err := validateActiviteFields(a); err != nil {
		return nil, err
	}
	cat, err := entity.ParseCategorie(in.Categorie)
	if err != nil {
		return nil, err
	}
	a.Categorie = cat
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toActiviteResponse(a), nil
}

// GetByID obtiene una actividad por ID.
func (uc *ActiviteUseCase) GetByID(id int64) (*dto.ActiviteResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrActiviteNotFound
	}
	return toActiviteResponse(a), nil
}

// List devuelve todas las actividades del catálogo.
func (uc *ActiviteUseCase) List() ([]dto.ActiviteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActiviteResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toActiviteResponse(a))
	}
	return items, nil
}

// Update aplica una actualización parcial: nil deja el campo sin tocar; un
// campo presente se valida con las mismas reglas que en create.
func (uc *ActiviteUseCase) Update(id int64, in dto.UpdateActiviteRequest) (*dto.ActiviteResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrActiviteNotFound
	}
	if in.Titre != nil {
		a.Titre = strings.TrimSpace(*in.Titre)
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.Categorie != nil {
		cat, err := entity.ParseCategorie(*in.Categorie)
		if err != nil {
			return nil, err
		}
		a.Categorie = cat
	}
	if in.Adresse != nil {
		a.Adresse = strings.TrimSpace(*in.Adresse)
	}
	if in.Telephone != nil {
		a.Telephone = strings.TrimSpace(*in.Telephone)
	}
	if in.HorairesOuverture != nil {
		a.HorairesOuverture = strings.TrimSpace(*in.HorairesOuverture)
	}
	if in.SiteInternet != nil {
		a.SiteInternet = strings.TrimSpace(*in.SiteInternet)
	}
	if err := validateActiviteFields(a); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toActiviteResponse(a), nil
}

// Delete elimina una actividad. Si sigue colocada en algún guía el repo
// devuelve ErrReferenced (integridad referencial, no se huerfanizan
// colocaciones en silencio).
func (uc *ActiviteUseCase) Delete(id int64) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrActiviteNotFound
	}
	return uc.repo.Delete(id)
}

func validateActiviteFields(a *entity.Activite) error {
	switch {
	case a.Titre == "":
		return fmt.Errorf("%w: el titre de la actividad es obligatorio", domain.ErrInvalidInput)
	case a.Description == "":
		return fmt.Errorf("%w: la description de la actividad es obligatoria", domain.ErrInvalidInput)
	case a.Adresse == "":
		return fmt.Errorf("%w: la adresse de la actividad es obligatoria", domain.ErrInvalidInput)
	case a.Telephone == "":
		return fmt.Errorf("%w: el telephone de la actividad es obligatorio", domain.ErrInvalidInput)
	case a.HorairesOuverture == "":
		return fmt.Errorf("%w: los horairesOuverture de la actividad son obligatorios", domain.ErrInvalidInput)
	}
	return nil
}

func toActiviteResponse(a *entity.Activite) *dto.ActiviteResponse {
	if a == nil {
		return nil
	}
	return &dto.ActiviteResponse{
		ID:                a.ID,
		Titre:             a.Titre,
		Description:       a.Description,
		Categorie:         string(a.Categorie),
		Adresse:           a.Adresse,
		Telephone:         a.Telephone,
		HorairesOuverture: a.HorairesOuverture,
		SiteInternet:      a.SiteInternet,
	}
}
