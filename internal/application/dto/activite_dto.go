package dto

// CreateActiviteRequest entrada para crear una actividad del catálogo.
type CreateActiviteRequest struct {
	Titre             string `json:"titre"`
	Description       string `json:"description"`
	Categorie         string `json:"categorie"`
	Adresse           string `json:"adresse"`
	Telephone         string `json:"telephone"`
	HorairesOuverture string `json:"horairesOuverture"`
	SiteInternet      string `json:"siteInternet,omitempty"`
}

// UpdateActiviteRequest actualización parcial: nil deja el campo sin tocar.
type UpdateActiviteRequest struct {
	Titre             *string `json:"titre"`
	Description       *string `json:"description"`
	Categorie         *string `json:"categorie"`
	Adresse           *string `json:"adresse"`
	Telephone         *string `json:"telephone"`
	HorairesOuverture *string `json:"horairesOuverture"`
	SiteInternet      *string `json:"siteInternet"`
}

// ActiviteResponse salida de una actividad.
type ActiviteResponse struct {
	ID                int64  `json:"id"`
	Titre             string `json:"titre"`
	Description       string `json:"description"`
	Categorie         string `json:"categorie"`
	Adresse           string `json:"adresse"`
	Telephone         string `json:"telephone"`
	HorairesOuverture string `json:"horairesOuverture"`
	SiteInternet      string `json:"siteInternet,omitempty"`
}
