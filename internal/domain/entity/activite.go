package entity

// Activite punto de interés reutilizable del catálogo. Independiente de
// cualquier guía: varios guías pueden referenciar la misma actividad.
type Activite struct {
	ID                int64
	Titre             string
	Description       string
	Categorie         ActiviteCategorie
	Adresse           string
	Telephone         string
	HorairesOuverture string
	SiteInternet      string // opcional
}
