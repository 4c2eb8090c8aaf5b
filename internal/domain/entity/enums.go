package entity

import (
	"fmt"
	"strings"

	"github.com/hws/travel-api/internal/domain"
)

// Mobilite modo de desplazamiento de un guía. Conjunto cerrado.
type Mobilite string

const (
	MobiliteAPied   Mobilite = "A_PIED"
	MobiliteVelo    Mobilite = "VELO"
	MobiliteVoiture Mobilite = "VOITURE"
	MobiliteMoto    Mobilite = "MOTO"
)

// Saison temporada recomendada para un guía. Conjunto cerrado.
type Saison string

const (
	SaisonPrintemps Saison = "PRINTEMPS"
	SaisonEte       Saison = "ETE"
	SaisonAutomne   Saison = "AUTOMNE"
	SaisonHiver     Saison = "HIVER"
)

// PourQui tipo de público al que va dirigido un guía. Conjunto cerrado.
type PourQui string

const (
	PourQuiSeul    PourQui = "SEUL"
	PourQuiFamille PourQui = "FAMILLE"
	PourQuiAmis    PourQui = "AMIS"
	PourQuiGroupe  PourQui = "GROUPE"
)

// ActiviteCategorie categoría de una actividad. Conjunto cerrado.
type ActiviteCategorie string

const (
	CategorieMusee    ActiviteCategorie = "MUSEE"
	CategorieChateau  ActiviteCategorie = "CHATEAU"
	CategorieParc     ActiviteCategorie = "PARC"
	CategorieGrotte   ActiviteCategorie = "GROTTE"
	CategorieActivite ActiviteCategorie = "ACTIVITE"
)

// Valores de cada enum en orden de declaración (se exponen tal cual por la API).
var (
	Mobilites  = []Mobilite{MobiliteAPied, MobiliteVelo, MobiliteVoiture, MobiliteMoto}
	Saisons    = []Saison{SaisonPrintemps, SaisonEte, SaisonAutomne, SaisonHiver}
	PoursQui   = []PourQui{PourQuiSeul, PourQuiFamille, PourQuiAmis, PourQuiGroupe}
	Categories = []ActiviteCategorie{CategorieMusee, CategorieChateau, CategorieParc, CategorieGrotte, CategorieActivite}
)

// parseEnum valida s contra el conjunto cerrado valid. Si no pertenece,
// devuelve ErrInvalidInput nombrando el valor ofensivo y los valores aceptados.
func parseEnum[T ~string](valid []T, s, label string) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	accepted := make([]string, len(valid))
	for i, v := range valid {
		accepted[i] = string(v)
	}
	var zero T
	return zero, fmt.Errorf("%w: valor inválido para %s: %q (aceptados: %s)",
		domain.ErrInvalidInput, label, s, strings.Join(accepted, ", "))
}

// ParseMobilite valida un nombre de mobilité.
func ParseMobilite(s string) (Mobilite, error) { return parseEnum(Mobilites, s, "mobilites") }

// ParseSaison valida un nombre de saison.
func ParseSaison(s string) (Saison, error) { return parseEnum(Saisons, s, "saisons") }

// ParsePourQui valida un nombre de pourQui.
func ParsePourQui(s string) (PourQui, error) { return parseEnum(PoursQui, s, "pourQui") }

// ParseCategorie valida una categoría de actividad.
func ParseCategorie(s string) (ActiviteCategorie, error) {
	return parseEnum(Categories, s, "categorie")
}
