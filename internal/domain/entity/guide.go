package entity

import (
	"fmt"

	"github.com/hws/travel-api/internal/domain"
)

// GuideActivite colocación de una actividad dentro de un guía: día del
// itinerario y orden de visita dentro del día. Pertenece en exclusiva a su
// guía (se elimina en cascada con él).
type GuideActivite struct {
	ID         int64
	GuideID    int64
	ActiviteID int64
	Jour       int
	Ordre      int
	Activite   *Activite // detalle opcional para respuestas
}

// Guide agregado de itinerario multi-día. Posee su lista de colocaciones;
// InvitedUserIDs es una asociación no propietaria hacia users.
type Guide struct {
	ID             int64
	Titre          string
	Description    string
	NombreJours    int
	Mobilites      []Mobilite
	Saisons        []Saison
	PourQui        []PourQui
	Activites      []GuideActivite
	InvitedUserIDs []int64
}

// CheckPlacements verifica que ningún par (jour, ordre) se repita entre las
// colocaciones existentes y las nuevas. Invariante del agregado: dentro de un
// guía el par (jour, ordre) es único.
func CheckPlacements(existing []GuideActivite, incoming []GuideActivite) error {
	type slot struct{ jour, ordre int }
	seen := make(map[slot]bool, len(existing)+len(incoming))
	for _, p := range existing {
		seen[slot{p.Jour, p.Ordre}] = true
	}
	for _, p := range incoming {
		s := slot{p.Jour, p.Ordre}
		if seen[s] {
			return fmt.Errorf("%w: ya existe una actividad en el día %d con orden %d",
				domain.ErrConflict, p.Jour, p.Ordre)
		}
		seen[s] = true
	}
	return nil
}

// IsInvited indica si el usuario está en el conjunto de invitados del guía.
func (g *Guide) IsInvited(userID int64) bool {
	for _, id := range g.InvitedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
