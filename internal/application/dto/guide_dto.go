package dto

// PlacementRequest colocación de una actividad en un guía: día y orden.
type PlacementRequest struct {
	ActiviteID int64 `json:"activiteId"`
	Jour       int   `json:"jour"`
	Ordre      int   `json:"ordre"`
}

// CreateGuideRequest entrada para crear un guía completo.
type CreateGuideRequest struct {
	Titre          string             `json:"titre"`
	Description    string             `json:"description"`
	NombreJours    int                `json:"nombreJours"`
	Mobilites      []string           `json:"mobilites"`
	Saisons        []string           `json:"saisons"`
	PourQui        []string           `json:"pourQui"`
	GuideActivites []PlacementRequest `json:"guideActivites"`
	InvitedUserIDs []int64            `json:"invitedUserIds"`
}

// UpdateGuideRequest actualización parcial: nil deja el campo sin tocar.
// Una colección presente reemplaza por completo a la anterior (clear-then-set);
// los tags presentes pero vacíos se rechazan igual que en create.
type UpdateGuideRequest struct {
	Titre          *string             `json:"titre"`
	Description    *string             `json:"description"`
	NombreJours    *int                `json:"nombreJours"`
	Mobilites      *[]string           `json:"mobilites"`
	Saisons        *[]string           `json:"saisons"`
	PourQui        *[]string           `json:"pourQui"`
	GuideActivites *[]PlacementRequest `json:"guideActivites"`
	InvitedUserIDs *[]int64            `json:"invitedUserIds"`
}

// InvitationRequest invitación o revocación de un usuario a un guía.
type InvitationRequest struct {
	UserID int64 `json:"userId"`
}

// PlacementResponse colocación persistida, con el detalle de la actividad.
type PlacementResponse struct {
	ID         int64             `json:"id"`
	GuideID    int64             `json:"guideId"`
	ActiviteID int64             `json:"activiteId"`
	Jour       int               `json:"jour"`
	Ordre      int               `json:"ordre"`
	Activite   *ActiviteResponse `json:"activite,omitempty"`
}

// GuideResponse vista completa del agregado.
type GuideResponse struct {
	ID             int64               `json:"id"`
	Titre          string              `json:"titre"`
	Description    string              `json:"description"`
	NombreJours    int                 `json:"nombreJours"`
	Mobilites      []string            `json:"mobilites"`
	Saisons        []string            `json:"saisons"`
	PourQui        []string            `json:"pourQui"`
	GuideActivites []PlacementResponse `json:"guideActivites"`
	InvitedUserIDs []int64             `json:"invitedUserIds"`
}
