package response

import (
	"time"

	"court-reserve/internal/domain/guest"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromGuest(g *guest.Guest) *GuestResponse {
	return &GuestResponse{
		ID:        g.ID(),
		Name:      g.Name(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

func FromGuests(gs []*guest.Guest) []*GuestResponse {
	result := make([]*GuestResponse, len(gs))
	for i, g := range gs {
		result[i] = FromGuest(g)
	}
	return result
}
