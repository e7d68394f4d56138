package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("guest name cannot be empty")

type Guest struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(name string) (*Guest, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	return &Guest{
		id:   uuid.New(),
		name: trimmed,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Guest) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	g.name = trimmed
	return nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Name() string         { return g.name }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
