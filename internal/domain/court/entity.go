package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("court name cannot be empty")

type Court struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string) (*Court, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	return &Court{
		id:   uuid.New(),
		name: trimmed,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
