//go:build unit

package guest_test

import (
	"testing"

	"court-reserve/internal/domain/guest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		g, err := guest.NewGuest("  Roger Federer  ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, "Roger Federer", g.Name())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := guest.NewGuest("")
		assert.ErrorIs(t, err, guest.ErrEmptyName)
	})

	t.Run("whitespace only name", func(t *testing.T) {
		_, err := guest.NewGuest("   ")
		assert.ErrorIs(t, err, guest.ErrEmptyName)
	})
}

func TestGuest_Rename(t *testing.T) {
	g, err := guest.NewGuest("Rafael Nadal")
	require.NoError(t, err)

	require.NoError(t, g.Rename("  Rafael Nadal Parera "))
	assert.Equal(t, "Rafael Nadal Parera", g.Name())

	assert.ErrorIs(t, g.Rename(" "), guest.ErrEmptyName)
	assert.Equal(t, "Rafael Nadal Parera", g.Name(), "failed rename keeps the old name")
}
