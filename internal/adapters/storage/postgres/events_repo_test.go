package postgres

import (
	"testing"

	"pet-events/internal/domain/events"

	"github.com/stretchr/testify/assert"
)

func TestWhere(t *testing.T) {
	cond, args := where(events.Query{ID: "e1", OwnerID: "o1", OnlyEnabled: true})
	assert.Equal(t, " WHERE id = $1 AND creador = $2 AND enabled = TRUE", cond)
	assert.Equal(t, []any{"e1", "o1"}, args)

	cond, args = where(events.Query{OwnerID: "o1"})
	assert.Equal(t, " WHERE creador = $1", cond)
	assert.Equal(t, []any{"o1"}, args)

	cond, args = where(events.Query{})
	assert.Empty(t, cond)
	assert.Empty(t, args)
}
