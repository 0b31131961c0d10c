package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCursorRoundTrip(t *testing.T) {
	c := RoundCursor{
		CreatedAt: time.Date(2026, 5, 2, 9, 14, 0, 123000000, time.UTC),
		ID:        41,
	}

	parsed, err := ParseRoundCursor(c.String())
	require.NoError(t, err)
	assert.True(t, parsed.CreatedAt.Equal(c.CreatedAt))
	assert.Equal(t, c.ID, parsed.ID)
}

func TestParseRoundCursorRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "41", "not-a-time,41", "2026-05-02T09:14:00Z,x"} {
		_, err := ParseRoundCursor(raw)
		assert.Error(t, err, raw)
	}
}
