package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	for _, s := range []string{"", "2025-6-1", "01-06-2025", "2025-06-01T00:00:00Z", "nonsense"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestDateOnly(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)
	in := time.Date(2025, 6, 1, 23, 59, 59, 0, cst)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
