package lookup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache(time.Hour)

	_, ok := c.get("Heat")
	assert.False(t, ok, "empty cache should miss")

	c.set("Heat", &FindResponse{Query: "Heat"})
	got, ok := c.get("Heat")
	require.True(t, ok, "should hit after set")
	assert.Equal(t, "Heat", got.Query)

	_, ok = c.get("heat")
	assert.False(t, ok, "keys are case sensitive")
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)
	c.set("Heat", &FindResponse{Query: "Heat"})

	_, ok := c.get("Heat")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.get("Heat")
	assert.False(t, ok, "should miss after TTL")
}
