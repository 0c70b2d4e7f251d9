package searchcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMissAndHit(t *testing.T) {
	c := New(time.Minute, 10)

	_, ok := c.Get("messi")
	assert.False(t, ok)

	c.Set("messi", []string{"Lionel Messi"})
	got, ok := c.Get("messi")
	assert.True(t, ok)
	assert.Equal(t, []string{"Lionel Messi"}, got)
}

func TestEntriesExpire(t *testing.T) {
	at := time.Now()
	c := NewAt(30*time.Second, 10, func() time.Time { return at })

	c.Set("messi", 1)

	at = at.Add(29 * time.Second)
	_, ok := c.Get("messi")
	assert.True(t, ok)

	at = at.Add(time.Second)
	_, ok = c.Get("messi")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry is dropped on read")
}

func TestEvictsOldestWhenFull(t *testing.T) {
	at := time.Now()
	c := NewAt(time.Minute, 2, func() time.Time { return at })

	c.Set("a", 1)
	at = at.Add(time.Second)
	c.Set("b", 2)
	at = at.Add(time.Second)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry evicted")
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c := New(time.Minute, 2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}
