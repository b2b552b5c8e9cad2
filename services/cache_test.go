package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheHitAndClear(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("k", 42)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	c.Clear()
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheDropsExpiredEntriesOnRead(t *testing.T) {
	c := NewCache(time.Millisecond)

	c.Set("k", "v")
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)

	// the expired entry is gone, not just hidden
	c.mu.RLock()
	_, present := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, present)
}
