package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostAndList(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	c.Post("s1", KindSuccess, "first")
	c.Post("s1", KindError, "second")
	c.Post("s2", KindInfo, "other scope")

	msgs := c.List("s1")
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text, "insertion order preserved")
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, KindSuccess, msgs[0].Kind)
	assert.False(t, msgs[0].PostedAt.IsZero())

	require.Len(t, c.List("s2"), 1)
	assert.Empty(t, c.List("s3"))
}

func TestAutoExpiry(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	c.PostWithDuration("s1", KindSuccess, "short lived", 20*time.Millisecond)
	c.Post("s1", KindInfo, "long lived")
	require.Len(t, c.List("s1"), 2)

	assert.Eventually(t, func() bool {
		return len(c.List("s1")) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "long lived", c.List("s1")[0].Text)
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	id := c.Post("s1", KindSuccess, "msg")
	c.Remove(id)
	assert.Empty(t, c.List("s1"))

	// Second removal of the same id is a no-op.
	c.Remove(id)
	assert.Empty(t, c.List("s1"))
}

func TestCloseStopsTimers(t *testing.T) {
	c := NewCenter(time.Minute)
	c.Post("s1", KindSuccess, "pending")
	c.Close()

	assert.Empty(t, c.List("s1"))
	// Posting after close must not arm new timers.
	c.Post("s1", KindSuccess, "late")
	assert.Empty(t, c.List("s1"))
}
