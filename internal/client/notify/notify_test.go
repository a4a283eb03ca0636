package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newCenter(opts ...Option) (*Center, *fakeClock) {
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewCenter(append([]Option{WithClock(clk.Now)}, opts...)...), clk
}

func TestCenter_AddAndActiveNewestFirst(t *testing.T) {
	c, _ := newCenter()

	c.Success("one")
	c.Error("two")
	c.Info("three")

	got := c.Active()
	require.Len(t, got, 3)
	assert.Equal(t, "three", got[0].Message)
	assert.Equal(t, KindError, got[1].Kind)
	assert.Equal(t, "one", got[2].Message)
	assert.Equal(t, DefaultDuration, got[0].Duration)
}

func TestCenter_AutoDismiss(t *testing.T) {
	c, clk := newCenter()

	c.Success("Login successful!")
	clk.Advance(1499 * time.Millisecond)
	assert.Len(t, c.Active(), 1)

	clk.Advance(time.Millisecond)
	assert.Empty(t, c.Active())
}

func TestCenter_CustomDuration(t *testing.T) {
	c, clk := newCenter(WithDuration(3 * time.Second))

	c.Info("x")
	clk.Advance(2 * time.Second)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, time.Second, c.Active()[0].Remaining(clk.Now()))
}

func TestCenter_Dismiss(t *testing.T) {
	c, _ := newCenter()

	a := c.Info("a")
	b := c.Info("b")

	assert.True(t, c.Dismiss(a))
	assert.False(t, c.Dismiss(a))
	got := c.Active()
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0].ID)

	assert.True(t, c.DismissNewest())
	assert.False(t, c.DismissNewest())
}

func TestCenter_StackIsBounded(t *testing.T) {
	c, _ := newCenter(WithMaxToasts(2))

	c.Error("1")
	c.Error("2")
	c.Error("3")

	got := c.Active()
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].Message)
	assert.Equal(t, "2", got[1].Message)
}

func TestCenter_OnToast(t *testing.T) {
	c, _ := newCenter()

	var seen []string
	c.OnToast(func(t Toast) { seen = append(seen, t.Message) })

	c.Success("hello")
	c.Error("bye")
	assert.Equal(t, []string{"hello", "bye"}, seen)

	c.Clear()
	assert.Empty(t, c.Active())
}

func TestRender(t *testing.T) {
	c, _ := newCenter()
	assert.Empty(t, Render(nil, 80))

	c.Error("E-mail already registered!")
	c.Success("Registration completed!")

	out := Render(c.Active(), 80)
	assert.Contains(t, out, "E-mail already registered!")
	assert.Contains(t, out, "Registration completed!")

	plain := Plain(c.Active())
	assert.Equal(t, "[✗] E-mail already registered!\n[✓] Registration completed!\n", plain)
}
