package sessions

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/framework"
	"calculator-service/internal/app/services/core/scoring"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newStoreWithClock(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(ttl)
	store.now = clock.Now
	return store, clock
}

func newWHO5Calculator(t *testing.T) *framework.Calculator {
	t.Helper()
	config, err := catalog.New().Get(models.CalculatorTypeWHO5)
	require.NoError(t, err)
	calculator, err := framework.NewCalculator(config, scoring.NewRegistry(), nil, nil, zap.NewNop())
	require.NoError(t, err)
	return calculator
}

func TestStore(t *testing.T) {
	t.Run("Get extends expiry", func(t *testing.T) {
		store, clock := newStoreWithClock(10 * time.Minute)
		session := store.Put("s1", newWHO5Calculator(t))
		assert.Equal(t, clock.now.Add(10*time.Minute), session.ExpiresAt)

		clock.Advance(9 * time.Minute)
		got, ok := store.Get("s1")
		require.True(t, ok)
		assert.Equal(t, clock.now.Add(10*time.Minute), got.ExpiresAt)

		clock.Advance(9 * time.Minute)
		_, ok = store.Get("s1")
		assert.True(t, ok)
	})

	t.Run("Expired session is gone", func(t *testing.T) {
		store, clock := newStoreWithClock(time.Minute)
		store.Put("s1", newWHO5Calculator(t))

		clock.Advance(time.Minute)
		_, ok := store.Get("s1")
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Sweep removes only expired sessions", func(t *testing.T) {
		store, clock := newStoreWithClock(time.Minute)
		store.Put("old", newWHO5Calculator(t))
		clock.Advance(30 * time.Second)
		store.Put("new", newWHO5Calculator(t))
		clock.Advance(45 * time.Second)

		assert.Equal(t, 1, store.Sweep())
		assert.Equal(t, 1, store.Len())
		_, ok := store.Get("new")
		assert.True(t, ok)
	})

	t.Run("Delete resets the calculator", func(t *testing.T) {
		store, _ := newStoreWithClock(time.Minute)
		calculator := newWHO5Calculator(t)
		calculator.SetAnswer("q1", floatPtr(3))
		store.Put("s1", calculator)

		assert.True(t, store.Delete("s1"))
		assert.False(t, store.Delete("s1"))
		assert.False(t, calculator.CalculatorData().IsAnswered("q1"))
	})

	t.Run("Run stops with context", func(t *testing.T) {
		store := NewStore(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			store.Run(ctx, time.Millisecond)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})

	t.Run("Non positive interval falls back to the default", func(t *testing.T) {
		store := NewStore(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			store.Run(ctx, 0)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}

func floatPtr(v float64) *float64 {
	return &v
}
