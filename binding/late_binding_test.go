package binding

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLateBinding(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		late := NewLateBinding()
		assert.False(t, late.Bound())
		assert.NotEmpty(t, late.ID())
	})

	t.Run("delegate arrival transitions to bound", func(t *testing.T) {
		late := NewLateBinding()
		delegate := &fakeBinding{}

		require.NoError(t, late.SetDelegate(delegate))

		assert.True(t, late.Bound())
		assert.Equal(t, 0, delegate.unbindCount())
	})

	t.Run("unbind after delegate forwards", func(t *testing.T) {
		late := NewLateBinding()
		delegate := &fakeBinding{}
		require.NoError(t, late.SetDelegate(delegate))

		require.NoError(t, late.Unbind())

		assert.Equal(t, 1, delegate.unbindCount())
	})

	t.Run("unbind is idempotent", func(t *testing.T) {
		late := NewLateBinding()
		delegate := &fakeBinding{}
		require.NoError(t, late.SetDelegate(delegate))

		require.NoError(t, late.Unbind())
		require.NoError(t, late.Unbind())

		assert.Equal(t, 1, delegate.unbindCount())
	})

	t.Run("unbind before delegate neutralizes a late arrival", func(t *testing.T) {
		late := NewLateBinding()
		require.NoError(t, late.Unbind())

		delegate := &fakeBinding{}
		require.NoError(t, late.SetDelegate(delegate))

		// The delegate was unbound on arrival, never installed.
		assert.Equal(t, 1, delegate.unbindCount())
		assert.False(t, late.Bound())
	})

	t.Run("unbind before delegate is a no-op on the proxy itself", func(t *testing.T) {
		late := NewLateBinding()
		assert.NoError(t, late.Unbind())
		assert.False(t, late.Bound())
	})

	t.Run("delegate never leaks under concurrent unbind", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			late := NewLateBinding()
			delegate := &fakeBinding{}

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = late.SetDelegate(delegate)
			}()
			go func() {
				defer wg.Done()
				_ = late.Unbind()
			}()
			wg.Wait()

			// Whichever order won, an unbound proxy must not hold an
			// active delegate.
			_ = late.Unbind()
			assert.GreaterOrEqual(t, delegate.unbindCount(), 1)
		}
	})
}
