package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_OnPageChange(t *testing.T) {
	t.Run("fires with previous and current page", func(t *testing.T) {
		s := NewSized(95, 10)
		var got []PageChange
		s.OnPageChange(func(c PageChange) { got = append(got, c) })

		require.True(t, s.SetPage(4))
		require.True(t, s.SetPage(2))

		require.Len(t, got, 2)
		assert.Equal(t, PageChange{Previous: 1, Current: 4}, got[0])
		assert.Equal(t, PageChange{Previous: 4, Current: 2}, got[1])
	})

	t.Run("does not fire on rejection or no-op", func(t *testing.T) {
		s := NewSized(95, 10)
		fired := 0
		s.OnPageChange(func(PageChange) { fired++ })

		assert.False(t, s.SetPage(11))
		assert.True(t, s.SetPage(1), "current page is an accepted no-op")
		assert.Equal(t, 0, fired)
	})

	t.Run("handlers run in registration order", func(t *testing.T) {
		s := NewSized(95, 10)
		var order []string
		s.OnPageChange(func(PageChange) { order = append(order, "first") })
		s.OnPageChange(func(PageChange) { order = append(order, "second") })
		s.OnPageChange(func(PageChange) { order = append(order, "third") })

		require.True(t, s.SetPage(2))
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("handler observes mutated state", func(t *testing.T) {
		s := NewSized(95, 10)
		s.OnPageChange(func(c PageChange) {
			assert.Equal(t, c.Current, s.Page())
			assert.Equal(t, c.Previous, s.LastPage())
		})
		require.True(t, s.SetPage(7))
	})

	t.Run("reentrant handler sees consistent state", func(t *testing.T) {
		s := NewSized(95, 10)
		var got []PageChange
		s.OnPageChange(func(c PageChange) {
			got = append(got, c)
			// Snap anything past page 5 back to page 5.
			if c.Current > 5 {
				s.SetPage(5)
			}
		})

		require.True(t, s.SetPage(9))

		require.Len(t, got, 2)
		assert.Equal(t, PageChange{Previous: 1, Current: 9}, got[0])
		assert.Equal(t, PageChange{Previous: 9, Current: 5}, got[1])
		assert.Equal(t, 5, s.Page())
	})
}

func TestState_OnSizingChange(t *testing.T) {
	t.Run("fires after recompute and reset", func(t *testing.T) {
		s := NewSized(100, 10)
		require.True(t, s.SetPage(6))

		var got []SizingChange
		s.OnSizingChange(func(c SizingChange) {
			got = append(got, c)
			assert.Equal(t, DefaultPage, s.Page(), "page already reset when sizing fires")
		})

		require.NoError(t, s.SetItemsPerPage(33))
		require.NoError(t, s.SetTotalItems(500))

		require.Len(t, got, 2)
		assert.Equal(t, SizingChange{TotalItems: 100, ItemsPerPage: 33, TotalPages: 4}, got[0])
		assert.Equal(t, SizingChange{TotalItems: 500, ItemsPerPage: 33, TotalPages: 16}, got[1])
	})

	t.Run("does not fire on validation failure", func(t *testing.T) {
		s := NewSized(100, 10)
		fired := 0
		s.OnSizingChange(func(SizingChange) { fired++ })

		require.Error(t, s.SetTotalItems(-1))
		require.Error(t, s.SetItemsPerPage(0))
		assert.Equal(t, 0, fired)
	})

	t.Run("sizing reset fires page change too", func(t *testing.T) {
		s := NewSized(100, 10)
		require.True(t, s.SetPage(6))

		var pages []PageChange
		s.OnPageChange(func(c PageChange) { pages = append(pages, c) })

		require.NoError(t, s.SetTotalItems(80))
		require.Len(t, pages, 1)
		assert.Equal(t, PageChange{Previous: 6, Current: 1}, pages[0])
	})
}

func TestSubscription_Detach(t *testing.T) {
	t.Run("detached handler stops firing", func(t *testing.T) {
		s := NewSized(95, 10)
		fired := 0
		sub := s.OnPageChange(func(PageChange) { fired++ })

		require.True(t, s.SetPage(2))
		sub.Detach()
		require.True(t, s.SetPage(3))

		assert.Equal(t, 1, fired)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		s := NewSized(95, 10)
		sub := s.OnPageChange(func(PageChange) {})
		sub.Detach()
		sub.Detach()
		assert.True(t, s.SetPage(2))
	})

	t.Run("detach during notification keeps current fan-out", func(t *testing.T) {
		s := NewSized(95, 10)
		var order []string
		var second *Subscription
		s.OnPageChange(func(PageChange) {
			order = append(order, "first")
			second.Detach()
		})
		second = s.OnPageChange(func(PageChange) { order = append(order, "second") })

		require.True(t, s.SetPage(2))
		require.True(t, s.SetPage(3))

		// The in-flight notification still reaches the detached handler;
		// subsequent ones do not.
		assert.Equal(t, []string{"first", "second", "first"}, order)
	})

	t.Run("subscriptions have distinct ids", func(t *testing.T) {
		s := New()
		a := s.OnPageChange(func(PageChange) {})
		b := s.OnSizingChange(func(SizingChange) {})
		assert.NotEmpty(t, a.ID())
		assert.NotEmpty(t, b.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestState_Teardown(t *testing.T) {
	s := NewSized(95, 10)
	pageFired := 0
	sizingFired := 0
	pageSub := s.OnPageChange(func(PageChange) { pageFired++ })
	s.OnSizingChange(func(SizingChange) { sizingFired++ })

	s.Teardown()

	require.True(t, s.SetPage(2))
	require.NoError(t, s.SetTotalItems(50))
	assert.Equal(t, 0, pageFired)
	assert.Equal(t, 0, sizingFired)

	// Detaching an already torn-down subscription is harmless.
	pageSub.Detach()

	// The engine accepts new subscribers after teardown.
	s.OnPageChange(func(PageChange) { pageFired++ })
	require.True(t, s.SetPage(3))
	assert.Equal(t, 1, pageFired)
}
