package paginator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginator"
)

// TestEmptyCollection verifies that a sized but empty collection keeps
// paging disabled and rejects every page request.
func TestEmptyCollection(t *testing.T) {
	s := paginator.NewSized(0, 10)

	assert.Equal(t, 0, s.TotalPages())
	assert.False(t, s.SetPage(1))
	assert.False(t, s.SetPage(2))
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.ItemIndexStart())
	assert.Equal(t, 0, s.ItemIndexEnd())

	meta := s.Meta()
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}

// TestSingleItemPerPage verifies the degenerate one-item-per-page layout.
func TestSingleItemPerPage(t *testing.T) {
	s := paginator.NewSized(4, 1)

	assert.Equal(t, 4, s.TotalPages())
	require.True(t, s.SetPage(4))
	assert.Equal(t, 3, s.ItemIndexStart())
	assert.Equal(t, 4, s.ItemIndexEnd())
}

// TestSinglePage verifies a collection smaller than one page.
func TestSinglePage(t *testing.T) {
	s := paginator.NewSized(5, 10)

	assert.Equal(t, 1, s.TotalPages())
	assert.False(t, s.HasNext())
	assert.False(t, s.SetPage(2))
	assert.Equal(t, 5, s.ItemIndexEnd())
}

// TestUnsizedRejectsEverything verifies the spec scenario: no sizing
// inputs means zero pages and every request is rejected.
func TestUnsizedRejectsEverything(t *testing.T) {
	s := paginator.New()

	assert.Equal(t, 0, s.TotalPages())
	assert.False(t, s.SetPage(2))
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.LastPage())
}

// TestRepeatedSizingChanges verifies each accepted sizing change resets
// the page and keeps derived values consistent.
func TestRepeatedSizingChanges(t *testing.T) {
	s := paginator.NewSized(100, 10)

	require.True(t, s.SetPage(10))
	require.NoError(t, s.SetItemsPerPage(3))
	assert.Equal(t, 34, s.TotalPages())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 10, s.LastPage())

	require.True(t, s.SetPage(34))
	assert.Equal(t, 99, s.ItemIndexStart())
	assert.Equal(t, 100, s.ItemIndexEnd())

	require.NoError(t, s.SetTotalItems(1))
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 34, s.LastPage())
}

// TestLargeCollection sanity-checks the arithmetic away from small numbers.
func TestLargeCollection(t *testing.T) {
	s := paginator.NewSized(1_000_000, 7)

	assert.Equal(t, 142858, s.TotalPages())
	require.True(t, s.LastPageJump())
	assert.Equal(t, 999_999, s.ItemIndexStart())
	assert.Equal(t, 1_000_000, s.ItemIndexEnd())
}

// TestRejectionLeavesObserversQuiet verifies that a burst of rejected
// requests fires no notifications at all.
func TestRejectionLeavesObserversQuiet(t *testing.T) {
	s := paginator.NewSized(95, 10)
	fired := 0
	s.OnPageChange(func(paginator.PageChange) { fired++ })

	for _, n := range []int{-10, 0, 11, 100} {
		assert.False(t, s.SetPage(n))
	}
	assert.Equal(t, 0, fired)
}
