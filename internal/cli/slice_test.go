package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginator/internal/dataset"
)

// writeDataset writes a JSON array of n generated records to a temp file.
func writeDataset(t *testing.T, n int) string {
	t.Helper()
	data, err := json.Marshal(dataset.Generate(n))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestSlice_MiddlePage(t *testing.T) {
	path := writeDataset(t, 10)

	out, err := execute(t, "slice", "--input", path, "--page", "2", "--per-page", "3")
	require.NoError(t, err)

	var items []dataset.Record
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "item-0004", items[0]["name"])
	assert.Equal(t, "item-0006", items[2]["name"])
}

func TestSlice_ClampedFinalPage(t *testing.T) {
	path := writeDataset(t, 95)

	out, err := execute(t, "slice", "--input", path, "--page", "10", "--per-page", "10")
	require.NoError(t, err)

	var items []dataset.Record
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 5)
	assert.Equal(t, "item-0091", items[0]["name"])
}

func TestSlice_WithMeta(t *testing.T) {
	path := writeDataset(t, 10)

	out, err := execute(t,
		"slice", "--input", path, "--page", "2", "--per-page", "4", "--with-meta")
	require.NoError(t, err)

	var envelope struct {
		Meta struct {
			CurrentPage int `json:"current_page"`
			TotalPages  int `json:"total_pages"`
			TotalItems  int `json:"total_items"`
		} `json:"meta"`
		Items []dataset.Record `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, 2, envelope.Meta.CurrentPage)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
	assert.Equal(t, 10, envelope.Meta.TotalItems)
	assert.Len(t, envelope.Items, 4)
}

func TestSlice_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	out, err := execute(t, "slice", "--input", path, "--per-page", "10")
	require.NoError(t, err, "page 1 of an empty dataset is an empty window, not an error")

	var items []dataset.Record
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Empty(t, items)
}

func TestSlice_Errors(t *testing.T) {
	t.Run("out of range page", func(t *testing.T) {
		path := writeDataset(t, 10)
		_, err := execute(t, "slice", "--input", path, "--page", "5", "--per-page", "5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := execute(t, "slice", "--input", filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("input is not an array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "object.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id": 1}`), 0o600))

		_, err := execute(t, "slice", "--input", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, dataset.ErrNotArray)
	})
}
