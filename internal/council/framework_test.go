package council

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameworkTable(t *testing.T) {
	table, err := NewFrameworkTable()
	require.NoError(t, err)

	assert.Len(t, table, 4)
	for _, cat := range Categories() {
		f, err := table.FrameworkFor(cat)
		require.NoError(t, err)
		assert.NotEmpty(t, f.FocusAreas, "category %s", cat)
		assert.NotEmpty(t, f.GuidingQuestions, "category %s", cat)
		assert.Equal(t, 0.25, f.Weight)
	}
}

func TestFrameworkFor_UnknownCategory(t *testing.T) {
	table, err := NewFrameworkTable()
	require.NoError(t, err)

	_, err = table.FrameworkFor(Category("chaos"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
