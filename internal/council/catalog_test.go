package council

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)
	require.NotNil(t, catalog)

	assert.Equal(t, 42, catalog.Len())
}

func TestCatalog_IDsAscendingAndUnique(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	seen := make(map[int]bool)
	for i, p := range catalog.Principles() {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalog_CategoryCounts(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	counts := map[Category]int{
		CategoryNurture:   10,
		CategoryTruth:     11,
		CategoryVision:    10,
		CategoryStructure: 11,
	}

	total := 0
	for cat, want := range counts {
		got := catalog.ByCategory(cat)
		assert.Len(t, got, want, "category %s", cat)
		total += len(got)
	}

	// Every principle belongs to exactly one category.
	assert.Equal(t, catalog.Len(), total)
}

func TestCatalog_ByCategoryFiltersAndPreservesOrder(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	for _, cat := range Categories() {
		entries := catalog.ByCategory(cat)
		require.NotEmpty(t, entries)

		lastID := 0
		for _, p := range entries {
			assert.Equal(t, cat, p.Category)
			assert.Greater(t, p.ID, lastID, "catalog order not preserved for %s", cat)
			lastID = p.ID
		}
	}
}

func TestCatalog_FirstTruthPrinciples(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	truth := catalog.ByCategory(CategoryTruth)
	require.GreaterOrEqual(t, len(truth), 2)
	assert.Equal(t, "DÁNÁ", truth[0].Name)
	assert.Equal(t, "KÉLÚ", truth[1].Name)
}

func TestCatalog_PrinciplesReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	first := catalog.Principles()
	first[0].Name = "mutated"

	assert.Equal(t, "DÁNÁ", catalog.Principles()[0].Name)
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories() {
		got, err := ParseCategory(string(cat))
		require.NoError(t, err)
		assert.Equal(t, cat, got)
	}

	got, err := ParseCategory(" Truth ")
	require.NoError(t, err)
	assert.Equal(t, CategoryTruth, got)

	_, err = ParseCategory("chaos")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{CategoryNurture, CategoryTruth, CategoryVision, CategoryStructure}, Categories())
}
