package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		want  int
	}{
		{"half off", Entry{Price: 50, OriginalPrice: 100}, 50},
		{"no original price", Entry{Price: 100}, 0},
		{"original below price ignored", Entry{Price: 100, OriginalPrice: 80}, 0},
		{"rounded", Entry{Price: 175, OriginalPrice: 350}, 50},
		{"uneven", Entry{Price: 600, OriginalPrice: 1000}, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.DiscountPercent())
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("rank_0")
	require.True(t, ok)
	assert.Equal(t, "Space Cadet", e.Name)
	assert.True(t, e.Free())

	_, ok = Lookup("rank_404")
	assert.False(t, ok)
}

func TestUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range All() {
		require.False(t, seen[e.ID], "duplicate catalog id %s", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Name, "entry %s", e.ID)
		assert.GreaterOrEqual(t, e.Price, int64(0), "entry %s", e.ID)
		if e.OriginalPrice != 0 {
			assert.GreaterOrEqual(t, e.OriginalPrice, e.Price, "entry %s", e.ID)
		}
	}
}

func TestSectionsCoverAll(t *testing.T) {
	total := len(Ranks()) + len(Keys()) + len(Kits()) + len(Items())
	assert.Equal(t, total, len(All()))
	assert.Len(t, Ranks(), 7)
	assert.Len(t, Keys(), 6)
	assert.Len(t, Kits(), 5)
	assert.Len(t, Items(), 3)
}
