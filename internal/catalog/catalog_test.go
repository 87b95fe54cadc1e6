package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisines(t *testing.T) {
	names := Cuisines()
	assert.Len(t, names, 8)
	assert.Contains(t, names, DefaultCuisine)
	assert.Contains(t, names, "African American")
	assert.Contains(t, names, "West African")
}

func TestCuisine_TablesComplete(t *testing.T) {
	paletteSet := map[string]bool{}
	for _, c := range Palette() {
		paletteSet[c] = true
	}

	for _, name := range Cuisines() {
		table, ok := Cuisine(name)
		require.True(t, ok, name)

		assert.NotEmpty(t, table.Breakfast, name)
		assert.NotEmpty(t, table.Lunch, name)
		assert.NotEmpty(t, table.Dinner, name)
		assert.NotEmpty(t, table.Colors, name)

		// цветовые теги кухонь используют имена палитры, кроме
		// исторического "purple" у средиземноморской кухни
		for _, color := range table.Colors {
			if color == "purple" {
				continue
			}
			assert.True(t, paletteSet[color], "%s: unknown color %q", name, color)
		}
	}
}

func TestCuisine_Unknown(t *testing.T) {
	_, ok := Cuisine("Klingon")
	assert.False(t, ok)
}

func TestPaletteAndFoods(t *testing.T) {
	colors := Palette()
	require.Len(t, colors, 6)
	assert.Equal(t, "red", colors[0])

	for _, color := range colors {
		assert.NotEmpty(t, FoodsForColor(color), color)
	}
	assert.Empty(t, FoodsForColor("magenta"))
}
