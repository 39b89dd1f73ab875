package mealdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipe_Steps(t *testing.T) {
	tests := []struct {
		name         string
		instructions string
		want         []string
	}{
		{
			name:         "empty",
			instructions: "  ",
			want:         nil,
		},
		{
			name:         "line per step with numbering",
			instructions: "1. Preheat the oven to 200C\r\n\r\n2 - Season the beef well\nStep 3: Wrap in puff pastry",
			want:         []string{"Preheat the oven to 200C", "Season the beef well", "Wrap in puff pastry"},
		},
		{
			name:         "sentences split and short fragments dropped",
			instructions: "Seal the beef in a hot pan. Leave to cool. Serve.",
			want:         []string{"Seal the beef in a hot pan", "Leave to cool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recipe{Instructions: tt.instructions}
			assert.Equal(t, tt.want, r.Steps())
		})
	}
}

func TestRecipe_IngredientsSkipsBlankSlots(t *testing.T) {
	var r Recipe
	r.IngredientSlots[0] = IngredientSlot{Name: " Salt ", Measure: " pinch "}
	r.IngredientSlots[5] = IngredientSlot{Name: "", Measure: "1 cup"}
	r.IngredientSlots[19] = IngredientSlot{Name: "Pepper"}

	assert.Equal(t, []IngredientSlot{
		{Name: "Salt", Measure: "pinch"},
		{Name: "Pepper"},
	}, r.Ingredients())
}
