package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterResolve(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   query
	}{
		{"all", All(), query{op: AllRecipes}},
		{"category", Category("Beef"), query{op: ByCategory, arg: "Beef"}},
		{"category All", Category(AllCategory), query{op: AllRecipes}},
		{"no category sentinel", Category(""), query{op: AllRecipes}},
		{"search", Search("chicken"), query{op: BySearchTerm, arg: "chicken"}},
		{"search keeps inner text", Search(" pie "), query{op: BySearchTerm, arg: " pie "}},
		{"blank search", Search("  "), query{op: AllRecipes}},
		{"empty search", Search(""), query{op: AllRecipes}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.resolve())
		})
	}
}

func TestFilterLabels(t *testing.T) {
	assert.Equal(t, AllCategory, All().CategoryLabel())
	assert.Equal(t, "", All().SearchText())

	assert.Equal(t, "Seafood", Category("Seafood").CategoryLabel())
	assert.Equal(t, "", Category("Seafood").SearchText())

	assert.Equal(t, "", Search("soup").CategoryLabel())
	assert.Equal(t, "soup", Search("soup").SearchText())
}

func TestKindText(t *testing.T) {
	text, err := BySearchTerm.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "search", string(text))
	assert.Equal(t, `category("Beef")`, Category("Beef").String())
	assert.Equal(t, "all", All().String())
}
