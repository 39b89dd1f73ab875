package app

import (
	"context"
	"testing"

	"flavoria/internal/core/catalog"
	"flavoria/internal/core/mealdb"
	"flavoria/internal/core/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct{}

func (stubFetcher) ListAll(context.Context) []mealdb.Recipe                { return nil }
func (stubFetcher) Search(context.Context, string) []mealdb.Recipe         { return nil }
func (stubFetcher) ListByCategory(context.Context, string) []mealdb.Recipe { return nil }
func (stubFetcher) ListCategories(context.Context) []mealdb.Category       { return nil }

func TestProfileUpdateLeavesFavoritesUnchanged(t *testing.T) {
	s := NewState(stubFetcher{}, catalog.Featured{}, profile.Profile{DisplayName: "Salwa"})
	s.Favorites.Toggle(mealdb.Recipe{ID: "52803", Name: "Beef Wellington"})
	s.Favorites.Toggle(mealdb.Recipe{ID: "52772", Name: "Teriyaki Chicken"})
	before := s.Favorites.List()

	require.NoError(t, s.Profile.Update(profile.Profile{DisplayName: "Sal"}))

	assert.Equal(t, before, s.Favorites.List())
	assert.Equal(t, "Sal", s.Profile.Current().DisplayName)
}

func TestReset(t *testing.T) {
	s := NewState(stubFetcher{}, catalog.Featured{}, profile.Profile{DisplayName: "Salwa"})
	s.Favorites.Toggle(mealdb.Recipe{ID: "1"})

	s.Reset()

	assert.Equal(t, 0, s.Favorites.Count())
}
