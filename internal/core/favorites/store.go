// Package favorites holds the recipes a user flagged during one session.
package favorites

import (
	"sync"

	"flavoria/internal/core/mealdb"
)

// Store is the session's favorite set, unique by recipe ID and kept in
// insertion order. Safe for concurrent access.
type Store struct {
	mu      sync.RWMutex
	recipes []mealdb.Recipe
}

// NewStore creates an empty favorite set.
func NewStore() *Store {
	return &Store{}
}

// Toggle removes the recipe when a recipe with the same ID is present and
// appends it otherwise. It returns the new membership.
func (s *Store) Toggle(recipe mealdb.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(recipe.ID); i >= 0 {
		s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
		return false
	}
	s.recipes = append(s.recipes, recipe)
	return true
}

// IsFavorite reports whether id is in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// List returns a copy of the set in insertion order.
func (s *Store) List() []mealdb.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]mealdb.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Count returns the number of favorites.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Reset empties the set.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = nil
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
