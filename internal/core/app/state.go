// Package app holds the per-session application state shared by every
// screen.
package app

import (
	"flavoria/internal/core/catalog"
	"flavoria/internal/core/favorites"
	"flavoria/internal/core/profile"
)

// State is the explicit application-state object. It is owned by the
// navigation controller and handed to screens by reference.
type State struct {
	Favorites *favorites.Store
	Profile   *profile.Store
	Catalog   *catalog.ViewModel
}

// NewState creates fresh session state.
func NewState(fetcher catalog.Fetcher, featured catalog.Featured, defaultProfile profile.Profile) *State {
	return &State{
		Favorites: favorites.NewStore(),
		Profile:   profile.NewStore(defaultProfile),
		Catalog:   catalog.NewViewModel(fetcher, featured),
	}
}

// Reset discards what the session accumulated.
func (s *State) Reset() {
	s.Favorites.Reset()
}
