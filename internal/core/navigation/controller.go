// Package navigation routes between the listing, detail and profile
// screens.
package navigation

import (
	"errors"
	"fmt"
	"sync"

	"flavoria/internal/core/app"
)

// Screen 畫面
type Screen int

const (
	Listing Screen = iota
	Detail
	Profile
)

func (s Screen) String() string {
	switch s {
	case Detail:
		return "detail"
	case Profile:
		return "profile"
	default:
		return "listing"
	}
}

// MarshalText 讓 Screen 以字串輸出到 JSON
func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	// ErrInvalidTransition is returned for a transition the current screen
	// does not offer.
	ErrInvalidTransition = errors.New("invalid navigation transition")
	// ErrMissingRecipeID is returned when Detail is requested without a
	// recipe.
	ErrMissingRecipeID = errors.New("recipe id is required to open the detail screen")
)

// State is the active screen and the recipe it shows. SelectedRecipeID is
// non-empty exactly when Screen is Detail.
type State struct {
	Screen           Screen `json:"screen"`
	SelectedRecipeID string `json:"selected_recipe_id,omitempty"`
}

// Controller is the navigation state machine. There is no history: Back
// always lands on Listing.
type Controller struct {
	state *app.State

	mu      sync.RWMutex
	current State
}

// NewController starts on Listing and takes ownership of state.
func NewController(state *app.State) *Controller {
	return &Controller{
		state:   state,
		current: State{Screen: Listing},
	}
}

// App returns the application state owned by the controller.
func (c *Controller) App() *app.State {
	return c.state
}

// Current returns the navigation state.
func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// SelectRecipe opens Detail for id. Allowed from Listing and Profile.
func (c *Controller) SelectRecipe(id string) (State, error) {
	if id == "" {
		return c.Current(), ErrMissingRecipeID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.Screen != Listing && c.current.Screen != Profile {
		return c.current, fmt.Errorf("%w: select recipe from %s", ErrInvalidTransition, c.current.Screen)
	}
	c.current = State{Screen: Detail, SelectedRecipeID: id}
	return c.current, nil
}

// OpenProfile opens Profile. Allowed from Listing only.
func (c *Controller) OpenProfile() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.Screen != Listing {
		return c.current, fmt.Errorf("%w: open profile from %s", ErrInvalidTransition, c.current.Screen)
	}
	c.current = State{Screen: Profile}
	return c.current, nil
}

// Back returns to Listing from any screen and clears the selection.
func (c *Controller) Back() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = State{Screen: Listing}
	return c.current
}
