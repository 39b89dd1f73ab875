// Package profile holds the single local user profile of a session.
package profile

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"flavoria/internal/pkg/common"
)

// EmailDomain is appended to the derived profile address.
const EmailDomain = "flavoria.com"

// ErrEmptyDisplayName is returned when an update carries a blank name.
var ErrEmptyDisplayName = errors.New("display name must not be empty")

var whitespace = regexp.MustCompile(`\s`)

// Profile is the user's display name and avatar reference.
type Profile struct {
	DisplayName string `json:"display_name"`
	AvatarRef   string `json:"avatar_ref"`
}

// Email derives the address shown under the name.
func (p Profile) Email() string {
	return whitespace.ReplaceAllString(strings.ToLower(p.DisplayName), "") + "@" + EmailDomain
}

// Store holds the current profile. Safe for concurrent access.
type Store struct {
	mu      sync.RWMutex
	current Profile
}

// NewStore creates a store initialized with the default profile.
func NewStore(initial Profile) *Store {
	return &Store{current: initial}
}

// Update replaces the profile wholesale.
func (s *Store) Update(p Profile) error {
	if common.IsBlank(p.DisplayName) {
		return ErrEmptyDisplayName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	return nil
}

// Current returns the profile.
func (s *Store) Current() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
