package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateReplacesWholesale(t *testing.T) {
	s := NewStore(Profile{DisplayName: "Salwa", AvatarRef: "assets/images/salwa.jpeg"})

	err := s.Update(Profile{DisplayName: "Sal"})
	assert.NoError(t, err)
	assert.Equal(t, Profile{DisplayName: "Sal"}, s.Current())
}

func TestUpdateRejectsBlankName(t *testing.T) {
	initial := Profile{DisplayName: "Salwa", AvatarRef: "a.jpeg"}
	s := NewStore(initial)

	assert.ErrorIs(t, s.Update(Profile{DisplayName: " \t"}), ErrEmptyDisplayName)
	assert.Equal(t, initial, s.Current())
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "salwaputri@flavoria.com", Profile{DisplayName: "Salwa Putri"}.Email())
	assert.Equal(t, "sal@flavoria.com", Profile{DisplayName: "SAL"}.Email())
}
