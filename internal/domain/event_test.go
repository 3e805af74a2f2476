package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	for _, c := range EventCategories {
		assert.True(t, c.Valid(), c)
	}
	for _, s := range EventStatuses {
		assert.True(t, s.Valid(), s)
	}

	assert.False(t, EventCategory("party").Valid())
	assert.False(t, EventCategory("").Valid())
	assert.False(t, EventStatus("archived").Valid())
	assert.False(t, EventStatus("").Valid())
}

func TestEventPatch_Empty(t *testing.T) {
	assert.True(t, EventPatch{}.Empty())

	title := "x"
	assert.False(t, EventPatch{Title: &title}.Empty())
}

func TestUser_Public_ExcludesPasswordHash(t *testing.T) {
	u := &User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "$2a$10$abcdef",
	}
	p := u.Public()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)
	assert.Equal(t, u.Name, p.Name)
}
