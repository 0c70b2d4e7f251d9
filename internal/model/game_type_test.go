package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameTypeValid(t *testing.T) {
	assert.True(t, GameShirt.Valid())
	assert.True(t, GameGoals.Valid())
	assert.False(t, GameType("chess").Valid())
	assert.False(t, GameType("").Valid())
}

func TestClubGameTypesFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, ClubGameTypes("general"), ClubGameTypes("unknown-club"))
}

func TestIsValidGameType(t *testing.T) {
	assert.True(t, IsValidGameType("futcuervo", GameGoals))
	assert.False(t, IsValidGameType("barcelona", GameGoals))
	assert.False(t, IsValidGameType("general", GameCareer))
	assert.True(t, IsValidGameType("general", GameShirt))
}

func TestClubKeyOf(t *testing.T) {
	assert.Equal(t, "__GLOBAL__", ClubKeyOf(nil))
}
