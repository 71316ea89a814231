package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamByID(t *testing.T) {
	team, ok := TeamByID(10)
	require.True(t, ok)
	assert.Equal(t, "TOR", team.Abbreviation)

	_, ok = TeamByID(11)
	assert.False(t, ok)
}

func TestTeamByAbbreviation(t *testing.T) {
	team := TeamByAbbreviation("BOS")
	assert.Equal(t, 6, team.ID)
	assert.False(t, team.IsUnknown())

	unknown := TeamByAbbreviation("XYZ")
	assert.True(t, unknown.IsUnknown())
	assert.Equal(t, TeamUnknown, unknown)
}

func TestTeamTableEntry(t *testing.T) {
	team := Team{Abbreviation: "BOS", LogoURL: "https://example.com/bos.png"}
	assert.Equal(t, "![BOS](https://example.com/bos.png) BOS", team.TableEntry())
}
