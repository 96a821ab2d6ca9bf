package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom/football-dashboard/internal/dataset"
	"github.com/dom/football-dashboard/internal/domain"
)

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.csv")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	content := "playerId,name,position\n7,Test Player,Goalkeeper\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := dataset.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	row, ok := table.ByID(7)
	require.True(t, ok)
	assert.Equal(t, domain.GroupGoalkeeper, row.PositionGroup)
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := dataset.Read(strings.NewReader("playerId,name\n"))

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.True(t, table.HasColumn("name"))
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := dataset.Read(strings.NewReader(""))

	require.Error(t, err)
}

func TestRead_SkipsRowsWithoutPlayerID(t *testing.T) {
	table, err := dataset.Read(strings.NewReader(
		"playerId,name\n1,Keeper\n,Nameless\nnot-an-id,Bogus\n2,Striker\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestRead_DuplicateIDLastWins(t *testing.T) {
	table, err := dataset.Read(strings.NewReader(
		"playerId,name\n5,First\n5,Second\n"))

	require.NoError(t, err)
	row, ok := table.ByID(5)
	require.True(t, ok)
	name, _ := row.Text(dataset.ColName)
	assert.Equal(t, "Second", name)
}

func TestRead_MalformedNumericBecomesMissing(t *testing.T) {
	table, err := dataset.Read(strings.NewReader(
		"playerId,age,rating\n1,abc,NaN\n"))

	require.NoError(t, err)
	row, ok := table.ByID(1)
	require.True(t, ok)

	assert.Nil(t, row.FloatPtr(dataset.ColAge))
	assert.Nil(t, row.FloatPtr(dataset.ColRating))
}

func TestRead_IntColumnsWrittenAsFloats(t *testing.T) {
	// The cleaning pipeline writes nullable integer columns as floats.
	table, err := dataset.Read(strings.NewReader(
		"playerId,appearances\n27.0,31.0\n"))

	require.NoError(t, err)
	row, ok := table.ByID(27)
	require.True(t, ok)

	v, ok := row.Int(dataset.ColAppearances)
	require.True(t, ok)
	assert.Equal(t, 31, v)
}

func TestRead_PositionGroups(t *testing.T) {
	tests := []struct {
		position string
		expected domain.PositionGroup
	}{
		{"Goalkeeper", domain.GroupGoalkeeper},
		{"Centre-Back", domain.GroupDefender},
		{"Right-Back", domain.GroupDefender},
		{"Defensive Midfield", domain.GroupMidfielder},
		{"Attacking Midfield", domain.GroupMidfielder},
		{"Left Winger", domain.GroupAttacker},
		{"Centre-Forward", domain.GroupAttacker},
		{"Sweeper", domain.GroupUnknown},
		{"", domain.GroupUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			table, err := dataset.Read(strings.NewReader(
				"playerId,position\n1," + tt.position + "\n"))
			require.NoError(t, err)

			row, ok := table.ByID(1)
			require.True(t, ok)
			assert.Equal(t, tt.expected, row.PositionGroup)
		})
	}
}

func TestRow_PrimaryTeamTruncation(t *testing.T) {
	table, err := dataset.Read(strings.NewReader(
		"playerId,teamName\n1,Club A ~ Loan Club\n2,Club B\n3,\n"))
	require.NoError(t, err)

	r1, _ := table.ByID(1)
	team, ok := r1.PrimaryTeam()
	require.True(t, ok)
	assert.Equal(t, "Club A", team)

	r2, _ := table.ByID(2)
	team, ok = r2.PrimaryTeam()
	require.True(t, ok)
	assert.Equal(t, "Club B", team)

	r3, _ := table.ByID(3)
	_, ok = r3.PrimaryTeam()
	assert.False(t, ok)
}

func TestRow_DisplayNameFallback(t *testing.T) {
	table, err := dataset.Read(strings.NewReader(
		"playerId,name,player_name\n1,Primary,Alt\n2,,Alt Only\n3,,\n"))
	require.NoError(t, err)

	r1, _ := table.ByID(1)
	assert.Equal(t, "Primary", r1.DisplayName())

	r2, _ := table.ByID(2)
	assert.Equal(t, "Alt Only", r2.DisplayName())

	r3, _ := table.ByID(3)
	assert.Equal(t, "Unknown", r3.DisplayName())
}
