package domain

// PositionGroup is the coarse role bucket a fine-grained position maps into.
type PositionGroup string

const (
	GroupGoalkeeper PositionGroup = "GK"
	GroupDefender   PositionGroup = "DEF"
	GroupMidfielder PositionGroup = "MID"
	GroupAttacker   PositionGroup = "ATT"
	GroupUnknown    PositionGroup = "UNK"

	// GroupAll is the filter sentinel meaning "no position filter".
	GroupAll = "ALL"
)

var roleGroups = map[string]PositionGroup{
	"Goalkeeper":         GroupGoalkeeper,
	"Centre-Back":        GroupDefender,
	"Left-Back":          GroupDefender,
	"Right-Back":         GroupDefender,
	"Defensive Midfield": GroupMidfielder,
	"Central Midfield":   GroupMidfielder,
	"Attacking Midfield": GroupMidfielder,
	"Left Midfield":      GroupMidfielder,
	"Right Midfield":     GroupMidfielder,
	"Left Winger":        GroupAttacker,
	"Right Winger":       GroupAttacker,
	"Centre-Forward":     GroupAttacker,
	"Second Striker":     GroupAttacker,
}

// GroupForPosition maps a position label to its group. Unmapped or empty
// labels fall back to UNK.
func GroupForPosition(position string) PositionGroup {
	if group, ok := roleGroups[position]; ok {
		return group
	}
	return GroupUnknown
}

type PositionOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PositionOptions returns the fixed catalog of position-group filter options.
func PositionOptions() []PositionOption {
	return []PositionOption{
		{ID: GroupAll, Name: "All Positions"},
		{ID: string(GroupGoalkeeper), Name: "Goalkeeper"},
		{ID: string(GroupDefender), Name: "Defenders"},
		{ID: string(GroupMidfielder), Name: "Midfielders"},
		{ID: string(GroupAttacker), Name: "Attackers"},
	}
}
