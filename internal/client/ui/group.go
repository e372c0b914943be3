package ui

import "github.com/atinyakov/CmdKeeper/internal/models"

// Group is one category bucket with its commands in insertion order.
type Group struct {
	Category string
	Commands []models.Command
}

// GroupByCategory buckets a flat command list by category in a single linear
// pass. Categories appear in first-seen order; within a category, command
// order is preserved. Matching is a case-sensitive exact string comparison.
func GroupByCategory(commands []models.Command) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, cmd := range commands {
		i, ok := index[cmd.Category]
		if !ok {
			i = len(groups)
			index[cmd.Category] = i
			groups = append(groups, Group{Category: cmd.Category})
		}
		groups[i].Commands = append(groups[i].Commands, cmd)
	}
	return groups
}
