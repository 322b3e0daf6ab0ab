package libdiff

import (
	"fmt"
	"strings"
)

// Stats counts the nodes of a result per classification. A replace pair
// counts once.
type Stats struct {
	Inserted  int `json:"inserted"`
	Deleted   int `json:"deleted"`
	Replaced  int `json:"replaced"`
	Unchanged int `json:"unchanged"`
}

func (r *Result) Stats() Stats {
	var s Stats
	for _, d := range r.Diffs {
		if d.Side == Right && (d.Type == Replace || d.Type == None) {
			continue
		}
		switch d.Type {
		case Insert:
			s.Inserted++
		case Delete:
			s.Deleted++
		case Replace:
			s.Replaced++
		case None:
			s.Unchanged++
		}
	}
	return s
}

func (s Stats) Total() int {
	return s.Inserted + s.Deleted + s.Replaced
}

func (s Stats) String() string {
	parts := []string{
		fmt.Sprintf("%d inserted", s.Inserted),
		fmt.Sprintf("%d deleted", s.Deleted),
		fmt.Sprintf("%d replaced", s.Replaced),
	}
	if s.Unchanged != 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	return strings.Join(parts, ", ")
}
