// Package output formats a search.Result for human and machine
// consumption. Both printers are pure post-processors: neither touches
// the catalog or participates in search correctness.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hallwood-labs/coursesched/internal/search"
)

// PrintSchedule writes a column-aligned table of every placed section,
// sorted by identifier for a stable, diffable report, followed by the
// scalar eval.
func PrintSchedule(w io.Writer, result search.Result) {
	if !result.Found {
		fmt.Fprintln(w, "no solution found")
		return
	}

	ids := sortedIdentifiers(result.Placements)
	idLen := 0
	for _, id := range ids {
		if len(id) > idLen {
			idLen = len(id)
		}
	}

	for _, id := range ids {
		p := result.Placements[id]
		fmt.Fprintf(w, "%-*s  %-3s %s\n", idLen, id, p.Day, p.Time)
	}
	fmt.Fprintf(w, "\neval: %d\n", result.Eval)
}

// scheduleDocument is the on-the-wire JSON shape: a sorted slice rather
// than a bare map, so two runs over the same result produce byte-identical
// output regardless of Go's randomized map iteration.
type scheduleDocument struct {
	Eval       int                 `json:"eval"`
	Found      bool                `json:"found"`
	Placements []placementDocument `json:"placements"`
}

type placementDocument struct {
	Identifier string `json:"identifier"`
	Day        string `json:"day"`
	Time       string `json:"time"`
}

// WriteJSON encodes result deterministically: placements are sorted by
// identifier before marshalling, with a readable, two-space-indented
// document.
func WriteJSON(w io.Writer, result search.Result) error {
	doc := scheduleDocument{Eval: result.Eval, Found: result.Found}
	for _, id := range sortedIdentifiers(result.Placements) {
		p := result.Placements[id]
		doc.Placements = append(doc.Placements, placementDocument{Identifier: id, Day: p.Day, Time: p.Time})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func sortedIdentifiers(placements map[string]search.Placement) []string {
	ids := make([]string, 0, len(placements))
	for id := range placements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
