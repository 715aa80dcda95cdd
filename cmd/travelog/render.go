package main

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travelog/internal/scan"
)

var kindTitle = cases.Title(language.English)

// renderConflicts formats duplicate-stem diagnostics for terminal output.
func renderConflicts(conflicts []scan.Conflict) string {
	rows := make([][]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		dropped := make([]string, 0, len(conflict.Dropped))
		for _, path := range conflict.Dropped {
			dropped = append(dropped, baseName(path))
		}
		rows = append(rows, []string{
			conflict.Stem,
			kindTitle.String(conflict.Kind.String()),
			baseName(conflict.Kept),
			strings.Join(dropped, ", "),
			strconv.Itoa(len(conflict.Dropped)),
		})
	}
	return renderTable(
		[]string{"Stem", "Kind", "Kept", "Dropped", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
