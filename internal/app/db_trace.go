package app

import "strings"

// Span attributes carry a single-line, length-capped copy of each statement;
// the repositories write multi-line SQL constants that would otherwise land
// in traces verbatim.
const queryAttrMaxLen = 512

func formatDBQueryForTrace(query string) string {
	flat := strings.Join(strings.Fields(query), " ")
	if len(flat) > queryAttrMaxLen {
		return flat[:queryAttrMaxLen] + "..."
	}
	return flat
}
