package arxiv

import "github.com/neoncitylights/arxiv/internal/taxonomy"

// Group identifies one of the broad subject groups the taxonomy sorts
// archives into. A category's group is always derived from its archive
// through the taxonomy table; it is never stored alongside the archive, so
// the two cannot disagree.
type Group string

const (
	// GroupCs is Computer Science.
	GroupCs Group = "cs"

	// GroupEcon is Economics.
	GroupEcon Group = "econ"

	// GroupEess is Electrical Engineering and Systems Science.
	GroupEess Group = "eess"

	// GroupMath is Mathematics.
	GroupMath Group = "math"

	// GroupPhysics is Physics. Most archives belong here, from astro-ph
	// through quant-ph.
	GroupPhysics Group = "physics"

	// GroupQBio is Quantitative Biology.
	GroupQBio Group = "q-bio"

	// GroupQFin is Quantitative Finance.
	GroupQFin Group = "q-fin"

	// GroupStat is Statistics.
	GroupStat Group = "stat"
)

// ParseGroup resolves a group identifier against the taxonomy table.
// Matching is exact-case; unknown identifiers return ErrUnknownGroup.
func ParseGroup(s string) (Group, error) {
	if _, ok := taxonomy.LookupGroup(s); !ok {
		return "", wrapErrorf(ErrUnknownGroup, "%q", s)
	}
	return Group(s), nil
}

// Groups returns every group in the taxonomy table, in table order.
func Groups() []Group {
	rows := taxonomy.Groups()
	out := make([]Group, len(rows))
	for i, row := range rows {
		out[i] = Group(row.ID)
	}
	return out
}

// Valid reports whether the group appears in the taxonomy table.
func (g Group) Valid() bool {
	_, ok := taxonomy.LookupGroup(string(g))
	return ok
}

// Name returns the group's human-readable name, such as "Quantitative
// Biology". It returns the empty string for values outside the taxonomy.
func (g Group) Name() string {
	row, ok := taxonomy.LookupGroup(string(g))
	if !ok {
		return ""
	}
	return row.Name
}

// String returns the group identifier.
func (g Group) String() string {
	return string(g)
}
