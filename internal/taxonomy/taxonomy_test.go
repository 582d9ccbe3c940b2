package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id          string
		name        string
		group       string
		hasSubjects bool
	}{
		{"astro-ph", "Astrophysics", "physics", true},
		{"cond-mat", "Condensed Matter", "physics", true},
		{"cs", "Computer Science", "cs", true},
		{"gr-qc", "General Relativity and Quantum Cosmology", "physics", false},
		{"hep-th", "High Energy Physics - Theory", "physics", false},
		{"math", "Mathematics", "math", true},
		{"math-ph", "Mathematical Physics", "physics", false},
		{"q-bio", "Quantitative Biology", "q-bio", true},
		{"stat", "Statistics", "stat", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := Lookup(tt.id)
			require.True(t, ok, "Lookup(%q) should find the archive", tt.id)
			assert.Equal(t, tt.name, a.Name)
			assert.Equal(t, tt.group, a.Group)
			assert.Equal(t, tt.hasSubjects, a.HasSubjects)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, id := range []string{"", "astro", "Astro-Ph", "biology", "hep"} {
		_, ok := Lookup(id)
		assert.False(t, ok, "Lookup(%q) should not find an archive", id)
	}
}

func TestLookupGroup(t *testing.T) {
	g, ok := LookupGroup("physics")
	require.True(t, ok)
	assert.Equal(t, "Physics", g.Name)

	_, ok = LookupGroup("grp_physics")
	assert.False(t, ok, "group identifiers do not carry a grp_ prefix")
}

func TestLongestPrefix(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		matched bool
	}{
		// math-ph must win over its shorter sibling math.
		{"math-ph.MP", "math-ph", true},
		{"math.AG", "math", true},
		{"astro-ph.HE", "astro-ph", true},
		{"hep-th", "hep-th", true},
		{"nucl-excess", "nucl-ex", true},
		{"quantum", "", false},
		{"", "", false},
		{"MATH.AG", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, ok := LongestPrefix(tt.in)
			require.Equal(t, tt.matched, ok, "LongestPrefix(%q) match", tt.in)
			if tt.matched {
				assert.Equal(t, tt.want, a.ID)
			}
		})
	}
}

func TestArchives(t *testing.T) {
	all := Archives()
	require.Len(t, all, 20)

	// Every archive must resolve back through Lookup and reference a known group.
	for _, a := range all {
		got, ok := Lookup(a.ID)
		require.True(t, ok, "archive %q should round-trip through Lookup", a.ID)
		assert.Equal(t, a, got)

		_, ok = LookupGroup(a.Group)
		assert.True(t, ok, "archive %q references group %q", a.ID, a.Group)
	}
}

func TestGroups(t *testing.T) {
	all := Groups()
	require.Len(t, all, 8)

	seen := make(map[string]bool, len(all))
	for _, g := range all {
		assert.NotEmpty(t, g.Name)
		assert.False(t, seen[g.ID], "group %q should appear once", g.ID)
		seen[g.ID] = true
	}
}
