// Package taxonomy loads the embedded arXiv classification table and answers
// archive and group lookups for the public API.
//
// The table is generated offline from the official category taxonomy page and
// embedded into the binary. It is decoded once, on first use, into read-only
// lookup structures; after that point it is never mutated, so all functions in
// this package are safe for unsynchronized concurrent use.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var rawTable []byte

// Group is one row of the group table.
type Group struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Archive is one row of the archive table. Group holds the identifier of the
// group row the archive belongs to.
type Archive struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Group       string `yaml:"group"`
	HasSubjects bool   `yaml:"has_subjects"`
}

// table mirrors the top-level document structure of taxonomy.yaml.
type table struct {
	Groups   []Group   `yaml:"groups"`
	Archives []Archive `yaml:"archives"`
}

var (
	loadOnce sync.Once

	archivesByID map[string]Archive
	groupsByID   map[string]Group

	// archiveIDs holds every archive identifier sorted longest first so that
	// the first prefix hit during a scan is also the longest one.
	archiveIDs []string

	// orderedArchives and orderedGroups keep the table's row order for
	// enumeration.
	orderedArchives []Archive
	orderedGroups   []Group
)

// load decodes the embedded table. A decode failure means the module was built
// with a corrupted data file, which is unrecoverable, so it panics rather than
// making every lookup return an error.
func load() {
	var t table
	if err := yaml.Unmarshal(rawTable, &t); err != nil {
		panic(fmt.Sprintf("taxonomy: embedded table is invalid: %v", err))
	}
	if len(t.Archives) == 0 || len(t.Groups) == 0 {
		panic("taxonomy: embedded table is empty")
	}

	groupsByID = make(map[string]Group, len(t.Groups))
	for _, g := range t.Groups {
		groupsByID[g.ID] = g
	}

	archivesByID = make(map[string]Archive, len(t.Archives))
	archiveIDs = make([]string, 0, len(t.Archives))
	for _, a := range t.Archives {
		if _, ok := groupsByID[a.Group]; !ok {
			panic(fmt.Sprintf("taxonomy: archive %q references unknown group %q", a.ID, a.Group))
		}
		archivesByID[a.ID] = a
		archiveIDs = append(archiveIDs, a.ID)
	}

	sort.Slice(archiveIDs, func(i, j int) bool {
		if len(archiveIDs[i]) != len(archiveIDs[j]) {
			return len(archiveIDs[i]) > len(archiveIDs[j])
		}
		return archiveIDs[i] < archiveIDs[j]
	})

	orderedArchives = t.Archives
	orderedGroups = t.Groups
}

// Lookup returns the archive row for the exact identifier.
func Lookup(id string) (Archive, bool) {
	loadOnce.Do(load)
	a, ok := archivesByID[id]
	return a, ok
}

// LookupGroup returns the group row for the exact identifier.
func LookupGroup(id string) (Group, bool) {
	loadOnce.Do(load)
	g, ok := groupsByID[id]
	return g, ok
}

// LongestPrefix finds the longest archive identifier that is a prefix of s.
// The match is exact-case. It reports false when no archive prefixes s.
func LongestPrefix(s string) (Archive, bool) {
	loadOnce.Do(load)
	for _, id := range archiveIDs {
		if strings.HasPrefix(s, id) {
			return archivesByID[id], true
		}
	}
	return Archive{}, false
}

// Archives returns every archive row in table order. The result is a fresh
// slice; callers may modify it freely.
func Archives() []Archive {
	loadOnce.Do(load)
	out := make([]Archive, len(orderedArchives))
	copy(out, orderedArchives)
	return out
}

// Groups returns every group row in table order. The result is a fresh slice;
// callers may modify it freely.
func Groups() []Group {
	loadOnce.Do(load)
	out := make([]Group, len(orderedGroups))
	copy(out, orderedGroups)
	return out
}
