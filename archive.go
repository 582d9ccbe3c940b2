package arxiv

import "github.com/neoncitylights/arxiv/internal/taxonomy"

// Archive identifies one of arXiv's top-level archives, the segment before
// the dot in a category such as "astro-ph.HE". The set of valid archives is
// closed and defined by the official category taxonomy; validity, naming, and
// group membership are all answered from the embedded taxonomy table rather
// than hard-coded here.
type Archive string

const (
	// ArchiveAstroPh is Astrophysics.
	ArchiveAstroPh Archive = "astro-ph"

	// ArchiveCondMat is Condensed Matter.
	ArchiveCondMat Archive = "cond-mat"

	// ArchiveCs is Computer Science.
	ArchiveCs Archive = "cs"

	// ArchiveEcon is Economics.
	ArchiveEcon Archive = "econ"

	// ArchiveEess is Electrical Engineering and Systems Science.
	ArchiveEess Archive = "eess"

	// ArchiveGrQc is General Relativity and Quantum Cosmology.
	ArchiveGrQc Archive = "gr-qc"

	// ArchiveHepEx is High Energy Physics - Experiment.
	ArchiveHepEx Archive = "hep-ex"

	// ArchiveHepLat is High Energy Physics - Lattice.
	ArchiveHepLat Archive = "hep-lat"

	// ArchiveHepPh is High Energy Physics - Phenomenology.
	ArchiveHepPh Archive = "hep-ph"

	// ArchiveHepTh is High Energy Physics - Theory.
	ArchiveHepTh Archive = "hep-th"

	// ArchiveMathPh is Mathematical Physics.
	ArchiveMathPh Archive = "math-ph"

	// ArchiveMath is Mathematics.
	ArchiveMath Archive = "math"

	// ArchiveNlin is Nonlinear Sciences.
	ArchiveNlin Archive = "nlin"

	// ArchiveNuclEx is Nuclear Experiment.
	ArchiveNuclEx Archive = "nucl-ex"

	// ArchiveNuclTh is Nuclear Theory.
	ArchiveNuclTh Archive = "nucl-th"

	// ArchivePhysics is Physics.
	ArchivePhysics Archive = "physics"

	// ArchiveQBio is Quantitative Biology.
	ArchiveQBio Archive = "q-bio"

	// ArchiveQFin is Quantitative Finance.
	ArchiveQFin Archive = "q-fin"

	// ArchiveQuantPh is Quantum Physics.
	ArchiveQuantPh Archive = "quant-ph"

	// ArchiveStat is Statistics.
	ArchiveStat Archive = "stat"
)

// ParseArchive resolves an archive identifier against the taxonomy table.
// Matching is exact-case; unknown identifiers return ErrUnknownArchive.
func ParseArchive(s string) (Archive, error) {
	if _, ok := taxonomy.Lookup(s); !ok {
		return "", wrapErrorf(ErrUnknownArchive, "%q", s)
	}
	return Archive(s), nil
}

// Archives returns every archive in the taxonomy table, in table order.
func Archives() []Archive {
	rows := taxonomy.Archives()
	out := make([]Archive, len(rows))
	for i, row := range rows {
		out[i] = Archive(row.ID)
	}
	return out
}

// Valid reports whether the archive appears in the taxonomy table.
func (a Archive) Valid() bool {
	_, ok := taxonomy.Lookup(string(a))
	return ok
}

// Name returns the archive's human-readable name, such as "Astrophysics".
// It returns the empty string for values outside the taxonomy.
func (a Archive) Name() string {
	row, ok := taxonomy.Lookup(string(a))
	if !ok {
		return ""
	}
	return row.Name
}

// Group returns the group the archive belongs to, such as GroupPhysics for
// ArchiveAstroPh. It returns the zero Group for values outside the taxonomy.
func (a Archive) Group() Group {
	row, ok := taxonomy.Lookup(string(a))
	if !ok {
		return ""
	}
	return Group(row.Group)
}

// HasSubjects reports whether the archive subdivides into subject classes.
// Archives like hep-th do not: the archive identifier alone is a complete
// category on arxiv.org.
func (a Archive) HasSubjects() bool {
	row, ok := taxonomy.Lookup(string(a))
	return ok && row.HasSubjects
}

// String returns the archive identifier as it appears in categories.
func (a Archive) String() string {
	return string(a)
}
