package arxiv_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/neoncitylights/arxiv"
)

// ExampleParseArticleID demonstrates parsing a modern-scheme article
// identifier into its fields.
func ExampleParseArticleID() {
	id, err := arxiv.ParseArticleID("arXiv:9912.12345v2")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Year:", id.Year)
	fmt.Println("Month:", id.Month)
	fmt.Println("Number:", id.Number)
	fmt.Println("Version:", id.Version)
	fmt.Println("Display:", id)

	// Output:
	// Year: 2099
	// Month: 12
	// Number: 12345
	// Version: v2
	// Display: arXiv:9912.12345v2
}

// ExampleParseArticleIDWithOptions demonstrates accepting the bare identifier
// form that appears in metadata feeds, without the "arXiv:" label.
func ExampleParseArticleIDWithOptions() {
	id, err := arxiv.ParseArticleIDWithOptions("0706.0001", &arxiv.ParseOptions{
		OptionalPrefix: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(id)

	// Output:
	// arXiv:0706.0001
}

// ExampleParseArticleID_errors demonstrates telling failure modes apart with
// errors.Is.
func ExampleParseArticleID_errors() {
	inputs := []string{
		"arXiv:9912.12345v2",
		"9912.12345v2",
		"arXiv:9913.12345",
		"arXiv:0706.0001v0",
	}

	for _, raw := range inputs {
		_, err := arxiv.ParseArticleID(raw)
		switch {
		case err == nil:
			fmt.Printf("%s: ok\n", raw)
		case errors.Is(err, arxiv.ErrExpectedPrefix):
			fmt.Printf("%s: missing prefix\n", raw)
		case errors.Is(err, arxiv.ErrInvalidMonth):
			fmt.Printf("%s: bad month\n", raw)
		case errors.Is(err, arxiv.ErrExpectedVersionNumber):
			fmt.Printf("%s: bad version\n", raw)
		}
	}

	// Output:
	// arXiv:9912.12345v2: ok
	// 9912.12345v2: missing prefix
	// arXiv:9913.12345: bad month
	// arXiv:0706.0001v0: bad version
}

// ExampleParseOldArticleID demonstrates parsing an old-scheme identifier,
// including the category embedded before the slash.
func ExampleParseOldArticleID() {
	id, err := arxiv.ParseOldArticleID("arXiv:math.GT/0309136")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Archive:", id.Archive)
	fmt.Println("Subject:", id.Subject)
	fmt.Println("Year:", id.Year)
	fmt.Println("Month:", id.Month)
	fmt.Println("Number:", id.Number)
	fmt.Println("Display:", id)

	// Output:
	// Archive: math
	// Subject: GT
	// Year: 2003
	// Month: 9
	// Number: 136
	// Display: arXiv:math.GT/0309136
}

// ExampleParseCategoryID demonstrates category parsing, including the
// longest-prefix archive match that keeps "math-ph" from being read as the
// "math" archive.
func ExampleParseCategoryID() {
	for _, raw := range []string{"astro-ph.HE", "math.AG", "math-ph.MP"} {
		cat, err := arxiv.ParseCategoryID(raw)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: archive=%s subject=%s group=%s\n",
			cat, cat.Archive, cat.Subject, cat.Group())
	}

	// Output:
	// astro-ph.HE: archive=astro-ph subject=HE group=physics
	// math.AG: archive=math subject=AG group=math
	// math-ph.MP: archive=math-ph subject=MP group=physics
}

// ExampleParseStamp demonstrates parsing the provenance line printed along
// the side of an arXiv PDF.
func ExampleParseStamp() {
	stamp, err := arxiv.ParseStamp("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Identifier:", stamp.ID)
	fmt.Println("Category:", stamp.Category)
	fmt.Println("Group:", stamp.Category.Group().Name())
	fmt.Println("Submitted:", stamp.Submitted.Format("2006-01-02"))

	// Output:
	// Identifier: arXiv:0706.0001v1
	// Category: q-bio.CB
	// Group: Quantitative Biology
	// Submitted: 2007-06-01
}

// ExampleArticleID_AbsURL demonstrates building arxiv.org links from a parsed
// identifier.
func ExampleArticleID_AbsURL() {
	id, err := arxiv.ParseArticleID("arXiv:2011.00001v2")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(id.AbsURL())
	fmt.Println(id.PDFURL())
	fmt.Println(id.SourceURL())

	// Output:
	// https://arxiv.org/abs/2011.00001v2
	// https://arxiv.org/pdf/2011.00001v2.pdf
	// https://arxiv.org/e-print/2011.00001v2
}

// ExampleArchives demonstrates walking the embedded taxonomy table.
func ExampleArchives() {
	archives := arxiv.Archives()
	fmt.Println("archives:", len(archives))
	for _, a := range archives[:3] {
		fmt.Printf("%s: %s (%s)\n", a, a.Name(), a.Group())
	}

	// Output:
	// archives: 20
	// astro-ph: Astrophysics (physics)
	// cond-mat: Condensed Matter (physics)
	// cs: Computer Science (cs)
}
