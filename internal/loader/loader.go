// Package loader reads the plain-text input file into a *catalog.Catalog,
// dispatching each line by its section header and applying the
// weight-multiplication conventions for penalties and preferences.
package loader

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hallwood-labs/coursesched/internal/catalog"
)

// Weights are the four user-supplied category multipliers. They are
// applied once, at load time, and never touched again by the search core.
type Weights struct {
	MinFilled int
	Pref      int
	Pair      int
	SecDiff   int
}

// Penalties are the four base penalty values as they appear on the CLI,
// before Weights is applied.
type Penalties struct {
	LecMin    int
	TutMin    int
	NotPaired int
	Section   int
}

var headers = map[string]string{
	"Lecture slots:":       "lecSlots",
	"Tutorial slots:":      "tutSlots",
	"Lectures:":            "lectures",
	"Tutorials:":           "tutorials",
	"Not compatible:":      "notCompatible",
	"Unwanted:":            "unwanted",
	"Preferences:":         "preferences",
	"Pair:":                "pair",
	"Partial assignments:": "partAssign",
}

// Load reads filename and returns a populated Catalog, with pen_* weighted
// by their matching category weight and every Preference.WeightedPen
// already multiplied by w.Pref.
func Load(filename string, w Weights, pen Penalties) (*catalog.Catalog, error) {
	log.Printf("reading input file %s", filename)
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	cat := catalog.New()
	cat.PenLecMin = pen.LecMin * w.MinFilled
	cat.PenTutMin = pen.TutMin * w.MinFilled
	cat.PenNotPaired = pen.NotPaired * w.Pair
	cat.PenSection = pen.Section * w.SecDiff

	scanner := bufio.NewScanner(fp)
	linenumber := 0
	section := ""
	for scanner.Scan() {
		linenumber++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, "LAB", "TUT")

		if attr, ok := headers[line]; ok {
			section = attr
			continue
		}

		if section == "" {
			return nil, fmt.Errorf("%q line %d: data line before any section header", filename, linenumber)
		}
		if err := parseLine(cat, section, line, w); err != nil {
			return nil, fmt.Errorf("%q line %d: %v", filename, linenumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Printf("loaded %d lecture slots, %d tutorial slots, %d lectures, %d tutorials",
		len(cat.LectureSlots), len(cat.TutorialSlots), len(cat.Lectures), len(cat.Tutorials))
	return cat, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}
