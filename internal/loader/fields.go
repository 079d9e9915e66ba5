package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hallwood-labs/coursesched/internal/catalog"
)

// splitFields splits a data line into comma-separated fields, each
// whitespace-trimmed.
func splitFields(line string) []string {
	raw := strings.Split(line, ",")
	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// parseBool accepts "1", "true", "yes" case-insensitively as true, and
// everything else as false.
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func wantFields(fields []string, n int, what string) error {
	if len(fields) < n {
		return fmt.Errorf("%s: expected %d fields, got %d", what, n, len(fields))
	}
	return nil
}

func parseLine(cat *catalog.Catalog, section, line string, w Weights) error {
	fields := splitFields(line)
	switch section {
	case "lecSlots":
		return parseSlot(cat, fields, catalog.LectureSlotKind)
	case "tutSlots":
		return parseSlot(cat, fields, catalog.TutorialSlotKind)
	case "lectures":
		return parseLecture(cat, fields)
	case "tutorials":
		return parseTutorial(cat, fields)
	case "notCompatible":
		return parseNotCompatible(cat, fields)
	case "unwanted":
		return parseUnwanted(cat, fields)
	case "preferences":
		return parsePreference(cat, fields, w)
	case "pair":
		return parsePair(cat, fields)
	case "partAssign":
		return parsePartAssign(cat, fields)
	default:
		return fmt.Errorf("unknown section %q", section)
	}
}

// parseSlot reads "day, time, max_cap, min_cap, alt_max", the shared
// BaseSlot positional signature.
func parseSlot(cat *catalog.Catalog, fields []string, kind catalog.SlotKind) error {
	if err := wantFields(fields, 5, "slot"); err != nil {
		return err
	}
	maxCap, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("max_cap: %w", err)
	}
	minCap, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("min_cap: %w", err)
	}
	altMax, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("alt_max: %w", err)
	}
	slot, err := catalog.NewSlot(fields[0], fields[1], kind, maxCap, minCap, altMax)
	if err != nil {
		return err
	}
	if kind == catalog.LectureSlotKind {
		cat.LectureSlots = append(cat.LectureSlots, slot)
	} else {
		cat.TutorialSlots = append(cat.TutorialSlots, slot)
	}
	return nil
}

// parseLecture and parseTutorial read "identifier, alrequired", the
// shared LecTut positional signature.
func parseLecture(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 2, "lecture"); err != nil {
		return err
	}
	sec, err := catalog.NewLecture(fields[0], parseBool(fields[1]))
	if err != nil {
		return err
	}
	cat.Lectures = append(cat.Lectures, sec)
	return nil
}

func parseTutorial(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 2, "tutorial"); err != nil {
		return err
	}
	sec, err := catalog.NewTutorial(fields[0], parseBool(fields[1]))
	if err != nil {
		return err
	}
	cat.Tutorials = append(cat.Tutorials, sec)
	return nil
}

func parseNotCompatible(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 2, "not compatible"); err != nil {
		return err
	}
	cat.NotCompatible = append(cat.NotCompatible, catalog.UnorderedPair{A: fields[0], B: fields[1]})
	return nil
}

// parseUnwanted reads "identifier, day, time".
func parseUnwanted(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 3, "unwanted"); err != nil {
		return err
	}
	start, err := catalog.ParseClock(fields[2])
	if err != nil {
		return err
	}
	cat.Unwanted[fields[0]] = append(cat.Unwanted[fields[0]], catalog.DayTime{Day: fields[1], Time: fields[2], StartTime: start})
	return nil
}

// parsePreference reads "day, time, identifier, pref_val" — note the
// identifier comes third, not first.
func parsePreference(cat *catalog.Catalog, fields []string, w Weights) error {
	if err := wantFields(fields, 4, "preference"); err != nil {
		return err
	}
	start, err := catalog.ParseClock(fields[1])
	if err != nil {
		return err
	}
	prefVal, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("pref_val: %w", err)
	}
	identifier := fields[2]
	cat.Preferences[identifier] = append(cat.Preferences[identifier], catalog.Preference{
		Day:         fields[0],
		Time:        fields[1],
		StartTime:   start,
		WeightedPen: prefVal * w.Pref,
	})
	return nil
}

func parsePair(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 2, "pair"); err != nil {
		return err
	}
	cat.Pair = append(cat.Pair, catalog.UnorderedPair{A: fields[0], B: fields[1]})
	return nil
}

// parsePartAssign reads "identifier, day, time".
func parsePartAssign(cat *catalog.Catalog, fields []string) error {
	if err := wantFields(fields, 3, "partial assignment"); err != nil {
		return err
	}
	start, err := catalog.ParseClock(fields[2])
	if err != nil {
		return err
	}
	cat.SetPartAssign(catalog.PartialAssignment{Identifier: fields[0], Day: fields[1], Time: fields[2], StartTime: start})
	return nil
}
