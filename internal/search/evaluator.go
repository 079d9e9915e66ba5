package search

import "github.com/hallwood-labs/coursesched/internal/catalog"

// FailsHard reports whether placing sec in slot, given the sections
// already present in partial, violates any hard constraint. It never
// mutates its arguments.
func FailsHard(cat *catalog.Catalog, sec *catalog.Section, slot *catalog.Slot, partial map[string]*Assignment) bool {
	if sec.IsEvening && slot.StartTime < eveningStart {
		return true
	}
	if !slot.HasCapacity(sec.ALRequired) {
		return true
	}
	if failsLevel500Overlap(sec, slot, partial) {
		return true
	}
	if failsTutorialParentOverlap(sec, slot, partial) {
		return true
	}
	if failsNotCompatible(cat, sec, slot, partial) {
		return true
	}
	if failsUnwanted(cat, sec, slot) {
		return true
	}
	return false
}

const (
	eveningStart = 18.0
	level500     = 5
)

func overlaps(a *catalog.Section, aSlot *catalog.Slot, b *catalog.Section, bSlot *catalog.Slot) bool {
	return catalog.DayOverlap(a.Kind, aSlot.Day, b.Kind, bSlot.Day) &&
		catalog.TimeOverlap(aSlot.StartTime, aSlot.EndTime, bSlot.StartTime, bSlot.EndTime)
}

// failsLevel500Overlap enforces that level-500 lectures never time-overlap
// each other.
func failsLevel500Overlap(sec *catalog.Section, slot *catalog.Slot, partial map[string]*Assignment) bool {
	if !sec.IsLecture() || sec.Level != level500 {
		return false
	}
	for _, a := range partial {
		if a.Section.IsLecture() && a.Section.Level == level500 && overlaps(a.Section, a.Slot, sec, slot) {
			return true
		}
	}
	return false
}

// failsTutorialParentOverlap enforces that a tutorial never overlaps its
// parent lecture, checked from either direction depending on which one is
// being placed now.
func failsTutorialParentOverlap(sec *catalog.Section, slot *catalog.Slot, partial map[string]*Assignment) bool {
	if sec.IsTutorial() {
		if parent, ok := partial[sec.ParentLectureID]; ok && overlaps(parent.Section, parent.Slot, sec, slot) {
			return true
		}
		return false
	}
	for _, a := range partial {
		if a.Section.IsTutorial() && a.Section.ParentLectureID == sec.Identifier && overlaps(a.Section, a.Slot, sec, slot) {
			return true
		}
	}
	return false
}

func failsNotCompatible(cat *catalog.Catalog, sec *catalog.Section, slot *catalog.Slot, partial map[string]*Assignment) bool {
	for _, nc := range cat.NotCompatible {
		other, ok := nc.Other(sec.Identifier)
		if !ok {
			continue
		}
		a, placed := partial[other]
		if !placed {
			continue
		}
		if overlaps(a.Section, a.Slot, sec, slot) {
			return true
		}
	}
	return false
}

func failsUnwanted(cat *catalog.Catalog, sec *catalog.Section, slot *catalog.Slot) bool {
	for _, uw := range cat.Unwanted[sec.Identifier] {
		if uw.Day == slot.Day && uw.StartTime == slot.StartTime {
			return true
		}
	}
	return false
}

// DeltaSoft returns the incremental soft penalty of adding (sec, slot) to
// partial. Pair penalties are charged once at leaf evaluation (see Eval),
// not here.
func DeltaSoft(cat *catalog.Catalog, sec *catalog.Section, slot *catalog.Slot, partial map[string]*Assignment) int {
	penalty := 0
	for _, pref := range cat.Preferences[sec.Identifier] {
		if pref.Day != slot.Day || pref.StartTime != slot.StartTime {
			penalty += pref.WeightedPen
		}
	}
	if !sec.IsLecture() {
		return penalty
	}
	for _, a := range partial {
		if !a.Section.IsLecture() {
			continue
		}
		if a.Section.CourseID == sec.CourseID &&
			catalog.DayOverlap(a.Section.Kind, a.Slot.Day, sec.Kind, slot.Day) &&
			a.Slot.StartTime == slot.StartTime {
			penalty += cat.PenSection
		}
	}
	return penalty
}
