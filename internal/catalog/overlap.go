package catalog

// DayOverlap reports whether two sections meeting on day1 and day2
// logically conflict. Identical days always conflict. An MWF lecture on
// MO also conflicts with an F tutorial (and vice versa), since the
// Monday slot of an MWF pattern implies a Friday meeting too.
func DayOverlap(kind1 SectionKind, day1 string, kind2 SectionKind, day2 string) bool {
	if day1 == day2 {
		return true
	}
	if kind1 == Lecture && day1 == "MO" && kind2 == Tutorial && day2 == "FR" {
		return true
	}
	if kind1 == Tutorial && day1 == "FR" && kind2 == Lecture && day2 == "MO" {
		return true
	}
	return false
}

// TimeOverlap is an open-interval overlap test: touching intervals (one
// ending exactly when the other starts) do not overlap, which admits
// back-to-back scheduling.
func TimeOverlap(start1, end1, start2, end2 float64) bool {
	return !(end1 <= start2 || end2 <= start1)
}
