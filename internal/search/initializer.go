package search

import "github.com/hallwood-labs/coursesched/internal/catalog"

const (
	blockedSlotDay  = "TU"
	blockedSlotTime = "11:00"
)

// specialSection names a course whose presence triggers injection of a
// synthetic shadow tutorial, forced to TU 18:00 and made incompatible
// with every section of the triggering course.
type specialSection struct {
	triggerCourseID   string
	injectedTutorial  string
	injectedDay       string
	injectedStartTime float64
	injectedTime      string
}

var specialSections = []specialSection{
	{triggerCourseID: "CPSC 351", injectedTutorial: "CPSC 851 TUT 01", injectedDay: "TU", injectedTime: "18:00", injectedStartTime: 18.0},
	{triggerCourseID: "CPSC 413", injectedTutorial: "CPSC 913 TUT 01", injectedDay: "TU", injectedTime: "18:00", injectedStartTime: 18.0},
}

// initialize prepares the catalog for search: it removes the
// university-wide meeting block, injects graduate-shadow tutorials,
// applies forced placements, and buckets the remaining sections into the
// expansion generator's pools. It mutates the Searcher's catalog in
// place; a Catalog must not be shared between two Searcher instances.
func (s *Searcher) initialize() error {
	s.removeBlockedSlot()
	s.injectSpecialSections()

	if err := s.applyPartialAssignments(); err != nil {
		return err
	}

	s.bucketRemainingSections()
	s.totalSections = s.cat.TotalSectionCount()
	return nil
}

func (s *Searcher) removeBlockedSlot() {
	kept := s.cat.LectureSlots[:0:0]
	for _, slot := range s.cat.LectureSlots {
		if slot.Day == blockedSlotDay && slot.Time == blockedSlotTime {
			continue
		}
		kept = append(kept, slot)
	}
	s.cat.LectureSlots = kept
	s.openLectureSlots = append([]*catalog.Slot{}, s.cat.LectureSlots...)
	s.openTutorialSlots = append([]*catalog.Slot{}, s.cat.TutorialSlots...)
}

func (s *Searcher) injectSpecialSections() {
	for _, special := range specialSections {
		triggered := false
		for _, lec := range s.cat.Lectures {
			if lec.CourseID == special.triggerCourseID {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}
		if _, exists := s.cat.FindSection(special.injectedTutorial); exists {
			continue
		}

		tut, err := catalog.NewTutorial(special.injectedTutorial, false)
		if err != nil {
			// injected identifiers are constants under our control
			panic(err)
		}
		s.cat.Tutorials = append(s.cat.Tutorials, tut)
		s.cat.SetPartAssign(catalog.PartialAssignment{
			Identifier: special.injectedTutorial,
			Day:        special.injectedDay,
			Time:       special.injectedTime,
			StartTime:  special.injectedStartTime,
		})

		for _, lec := range s.cat.Lectures {
			if lec.CourseID == special.triggerCourseID {
				s.cat.NotCompatible = append(s.cat.NotCompatible, catalog.UnorderedPair{A: lec.Identifier, B: special.injectedTutorial})
			}
		}
		for _, tut := range s.cat.Tutorials {
			if tut.ParentLectureID != "" && hasLectureWithCourseID(s.cat, tut.ParentLectureID, special.triggerCourseID) {
				s.cat.NotCompatible = append(s.cat.NotCompatible, catalog.UnorderedPair{A: tut.Identifier, B: special.injectedTutorial})
			}
		}
	}
}

func hasLectureWithCourseID(cat *catalog.Catalog, lectureID, courseID string) bool {
	lec, ok := cat.FindSection(lectureID)
	return ok && lec.IsLecture() && lec.CourseID == courseID
}

func (s *Searcher) applyPartialAssignments() error {
	for _, pa := range s.cat.PartAssign {
		sec, ok := s.cat.FindSection(pa.Identifier)
		if !ok {
			return &InitError{Identifier: pa.Identifier, Reason: "no such section exists in the catalog"}
		}

		openSlots := s.openLectureSlots
		if sec.IsTutorial() {
			openSlots = s.openTutorialSlots
		}
		var slot *catalog.Slot
		for _, candidate := range openSlots {
			if candidate.Day == pa.Day && candidate.Time == pa.Time {
				slot = candidate
				break
			}
		}
		if slot == nil {
			return &InitError{Identifier: pa.Identifier, Reason: "no matching slot exists for the forced (day, time)"}
		}

		if FailsHard(s.cat, sec, slot, s.partial) {
			return &InitError{Identifier: pa.Identifier, Reason: "forced placement fails a hard constraint"}
		}

		slot.CurrentCap++
		if sec.ALRequired {
			slot.CurrentAltCap++
		}
		delta := DeltaSoft(s.cat, sec, slot, s.partial)
		s.bounding += delta
		s.partial[sec.Identifier] = &Assignment{
			Section:     sec,
			Slot:        slot,
			Delta:       delta,
			CapAtAssign: slot.CurrentCap - 1,
		}
	}
	return nil
}

func (s *Searcher) bucketRemainingSections() {
	var alRequired, level500Lectures, evening, other []*catalog.Section
	for _, lec := range s.cat.Lectures {
		if _, placed := s.partial[lec.Identifier]; placed {
			continue
		}
		switch {
		case lec.ALRequired:
			alRequired = append(alRequired, lec)
		case lec.Level == level500:
			level500Lectures = append(level500Lectures, lec)
		case lec.IsEvening:
			evening = append(evening, lec)
		default:
			other = append(other, lec)
		}
	}

	var tutorials []*catalog.Section
	for _, tut := range s.cat.Tutorials {
		if _, placed := s.partial[tut.Identifier]; placed {
			continue
		}
		tutorials = append(tutorials, tut)
	}

	s.alRequiredPool = newOrderedPool(alRequired)
	s.level500Pool = newOrderedPool(level500Lectures)
	s.eveningPool = newOrderedPool(evening)
	s.otherPool = newOrderedPool(other)
	s.tutorialPool = newOrderedPool(tutorials)
}
