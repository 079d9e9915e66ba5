package search

import (
	"testing"

	"github.com/hallwood-labs/coursesched/internal/catalog"
	"github.com/stretchr/testify/require"
)

// TestSectionSpreadPenaltyPrefersDistinctSlots exercises the section-spread
// soft penalty: two lectures of the same course placed at the same (day,
// start_time) are charged pen_section, so a search that can place them
// apart at zero cost must prefer doing so.
func TestSectionSpreadPenaltyPrefersDistinctSlots(t *testing.T) {
	cat := newTestCatalog()
	cat.PenSection = 50
	cat.Lectures = []*catalog.Section{
		mustLecture(t, "CPSC 231 LEC 01", false),
		mustLecture(t, "CPSC 231 LEC 02", false),
	}
	cat.LectureSlots = []*catalog.Slot{
		mustLectureSlot(t, "MO", "8:00", 2, 0, 0),
		mustLectureSlot(t, "TU", "13:00", 2, 0, 0),
	}

	s, err := New(cat, Options{})
	require.NoError(t, err)
	res, err := s.Search()
	require.NoError(t, err)

	require.True(t, res.Found)
	require.Equal(t, 0, res.Eval)
	p1 := res.Placements["CPSC 231 LEC 01"]
	p2 := res.Placements["CPSC 231 LEC 02"]
	require.False(t, p1.Day == p2.Day && p1.Time == p2.Time, "lectures should land on distinct (day, start_time), got %+v and %+v", p1, p2)
}

// TestPreferencePenaltyHonoured exercises DeltaSoft's preference term: a
// preference is free to satisfy here, so the optimum satisfies it.
func TestPreferencePenaltyHonoured(t *testing.T) {
	cat := newTestCatalog()
	cat.Lectures = []*catalog.Section{
		mustLecture(t, "CPSC 231 LEC 01", false),
		mustLecture(t, "CPSC 231 LEC 02", false),
	}
	cat.LectureSlots = []*catalog.Slot{
		mustLectureSlot(t, "MO", "8:00", 2, 0, 0),
		mustLectureSlot(t, "TU", "13:00", 2, 0, 0),
	}
	cat.Preferences["CPSC 231 LEC 02"] = []catalog.Preference{
		{Day: "TU", Time: "13:00", StartTime: 13.0, WeightedPen: 10},
	}

	s, err := New(cat, Options{})
	require.NoError(t, err)
	res, err := s.Search()
	require.NoError(t, err)

	require.True(t, res.Found)
	require.Equal(t, 0, res.Eval)
	require.Equal(t, Placement{Day: "TU", Time: "13:00"}, res.Placements["CPSC 231 LEC 02"])
}

// TestPairPenaltyPrefersSharedSlot exercises Eval's pair term: two
// unrelated courses declared a pair are charged pen_not_paired unless
// placed at the identical (day, time), so the optimum places them
// together when nothing else forbids it.
func TestPairPenaltyPrefersSharedSlot(t *testing.T) {
	cat := newTestCatalog()
	cat.PenNotPaired = 20
	cat.Lectures = []*catalog.Section{
		mustLecture(t, "CPSC 231 LEC 01", false),
		mustLecture(t, "CPSC 331 LEC 01", false),
	}
	cat.LectureSlots = []*catalog.Slot{
		mustLectureSlot(t, "MO", "8:00", 2, 0, 0),
		mustLectureSlot(t, "TU", "13:00", 2, 0, 0),
	}
	cat.Pair = []catalog.UnorderedPair{{A: "CPSC 231 LEC 01", B: "CPSC 331 LEC 01"}}

	s, err := New(cat, Options{})
	require.NoError(t, err)
	res, err := s.Search()
	require.NoError(t, err)

	require.True(t, res.Found)
	require.Equal(t, 0, res.Eval)
	p1 := res.Placements["CPSC 231 LEC 01"]
	p2 := res.Placements["CPSC 331 LEC 01"]
	require.Equal(t, p1, p2)
}

// TestEveningSectionRequiresEveningSlot exercises the evening hard
// constraint: a section at course-level 9xx can only be placed at or
// after 18:00, and has no solution when no such slot exists.
func TestEveningSectionRequiresEveningSlot(t *testing.T) {
	t.Run("no evening slot available", func(t *testing.T) {
		cat := newTestCatalog()
		cat.Lectures = []*catalog.Section{mustLecture(t, "CPSC 913 LEC 01", false)}
		cat.LectureSlots = []*catalog.Slot{mustLectureSlot(t, "MO", "8:00", 2, 0, 0)}

		s, err := New(cat, Options{})
		require.NoError(t, err)
		res, err := s.Search()
		require.NoError(t, err)
		require.False(t, res.Found)
	})

	t.Run("evening slot available", func(t *testing.T) {
		cat := newTestCatalog()
		cat.Lectures = []*catalog.Section{mustLecture(t, "CPSC 913 LEC 01", false)}
		cat.LectureSlots = []*catalog.Slot{
			mustLectureSlot(t, "MO", "8:00", 2, 0, 0),
			mustLectureSlot(t, "TU", "18:00", 2, 0, 0),
		}

		s, err := New(cat, Options{})
		require.NoError(t, err)
		res, err := s.Search()
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, Placement{Day: "TU", Time: "18:00"}, res.Placements["CPSC 913 LEC 01"])
	})
}

// TestGraduateShadowTutorialInjection exercises shadow-tutorial injection:
// the presence of CPSC 351 triggers an injected, forced CPSC 851 TUT 01
// at TU 18:00 that the loader never saw in the input.
func TestGraduateShadowTutorialInjection(t *testing.T) {
	cat := newTestCatalog()
	cat.Lectures = []*catalog.Section{mustLecture(t, "CPSC 351 LEC 01", false)}
	cat.LectureSlots = []*catalog.Slot{mustLectureSlot(t, "MO", "8:00", 2, 0, 0)}
	cat.TutorialSlots = []*catalog.Slot{mustTutorialSlot(t, "TU", "18:00", 2, 0, 0)}

	s, err := New(cat, Options{})
	require.NoError(t, err)

	_, exists := s.cat.FindSection("CPSC 851 TUT 01")
	require.True(t, exists, "injection should have added the shadow tutorial before the search begins")

	res, err := s.Search()
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, Placement{Day: "MO", Time: "8:00"}, res.Placements["CPSC 351 LEC 01"])
	require.Equal(t, Placement{Day: "TU", Time: "18:00"}, res.Placements["CPSC 851 TUT 01"])
}

// TestUniversityBlockIsUnavailable checks that TU 11:00 is dropped from
// the lecture slot pool before expansion ever sees it, even though the
// loader placed it in the catalog.
func TestUniversityBlockIsUnavailable(t *testing.T) {
	cat := newTestCatalog()
	cat.Lectures = []*catalog.Section{mustLecture(t, "CPSC 231 LEC 01", false)}
	cat.LectureSlots = []*catalog.Slot{
		mustLectureSlot(t, "TU", "11:00", 2, 0, 0),
		mustLectureSlot(t, "MO", "8:00", 2, 0, 0),
	}

	s, err := New(cat, Options{})
	require.NoError(t, err)
	require.Len(t, s.cat.LectureSlots, 1, "the blocked slot should have been removed from the catalog")

	res, err := s.Search()
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, Placement{Day: "MO", Time: "8:00"}, res.Placements["CPSC 231 LEC 01"])
}
