package search

import (
	"testing"

	"github.com/hallwood-labs/coursesched/internal/catalog"
	"github.com/stretchr/testify/require"
)

func mustLecture(t *testing.T, identifier string, alrequired bool) *catalog.Section {
	t.Helper()
	sec, err := catalog.NewLecture(identifier, alrequired)
	require.NoError(t, err)
	return sec
}

func mustTutorial(t *testing.T, identifier string, alrequired bool) *catalog.Section {
	t.Helper()
	sec, err := catalog.NewTutorial(identifier, alrequired)
	require.NoError(t, err)
	return sec
}

func mustLectureSlot(t *testing.T, day, timeStr string, maxCap, minCap, altMax int) *catalog.Slot {
	t.Helper()
	slot, err := catalog.NewSlot(day, timeStr, catalog.LectureSlotKind, maxCap, minCap, altMax)
	require.NoError(t, err)
	return slot
}

func mustTutorialSlot(t *testing.T, day, timeStr string, maxCap, minCap, altMax int) *catalog.Slot {
	t.Helper()
	slot, err := catalog.NewSlot(day, timeStr, catalog.TutorialSlotKind, maxCap, minCap, altMax)
	require.NoError(t, err)
	return slot
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New()
}
