package search

import (
	"sort"

	"github.com/hallwood-labs/coursesched/internal/catalog"
)

// rootSentinel is the successor-cache key used for the very first
// expansion of a search, when there is no previously-placed section.
const rootSentinel = ""

// chooseNext picks the next branching variable given the most recently
// placed section (nil at the root). The choice and
// any pool mutation it causes are memoised in s.successors and are never
// undone on backtrack: the And-tree property relies on every revisit of
// the same prefix choosing the same variable.
func (s *Searcher) chooseNext(last *catalog.Section) (*catalog.Section, bool) {
	lastID := rootSentinel
	if last != nil {
		lastID = last.Identifier
	}

	if cachedID, ok := s.successors[lastID]; ok {
		sec, found := s.cat.FindSection(cachedID)
		return sec, found
	}

	if last != nil {
		if last.IsLecture() {
			if tut, ok := s.tutorialPool.RemoveMatching(func(c *catalog.Section) bool {
				return c.ParentLectureID == last.Identifier
			}); ok {
				s.successors[lastID] = tut.Identifier
				return tut, true
			}
		} else {
			if tut, ok := s.tutorialPool.RemoveMatching(func(c *catalog.Section) bool {
				return c.ParentLectureID == last.ParentLectureID
			}); ok {
				s.successors[lastID] = tut.Identifier
				return tut, true
			}
		}
	}

	for _, pool := range []*orderedPool{s.alRequiredPool, s.level500Pool, s.eveningPool, s.tutorialPool, s.otherPool} {
		if sec, ok := pool.PopFront(); ok {
			s.successors[lastID] = sec.Identifier
			return sec, true
		}
	}

	return nil, false
}

// expandSlots enumerates every legal, non-pruned (section, slot) child
// for next, sorted by incremental soft penalty ascending (best-first).
func (s *Searcher) expandSlots(next *catalog.Section) []*Assignment {
	openSlots := s.openLectureSlots
	if next.IsTutorial() {
		openSlots = s.openTutorialSlots
	}

	var candidates []*Assignment
	for _, slot := range openSlots {
		if FailsHard(s.cat, next, slot, s.partial) {
			continue
		}
		delta := DeltaSoft(s.cat, next, slot, s.partial)
		if s.bounding+delta >= s.bestEval {
			continue
		}
		candidates = append(candidates, &Assignment{
			Section:     next,
			Slot:        slot,
			Delta:       delta,
			CapAtAssign: slot.CurrentCap,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Delta < candidates[j].Delta
	})
	return candidates
}
