// Package search implements the And-tree branch-and-bound core: the
// depth-first constructive search over section placements, its dynamic
// selection heuristic, its hard-constraint filter, its incremental
// soft-penalty accounting, and the bounded lower-bound pruning that
// makes the search tractable.
package search

import (
	"math"
	"math/rand"

	"github.com/hallwood-labs/coursesched/internal/catalog"
)

// Searcher owns every piece of mutable search state: the partial
// assignment, the bounding accumulator, the best-known complete
// assignment, and the expansion generator's pools and successor memo.
// None of it is shared; there is no concurrency inside a Searcher.
type Searcher struct {
	cat  *catalog.Catalog
	opts Options

	partial  map[string]*Assignment
	bounding int

	bestEval    int
	bestPartial map[string]*Assignment
	leafCount   int
	resultCount int

	successors                                                         map[string]string
	alRequiredPool, level500Pool, eveningPool, otherPool, tutorialPool *orderedPool
	openLectureSlots, openTutorialSlots                                []*catalog.Slot

	totalSections int
}

// New builds a Searcher over cat and prepares it for search. cat is
// mutated in place (the TU 11:00 lecture slot is dropped, graduate-shadow
// tutorials may be injected, and forced placements consume capacity) and
// must not be reused by a second Searcher.
func New(cat *catalog.Catalog, opts Options) (*Searcher, error) {
	s := &Searcher{
		cat:        cat,
		opts:       opts,
		partial:    make(map[string]*Assignment),
		bestEval:   math.MaxInt,
		successors: make(map[string]string),
	}

	if opts.Shuffle {
		rng := rand.New(rand.NewSource(opts.Seed))
		shuffleSections(rng, cat.Lectures)
		shuffleSections(rng, cat.Tutorials)
	}

	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

func shuffleSections(rng *rand.Rand, sections []*catalog.Section) {
	rng.Shuffle(len(sections), func(i, j int) {
		sections[i], sections[j] = sections[j], sections[i]
	})
}

// Search runs the depth-first branch-and-bound search to exhaustion (or
// until BreakLimit strictly-improving solutions have been found) and
// returns the best complete assignment reached. The error return exists
// for symmetry with New and for future catalog-integrity checks that
// might surface mid-search; the search itself never fails, since every
// failure mode it could hit was already rejected by the Initialiser.
func (s *Searcher) Search() (Result, error) {
	s.dfs(nil)

	if s.bestPartial == nil {
		return Result{Found: false}, nil
	}

	placements := make(map[string]Placement, len(s.bestPartial))
	for id, a := range s.bestPartial {
		placements[id] = Placement{Day: a.Slot.Day, Time: a.Slot.Time}
	}
	return Result{Placements: placements, Eval: s.bestEval, Found: true}, nil
}

func (s *Searcher) dfs(last *catalog.Section) {
	if s.opts.BreakLimit > 0 && s.resultCount >= s.opts.BreakLimit {
		return
	}

	next, ok := s.chooseNext(last)
	var children []*Assignment
	if ok {
		children = s.expandSlots(next)
	}
	if len(children) == 0 {
		s.leafCount++
		if len(s.partial) == s.totalSections {
			if e := Eval(s.cat, s.bounding, s.partial); e < s.bestEval {
				s.bestEval = e
				s.bestPartial = clonePartial(s.partial)
				s.resultCount++
			}
		}
		return
	}

	for _, child := range children {
		child.Slot.CurrentCap++
		if child.Section.ALRequired {
			child.Slot.CurrentAltCap++
		}
		s.partial[child.Section.Identifier] = child
		s.bounding += child.Delta

		s.dfs(child.Section)

		s.bounding -= child.Delta
		delete(s.partial, child.Section.Identifier)
		child.Slot.CurrentCap--
		if child.Section.ALRequired {
			child.Slot.CurrentAltCap--
		}
	}
}

// LeafCount is the number of leaf nodes (complete or pruned-to-empty)
// visited by the most recent Search call. Diagnostic only.
func (s *Searcher) LeafCount() int { return s.leafCount }
