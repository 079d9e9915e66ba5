package search

import "github.com/hallwood-labs/coursesched/internal/catalog"

// orderedPool is an insertion-ordered, O(1)-membership bucket of
// sections supporting FIFO pop and first-match removal. It backs the
// expansion generator's branching-variable pools. Removed entries are
// left as tombstones in order and skipped lazily, which is cheap at the
// section-count scale this search operates at.
type orderedPool struct {
	order []string
	items map[string]*catalog.Section
}

func newOrderedPool(sections []*catalog.Section) *orderedPool {
	p := &orderedPool{items: make(map[string]*catalog.Section, len(sections))}
	for _, s := range sections {
		p.order = append(p.order, s.Identifier)
		p.items[s.Identifier] = s
	}
	return p
}

func (p *orderedPool) Len() int {
	return len(p.items)
}

// PopFront removes and returns the earliest-inserted remaining section.
func (p *orderedPool) PopFront() (*catalog.Section, bool) {
	for len(p.order) > 0 {
		id := p.order[0]
		p.order = p.order[1:]
		if sec, ok := p.items[id]; ok {
			delete(p.items, id)
			return sec, true
		}
	}
	return nil, false
}

// RemoveMatching removes and returns the earliest-inserted remaining
// section for which predicate returns true.
func (p *orderedPool) RemoveMatching(predicate func(*catalog.Section) bool) (*catalog.Section, bool) {
	for _, id := range p.order {
		sec, ok := p.items[id]
		if !ok {
			continue
		}
		if predicate(sec) {
			delete(p.items, id)
			return sec, true
		}
	}
	return nil, false
}
