package weighted

import (
	"fmt"

	"github.com/yumkam/leetcode-templates-misc/fenwick"
)

// Item is a selectable id with its weight.
type Item struct {
	ID     string
	Weight int64
}

// Selector picks item ids at random, proportionally to their weights.
// The zero value is not usable; create selectors with New.
type Selector struct {
	// weights holds one position per item, in the order items were added.
	weights *fenwick.Tree[int64]

	// ids maps a position back to its item id.
	ids []string

	// index maps an item id to its position.
	index map[string]int

	rng RNG
}

// New creates an empty selector.
func New(opts ...Option) (*Selector, error) {
	s := &Selector{
		index: make(map[string]int),
		rng:   &globalRNG{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	weights, err := fenwick.New[int64](nil, fenwick.Sum[int64]{})
	if err != nil {
		return nil, err
	}
	s.weights = weights
	return s, nil
}

// Reset replaces all items with the given catalog.
func (s *Selector) Reset(items []Item) error {
	index, err := s.check(items, make(map[string]int, len(items)), 0)
	if err != nil {
		return err
	}
	raw := make([]int64, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		raw[i] = item.Weight
		ids[i] = item.ID
	}
	weights, err := fenwick.New[int64](raw, fenwick.Sum[int64]{}, fenwick.Initialize())
	if err != nil {
		return err
	}
	s.weights, s.ids, s.index = weights, ids, index
	tracer().Debugf("weighted: reset to %d items, total weight %d", len(ids), s.Total())
	return nil
}

// Extend adds new items after the existing ones.
func (s *Selector) Extend(items ...Item) error {
	index := make(map[string]int, len(s.index)+len(items))
	for id, i := range s.index {
		index[id] = i
	}
	index, err := s.check(items, index, len(s.ids))
	if err != nil {
		return err
	}
	raw := make([]int64, len(items))
	for i, item := range items {
		raw[i] = item.Weight
		s.ids = append(s.ids, item.ID)
	}
	s.weights.Extend(raw...)
	s.index = index
	return nil
}

// check validates items to be placed from position offset on, registering
// them in index.
func (s *Selector) check(items []Item, index map[string]int, offset int) (map[string]int, error) {
	for i, item := range items {
		if item.Weight < 0 {
			return nil, fmt.Errorf("%w: item %q has weight %d", ErrNegativeWeight, item.ID, item.Weight)
		}
		if _, exists := index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, item.ID)
		}
		index[item.ID] = offset + i
	}
	return index, nil
}

// Put sets the weight of id, adding it as a new item if needed.
func (s *Selector) Put(id string, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: item %q has weight %d", ErrNegativeWeight, id, weight)
	}
	if idx, ok := s.index[id]; ok {
		s.weights.Add(idx, weight-s.weightAt(idx))
		return nil
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.weights.Append(weight)
	return nil
}

// Update adds delta to the weight of id. The weight must stay >= 0.
func (s *Selector) Update(id string, delta int64) error {
	idx, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if w := s.weightAt(idx); w+delta < 0 {
		return fmt.Errorf("%w: item %q has weight %d, cannot add %d", ErrNegativeWeight, id, w, delta)
	}
	s.weights.Add(idx, delta)
	return nil
}

// Weight returns the current weight of id.
func (s *Selector) Weight(id string) (int64, bool) {
	idx, ok := s.index[id]
	if !ok {
		return 0, false
	}
	return s.weightAt(idx), true
}

func (s *Selector) weightAt(idx int) int64 {
	if idx == 0 {
		return s.weights.PrefixFold(0)
	}
	ra, rb := s.weights.RangeFold(idx-1, idx)
	return ra - rb
}

// Len returns the number of items, including those with weight 0.
func (s *Selector) Len() int {
	return len(s.ids)
}

// Total returns the sum of all weights.
func (s *Selector) Total() int64 {
	if s.weights.Empty() {
		return 0
	}
	return s.weights.Fold()
}

// Locate returns the item covering offset when the items' weights are laid
// out end to end in insertion order. Items with weight 0 cover nothing.
func (s *Selector) Locate(offset int64) (string, error) {
	if offset < 0 || offset >= s.Total() {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrOffsetOutOfRange, offset, s.Total())
	}
	return s.ids[fenwick.BisectRight(s.weights, offset)], nil
}

// Select draws an item id at random, proportionally to the weights.
func (s *Selector) Select() (string, error) {
	total := s.Total()
	if total <= 0 {
		return "", ErrEmptySelector
	}
	return s.Locate(s.rng.Int63n(total))
}
