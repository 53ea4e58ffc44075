// Package fasttrie implements an ordered set of unsigned integers over
// a bounded universe, answering membership, insertion, removal,
// minimum, maximum, predecessor, and successor queries in O(log w)
// time regardless of how many elements are stored, where w is the
// universe's bit width.
//
// The set is a two-layer structure: an X-fast trie of "representative"
// keys (internal/xfast.Trie) over a collection of small sorted
// buckets, one per representative, each bucket holding the actual
// member values that fall in its range. Representative lookups narrow
// a query to O(log w) work; the bucket itself is small enough
// (at most 2w members) that a linear-width bisect over it
// stays within the same complexity budget.
package fasttrie

import (
	"math"

	"github.com/gaarutyunov/fasttrie/internal/xfast"
)

// DefaultWidth is the universe width used by NewDefault. Defaulting
// width to the host's native word size would make behavior vary
// across platforms, so a fixed constant is used instead.
const DefaultWidth = 64

// Set is an ordered set of uint64 values in [0, 2^width).
type Set struct {
	width   int
	reps    *xfast.Trie
	buckets map[uint64]*bucket
	count   int
}

// New returns an empty Set over a width-bit universe.
func New(width int) *Set {
	return &Set{
		width:   width,
		reps:    xfast.New(width),
		buckets: make(map[uint64]*bucket),
	}
}

// NewDefault returns an empty Set over the default 64-bit universe.
func NewDefault() *Set {
	return New(DefaultWidth)
}

// Width reports the universe width this set was constructed with.
func (s *Set) Width() int { return s.width }

// Len reports the number of members currently stored.
func (s *Set) Len() int { return s.count }

// Clear empties the set.
func (s *Set) Clear() {
	s.reps.Clear()
	s.buckets = make(map[uint64]*bucket)
	s.count = 0
}

func universeMax(width int) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << uint(width)) - 1
}

// representativeOf computes the static partition bound assigned to a
// fresh value: the last possible member of the width-sized range v
// falls in, capped at the universe's actual maximum. It is only used
// to seed the representative key of a brand-new bucket; once a bucket
// exists, its representative key is whatever was last assigned to it
// by insert/split/merge and need not equal this formula's output.
func (s *Set) representativeOf(v uint64) uint64 {
	w := uint64(s.width)
	r := w*(v/w) + (w - 1)
	bound := universeMax(s.width)
	if r > bound || r < v {
		return bound
	}
	return r
}

// locateRepresentative returns the smallest existing representative
// key >= v, which by construction is the representative of the one
// bucket that could hold v, if any bucket holds it at all.
func (s *Set) locateRepresentative(v uint64) (uint64, bool) {
	if s.reps.Len() == 0 {
		return 0, false
	}
	if v == 0 {
		return s.reps.Min()
	}
	val, ok, _ := s.reps.Successor(v - 1)
	return val, ok
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value any) (bool, error) {
	v, err := ToInt(value, s.width)
	if err != nil {
		return false, err
	}
	return s.containsValue(v), nil
}

func (s *Set) containsValue(v uint64) bool {
	rep, ok := s.locateRepresentative(v)
	if !ok {
		return false
	}
	return s.buckets[rep].contains(v)
}

// Insert adds value to the set, reporting whether it was newly added.
func (s *Set) Insert(value any) (bool, error) {
	v, err := ToInt(value, s.width)
	if err != nil {
		return false, err
	}
	return s.insertValue(v), nil
}

// Add is sugar for Insert, mirroring the original's += operator.
func (s *Set) Add(value any) (bool, error) { return s.Insert(value) }

func (s *Set) insertValue(v uint64) bool {
	rep, ok := s.locateRepresentative(v)
	if !ok {
		r := s.representativeOf(v)
		s.buckets[r] = newBucket(v)
		s.reps.Insert(r)
		s.count++
		return true
	}

	b := s.buckets[rep]
	if b.contains(v) {
		return false
	}
	b.insert(v)
	s.count++

	if b.len() > 2*s.width {
		s.splitBucket(rep, b)
	}
	return true
}

// splitBucket halves an overgrown bucket. The upper half (the larger
// values, bounded by the existing representative) keeps that
// representative; the lower half is assigned a brand new
// representative equal to its own maximum, which is always a tight
// enough bound since it is strictly less than anything in the upper
// half.
func (s *Set) splitBucket(rep uint64, b *bucket) {
	upper := b.splitAt()
	lowerRep, _ := b.max()
	s.buckets[lowerRep] = b
	s.reps.Insert(lowerRep)
	s.buckets[rep] = upper
}

// Remove deletes value from the set. It reports an error if value is
// not a member.
func (s *Set) Remove(value any) error {
	v, err := ToInt(value, s.width)
	if err != nil {
		return err
	}
	if !s.removeValue(v) {
		return newStateError(ErrNotFound, "value is not a member of the set")
	}
	return nil
}

// Drop is sugar for Remove, mirroring the original's -= operator.
func (s *Set) Drop(value any) error { return s.Remove(value) }

func (s *Set) removeValue(v uint64) bool {
	rep, ok := s.locateRepresentative(v)
	if !ok {
		return false
	}
	b := s.buckets[rep]
	if !b.remove(v) {
		return false
	}
	s.count--

	if b.len() == 0 {
		delete(s.buckets, rep)
		s.reps.Remove(rep)
		return true
	}

	if b.len() < s.width/2 {
		s.mergeUndersized(rep, b)
	}
	return true
}

// mergeUndersized folds an undersized bucket into a neighboring
// bucket, preferring the predecessor by representative order and
// falling back to the successor when there is no predecessor (the
// undersized bucket holds the current global minimum). A bucket with
// no neighbor at all (it is the only bucket in the set) is left
// undersized; there is nothing to merge it into.
func (s *Set) mergeUndersized(rep uint64, b *bucket) {
	if predRep, ok, _ := s.reps.Predecessor(rep); ok {
		// The merged bucket keeps the larger of the two representatives,
		// since it must still bound every member from above.
		b.merge(s.buckets[predRep])
		delete(s.buckets, predRep)
		s.reps.Remove(predRep)

		if b.len() > 2*s.width {
			s.splitBucket(rep, b)
		}
		return
	}

	if succRep, ok, _ := s.reps.Successor(rep); ok {
		succB := s.buckets[succRep]
		succB.merge(b)
		delete(s.buckets, rep)
		s.reps.Remove(rep)

		if succB.len() > 2*s.width {
			s.splitBucket(succRep, succB)
		}
	}
}

// Min returns the smallest member of the set.
func (s *Set) Min() (uint64, bool) {
	rep, ok := s.reps.Min()
	if !ok {
		return 0, false
	}
	return s.buckets[rep].min()
}

// Max returns the largest member of the set.
func (s *Set) Max() (uint64, bool) {
	rep, ok := s.reps.Max()
	if !ok {
		return 0, false
	}
	return s.buckets[rep].max()
}

// Predecessor returns the largest member strictly less than value.
func (s *Set) Predecessor(value any) (uint64, bool, error) {
	v, err := ToInt(value, s.width)
	if err != nil {
		return 0, false, err
	}
	if s.count == 0 {
		return 0, false, newStateError(ErrEmpty, "set has no members")
	}
	p, ok := s.predecessorOf(v)
	return p, ok, nil
}

func (s *Set) predecessorOf(v uint64) (uint64, bool) {
	rep, ok := s.locateRepresentative(v)
	if ok {
		if p, found := s.buckets[rep].predecessor(v); found {
			return p, true
		}
	}

	var predRep uint64
	var predOk bool
	if ok {
		predRep, predOk, _ = s.reps.Predecessor(rep)
	} else {
		predRep, predOk = s.reps.Max()
	}
	if !predOk {
		return 0, false
	}
	return s.buckets[predRep].max()
}

// Less is sugar for Predecessor, mirroring the original's < operator.
func (s *Set) Less(value any) (uint64, bool, error) { return s.Predecessor(value) }

// Successor returns the smallest member strictly greater than value.
func (s *Set) Successor(value any) (uint64, bool, error) {
	v, err := ToInt(value, s.width)
	if err != nil {
		return 0, false, err
	}
	if s.count == 0 {
		return 0, false, newStateError(ErrEmpty, "set has no members")
	}
	su, ok := s.successorOf(v)
	return su, ok, nil
}

func (s *Set) successorOf(v uint64) (uint64, bool) {
	rep, ok := s.locateRepresentative(v)
	if ok {
		if su, found := s.buckets[rep].successor(v); found {
			return su, true
		}
		succRep, succOk, _ := s.reps.Successor(rep)
		if !succOk {
			return 0, false
		}
		return s.buckets[succRep].min()
	}
	return 0, false
}

// Greater is sugar for Successor, mirroring the original's > operator.
func (s *Set) Greater(value any) (uint64, bool, error) { return s.Successor(value) }
