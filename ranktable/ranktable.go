package ranktable

import (
	"errors"

	"github.com/katalvlaran/combinadic/combin"
)

var (
	// ErrNilEngine indicates no engine was supplied.
	ErrNilEngine = errors.New("ranktable: engine must not be nil")
	// ErrTableFull indicates an Append past the engine's Total().
	ErrTableFull = errors.New("ranktable: table already holds Total() values")
	// ErrRankRange indicates a rank outside [0, Total()).
	ErrRankRange = errors.New("ranktable: rank outside [0, Total())")
	// ErrNotStored indicates a read at a rank no write has reached yet.
	ErrNotStored = errors.New("ranktable: no value stored at rank")
)

// Table is a generic payload store addressed by combinadic rank.
// T is the caller's element type; V the engine's width. The backing
// slice grows on demand and never exceeds Total() elements.
type Table[T any, V combin.Value] struct {
	eng  *combin.Engine[V]
	data []T
}

// New binds an empty table to eng. The element type is supplied
// explicitly, the width is inferred:
//
//	hands, err := ranktable.New[string](eng)
//
// Complexity: O(1); no payload storage is allocated upfront.
func New[T any, V combin.Value](eng *combin.Engine[V]) (*Table[T, V], error) {
	if eng == nil {
		return nil, ErrNilEngine
	}

	return &Table[T, V]{eng: eng}, nil
}

// Len returns the number of ranks a write has reached so far.
// Complexity: O(1).
func (t *Table[T, V]) Len() int {
	return len(t.data)
}

// Append stores v at the next unwritten rank — the efficient way to
// fill the table in enumeration order.
// Complexity: amortized O(1).
func (t *Table[T, V]) Append(v T) error {
	if int64(len(t.data)) >= int64(t.eng.Total()) {
		return ErrTableFull
	}
	t.data = append(t.data, v)

	return nil
}

// Put stores v at rank r. Addressing past the current end grows the
// table up to and including r, filling the gap with v — provided for
// flexibility when initializing in a non-linear order.
// Complexity: O(1) to overwrite, O(r − Len()) to grow.
func (t *Table[T, V]) Put(r V, v T) error {
	if r < 0 || r >= t.eng.Total() {
		return ErrRankRange
	}
	if idx := int(r); idx < len(t.data) {
		t.data[idx] = v

		return nil
	}
	for int64(len(t.data)) <= int64(r) {
		t.data = append(t.data, v)
	}

	return nil
}

// PutCombination stores v at the rank of the given combination tuple;
// sorted carries the same contract as Engine.Rank.
// Complexity: O(K) plus Put.
func (t *Table[T, V]) PutCombination(tuple []int, sorted bool, v T) error {
	r, err := t.eng.Rank(tuple, sorted)
	if err != nil {
		return err
	}

	return t.Put(r, v)
}

// At returns the value stored at rank r.
// Complexity: O(1).
func (t *Table[T, V]) At(r V) (T, error) {
	var zero T
	if r < 0 || r >= t.eng.Total() {
		return zero, ErrRankRange
	}
	if int64(r) >= int64(len(t.data)) {
		return zero, ErrNotStored
	}

	return t.data[int(r)], nil
}

// AtCombination returns the value stored at the rank of the given
// combination tuple; sorted carries the same contract as Engine.Rank.
// Complexity: O(K).
func (t *Table[T, V]) AtCombination(tuple []int, sorted bool) (T, error) {
	r, err := t.eng.Rank(tuple, sorted)
	if err != nil {
		var zero T

		return zero, err
	}

	return t.At(r)
}

// Values exposes the live backing slice so callers can work on it
// directly when needed. Mutations are visible to the table.
// Complexity: O(1).
func (t *Table[T, V]) Values() []T {
	return t.data
}
