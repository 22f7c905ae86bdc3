package combin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/combinadic/binom"
)

var (
	// ErrGroupSize indicates a group size K below 1.
	ErrGroupSize = errors.New("combin: group size K must be at least 1")
	// ErrItemCount indicates an item count N not strictly greater than K.
	ErrItemCount = errors.New("combin: item count N must exceed group size K")
	// ErrOverflow indicates C(N,K) exceeds the engine's integer width.
	// It wraps binom.ErrOverflow so callers may match either sentinel.
	ErrOverflow = fmt.Errorf("combin: total combinations exceed the engine width: %w", binom.ErrOverflow)
	// ErrTupleLength indicates a tuple or output buffer whose length differs from K.
	ErrTupleLength = errors.New("combin: tuple length must equal group size K")
	// ErrIndexRange indicates a tuple element outside its position's valid domain.
	ErrIndexRange = errors.New("combin: tuple element outside its valid domain")
	// ErrDuplicateIndex indicates two tuple elements sharing the same value.
	ErrDuplicateIndex = errors.New("combin: tuple elements must be distinct")
	// ErrUnsorted indicates sorted=true asserted on a tuple that is not
	// strictly descending.
	ErrUnsorted = errors.New("combin: tuple not in strictly descending order")
	// ErrRankRange indicates a rank outside [0, Total()).
	ErrRankRange = errors.New("combin: rank outside [0, Total())")
	// ErrRowIndex indicates a diagnostic table-row index out of range.
	ErrRowIndex = errors.New("combin: table row index out of range")
)
