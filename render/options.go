package render

import "errors"

var (
	// ErrNilEngine indicates no engine was supplied.
	ErrNilEngine = errors.New("render: engine must not be nil")
	// ErrNilWriter indicates no writer was supplied.
	ErrNilWriter = errors.New("render: writer must not be nil")
	// ErrDispChars indicates a substitution table shorter than the engine's
	// item count, which would leave some values unprintable.
	ErrDispChars = errors.New("render: DispChars must cover every item value")
)

// Options configures enumeration rendering.
//
//   - Ascending  — enumerate ranks 0..Total()−1 when true, the reverse
//     when false.
//   - Sep        — string between elements within one combination.
//   - GroupSep   — string between combinations sharing a wrapped line
//     (Write only; ignored without MaxLineLen).
//   - DispChars  — optional per-value display strings; when non-nil,
//     DispChars[v] is printed instead of the numeric value and must
//     cover every v in [0, N).
//   - FieldWidth — right-aligned width of numeric fields; 0 derives
//     N/10 + 1 (enough digits for the largest value).
//   - MaxLineLen — wrap threshold in characters; 0 puts one
//     combination per line.
type Options struct {
	Ascending  bool
	Sep        string
	GroupSep   string
	DispChars  []string
	FieldWidth int
	MaxLineLen int
}

// DefaultOptions returns the canonical rendering configuration:
// ascending enumeration, single-space element separator, comma-space
// group separator, auto field width, one combination per line.
func DefaultOptions() Options {
	return Options{
		Ascending: true,
		Sep:       " ",
		GroupSep:  ", ",
	}
}
