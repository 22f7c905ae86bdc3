package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/combinadic/combin"
)

// Write renders every combination of eng onto w according to opts.
// Stage 1 (Validate): engine, writer and DispChars coverage.
// Stage 2 (Enumerate): ranks 0..Total()−1 (or the reverse), unranking
// each into a reused buffer.
// Stage 3 (Emit): buffered writes; with MaxLineLen > 0, combinations
// are joined by GroupSep and the line is flushed at the last complete
// combination once the threshold is reached, otherwise each combination
// owns one line.
// Complexity: O(Total·K) time, O(K) extra memory.
func Write[V combin.Value](w io.Writer, eng *combin.Engine[V], opts Options) error {
	if eng == nil {
		return ErrNilEngine
	}
	if w == nil {
		return ErrNilWriter
	}
	if opts.DispChars != nil && len(opts.DispChars) < eng.Items() {
		return ErrDispChars
	}

	width := opts.FieldWidth
	if width <= 0 {
		width = eng.Items()/10 + 1
	}

	bw := bufio.NewWriter(w)
	out := make([]int, eng.GroupSize())

	// Direction of the enumeration.
	total := int64(eng.Total())
	start, end, inc := int64(0), total, int64(1)
	if !opts.Ascending {
		start, end, inc = total-1, -1, -1
	}

	var line string
	prev := 0 // length of line up to the last complete combination
	for r := start; r != end; r += inc {
		if err := eng.Unrank(V(r), out); err != nil {
			return fmt.Errorf("render: unrank %d: %w", r, err)
		}
		group := formatTuple(out, opts.DispChars, width, opts.Sep)

		// One combination per line when wrapping is off.
		if opts.MaxLineLen <= 0 {
			if _, err := bw.WriteString(group); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
			continue
		}

		// Wrapped mode: accumulate, flush whole combinations only.
		line += group
		if len(line) >= opts.MaxLineLen {
			if _, err := bw.WriteString(strings.TrimSuffix(line[:prev], opts.GroupSep)); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
			line = line[prev:]
		}
		line += opts.GroupSep
		prev = len(line)
	}
	if opts.MaxLineLen > 0 {
		line = strings.TrimSuffix(line, opts.GroupSep)
		if line != "" {
			if _, err := bw.WriteString(line); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}

	return nil
}

// Strings renders every combination of eng as one string per rank,
// honoring Ascending, Sep, DispChars and FieldWidth. GroupSep and
// MaxLineLen do not apply — each combination is its own element.
// Complexity: O(Total·K) time and memory.
func Strings[V combin.Value](eng *combin.Engine[V], opts Options) ([]string, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if opts.DispChars != nil && len(opts.DispChars) < eng.Items() {
		return nil, ErrDispChars
	}

	width := opts.FieldWidth
	if width <= 0 {
		width = eng.Items()/10 + 1
	}

	total := int64(eng.Total())
	start, end, inc := int64(0), total, int64(1)
	if !opts.Ascending {
		start, end, inc = total-1, -1, -1
	}

	out := make([]int, eng.GroupSize())
	list := make([]string, 0, total)
	for r := start; r != end; r += inc {
		if err := eng.Unrank(V(r), out); err != nil {
			return nil, fmt.Errorf("render: unrank %d: %w", r, err)
		}
		list = append(list, formatTuple(out, opts.DispChars, width, opts.Sep))
	}

	return list, nil
}

// formatTuple renders one combination: display substitution when disp
// is present, right-aligned numerics otherwise, sep between elements.
func formatTuple(tuple []int, disp []string, width int, sep string) string {
	var sb strings.Builder
	for i, v := range tuple {
		if i > 0 {
			sb.WriteString(sep)
		}
		if disp != nil {
			sb.WriteString(disp[v])
		} else {
			fmt.Fprintf(&sb, "%*d", width, v)
		}
	}

	return sb.String()
}
