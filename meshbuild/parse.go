// Package meshbuild parses a small line-oriented text DSL into a
// core.Mesh, for hand-written test fixtures and small tools that would
// rather not construct CSR arrays by hand. The grammar is intentionally
// tiny:
//
//	row Y Z: [b,e) [b,e) ...
//
// one row per line, intervals given in any order — meshbuild sorts them
// and rows by key before emitting the final Mesh. Blank lines and lines
// starting with '#' are ignored.
package meshbuild

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sbl8/meshx/core"
)

// Parse reads src and returns the Mesh it describes. The result is
// returned in canonical CSR form (rows sorted by key, intervals sorted
// and coalesced within each row) and is validated before being returned.
func Parse(src string) (core.Mesh, error) {
	idx := newRowIndex()

	lines := strings.Split(src, "\n")
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseLine(idx, line); err != nil {
			return core.Empty, errors.Wrapf(err, "meshbuild: line %d", lineNo+1)
		}
	}

	m := idx.build()
	if err := core.Validate(m); err != nil {
		return core.Empty, errors.Wrap(err, "meshbuild: parsed mesh fails validation")
	}
	return m, nil
}

func parseLine(idx *rowIndex, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if fields[0] != "row" {
		return errors.Newf("unknown directive %q", fields[0])
	}
	if len(fields) < 4 {
		return errors.New("row directive needs at least a key and one interval")
	}

	y, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid row Y %q", fields[1])
	}
	zField := strings.TrimSuffix(fields[2], ":")
	z, err := strconv.ParseInt(zField, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid row Z %q", fields[2])
	}

	intervals, err := parseIntervals(fields[3:])
	if err != nil {
		return err
	}

	idx.addRow(core.RowKey{Y: core.Coord(y), Z: core.Coord(z)}, intervals)
	return nil
}

func parseIntervals(tokens []string) ([]core.Interval, error) {
	out := make([]core.Interval, 0, len(tokens))
	for _, tok := range tokens {
		iv, err := parseInterval(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// parseInterval parses a token of the form "[b,e)".
func parseInterval(tok string) (core.Interval, error) {
	if !strings.HasPrefix(tok, "[") || !strings.HasSuffix(tok, ")") {
		return core.Interval{}, errors.Newf("malformed interval %q, want [b,e)", tok)
	}
	inner := tok[1 : len(tok)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return core.Interval{}, errors.Newf("malformed interval %q, want [b,e)", tok)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return core.Interval{}, errors.Wrapf(err, "invalid interval begin in %q", tok)
	}
	e, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return core.Interval{}, errors.Wrapf(err, "invalid interval end in %q", tok)
	}
	iv := core.Interval{Begin: core.Coord(b), End: core.Coord(e)}
	if iv.Begin >= iv.End {
		return core.Interval{}, errors.Newf("interval %q has begin >= end", tok)
	}
	return iv, nil
}

func sortIntervals(intervals []core.Interval) {
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Begin < intervals[j].Begin
	})
}
