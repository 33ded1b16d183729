// Package graphio reads and writes the DIMACS ".gr" shortest-path challenge
// format: a "p sp <n> <m>" problem line, "c ..." comments, and "a <u> <v>
// <w>" arc lines with 1-based vertex indices.
//
// Uses a buffered line-by-line scan (bufio.Scanner, one line parsed into
// whitespace-separated tokens at a time) over the DIMACS grammar.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pmaojo/fast-sssp/graph"
)

// Sentinel errors, wrapped with the offending line number via fmt.Errorf.
var (
	// ErrNegativeWeight indicates an "a" line with a negative weight.
	ErrNegativeWeight = errors.New("graphio: negative edge weight")
	// ErrInvalidVertex indicates an "a" line referencing a vertex outside
	// [1, n].
	ErrInvalidVertex = errors.New("graphio: vertex index out of range")
	// ErrMalformedLine indicates a line that does not match the grammar.
	ErrMalformedLine = errors.New("graphio: malformed line")
	// ErrMissingProblemLine indicates arc lines appeared before the
	// required "p sp <n> <m>" line.
	ErrMissingProblemLine = errors.New("graphio: missing problem line")
)

// ReadGr parses a DIMACS .gr stream into a *graph.Graph. Comment lines
// ("c ...") are skipped. 1-based vertex indices in "a" lines are converted
// to this module's 0-based indexing.
func ReadGr(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var builder *graph.Builder
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			n, err := parseProblemLine(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			builder = graph.NewBuilder(n)
		case "a":
			if builder == nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingProblemLine)
			}
			if err := parseArcLine(builder, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan failed: %w", err)
	}
	if builder == nil {
		return nil, ErrMissingProblemLine
	}

	return builder.Build()
}

// parseProblemLine parses "p sp <n> <m>" and returns n; m is accepted but
// not validated since the Builder counts arcs itself.
func parseProblemLine(fields []string) (int, error) {
	if len(fields) != 4 || fields[1] != "sp" {
		return 0, fmt.Errorf("%w: expected \"p sp <n> <m>\", got %q", ErrMalformedLine, strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("%w: vertex count %q: %v", ErrMalformedLine, fields[2], err)
	}
	return n, nil
}

// parseArcLine parses "a <u> <v> <w>" and stages the edge on builder,
// converting 1-based endpoints to 0-based.
func parseArcLine(builder *graph.Builder, fields []string, lineNo int) error {
	if len(fields) != 4 {
		return fmt.Errorf("line %d: %w: expected \"a <u> <v> <w>\", got %q", lineNo, ErrMalformedLine, strings.Join(fields, " "))
	}
	u1, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("line %d: %w: u=%q", lineNo, ErrInvalidVertex, fields[1])
	}
	v1, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("line %d: %w: v=%q", lineNo, ErrInvalidVertex, fields[2])
	}
	w, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return fmt.Errorf("line %d: %w: weight %q not a number", lineNo, ErrMalformedLine, fields[3])
	}
	if w < 0 {
		return fmt.Errorf("line %d: %w: %g", lineNo, ErrNegativeWeight, w)
	}

	if err := builder.AddEdge(u1-1, v1-1, w); err != nil {
		return fmt.Errorf("line %d: %w: %v", lineNo, ErrInvalidVertex, err)
	}
	return nil
}

// WriteGr writes g to w in DIMACS .gr form, the inverse of ReadGr: 0-based
// endpoints are converted back to 1-based. Used by the CLI's gen
// subcommand to write generated graphs out.
func WriteGr(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p sp %d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return err
	}
	for u := 0; u < g.VertexCount(); u++ {
		var writeErr error
		g.ForEachOutEdge(u, func(v int, weight float64) {
			if writeErr != nil {
				return
			}
			_, writeErr = fmt.Fprintf(bw, "a %d %d %s\n", u+1, v+1, strconv.FormatFloat(weight, 'g', -1, 64))
		})
		if writeErr != nil {
			return writeErr
		}
	}
	return bw.Flush()
}
