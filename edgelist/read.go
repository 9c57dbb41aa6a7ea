package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/betweenness/core"
)

// Read parses r into an undirected graph and the name of every vertex.
//
// Returns ErrMalformedLine (with the line number), ErrOptionViolation, or the
// underlying reader error.
//
// Complexity: O(L) for L input lines.
func Read(r io.Reader, opts ...Option) (*core.Graph, []string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Separator
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		names []string
		edges [][2]int
		index = make(map[string]int)
		seen  = make(map[[2]int]struct{})
	)
	lookup := func(name string) int {
		if id, ok := index[name]; ok {
			return id
		}
		id := len(names)
		index[name] = id
		names = append(names, name)
		return id
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("edgelist: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedLine, line, len(rec))
		}

		a, b := clean(rec[0], o), clean(rec[1], o)
		if a == "" || b == "" {
			return nil, nil, fmt.Errorf("%w: line %d: empty vertex name", ErrMalformedLine, line)
		}
		u, v := lookup(a), lookup(b)
		key := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, [2]int{u, v})
	}

	g, err := core.FromEdges(len(names), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("edgelist: %w", err)
	}

	return g, names, nil
}

func clean(s string, o Options) string {
	s = strings.TrimSpace(s)
	if o.NameTransform != nil {
		s = strings.TrimSpace(o.NameTransform(s))
	}
	return s
}
