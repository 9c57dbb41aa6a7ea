package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betweenness/builder"
	"github.com/katalvlaran/betweenness/core"
	"github.com/katalvlaran/betweenness/edgelist"
	"github.com/katalvlaran/betweenness/internal/config"
)

// errBadGenerate is returned for an unparsable --generate value.
var errBadGenerate = errors.New("invalid --generate value")

// loadGraph reads cfg.Input or builds cfg.Generate. names is nil for
// generated graphs, whose vertices are labelled by index.
func loadGraph(cmd *cobra.Command, cfg config.Config) (*core.Graph, []string, error) {
	if cfg.Generate != "" {
		bopts, ctor, err := parseGenerate(cfg.Generate)
		if err != nil {
			return nil, nil, err
		}
		g, err := builder.BuildGraph(bopts, ctor)
		if err != nil {
			return nil, nil, fmt.Errorf("generate %q: %w", cfg.Generate, err)
		}
		return g, nil, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	opts := []edgelist.Option{edgelist.WithSeparator(cfg.SeparatorRune())}
	if cfg.StripSuffix != "" {
		opts = append(opts, edgelist.WithNameTransform(edgelist.StripSuffix(cfg.StripSuffix)))
	}
	g, names, err := edgelist.Read(r, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	return g, names, nil
}

// parseGenerate turns "kind:args" into a builder constructor, e.g.
// "path:10", "grid:4x5" or "ba:1000:3:42".
func parseGenerate(arg string) ([]builder.BuilderOption, builder.Constructor, error) {
	kind, rest, _ := strings.Cut(arg, ":")
	args := strings.Split(rest, ":")

	ints := func(want int) ([]int, error) {
		if len(args) != want {
			return nil, fmt.Errorf("%w: %q: %s takes %d argument(s)", errBadGenerate, arg, kind, want)
		}
		out := make([]int, want)
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", errBadGenerate, arg, err)
			}
			out[i] = n
		}
		return out, nil
	}

	switch kind {
	case "path", "star", "cycle", "complete", "wheel":
		n, err := ints(1)
		if err != nil {
			return nil, nil, err
		}
		ctor := map[string]func(int) builder.Constructor{
			"path":     builder.Path,
			"star":     builder.Star,
			"cycle":    builder.Cycle,
			"complete": builder.Complete,
			"wheel":    builder.Wheel,
		}[kind]
		return nil, ctor(n[0]), nil

	case "grid":
		r, c, ok := strings.Cut(rest, "x")
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q: want grid:RxC", errBadGenerate, arg)
		}
		args = []string{r, c}
		rc, err := ints(2)
		if err != nil {
			return nil, nil, err
		}
		return nil, builder.Grid(rc[0], rc[1]), nil

	case "ba":
		nms, err := ints(3)
		if err != nil {
			return nil, nil, err
		}
		return []builder.BuilderOption{builder.WithSeed(int64(nms[2]))}, builder.BarabasiAlbert(nms[0], nms[1]), nil

	default:
		return nil, nil, fmt.Errorf("%w: %q: unknown kind %q", errBadGenerate, arg, kind)
	}
}
