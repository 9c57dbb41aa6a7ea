package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/betweenness/centrality"
	"github.com/katalvlaran/betweenness/internal/config"
)

// flagKeys maps command-line flags to viper keys.
var flagKeys = map[string]string{
	"input":        "input",
	"generate":     "generate",
	"workers":      "workers",
	"normalized":   "normalized",
	"mode":         "mode",
	"format":       "format",
	"verbose":      "verbose",
	"separator":    "separator",
	"strip-suffix": "strip_suffix",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "betweenness",
		Short: "Betweenness centrality for unweighted graphs",
		Long: "betweenness reads an edge list or generates a synthetic topology, computes the\n" +
			"betweenness centrality of every vertex and prints it next to degree features.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
		RunE: runRoot,
	}

	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default .betweenness.yaml)")
	f.StringP("input", "i", "", "edge-list file, one edge per line (\"-\" for stdin)")
	f.StringP("generate", "g", "", "synthetic graph: path:N star:N cycle:N complete:N wheel:N grid:RxC ba:N:M:SEED")
	f.IntP("workers", "w", 1, "number of goroutines sharing the sources")
	f.Bool("normalized", false, "divide scores by (N-1)(N-2)/2")
	f.String("mode", centrality.Dependency.String(), "accumulation mode: dependency|plusone")
	f.String("format", config.FormatTSV, "output format: tsv|json")
	f.BoolP("verbose", "v", false, "debug logging to stderr")
	f.String("separator", "\t", "edge-list field separator")
	f.String("strip-suffix", "", "cut vertex names at the first occurrence of this string")

	return cmd
}

// initConfig wires flags, environment and the optional config file into viper.
func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".betweenness")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BETWEENNESS")
	viper.AutomaticEnv()

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	g, names, err := loadGraph(cmd, cfg)
	if err != nil {
		return err
	}
	stats := g.Stats()
	logger.Debug("graph loaded",
		slog.Int("vertices", stats.Vertices),
		slog.Int("edges", stats.Edges),
		slog.Bool("self_loops", stats.SelfLoops),
		slog.Bool("multi_edges", stats.MultiEdges),
	)
	if !stats.Symmetric {
		logger.Warn("adjacency is not symmetric; scores assume an undirected graph")
	}

	start := time.Now()
	scores, err := centrality.Betweenness(g,
		centrality.WithContext(cmd.Context()),
		centrality.WithWorkers(cfg.Workers),
		centrality.WithNormalized(cfg.Normalized),
		centrality.WithAccumulation(cfg.AccumulationMode()),
		centrality.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("betweenness: %w", err)
	}
	logger.Debug("scores computed", slog.Duration("elapsed", time.Since(start)))

	rows := buildRows(g, names, scores)
	if err := writeRows(cmd.OutOrStdout(), cfg.Format, rows); err != nil {
		return err
	}

	if v, x := centrality.ArgMax(scores); v >= 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "highest betweenness: %s (%g)\n", rows[v].Vertex, x)
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
