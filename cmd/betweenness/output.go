package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/betweenness/centrality"
	"github.com/katalvlaran/betweenness/core"
	"github.com/katalvlaran/betweenness/internal/config"
)

// row is one line of the feature table.
type row struct {
	Vertex            string  `json:"vertex"`
	Betweenness       float64 `json:"betweenness"`
	Degree            float64 `json:"degree"`
	AvgNeighborDegree float64 `json:"avg_neighbor_degree"`
}

func buildRows(g *core.Graph, names []string, scores []float64) []row {
	deg := centrality.Degree(g)
	avg := centrality.AverageNeighborDegree(g)
	rows := make([]row, len(scores))
	for v := range rows {
		label := strconv.Itoa(v)
		if v < len(names) {
			label = names[v]
		}
		rows[v] = row{Vertex: label, Betweenness: scores[v], Degree: deg[v], AvgNeighborDegree: avg[v]}
	}
	return rows
}

func writeRows(w io.Writer, format string, rows []row) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "vertex\tbetweenness\tdegree\tavg_neighbor_degree")
	for _, r := range rows {
		fmt.Fprintf(bw, "%s\t%g\t%g\t%g\n", r.Vertex, r.Betweenness, r.Degree, r.AvgNeighborDegree)
	}
	return bw.Flush()
}
