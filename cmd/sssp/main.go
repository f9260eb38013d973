// Command sssp loads a YAML graph, computes single-source shortest paths and
// prints one "vertex -> distance" line per vertex.
//
// Usage:
//
//	sssp -graph graph.yaml [-source 0] [-paths] [-hops] [-max-distance D] [-metrics] [-no-color]
//
// Use -graph - to read the document from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graphfile"
	"github.com/katalvlaran/sssp/metrics"
)

// noCap is the -max-distance value that disables the distance cap.
const noCap = -1

type config struct {
	graph       string
	source      int
	paths       bool
	hops        bool
	maxDistance int64
	metrics     bool
	noColor     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logger.NewWriter("ns=sssp", stderr)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		log.At("flags").Error(err)
		return 2
	}

	// execute logs failures on the logger of the step that failed.
	if err := execute(cfg, stdout, stderr, log); err != nil {
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("sssp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.graph, "graph", "", "YAML graph document (- for stdin)")
	fs.IntVar(&cfg.source, "source", 0, "source vertex")
	fs.BoolVar(&cfg.paths, "paths", false, "print one shortest path per reachable vertex")
	fs.BoolVar(&cfg.hops, "hops", false, "print the fewest-edges hop count per reachable vertex")
	fs.Int64Var(&cfg.maxDistance, "max-distance", noCap, "treat vertices farther than this as unreachable (-1 for no cap)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "dump Prometheus metrics to stderr after the query")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.graph == "" {
		return cfg, errors.New("-graph is required")
	}
	if cfg.maxDistance < noCap {
		return cfg, errors.Errorf("-max-distance must be >= 0 or -1, got %d", cfg.maxDistance)
	}
	if fs.NArg() > 0 {
		return cfg, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return cfg, nil
}

func execute(cfg config, stdout, stderr io.Writer, log *logger.Logger) error {
	l := log.At("load").Start()
	g, err := graphfile.Load(cfg.graph)
	if err != nil {
		return l.Error(errors.Wrap(err, "load graph"))
	}
	l.Successf("vertices=%d edges=%d", g.VertexCount(), g.EdgeCount())

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return log.At("metrics").Error(errors.WithStack(err))
	}

	opts := []dijkstra.Option{}
	if cfg.paths {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if cfg.maxDistance != noCap {
		opts = append(opts, dijkstra.WithMaxDistance(cfg.maxDistance))
	}

	q := log.At("query").Start()
	tbl, err := collector.ShortestPaths(g, cfg.source, opts...)
	if err != nil {
		return q.Error(errors.Wrapf(err, "shortest paths from %d", cfg.source))
	}
	reached := 0
	for v := 0; v < tbl.Len(); v++ {
		if tbl.Reachable(v) {
			reached++
		}
	}
	q.Successf("source=%d reachable=%d", cfg.source, reached)

	var hops *bfs.BFSResult
	if cfg.hops {
		if hops, err = bfs.BFS(g, cfg.source); err != nil {
			return log.At("hops").Error(errors.Wrap(err, "hop counts"))
		}
	}

	if err := printTable(stdout, tbl, hops, cfg); err != nil {
		return log.At("print").Error(err)
	}

	if cfg.metrics {
		if err := dumpMetrics(stderr, reg); err != nil {
			return log.At("metrics").Error(err)
		}
	}

	return nil
}

func printTable(w io.Writer, tbl *dijkstra.DistanceTable, hops *bfs.BFSResult, cfg config) error {
	marker := color.New(color.FgYellow)
	if cfg.noColor {
		marker.DisableColor()
	}

	for v := 0; v < tbl.Len(); v++ {
		d, ok := tbl.Distance(v)
		if !ok {
			if _, err := fmt.Fprintf(w, "%d -> %s\n", v, marker.Sprint("unreachable")); err != nil {
				return errors.WithStack(err)
			}
			continue
		}

		line := fmt.Sprintf("%d -> %d", v, d)
		if cfg.paths {
			path, err := tbl.PathTo(v)
			if err != nil {
				return errors.WithStack(err)
			}
			parts := make([]string, len(path))
			for i, p := range path {
				parts[i] = fmt.Sprint(p)
			}
			line += " path=" + strings.Join(parts, ",")
		}
		if hops != nil && hops.Reached(v) {
			line += fmt.Sprintf(" hops=%d", hops.Depth[v])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}
