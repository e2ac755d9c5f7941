// Command pcstcli is a thin host adapter around package pcst: it reads a
// JSON instance from a file (-input) or stdin, runs Solve, and prints the
// selected forest as JSON. No persisted state, no config file, a single
// read-solve-print pass.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prizesteiner/pcst/pcst"
)

// wireEdge is one instance edge as encoded on the wire.
type wireEdge struct {
	U uint32 `json:"u"`
	V uint32 `json:"v"`
}

// wireInstance is the JSON shape pcstcli reads. An absent, null, or
// negative root field all mean "unrooted"; a non-negative value names a
// node. The core itself only sees a *uint32.
type wireInstance struct {
	Edges                   []wireEdge `json:"edges"`
	Costs                   []float64  `json:"costs"`
	Prizes                  []float64  `json:"prizes"`
	Root                    *int64     `json:"root"`
	TargetNumActiveClusters uint32     `json:"targetNumActiveClusters"`
	Pruning                 string     `json:"pruning"`
	Verbosity               uint8      `json:"verbosity"`
}

// wireResult is the JSON shape pcstcli prints.
type wireResult struct {
	NodeIDs   []uint32 `json:"nodes"`
	EdgeIDs   []uint32 `json:"edges"`
	Objective float64  `json:"objective"`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pcstcli: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pcstcli: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	inputPath := flag.String("input", "", "path to a JSON instance file; defaults to stdin")
	flag.Parse()

	data, err := readInstance(*inputPath)
	if err != nil {
		return fmt.Errorf("read instance: %w", err)
	}

	var wire wireInstance
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("parse instance: %w", err)
	}

	in, err := toInput(wire)
	if err != nil {
		return err
	}

	res, err := pcst.Solve(in)
	if err != nil {
		var solveErr *pcst.SolveError
		if errors.As(err, &solveErr) {
			return fmt.Errorf("solve: %s (kind=%s)", solveErr.Message, solveErr.Kind)
		}
		return fmt.Errorf("solve: %w", err)
	}

	out := wireResult{
		NodeIDs:   res.NodeIDs,
		EdgeIDs:   res.EdgeIDs,
		Objective: objective(res, in.Prizes, in.Costs),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readInstance(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func toInput(w wireInstance) (pcst.Input, error) {
	edges := make([]pcst.EdgeEndpoints, len(w.Edges))
	for i, e := range w.Edges {
		edges[i] = pcst.EdgeEndpoints{U: e.U, V: e.V}
	}

	in := pcst.DefaultOptions(edges, w.Costs, w.Prizes)
	in.TargetNumActiveClusters = w.TargetNumActiveClusters
	in.Verbosity = w.Verbosity
	if w.Verbosity > 0 {
		in.LogSink = func(msg string) { fmt.Fprintln(os.Stderr, msg) }
	}

	if w.Root != nil && *w.Root >= 0 {
		r := uint32(*w.Root)
		in.Root = &r
	}

	mode, err := parsePruning(w.Pruning)
	if err != nil {
		return pcst.Input{}, err
	}
	in.Pruning = mode

	return in, nil
}

func parsePruning(s string) (pcst.PruningMode, error) {
	switch s {
	case "", "gw":
		return pcst.PruneGW, nil
	case "none":
		return pcst.PruneNone, nil
	case "simple":
		return pcst.PruneSimple, nil
	case "strong":
		return pcst.PruneStrong, nil
	default:
		return 0, fmt.Errorf("unknown pruning mode %q (want none|simple|gw|strong)", s)
	}
}

func objective(res pcst.Result, prizes, costs []float64) float64 {
	var obj float64
	for _, v := range res.NodeIDs {
		obj += prizes[v]
	}
	for _, e := range res.EdgeIDs {
		obj -= costs[e]
	}
	return obj
}
