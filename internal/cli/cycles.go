package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcjcycles/bfs"
	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/cycles"
	"github.com/katalvlaran/dcjcycles/graphio"
)

// pipelineOpts are the flags shared by cycles and simulate.
type pipelineOpts struct {
	length   int
	seedPart int
	output   string
}

func (o *pipelineOpts) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.length, "length", "l", defaultLength, "cycle length in edges")
	cmd.Flags().IntVar(&o.seedPart, "seed-part", 0, "part to seed the search from (0: part of the first vertex)")
	cmd.Flags().StringVarP(&o.output, "output", "o", stdio, "conflict graph output file (- for stdout)")
}

// cyclesCommand creates the cycles command.
//
// Example:
//
//	dcjcycles cycles -l 6 -o conflicts.txt.gz genomes.txt
func (c *CLI) cyclesCommand() *cobra.Command {
	var opts pipelineOpts

	cmd := &cobra.Command{
		Use:   "cycles [graph-file]",
		Short: "Build the conflict graph of an adjacency graph",
		Long: `Read an adjacency graph (stdin when no file or "-" is given), enumerate its
consistent cycles of the requested length and write their conflict graph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fill(cmd.Flags(), c.config.pipelineValues()); err != nil {
				return err
			}
			input := stdio
			if len(args) == 1 {
				input = args[0]
			}
			g, err := readGraph(input)
			if err != nil {
				return err
			}
			_, err = runPipeline(cmd.Context(), g, opts)
			return err
		},
	}
	opts.register(cmd)

	return cmd
}

// readGraph opens name with xopen and parses it.
func readGraph(name string) (*core.Graph, error) {
	r, err := xopen.Ropen(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer r.Close()

	log.Noticef("Parse graph `%s`", name)
	g, err := graphio.ReadGraph(r, core.WithGraphLabel(name))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return g, nil
}

// runPipeline builds the conflict graph of g and writes it to opts.output.
func runPipeline(ctx context.Context, g *core.Graph, opts pipelineOpts) (*cycles.ConflictGraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var copts []cycles.Option
	if opts.seedPart != 0 {
		copts = append(copts, cycles.WithSeedPart(opts.seedPart))
	}
	copts = append(copts, cycles.WithLabel(g.Label()))

	log.Noticef("Enumerate cycles of length %d over %d vertices and %d edges", opts.length, g.VertexCount(), g.EdgeCount())
	cg, err := cycles.Build(g, opts.length, copts...)
	if err != nil {
		return nil, err
	}
	st := cg.Stats()
	log.Infof("Seeds: %d, candidates: %d, closed: %d, duplicates: %d", st.Seeds, st.Candidates, st.Closed, st.Duplicates)

	comps, err := bfs.Components(cg.Graph, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	largest := 0
	for _, c := range comps {
		if len(c) > largest {
			largest = len(c)
		}
	}
	log.Infof("Conflict graph splits into %d components, largest has %d cycles", len(comps), largest)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, err := xopen.Wopen(opts.output)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", opts.output)
	}
	if err := graphio.WriteConflicts(w, cg); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "close %s", opts.output)
	}
	log.Noticef("Conflict graph written to `%s`", opts.output)

	return cg, nil
}
