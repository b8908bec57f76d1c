package cli

import (
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcjcycles/builder"
	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/graphio"
)

type simulateOpts struct {
	pipelineOpts
	vertices    int
	probability float64
	genes       int
	seed        int64
	graphOutput string
}

// simulateCommand creates the simulate command: a seeded random adjacency
// graph is sampled and fed through the cycles pipeline.
func (c *CLI) simulateCommand() *cobra.Command {
	opts := simulateOpts{vertices: 10, probability: 0.3, seed: 1}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Build the conflict graph of a random adjacency graph",
		Long: `Sample a bipartite adjacency graph with --vertices adjacencies per genome,
joining each cross pair with --probability, then build its conflict graph.
The same --seed always yields the same graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fill(cmd.Flags(), c.config.simulateValues()); err != nil {
				return err
			}

			bopts := []builder.BuilderOption{builder.WithSeed(opts.seed), builder.WithBracketEdgeLabels()}
			if opts.genes > 0 {
				bopts = append(bopts, builder.WithGenes(opts.genes))
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithGraphLabel("simulated")},
				bopts,
				builder.RandomAdjacency(opts.vertices, opts.probability),
			)
			if err != nil {
				return err
			}
			log.Noticef("Sampled %d vertices and %d edges (seed %d)", g.VertexCount(), g.EdgeCount(), opts.seed)

			if opts.graphOutput != "" {
				if err := writeGraph(opts.graphOutput, g); err != nil {
					return err
				}
			}

			_, err = runPipeline(cmd.Context(), g, opts.pipelineOpts)
			return err
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", opts.vertices, "adjacencies per genome")
	cmd.Flags().Float64VarP(&opts.probability, "probability", "p", opts.probability, "probability of each cross edge")
	cmd.Flags().IntVar(&opts.genes, "genes", 0, "number of genes (0: one per adjacency)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVar(&opts.graphOutput, "graph-output", "", "also write the sampled adjacency graph here")

	return cmd
}

func writeGraph(name string, g *core.Graph) error {
	w, err := xopen.Wopen(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	if err := graphio.WriteGraph(w, g); err != nil {
		w.Close()
		return err
	}
	return errors.Wrapf(w.Close(), "close %s", name)
}
