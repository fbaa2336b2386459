package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.lepak.sg/dtree/forest"
	"go.lepak.sg/dtree/growth"
	"go.lepak.sg/dtree/tree"
	"go.lepak.sg/dtree/tree/visitor"
)

type options struct {
	seed     int64
	pPrune   float64
	pRemove  float64
	pStop    float64
	maxSteps int
	order    string
	queries  []float64
	trees    int
	inflight int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "growtree",
		Short: "grow random decision trees",
		Long: `Grow a decision tree by splitting, pruning and stopping, then print
it with its traversal, depth, leaf count and query results.
With --trees greater than 1, grow that many trees from consecutive seeds
and print a summary table instead.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&opts.seed, "seed", "s", 0, "seed (default current unix time in ns)")
	f.Float64Var(&opts.pPrune, "prune", growth.DefaultPPrune, "chance of switching from splitting to pruning; 0 never prunes")
	f.Float64Var(&opts.pRemove, "remove", growth.DefaultPRemove, "chance of pruning a childless node; 0 never removes")
	f.Float64Var(&opts.pStop, "stop", growth.DefaultPStop, "chance of switching from pruning to stopping; 0 never stops")
	f.IntVar(&opts.maxSteps, "max-steps", growth.DefaultMaxSteps, "give up after this many growth steps")
	f.StringVar(&opts.order, "order", "bfs", "traversal order to print: bfs or preorder")
	f.Float64SliceVarP(&opts.queries, "query", "q", nil, "values to query the grown tree with")
	f.IntVarP(&opts.trees, "trees", "n", 1, "number of trees to grow")
	f.IntVar(&opts.inflight, "inflight", 4, "trees grown at once when --trees > 1")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log stale nodes and forced stops")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *options) config() growth.Config {
	cfg := growth.Config{
		PPrune:      o.pPrune,
		PRemove:     o.pRemove,
		PStop:       o.pStop,
		NeverPrune:  o.pPrune == 0,
		NeverRemove: o.pRemove == 0,
		NeverStop:   o.pStop == 0,
		MaxSteps:    o.maxSteps,
		Seed:        o.seed,
		Logger:      growth.NoopLogger{},
	}
	if o.verbose {
		cfg.Logger = growth.DefaultLogger{}
	}
	return cfg
}

func (o *options) run(cmd *cobra.Command) error {
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	ord, err := visitor.ParseOrder(o.order)
	if err != nil {
		return err
	}

	if o.trees > 1 {
		return o.runForest(cmd.Context(), cmd.OutOrStdout())
	}

	b, err := growth.NewBuilder(o.config())
	if err != nil {
		return err
	}
	if err := b.Construct(); err != nil {
		return err
	}

	return o.report(cmd.OutOrStdout(), b.Tree(), b.Stats(), ord)
}

func (o *options) report(w io.Writer, tr *tree.Tree, stats growth.Stats, ord visitor.Order) error {
	fmt.Fprintln(w, "seed:", o.seed)
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())

	fmt.Fprintf(w, "%s:", ord)
	i := ord.Iterator(tr.Root())
	for i.Next() {
		fmt.Fprintf(w, " %d", i.Item().Order())
	}
	fmt.Fprintln(w)

	var depth visitor.Depth
	var leaves visitor.CountLeaves
	visitor.Walk(tr.Root(), &depth, ord)
	visitor.Walk(tr.Root(), &leaves, ord)
	fmt.Fprintln(w, "depth:", depth.Result(), "leaves:", leaves.Result())
	fmt.Fprintln(w, "stats:", stats)

	for _, q := range o.queries {
		category, err := tr.Operation(q)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "query %v: %s\n", q, category)
	}

	return nil
}

func (o *options) runForest(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	seeds := make([]int64, o.trees)
	for i := range seeds {
		seeds[i] = o.seed + int64(i)
	}

	results, err := forest.Grow(ctx, o.config(), seeds, o.inflight)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"seed", "steps", "splits", "prunes", "nodes", "leaves", "depth", "error"})
	for _, r := range results {
		errStr := ""
		if r.Err != nil {
			errStr = r.Err.Error()
		}
		table.Append([]string{
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Stats.Steps),
			strconv.Itoa(r.Stats.Splits),
			strconv.Itoa(r.Stats.Prunes),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Leaves),
			strconv.Itoa(r.Depth),
			errStr,
		})
	}
	table.Render()

	return nil
}
