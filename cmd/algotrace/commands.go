package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algotrace/algotrace/avl"
	"github.com/algotrace/algotrace/binarytree"
	"github.com/algotrace/algotrace/graph"
	"github.com/algotrace/algotrace/input"
	"github.com/algotrace/algotrace/pseudolist"
	"github.com/algotrace/algotrace/queuesim"
	"github.com/algotrace/algotrace/trace"
	"github.com/algotrace/algotrace/traverse"
)

// graphFlags is the shared flag set of the bfs and dfs commands: either an
// explicit node/edge list or a seeded random graph.
type graphFlags struct {
	nodesRaw string
	edgesRaw string
	random   int
	extra    int
	seed     int64
	start    int
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nodesRaw, "nodes", "", "comma/space separated node ids, e.g. \"0,1,2,3\"")
	cmd.Flags().StringVar(&f.edgesRaw, "edges", "", "comma separated edges, e.g. \"0-1,0-2,1-3\"")
	cmd.Flags().IntVar(&f.random, "random", 0, "generate a random connected graph of this many nodes instead")
	cmd.Flags().IntVar(&f.extra, "extra", 0, "extra edges beyond the spanning tree (with --random)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "rng seed (with --random)")
	cmd.Flags().IntVar(&f.start, "start", 0, "start node id")
}

// resolve builds the adjacency and label lookup from the flags.
func (f *graphFlags) resolve() (graph.Adjacency, map[trace.NodeID]string, error) {
	var (
		nodes []graph.Node
		edges []graph.Edge
		err   error
	)
	if f.random > 0 {
		nodes, edges, err = graph.Random(f.random, f.extra, graph.WithSeed(f.seed))
		if err != nil {
			return nil, nil, err
		}
	} else {
		if nodes, err = parseNodes(f.nodesRaw); err != nil {
			return nil, nil, err
		}
		if edges, err = parseEdges(f.edgesRaw); err != nil {
			return nil, nil, err
		}
	}
	return graph.BuildAdjacency(nodes, edges), graph.Labels(nodes), nil
}

func parseNodes(raw string) ([]graph.Node, error) {
	ids, err := input.ParseInts(raw)
	if err != nil {
		return nil, fmt.Errorf("--nodes: %w", err)
	}
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = graph.Node{ID: trace.NodeID(id), Value: id}
	}
	return nodes, nil
}

// parseEdges reads "a-b" pairs separated by commas or spaces.
func parseEdges(raw string) ([]graph.Edge, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	edges := make([]graph.Edge, 0, len(fields))
	for _, pair := range fields {
		from, to, ok := strings.Cut(pair, "-")
		if !ok {
			return nil, fmt.Errorf("--edges: %q is not of the form a-b", pair)
		}
		u, err := input.ParseInt(from)
		if err != nil {
			return nil, fmt.Errorf("--edges: %w", err)
		}
		v, err := input.ParseInt(to)
		if err != nil {
			return nil, fmt.Errorf("--edges: %w", err)
		}
		edges = append(edges, graph.Edge{From: trace.NodeID(u), To: trace.NodeID(v)})
	}
	return edges, nil
}

func newBFSCmd() *cobra.Command {
	var f graphFlags
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "breadth-first traversal step trace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adj, labels, err := f.resolve()
			if err != nil {
				return err
			}
			tr, err := traverse.BFS(adj, trace.NodeID(f.start), traverse.WithLabels(labels))
			if err != nil {
				return err
			}
			renderTrace(cmd.OutOrStdout(), tr)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDFSCmd() *cobra.Command {
	var f graphFlags
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "depth-first traversal step trace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adj, labels, err := f.resolve()
			if err != nil {
				return err
			}
			tr, err := traverse.DFS(adj, trace.NodeID(f.start), traverse.WithLabels(labels))
			if err != nil {
				return err
			}
			renderTrace(cmd.OutOrStdout(), tr)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newWalkCmd() *cobra.Command {
	var preRaw, postRaw, inRaw, orderName string
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "reconstruct a tree from traversal sequences and walk it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := input.ParseInts(inRaw)
			if err != nil {
				return fmt.Errorf("--in: %w", err)
			}

			var root *binarytree.Node
			switch {
			case preRaw != "" && postRaw != "":
				return fmt.Errorf("give either --pre or --post, not both")
			case preRaw != "":
				pre, err := input.ParseInts(preRaw)
				if err != nil {
					return fmt.Errorf("--pre: %w", err)
				}
				if root, err = binarytree.BuildFromPreIn(pre, in); err != nil {
					return err
				}
			case postRaw != "":
				post, err := input.ParseInts(postRaw)
				if err != nil {
					return fmt.Errorf("--post: %w", err)
				}
				if root, err = binarytree.BuildFromPostIn(post, in); err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --pre or --post is required")
			}

			order, err := binarytree.ParseOrder(orderName)
			if err != nil {
				return err
			}
			tr, values, err := binarytree.Walk(root, order)
			if err != nil {
				return err
			}
			renderTrace(cmd.OutOrStdout(), tr)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", order, values)
			return nil
		},
	}
	cmd.Flags().StringVar(&preRaw, "pre", "", "preorder sequence")
	cmd.Flags().StringVar(&postRaw, "post", "", "postorder sequence")
	cmd.Flags().StringVar(&inRaw, "in", "", "inorder sequence (required)")
	cmd.Flags().StringVar(&orderName, "order", "inorder", "walk order: inorder|preorder|postorder")
	return cmd
}

func newAVLCmd() *cobra.Command {
	var insertRaw, deleteRaw string
	cmd := &cobra.Command{
		Use:   "avl",
		Short: "AVL inserts/deletes with rotation reporting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tree := avl.New(avl.WithOnRotate(func(kind avl.RotationKind, pivot trace.NodeID) {
				fmt.Fprintf(out, "  rotation %s at node %d\n", kind, pivot)
			}))

			if insertRaw != "" {
				values, err := input.ParseInts(insertRaw)
				if err != nil {
					return fmt.Errorf("--insert: %w", err)
				}
				for _, v := range values {
					fmt.Fprintf(out, "insert %d:\n", v)
					fmt.Fprintf(out, "  %s\n", tree.Insert(v))
				}
			}
			if deleteRaw != "" {
				values, err := input.ParseInts(deleteRaw)
				if err != nil {
					return fmt.Errorf("--delete: %w", err)
				}
				for _, v := range values {
					fmt.Fprintf(out, "delete %d:\n", v)
					fmt.Fprintf(out, "  %s\n", tree.Delete(v))
				}
			}

			if root := tree.Root(); root != nil {
				fmt.Fprintf(out, "root: %d (height %d)\n", root.Value, root.Height)
			}
			fmt.Fprintf(out, "inorder: %v\n", tree.InorderValues())
			return nil
		},
	}
	cmd.Flags().StringVar(&insertRaw, "insert", "", "values to insert, in order")
	cmd.Flags().StringVar(&deleteRaw, "delete", "", "values to delete after the inserts")
	return cmd
}

func newFloydCmd() *cobra.Command {
	var valuesRaw string
	var cycleTo int
	cmd := &cobra.Command{
		Use:   "floyd",
		Short: "Floyd cycle detection over a pseudo linked list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := input.ParseInts(valuesRaw)
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			list := pseudolist.New(values)
			if cycleTo >= 0 {
				if err := list.WithCycleTo(cycleTo); err != nil {
					return err
				}
			}

			res, tr := pseudolist.DetectCycle(list)
			renderTrace(cmd.OutOrStdout(), tr)
			switch {
			case res.Found:
				fmt.Fprintf(cmd.OutOrStdout(), "cycle found, meeting index %d (%d iterations)\n",
					res.MeetingIndex, res.Iterations)
			case res.Inconclusive:
				fmt.Fprintf(cmd.OutOrStdout(), "inconclusive after %d iterations\n", res.Iterations)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "no cycle (%d iterations)\n", res.Iterations)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&valuesRaw, "values", "", "list values")
	cmd.Flags().IntVar(&cycleTo, "cycle-to", -1, "redirect the tail to this index (-1: no cycle)")
	return cmd
}

func newBinaryCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "binary",
		Short: "generate binary numbers 1..n through a queue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, out, err := queuesim.BinaryNumbers(count)
			if err != nil {
				return err
			}
			renderTrace(cmd.OutOrStdout(), tr)
			fmt.Fprintf(cmd.OutOrStdout(), "output: %s\n", strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "how many binary numbers (1..20)")
	return cmd
}

func newTwoSumCmd() *cobra.Command {
	var numsRaw string
	var target int
	cmd := &cobra.Command{
		Use:   "twosum",
		Short: "scan for two values summing to the target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			nums, err := input.ParseInts(numsRaw)
			if err != nil {
				return fmt.Errorf("--nums: %w", err)
			}
			tr, pair := queuesim.TwoSum(nums, target)
			renderTrace(cmd.OutOrStdout(), tr)
			if pair != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "pair: indices [%d, %d], values %d + %d = %d\n",
					pair.I, pair.J, nums[pair.I], nums[pair.J], target)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no pair found")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&numsRaw, "nums", "", "values to scan")
	cmd.Flags().IntVar(&target, "target", 0, "target sum")
	return cmd
}
