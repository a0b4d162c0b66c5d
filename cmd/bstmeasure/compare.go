package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

var cmdCompare = &cli.Command{
	Name:  "compare",
	Usage: "compare the cost of BST lookups with a linear scan of the same keys",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Usage:   "number of keys in the tree",
			Value:   1000,
			EnvVars: []string{"BST_SIZE"},
		},
		&cli.IntFlag{
			Name:  "lookups",
			Usage: "number of random lookups, about half of them hit",
			Value: 1000,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "seed of the random keys",
			Value:   0,
			EnvVars: []string{"BST_SEED"},
		},
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "insert keys in ascending order, which degenerates the tree into a chain",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, m := cctx.Int("size"), cctx.Int("lookups")
		if n <= 0 || m <= 0 {
			return fmt.Errorf("size and lookups must be positive")
		}
		rg := rand.New(rand.NewSource(cctx.Int64("seed")))
		tree, err := randomTree(rg, n, cctx.Bool("sorted"))
		if err != nil {
			return err
		}
		slog.Debug("built tree", "size", tree.Size(), "height", tree.Height())
		lookups := make([]int, m)
		for i := range lookups {
			lookups[i] = rg.Intn(2 * n)
		}
		linear, bst := measure(tree, lookups)
		w := cctx.App.Writer
		fmt.Fprintf(w, "size: %d, height: %d, lookups: %d\n", tree.Size(), tree.Height(), m)
		fmt.Fprintf(w, "linear: average %f, stddev %f\n", linear.mean, linear.stddev)
		fmt.Fprintf(w, "bst:    average %f, stddev %f\n", bst.mean, bst.stddev)
		slog.Info("comparison done", "linear", linear.mean, "bst", bst.mean)
		return nil
	},
}

// randomTree inserts n distinct keys drawn from [0, 2n).
func randomTree(rg *rand.Rand, n int, sorted bool) (*Trees.BSTree[int, string], error) {
	keys := rg.Perm(2 * n)[:n]
	if sorted {
		for i := range keys {
			keys[i] = 2 * i
		}
	}
	tree := Trees.New[int, string]()
	for _, k := range keys {
		if err := tree.Insert(k, fmt.Sprint(k)); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

type costStats struct {
	mean, stddev float64
}

func newCostStats(cs []int) costStats {
	if len(cs) == 0 {
		return costStats{}
	}
	var sum float64
	for _, v := range cs {
		sum += float64(v)
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := float64(v) - avg
		sum += a * a
	}
	return costStats{avg, math.Sqrt(sum / float64(len(cs)))}
}

// measure the comparison costs of looking up every key in keys.
func measure(tree *Trees.BSTree[int, string], keys []int) (linear, bst costStats) {
	ls, bs := make([]int, len(keys)), make([]int, len(keys))
	for i, k := range keys {
		ls[i], bs[i] = tree.FindComparison(k)
	}
	return newCostStats(ls), newCostStats(bs)
}
