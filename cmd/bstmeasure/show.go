package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "insert the given entries in order and print the resulting tree",
	ArgsUsage: "<key[=value]>...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "order",
			Usage: "traversal to print: pre, in, post or level",
			Value: "pre",
		},
		&cli.StringSliceFlag{
			Name:  "remove",
			Usage: "keys to remove after inserting, in order",
		},
	},
	Action: func(cctx *cli.Context) error {
		tree, err := buildTree(cctx.Args().Slice())
		if err != nil {
			return err
		}
		for _, s := range cctx.StringSlice("remove") {
			k, err := Trees.ParseKey[int](s)
			if err != nil {
				return err
			}
			if err := tree.Remove(k); err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			slog.Debug("removed", "key", k, "size", tree.Size())
		}
		return printTree(cctx.App.Writer, tree, cctx.String("order"))
	},
}

// parseEntry reads "key" or "key=value". A missing value is the key itself.
func parseEntry(s string) (int, string, error) {
	ks, v, found := strings.Cut(s, "=")
	k, err := Trees.ParseKey[int](ks)
	if err != nil {
		return 0, "", err
	}
	if !found {
		v = ks
	}
	return k, v, nil
}

func buildTree(args []string) (*Trees.BSTree[int, string], error) {
	tree := Trees.New[int, string]()
	for _, a := range args {
		k, v, err := parseEntry(a)
		if err != nil {
			return nil, err
		}
		if err := tree.Insert(k, v); err != nil {
			return nil, fmt.Errorf("insert %q: %w", a, err)
		}
		slog.Debug("inserted", "key", k, "value", v, "size", tree.Size())
	}
	return tree, nil
}

func traversal(tree *Trees.BSTree[int, string], order string) (Trees.Iterator[int, string], error) {
	switch order {
	case "pre", "":
		return tree.PreOrder(), nil
	case "in":
		return tree.InOrder(), nil
	case "post":
		return tree.PostOrder(), nil
	case "level":
		return tree.LevelOrder(), nil
	default:
		return nil, fmt.Errorf("unknown order %q", order)
	}
}

func printTree(w io.Writer, tree *Trees.BSTree[int, string], order string) error {
	it, err := traversal(tree, order)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tree)
	fmt.Fprint(w, tree.Render())
	var keys []string
	it.Range(func(n *Trees.Node[int, string]) bool {
		keys = append(keys, fmt.Sprint(n.Key()))
		return true
	})
	fmt.Fprintf(w, "%s-order: [%s]\n", order, strings.Join(keys, " "))
	fmt.Fprintf(w, "size: %d, height: %d, valid: %v\n", tree.Size(), tree.Height(), tree.IsValid())
	if mn, mx := tree.Minimum(), tree.Maximum(); mn != nil {
		fmt.Fprintf(w, "min: %v, max: %v\n", mn, mx)
	}
	return nil
}
