// Command meshxcat loads one or two binary mesh files and either prints
// a mesh's rows or, given two files, prints their intersection — the
// load-then-run shape sublrun used for a compiled model, retargeted at
// Intersect instead of a graph-execution engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbl8/meshx/core"
	meshxruntime "github.com/sbl8/meshx/runtime"
	"github.com/sbl8/meshx/meshio"
)

var (
	workers int
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "meshxcat <a.mesh> [b.mesh]",
		Short: "Print a mesh, or the intersection of two meshes",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runCat,
	}
	root.Flags().IntVar(&workers, "workers", 0, "worker count for the pool backend (0 = auto)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-row detail")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCat(cmd *cobra.Command, args []string) error {
	a, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		printMesh(a)
		return nil
	}

	b, err := loadMesh(args[1])
	if err != nil {
		return err
	}

	ws := meshxruntime.NewWorkspace()
	if workers > 0 {
		ws.SetBackend(meshxruntime.NewPoolBackend(workers))
	}

	out, err := meshxruntime.IntersectWith(cmd.Context(), a, b, ws)
	if err != nil {
		return fmt.Errorf("intersect: %w", err)
	}
	printMesh(out)
	return nil
}

func loadMesh(path string) (core.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Empty, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := meshio.Deserialize(data)
	if err != nil {
		return core.Empty, fmt.Errorf("decoding %s: %w", path, err)
	}
	return m, nil
}

func printMesh(m core.Mesh) {
	fmt.Printf("rows=%d intervals=%d\n", m.RowCount(), m.IntervalCount())
	if !verbose {
		return
	}
	for i := 0; i < m.RowCount(); i++ {
		fmt.Printf("row (%d,%d):", m.RowKeys[i].Y, m.RowKeys[i].Z)
		for _, iv := range m.Row(i) {
			fmt.Printf(" [%d,%d)", iv.Begin, iv.End)
		}
		fmt.Println()
	}
}
