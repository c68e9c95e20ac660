// Command meshxbench measures Intersect throughput over synthetic
// meshes across backends and sizes, the way sublperf measured kernel
// throughput over synthetic vectors and matrices.
package main

import (
	"context"
	"fmt"
	stdruntime "runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/sbl8/meshx/core"
	meshxruntime "github.com/sbl8/meshx/runtime"
)

var (
	rows    int
	density float64
	iters   int
	backend string
)

func main() {
	root := &cobra.Command{
		Use:   "meshxbench",
		Short: "Benchmark Intersect throughput over synthetic meshes",
		RunE:  runBench,
	}
	root.Flags().IntVar(&rows, "rows", 10_000, "rows per synthetic mesh")
	root.Flags().Float64Var(&density, "density", 0.5, "fraction of rows shared between the two meshes")
	root.Flags().IntVar(&iters, "iter", 5, "number of timed iterations")
	root.Flags().StringVar(&backend, "backend", "auto", "backend: auto, serial, or pool")

	if err := root.Execute(); err != nil {
		fmt.Println(err)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	fmt.Printf("meshx benchmark\n")
	fmt.Printf("Go: %s  OS/Arch: %s/%s  CPUs: %d\n",
		stdruntime.Version(), stdruntime.GOOS, stdruntime.GOARCH, stdruntime.NumCPU())
	fmt.Printf("rows=%d density=%.2f iter=%d backend=%s\n\n", rows, density, iters, backend)

	src := rand.NewSource(1)
	rng := rand.New(src)
	a, b := syntheticMeshes(rng, rows, density)

	ws := meshxruntime.NewWorkspace()
	switch backend {
	case "serial":
		ws.SetBackend(meshxruntime.SerialBackend{})
	case "pool":
		ws.SetBackend(meshxruntime.NewPoolBackend(0))
	case "auto":
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	ctx := context.Background()
	var total time.Duration
	var outRows int
	for i := 0; i < iters; i++ {
		start := time.Now()
		out, err := meshxruntime.IntersectWith(ctx, a, b, ws)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("intersect: %w", err)
		}
		total += elapsed
		outRows = out.RowCount()
		fmt.Printf("iter %d: %v (%d rows -> %d rows)\n", i, elapsed, rows, out.RowCount())
	}

	avg := total / time.Duration(iters)
	fmt.Printf("\naverage: %v (%.2f rows/ms, output rows=%d)\n",
		avg, float64(rows)/float64(avg.Milliseconds()+1), outRows)
	return nil
}

// syntheticMeshes builds a mesh a of rows rows and a mesh b holding
// approximately density*rows of a's row keys, each shared row carrying a
// single interval that partially overlaps between the two meshes.
func syntheticMeshes(rng *rand.Rand, rows int, density float64) (core.Mesh, core.Mesh) {
	aRowKeys := make([]core.RowKey, rows)
	aRowPtr := make([]uint64, rows+1)
	aIntervals := make([]core.Interval, rows)

	var bRowKeys []core.RowKey
	bRowPtr := []uint64{0}
	var bIntervals []core.Interval

	for i := 0; i < rows; i++ {
		y := int32(i)
		aRowKeys[i] = core.RowKey{Y: y, Z: 0}
		aIntervals[i] = core.Interval{Begin: int32(i * 10), End: int32(i*10 + 8)}
		aRowPtr[i+1] = uint64(i + 1)

		if rng.Float64() < density {
			bRowKeys = append(bRowKeys, core.RowKey{Y: y, Z: 0})
			bIntervals = append(bIntervals, core.Interval{Begin: int32(i*10 + 4), End: int32(i*10 + 12)})
			bRowPtr = append(bRowPtr, uint64(len(bIntervals)))
		}
	}

	a := core.New(aRowKeys, aRowPtr, aIntervals)
	b := core.New(bRowKeys, bRowPtr, bIntervals)
	return a, b
}
