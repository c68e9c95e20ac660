// Command meshxbuild compiles a meshbuild DSL text file into a binary
// meshio-format mesh file, the way sublc compiled a .subs spec into a
// .subl binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbl8/meshx/core"
	"github.com/sbl8/meshx/meshbuild"
	"github.com/sbl8/meshx/meshio"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "meshxbuild <src.mesht> <out.mesh>",
		Short: "Compile a mesh DSL source file into a binary mesh file",
		Args:  cobra.ExactArgs(2),
		RunE:  runBuild,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "print row and interval counts")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	srcFile, outFile := args[0], args[1]

	src, err := os.ReadFile(srcFile)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	m, err := meshbuild.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", srcFile, err)
	}

	if err := core.Validate(m); err != nil {
		return fmt.Errorf("compiled mesh fails validation: %w", err)
	}

	data, err := meshio.Serialize(m)
	if err != nil {
		return fmt.Errorf("serializing mesh: %w", err)
	}

	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}

	if verbose {
		fmt.Printf("compiled %s -> %s: %d rows, %d intervals, %d bytes\n",
			srcFile, outFile, m.RowCount(), m.IntervalCount(), len(data))
	}
	return nil
}
