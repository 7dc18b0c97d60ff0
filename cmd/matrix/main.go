// Command matrix is an illustrative client of greenroom running the
// matrix-rows scenario: one actor per column forwards a running
// prefix sum down the pipeline, sleeping per cell, and the last
// column reports each row's total once every row has passed through.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lguibr/actorcore/config"
	"github.com/lguibr/actorcore/examples"
	"github.com/lguibr/actorcore/greenroom"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Sum matrix rows with one actor per column",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix()
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMatrix() error {
	// | 1  1  12 |
	// |23  3   7 |
	values := [][]int{
		{1, 1, 12},
		{23, 3, 7},
	}
	delays := [][]time.Duration{
		{2 * time.Millisecond, 5 * time.Millisecond, 4 * time.Millisecond},
		{9 * time.Millisecond, 11 * time.Millisecond, 2 * time.Millisecond},
	}

	done := make(chan []int, 1)
	engine := greenroom.NewEngine(config.DefaultConfig())

	root, err := engine.Start(examples.NewMatrixRole(values, delays, done))
	if err != nil {
		return fmt.Errorf("matrix: failed to start: %w", err)
	}

	rows := <-done
	for r, sum := range rows {
		fmt.Printf("row %d: %d\n", r, sum)
	}

	engine.Join(root)
	return nil
}
