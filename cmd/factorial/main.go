// Command factorial is a small illustrative client of greenroom,
// kept separate from the actor library itself: it wires up an engine
// with the default config, starts the Factorial(n) scenario, prints
// the result, and shuts down.
package main

import (
	"fmt"
	"os"

	"github.com/lguibr/actorcore/config"
	"github.com/lguibr/actorcore/examples"
	"github.com/lguibr/actorcore/greenroom"
	"github.com/spf13/cobra"
)

func main() {
	var n int

	cmd := &cobra.Command{
		Use:   "factorial",
		Short: "Compute n! with one actor spawned per step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactorial(n)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 10, "compute n!")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFactorial(n int) error {
	done := make(chan int, 1)
	engine := greenroom.NewEngine(config.DefaultConfig())

	root, err := engine.Start(examples.NewFactorialRole(n, done))
	if err != nil {
		return fmt.Errorf("factorial: failed to start: %w", err)
	}

	result := <-done
	fmt.Printf("%d! = %d\n", n, result)

	// The root actor already died after reporting its result, so the
	// engine will reach all-dead termination on its own; Join just
	// waits for that teardown to finish.
	engine.Join(root)
	return nil
}
