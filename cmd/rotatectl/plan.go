package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rotkit/rotate"
)

var planElemSize int

func init() {
	cmd := newPlanCmd()
	cmd.Flags().IntVar(&planElemSize, "elem-size", 8, "Element size in bytes")
	addDirectionFlag(cmd)
	addTuningFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <len> <k>",
		Short: "Show the strategy steps a rotation would take",
		Long: `The plan command prints the sequence of data-movement steps used to
rotate a sequence of the given length by k positions, without moving any data.

Example:
  rotatectl plan 10 4 --mode cycle
  rotatectl plan 590 300 --elem-size 1
  rotatectl plan 1000 3 --direction right --elem-size 64 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args)
		},
	}
	return cmd
}

type planStep struct {
	Strategy string `json:"strategy"`
	Base     int    `json:"base"`
	Left     int    `json:"left"`
	Right    int    `json:"right"`
	Cycles   int    `json:"cycles,omitempty"`
	Rounds   int    `json:"rounds,omitempty"`
	Swapped  int    `json:"swapped,omitempty"`
}

func runPlan(args []string) error {
	n, err := parseCount("len", args[0])
	if err != nil {
		return err
	}
	k, err := parseCount("k", args[1])
	if err != nil {
		return err
	}
	dir, err := rotate.ParseDirection(direction)
	if err != nil {
		return err
	}
	cfg, err := tuningConfig()
	if err != nil {
		return err
	}
	if planElemSize < 0 {
		return fmt.Errorf("--elem-size must not be negative, got %d", planElemSize)
	}

	steps, err := rotate.Plan(n, k, dir, uintptr(planElemSize), cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		out := make([]planStep, 0, len(steps))
		for _, st := range steps {
			out = append(out, planStep{
				Strategy: st.Strategy.String(),
				Base:     st.Base,
				Left:     st.Left,
				Right:    st.Right,
				Cycles:   st.Cycles,
				Rounds:   st.Rounds,
				Swapped:  st.Swapped(),
			})
		}
		return printJSON(map[string]interface{}{
			"len":       n,
			"k":         k,
			"direction": dir.String(),
			"elem_size": planElemSize,
			"mode":      cfg.Mode.String(),
			"steps":     out,
		})
	}

	printVerbose("Planning %s rotation of %d elements (%d bytes each) by %d\n", dir, n, planElemSize, k)
	if len(steps) == 0 {
		printInfo("no-op\n")
		return nil
	}
	for i, st := range steps {
		printInfo("%3d  %s\n", i+1, st)
	}
	return nil
}
