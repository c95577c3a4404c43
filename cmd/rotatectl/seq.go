package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rotkit/cmd/rotatectl/logger"
	"github.com/joshuapare/rotkit/rotate"
)

func init() {
	left := newSeqCmd(rotate.DirLeft)
	addTuningFlags(left)
	rootCmd.AddCommand(left)

	right := newSeqCmd(rotate.DirRight)
	addTuningFlags(right)
	rootCmd.AddCommand(right)
}

func newSeqCmd(dir rotate.Direction) *cobra.Command {
	name := dir.String()
	cmd := &cobra.Command{
		Use:   name + " <k> [value...]",
		Short: "Rotate the given values " + name + " by k positions",
		Long: `The ` + name + ` command rotates the values given on the command line ` + name + `
by k positions and prints the result.

Example:
  rotatectl ` + name + ` 2 1 2 3 4 5
  rotatectl ` + name + ` 4 a b c d e f g h i j --mode cycle
  rotatectl ` + name + ` 1 x y z --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeq(dir, args)
		},
	}
	return cmd
}

func runSeq(dir rotate.Direction, args []string) error {
	k, err := parseCount("k", args[0])
	if err != nil {
		return err
	}
	values := append([]string(nil), args[1:]...)
	if err := rotate.CheckSplit(len(values), k); err != nil {
		return err
	}
	cfg, err := tuningConfig()
	if err != nil {
		return err
	}

	logger.L.Debug("rotating values", "direction", dir.String(), "k", k, "n", len(values), "mode", cfg.Mode.String())
	rotate.Rotate(values, k, dir, cfg)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"direction": dir.String(),
			"k":         k,
			"values":    values,
		})
	}
	printInfo("%s\n", strings.Join(values, " "))
	return nil
}
