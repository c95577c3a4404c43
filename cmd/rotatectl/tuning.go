package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rotkit/rotate"
)

// Tuning flags shared by every command that rotates or plans.
var (
	tuneMode         string
	tuneScratchBytes int
	tuneSmallTotal   int
	tuneLargeElement int
	direction        string
)

func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&tuneMode, "mode", "adaptive", "Strategy mode: adaptive, cycle, no-scratch")
	cmd.Flags().IntVar(&tuneScratchBytes, "scratch-bytes", 0, "Auxiliary buffer budget in bytes (0 = default, <0 disables)")
	cmd.Flags().IntVar(&tuneSmallTotal, "small-total", 0, "Window length below which cycles are followed (0 = default, <0 disables)")
	cmd.Flags().IntVar(&tuneLargeElement, "large-element", 0, "Element size in bytes above which cycles are followed (0 = default)")
}

func addDirectionFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&direction, "direction", "d", "left", "Rotation direction: left or right")
}

func resetTuningFlags() {
	tuneMode = "adaptive"
	tuneScratchBytes = 0
	tuneSmallTotal = 0
	tuneLargeElement = 0
	direction = "left"
}

// tuningConfig builds a rotate.Config from the tuning flags.
func tuningConfig() (rotate.Config, error) {
	mode, err := rotate.ParseMode(tuneMode)
	if err != nil {
		return rotate.Config{}, err
	}
	if tuneLargeElement < 0 {
		return rotate.Config{}, fmt.Errorf("--large-element must not be negative, got %d", tuneLargeElement)
	}
	return rotate.Config{
		Mode:              mode,
		ScratchBytes:      tuneScratchBytes,
		SmallTotal:        tuneSmallTotal,
		LargeElementBytes: uintptr(tuneLargeElement),
	}, nil
}

// parseCount parses a non-negative integer argument.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, s)
	}
	return n, nil
}
