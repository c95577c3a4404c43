package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rotkit/internal/textenc"
	"github.com/joshuapare/rotkit/internal/writer"
	"github.com/joshuapare/rotkit/pkg/rotfile"
	"github.com/joshuapare/rotkit/rotate"
)

var (
	textEncoding string
	textOutput   string
	textInput    io.Reader = os.Stdin
)

func init() {
	cmd := newTextCmd()
	cmd.Flags().StringVarP(&textEncoding, "encoding", "e", "utf-8",
		"Text encoding ("+strings.Join(textenc.Names(), ", ")+")")
	cmd.Flags().StringVarP(&textOutput, "output", "o", "", "Write the result to this file instead of stdout")
	addDirectionFlag(cmd)
	rootCmd.AddCommand(cmd)
}

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text <k> [text]",
		Short: "Rotate the characters of text",
		Long: `The text command rotates text by k characters (not bytes) and writes
the result in the same encoding. Without a text argument it reads stdin.

Example:
  rotatectl text 2 hello
  echo -n "héllo" | rotatectl text 1 --direction right
  rotatectl text 3 --encoding windows-1252 < legacy.txt -o rotated.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runText(args)
		},
	}
	return cmd
}

func runText(args []string) error {
	k, err := parseCount("k", args[0])
	if err != nil {
		return err
	}
	dir, err := rotate.ParseDirection(direction)
	if err != nil {
		return err
	}

	var src []byte
	if len(args) > 1 {
		src = []byte(args[1])
	} else {
		src, err = io.ReadAll(textInput)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	out, err := rotfile.Text(src, k, dir, textEncoding)
	if err != nil {
		return err
	}

	if textOutput != "" {
		w := &writer.FileWriter{Path: textOutput}
		if err := w.Write(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printVerbose("Wrote %d bytes to %s\n", len(out), textOutput)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"encoding":  textEncoding,
			"direction": dir.String(),
			"k":         k,
			"bytes":     len(out),
			"output":    textOutput,
		})
	}
	if textOutput != "" {
		return nil
	}
	if !quiet {
		_, err = os.Stdout.Write(out)
	}
	return err
}
