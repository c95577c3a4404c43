package main

import (
	"strings"
	"testing"

	"github.com/joshuapare/rotkit/rotate"
)

func TestSeqCommand(t *testing.T) {
	tests := []struct {
		name        string
		dir         rotate.Direction
		args        []string
		mode        string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "left by two",
			dir:         rotate.DirLeft,
			args:        []string{"2", "1", "2", "3", "4", "5"},
			wantContain: []string{"3 4 5 1 2"},
		},
		{
			name:        "right by two",
			dir:         rotate.DirRight,
			args:        []string{"2", "1", "2", "3", "4", "5"},
			wantContain: []string{"4 5 1 2 3"},
		},
		{
			name:        "cycle mode",
			dir:         rotate.DirLeft,
			args:        strings.Fields("4 1 2 3 4 5 6 7 8 9 10"),
			mode:        "cycle",
			wantContain: []string{"5 6 7 8 9 10 1 2 3 4"},
		},
		{
			name:        "json",
			dir:         rotate.DirRight,
			args:        []string{"1", "x", "y", "z"},
			wantJSON:    true,
			wantContain: []string{`"values"`, `"z"`, `"direction": "right"`},
		},
		{
			name:    "k too large",
			dir:     rotate.DirLeft,
			args:    []string{"4", "a", "b"},
			wantErr: true,
		},
		{
			name:    "k not a number",
			dir:     rotate.DirLeft,
			args:    []string{"two", "a", "b"},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			dir:     rotate.DirLeft,
			args:    []string{"1", "a", "b"},
			mode:    "fastest",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			if tt.mode != "" {
				tuneMode = tt.mode
			}

			output, err := captureOutput(t, func() error {
				return runSeq(tt.dir, tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runSeq() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestSeqEmpty(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runSeq(rotate.DirLeft, []string{"0"})
	})
	if err != nil {
		t.Fatalf("runSeq: %v", err)
	}
	if strings.TrimSpace(output) != "" {
		t.Fatalf("expected empty output, got %q", output)
	}
}
