package rotfile

import "github.com/joshuapare/rotkit/rotate"

// Options controls File.
type Options struct {
	// RecordSize is the size in bytes of one element of the file. The file
	// length must be a multiple of it. Default: 1.
	RecordSize int

	// Config tunes strategy selection. The zero value uses the defaults.
	Config rotate.Config

	// CreateBackup copies the file to <path>.bak before modifying it.
	CreateBackup bool

	// DryRun computes the plan without touching the file.
	DryRun bool

	// CollectSteps fills Result.Steps with the strategy steps. DryRun
	// implies it.
	CollectSteps bool
}

// Result describes a completed File call.
type Result struct {
	Path       string        `json:"path"`
	Size       int           `json:"size"`
	RecordSize int           `json:"record_size"`
	Records    int           `json:"records"`
	K          int           `json:"k"`
	Direction  string        `json:"direction"`
	Mapped     bool          `json:"mapped"`
	Backup     string        `json:"backup,omitempty"`
	Steps      []rotate.Step `json:"-"`
}

func (o *Options) recordSize() int {
	if o == nil || o.RecordSize == 0 {
		return 1
	}
	return o.RecordSize
}
