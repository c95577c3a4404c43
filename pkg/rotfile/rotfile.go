package rotfile

import (
	"errors"
	"fmt"

	"github.com/joshuapare/rotkit/internal/mmfile"
	"github.com/joshuapare/rotkit/internal/textenc"
	"github.com/joshuapare/rotkit/rotate"
)

// ErrNotRegular is returned when the target path is missing or a directory.
var ErrNotRegular = errors.New("rotfile: not a regular file")

// File rotates the file at path in place by k records in direction dir.
// The file is validated before any byte changes; a failed validation leaves
// it untouched.
func File(path string, k int, dir rotate.Direction, opts *Options) (*Result, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	var cfg rotate.Config
	if opts != nil {
		cfg = opts.Config
	}
	recordSize := opts.recordSize()

	m, err := mmfile.OpenWritable(path)
	if err != nil {
		return nil, fmt.Errorf("rotfile: open %s: %w", path, err)
	}
	defer m.Close()

	data := m.Bytes()
	records, err := rotate.CheckRecords(len(data), recordSize, k)
	if err != nil {
		return nil, err
	}
	if dir != rotate.DirLeft && dir != rotate.DirRight {
		return nil, rotate.ErrInvalidDirection
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Path:       path,
		Size:       len(data),
		RecordSize: recordSize,
		Records:    records,
		K:          k,
		Direction:  dir.String(),
		Mapped:     m.Mapped(),
	}
	dryRun := opts != nil && opts.DryRun
	if dryRun || (opts != nil && opts.CollectSteps) {
		res.Steps, err = rotate.PlanRecords(len(data), recordSize, k, dir, cfg)
		if err != nil {
			return nil, err
		}
	}
	if dryRun || k == 0 || k == records {
		return res, nil
	}

	if opts != nil && opts.CreateBackup {
		res.Backup = path + ".bak"
		if err := copyFile(path, res.Backup); err != nil {
			return nil, fmt.Errorf("rotfile: backup: %w", err)
		}
	}

	if err := rotate.Records(data, recordSize, k, dir, cfg); err != nil {
		return nil, err
	}
	if err := m.Flush(); err != nil {
		return nil, fmt.Errorf("rotfile: flush %s: %w", path, err)
	}
	if err := m.Close(); err != nil {
		return nil, fmt.Errorf("rotfile: close %s: %w", path, err)
	}
	return res, nil
}

// Text decodes src with the named encoding, rotates its characters by k in
// direction dir and re-encodes the result. Encoding names are those accepted
// by textenc.Lookup; the empty name means UTF-8.
func Text(src []byte, k int, dir rotate.Direction, encoding string) ([]byte, error) {
	enc, err := textenc.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	runes, err := textenc.DecodeRunes(enc, src)
	if err != nil {
		return nil, err
	}
	if err := rotate.CheckSplit(len(runes), k); err != nil {
		return nil, err
	}
	rotate.Rotate(runes, k, dir, rotate.Config{})
	return textenc.EncodeRunes(enc, runes)
}
