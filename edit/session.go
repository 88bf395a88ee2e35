package edit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"dcmedit/dcm"
	"dcmedit/render"
)

type (
	// Mode selects where Commit writes.
	Mode int

	// Op says which kind of change a ChangeResult reports.
	Op int

	// ChangeResult reports the outcome of one staged change after a commit.
	// A commit returns one result per change; failed changes carry their
	// error here and do not fail their siblings.
	ChangeResult struct {
		Address Address
		Op      Op
		Err     error
	}

	// Session binds a change set to one file on disk. The decoded file held
	// here backs row rendering only; Commit always re-reads and re-decodes
	// from disk, so changes apply to the current bytes even if the file
	// moved underneath the session.
	Session struct {
		path    string
		file    *dcm.File
		changes *ChangeSet
	}
)

const (
	// ModeNew writes a sibling file with "_edited" before the extension.
	ModeNew Mode = iota
	// ModeReplace overwrites the original path atomically.
	ModeReplace
)

const (
	OpEdit Op = iota
	OpRemove
)

func (o Op) String() string {
	if o == OpRemove {
		return "remove"
	}
	return "edit"
}

// Open reads and decodes a file and starts a session with an empty change
// set.
func Open(path string) (*Session, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `Open error: read "%s"`, path)
	}
	file, err := dcm.Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `Open error: decode "%s"`, path)
	}
	return &Session{
		path:    path,
		file:    file,
		changes: NewChangeSet(),
	}, nil
}

func (s *Session) Path() string { return s.path }

func (s *Session) File() *dcm.File { return s.file }

// Rows flattens the decoded data set for display.
func (s *Session) Rows() []render.Row {
	return render.Flatten(s.file.Data)
}

func (s *Session) StageEdit(address Address, vr string, value string) {
	s.changes.StageEdit(address, vr, value)
}

func (s *Session) StageRemoval(address Address) {
	s.changes.StageRemoval(address)
}

func (s *Session) Discard() {
	s.changes.Discard()
}

// Pending is the number of staged changes.
func (s *Session) Pending() int {
	return s.changes.Len()
}

// Commit re-reads the file from disk, applies every staged change to the
// fresh decode, and persists the result. Edits apply before removals, so a
// removal staged at an edited address wins. Per-change failures are
// collected in the results; a decode or write failure aborts the whole
// commit with the on-disk file untouched and the change set intact. On
// success the change set is cleared.
func (s *Session) Commit(mode Mode) ([]ChangeResult, error) {
	bs, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, `Commit error: read "%s"`, s.path)
	}
	file, err := dcm.Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `Commit error: decode "%s"`, s.path)
	}

	results := make([]ChangeResult, 0, s.changes.Len())
	for _, edit := range s.changes.Edits() {
		results = append(results, ChangeResult{
			Address: edit.Address,
			Op:      OpEdit,
			Err:     applyEdit(file, edit),
		})
	}
	for _, removal := range s.changes.Removals() {
		results = append(results, ChangeResult{
			Address: removal.Address,
			Op:      OpRemove,
			Err:     applyRemoval(file, removal),
		})
	}

	if err := persist(dcm.Encode(file), s.path, mode); err != nil {
		return nil, errors.Wrap(err, "Commit error")
	}

	s.changes.Discard()
	if mode == ModeReplace {
		s.file = file
	}
	return results, nil
}

// OutputPath is where ModeNew writes for a given input path: "_edited"
// inserted before the extension, or appended when there is none.
func OutputPath(path string) string {
	extension := filepath.Ext(path)
	return strings.TrimSuffix(path, extension) + "_edited" + extension
}

func persist(bs []byte, path string, mode Mode) error {
	if mode == ModeNew {
		target := OutputPath(path)
		if err := os.WriteFile(target, bs, 0o644); err != nil {
			return errors.Wrapf(err, `persist error: write "%s"`, target)
		}
		return nil
	}

	// replace through a temp file in the same directory so the rename is
	// atomic and a failed write never truncates the original
	temp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "persist error: create temp file")
	}
	if _, err := temp.Write(bs); err != nil {
		temp.Close()
		os.Remove(temp.Name())
		return errors.Wrap(err, "persist error: write temp file")
	}
	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return errors.Wrap(err, "persist error: close temp file")
	}
	if err := os.Rename(temp.Name(), path); err != nil {
		os.Remove(temp.Name())
		return errors.Wrapf(err, `persist error: rename over "%s"`, path)
	}
	return nil
}
