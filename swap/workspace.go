// Package swap substitutes files of a linked working directory with their
// counterparts from the source directory, and puts the originals back.
//
// A swapped file keeps its original content in an aside copy next to it,
// named after the file with Suffix appended. The filesystem is the only
// record of what has been swapped; nothing is cached between calls.
package swap

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/logging"
	"github.com/jamesbehr/fswap/marker"
)

// Suffix is appended to a file name to form its aside copy.
const Suffix = ".fswap"

var (
	ErrNotFound             = errors.New("swap: no such file")
	ErrNotAFile             = errors.New("swap: not a regular file")
	ErrSourceMissing        = errors.New("swap: source directory missing")
	ErrSourceFileMissing    = errors.New("swap: source file missing")
	ErrRenameFailed         = errors.New("swap: rename failed")
	ErrCopyFailed           = errors.New("swap: copy failed")
	ErrDeleteFailed         = errors.New("swap: delete failed")
	ErrNoFiles              = errors.New("swap: no files found")
	ErrMarkerFile           = errors.New("swap: refusing to touch the link marker")
	ErrConfirmationRequired = errors.New("swap: confirmation required")
)

// Confirmer asks the user before an action that destroys data. Answering no
// is not an error.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Mode selects how the file arguments of Swap and Revert are interpreted.
type Mode int

const (
	// Explicit treats every argument as a file name.
	Explicit Mode = iota

	// All operates on every candidate file below the working directory and
	// takes no arguments.
	All

	// Recursive treats every argument as a directory and operates on every
	// candidate file below each of them.
	Recursive
)

type Options struct {
	// NoConfirm answers yes to every confirmation.
	NoConfirm bool

	// Verbose writes one line per file level action to Out.
	Verbose bool

	// Verify compares the copied file with its source after a swap.
	Verify bool
}

// Workspace runs the swap operations for one working directory. File names
// handed to it are relative to Dir.
type Workspace struct {
	Dir       filesystem.Path
	Options   Options
	Confirmer Confirmer

	// Out receives the action lines written in verbose mode.
	Out io.Writer
}

// Result describes what happened to one file.
type Result struct {
	// File is the name as given, relative to the working directory.
	File filesystem.Path

	Working filesystem.Path
	Aside   filesystem.Path
	Source  filesystem.Path

	// Skipped is set when the user declined to overwrite an aside copy.
	Skipped bool
}

func (w Workspace) out() io.Writer {
	if w.Out == nil {
		return io.Discard
	}

	return w.Out
}

func (w Workspace) report(format string, args ...interface{}) {
	if w.Options.Verbose {
		fmt.Fprintf(w.out(), format+"\n", args...)
	}
}

// confirm asks the Confirmer unless NoConfirm is set. Without a Confirmer
// the question cannot be answered and ErrConfirmationRequired is returned.
func (w Workspace) confirm(message string) (bool, error) {
	if w.Options.NoConfirm {
		return true, nil
	}

	if w.Confirmer == nil {
		return false, filesystem.NewError(ErrConfirmationRequired, message, nil)
	}

	return w.Confirmer.Confirm(message)
}

// source reads the marker of the working directory and checks that the
// directory it names exists.
func (w Workspace) source() (marker.Link, error) {
	link, err := marker.Read(w.Dir)
	if err != nil {
		return marker.Link{}, err
	}

	dir := link.SourceDir()

	isDir, err := dir.IsDir()
	if err != nil {
		return marker.Link{}, filesystem.NewError(ErrSourceMissing, "stat", err, dir)
	}

	if !isDir {
		return marker.Link{}, filesystem.NewError(ErrSourceMissing, "stat", errors.New("not a directory"), dir)
	}

	return link, nil
}

// name converts a command line argument into a path relative to Dir.
func (w Workspace) name(arg string) (filesystem.Path, error) {
	if !filepath.IsAbs(arg) {
		return filesystem.MakePath(arg), nil
	}

	dir, err := w.Dir.Abs()
	if err != nil {
		return "", err
	}

	return filesystem.Path(arg).Rel(dir)
}

// scan lists the files below root that contain substr, relative to Dir. The
// marker file is never included.
func (w Workspace) scan(root filesystem.Path, substr string) ([]filesystem.Path, error) {
	scanner := filesystem.Scanner{
		Contains: substr,
		Skip:     []filesystem.Path{marker.PathIn(w.Dir)},
	}

	files, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	names := make([]filesystem.Path, 0, len(files))
	for _, file := range files {
		name, err := file.Rel(w.Dir)
		if err != nil {
			return nil, filesystem.NewError(filesystem.ErrInvalidPath, "rel", err, file)
		}

		names = append(names, name)
	}

	return names, nil
}

// roots returns the directories searched in All and Recursive mode.
func (w Workspace) roots(mode Mode, args []string) ([]filesystem.Path, error) {
	if mode == All {
		return []filesystem.Path{w.Dir}, nil
	}

	roots := make([]filesystem.Path, 0, len(args))
	for _, arg := range args {
		name, err := w.name(arg)
		if err != nil {
			return nil, err
		}

		roots = append(roots, w.Dir.Join(name.String()))
	}

	return roots, nil
}

// candidates collects the files found under every root, in order and
// without duplicates. keep decides whether a file is included and may map
// it to another name.
func (w Workspace) candidates(mode Mode, args []string, substr string, keep func(filesystem.Path) (filesystem.Path, bool)) ([]filesystem.Path, error) {
	roots, err := w.roots(mode, args)
	if err != nil {
		return nil, err
	}

	log := logging.GetLogger("swap")

	seen := map[filesystem.Path]bool{}
	files := []filesystem.Path{}

	for _, root := range roots {
		found, err := w.scan(root, substr)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("root", root.String()).Int("files", len(found)).Msg("scanned")

		for _, file := range found {
			name, ok := keep(file)
			if !ok || seen[name] {
				continue
			}

			seen[name] = true
			files = append(files, name)
		}
	}

	return files, nil
}

// explicit resolves file arguments. A file named twice is handled once, so a
// second swap cannot overwrite the aside copy made by the first.
func (w Workspace) explicit(args []string) ([]filesystem.Path, error) {
	seen := map[filesystem.Path]bool{}
	files := make([]filesystem.Path, 0, len(args))

	for _, arg := range args {
		name, err := w.name(arg)
		if err != nil {
			return nil, err
		}

		if name == marker.FileName {
			return nil, filesystem.NewError(ErrMarkerFile, "select", nil, marker.PathIn(w.Dir))
		}

		if seen[name] {
			continue
		}

		seen[name] = true
		files = append(files, name)
	}

	return files, nil
}
