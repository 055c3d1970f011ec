// Package marker stores the link between a working directory and its source
// directory. The link is a single file named .fswap in the working directory
// whose whole content is the path of the source directory, relative to the
// working directory.
package marker

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jamesbehr/fswap/filesystem"
)

// FileName is the name of the marker file inside a working directory.
const FileName = ".fswap"

var (
	ErrNotFound        = errors.New("marker: no such directory")
	ErrNotADirectory   = errors.New("marker: not a directory")
	ErrSameDirectory   = errors.New("marker: source and working directory are the same")
	ErrAlreadyLinked   = errors.New("marker: directory already linked")
	ErrWriteFailed     = errors.New("marker: write failed")
	ErrNotLinked       = errors.New("marker: directory not linked")
	ErrReadFailed      = errors.New("marker: read failed")
	ErrInvalidEncoding = errors.New("marker: invalid encoding")
)

// Link associates a working directory with a source directory.
type Link struct {
	// WorkingDir is the directory holding the marker file.
	WorkingDir filesystem.Path

	// Source is the source directory relative to WorkingDir, exactly as it is
	// stored in the marker file.
	Source filesystem.Path
}

// Path returns the location of the marker file.
func (l Link) Path() filesystem.Path {
	return PathIn(l.WorkingDir)
}

// SourceDir resolves Source against WorkingDir. It does not check that the
// directory exists.
func (l Link) SourceDir() filesystem.Path {
	return l.WorkingDir.Join(l.Source.String())
}

func PathIn(workingDir filesystem.Path) filesystem.Path {
	return workingDir.Join(FileName)
}

// Create links workingDir to sourceDir by writing a new marker file. Both
// must be existing directories. An existing marker is never overwritten. If
// writing fails after the file was created, the empty marker is left behind
// and ErrWriteFailed is returned.
func Create(workingDir, sourceDir filesystem.Path) (Link, error) {
	if err := checkDir(sourceDir); err != nil {
		return Link{}, err
	}

	if err := checkDir(workingDir); err != nil {
		return Link{}, err
	}

	rel, err := relative(workingDir, sourceDir)
	if err != nil {
		return Link{}, err
	}

	link := Link{WorkingDir: workingDir, Source: rel}

	f, err := link.Path().CreateExclusive(0644)
	if err != nil {
		if os.IsExist(err) {
			return Link{}, filesystem.NewError(ErrAlreadyLinked, "create", err, link.Path())
		}

		return Link{}, filesystem.NewError(ErrWriteFailed, "create", err, link.Path())
	}

	if _, err := f.WriteString(rel.String()); err != nil {
		f.Close()
		return Link{}, filesystem.NewError(ErrWriteFailed, "write", err, link.Path())
	}

	if err := f.Close(); err != nil {
		return Link{}, filesystem.NewError(ErrWriteFailed, "close", err, link.Path())
	}

	return link, nil
}

// Read loads the link recorded in workingDir. The whole file is read; a
// single trailing line break, as left by editors, is ignored. The source
// directory is not checked for existence.
func Read(workingDir filesystem.Path) (Link, error) {
	path := PathIn(workingDir)

	data, err := path.ReadFile()
	if err != nil {
		if os.IsNotExist(err) {
			return Link{}, filesystem.NewError(ErrNotLinked, "open", err, path)
		}

		return Link{}, filesystem.NewError(ErrReadFailed, "read", err, path)
	}

	if !utf8.Valid(data) {
		return Link{}, filesystem.NewError(ErrInvalidEncoding, "decode", nil, path)
	}

	source := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if source == "" {
		return Link{}, filesystem.NewError(ErrInvalidEncoding, "decode", errors.New("empty source path"), path)
	}

	return Link{WorkingDir: workingDir, Source: filesystem.Path(source)}, nil
}

// Delete removes the marker file from workingDir.
func Delete(workingDir filesystem.Path) error {
	path := PathIn(workingDir)

	if err := path.Remove(); err != nil {
		if os.IsNotExist(err) {
			return filesystem.NewError(ErrNotLinked, "remove", err, path)
		}

		return filesystem.NewError(ErrWriteFailed, "remove", err, path)
	}

	return nil
}

func checkDir(dir filesystem.Path) error {
	info, err := dir.Stat()
	if err != nil {
		return filesystem.NewError(ErrNotFound, "stat", err, dir)
	}

	if !info.IsDir() {
		return filesystem.NewError(ErrNotADirectory, "stat", nil, dir)
	}

	return nil
}

// relative computes the path that leads from workingDir to sourceDir.
func relative(workingDir, sourceDir filesystem.Path) (filesystem.Path, error) {
	work, err := workingDir.Abs()
	if err != nil {
		return "", filesystem.NewError(ErrNotFound, "abs", err, workingDir)
	}

	source, err := sourceDir.Abs()
	if err != nil {
		return "", filesystem.NewError(ErrNotFound, "abs", err, sourceDir)
	}

	rel, err := source.Rel(work)
	if err != nil {
		return "", filesystem.NewError(ErrSameDirectory, "rel", err, sourceDir, workingDir)
	}

	if rel == "" || rel == "." {
		return "", filesystem.NewError(ErrSameDirectory, "rel", nil, sourceDir, workingDir)
	}

	// Two different spellings of one directory, e.g. through a symlink
	workInfo, err := work.Stat()
	if err != nil {
		return "", filesystem.NewError(ErrNotFound, "stat", err, workingDir)
	}

	sourceInfo, err := source.Stat()
	if err != nil {
		return "", filesystem.NewError(ErrNotFound, "stat", err, sourceDir)
	}

	if os.SameFile(workInfo, sourceInfo) {
		return "", filesystem.NewError(ErrSameDirectory, "stat", nil, sourceDir, workingDir)
	}

	return rel, nil
}
