package swap

import (
	"errors"
	"os"

	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/logging"
	"github.com/jamesbehr/fswap/marker"
)

// Begin links the working directory to sourceDir.
func (w Workspace) Begin(sourceDir filesystem.Path) (marker.Link, error) {
	link, err := marker.Create(w.Dir, sourceDir)
	if err != nil {
		return marker.Link{}, err
	}

	log := logging.GetLogger("swap")
	log.Debug().
		Str("marker", link.Path().String()).
		Str("source", link.Source.String()).
		Msg("linked")

	return link, nil
}

type Info struct {
	Link marker.Link

	// SourceExists is false when the linked source directory is gone.
	SourceExists bool

	// Files lists every path below the working directory containing the swap
	// suffix, relative to the working directory.
	Files []filesystem.Path
}

// Info reports the link and the aside copies of the working directory
// without changing anything.
func (w Workspace) Info() (Info, error) {
	link, err := marker.Read(w.Dir)
	if err != nil {
		return Info{}, err
	}

	files, err := w.scan(w.Dir, Suffix)
	if err != nil {
		return Info{}, err
	}

	exists, err := link.SourceDir().IsDir()
	if err != nil && !os.IsNotExist(err) {
		return Info{}, filesystem.NewError(ErrSourceMissing, "stat", err, link.SourceDir())
	}

	return Info{Link: link, SourceExists: exists, Files: files}, nil
}

type Ended struct {
	Link marker.Link

	// Declined is set when the user answered no. Nothing was deleted.
	Declined bool

	// Removed lists the aside copies that were deleted, relative to the
	// working directory. It is nil unless the marker file was deleted.
	Removed []filesystem.Path
}

// End deletes the marker file and every aside copy below the working
// directory. Aside copies are deleted, not restored: files still swapped
// keep their swapped in content. Deleting the aside copies is best effort;
// every failure is reported but does not stop the remaining deletions.
func (w Workspace) End() (Ended, error) {
	log := logging.GetLogger("swap")

	link, err := marker.Read(w.Dir)
	if err != nil {
		if !errors.Is(err, marker.ErrInvalidEncoding) {
			return Ended{}, err
		}

		// A malformed marker can still be removed
		link = marker.Link{WorkingDir: w.Dir}
	}

	ok, err := w.confirm("Delete all files with the suffix '" + Suffix + "' in '" + w.Dir.String() + "'? Swapped files will not be reverted.")
	if err != nil {
		return Ended{Link: link}, err
	}

	if !ok {
		return Ended{Link: link, Declined: true}, nil
	}

	if err := marker.Delete(w.Dir); err != nil {
		return Ended{Link: link}, err
	}

	log.Debug().Str("marker", link.Path().String()).Msg("removed")
	w.report("Deleted '%s'.", link.Path())

	files, err := w.scan(w.Dir, Suffix)
	if err != nil {
		return Ended{Link: link}, err
	}

	ended := Ended{Link: link, Removed: []filesystem.Path{}}

	var errs []error
	for _, file := range files {
		if _, ok := file.TrimSuffix(Suffix); !ok {
			log.Warn().Str("file", file.String()).Msg("path contains the swap suffix but does not end with it, keeping")
			continue
		}

		path := w.Dir.Join(file.String())
		if err := path.Remove(); err != nil {
			errs = append(errs, filesystem.NewError(ErrDeleteFailed, "remove", err, path))
			continue
		}

		log.Debug().Str("file", path.String()).Msg("removed")
		w.report("Deleted '%s'.", path)
		ended.Removed = append(ended.Removed, file)
	}

	return ended, errors.Join(errs...)
}
