package swap

import (
	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/logging"
	"github.com/jamesbehr/fswap/marker"
)

// Revert restores the selected files from their aside copies. In All and
// Recursive mode the files are found through their aside copies.
func (w Workspace) Revert(mode Mode, args []string) ([]Result, error) {
	// The source directory is not needed, only the link
	if _, err := marker.Read(w.Dir); err != nil {
		return nil, err
	}

	files, err := w.revertCandidates(mode, args)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		result, err := w.RevertOne(file)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (w Workspace) revertCandidates(mode Mode, args []string) ([]filesystem.Path, error) {
	if mode == Explicit {
		return w.explicit(args)
	}

	log := logging.GetLogger("swap")

	return w.candidates(mode, args, Suffix, func(file filesystem.Path) (filesystem.Path, bool) {
		original, ok := file.TrimSuffix(Suffix)
		if !ok {
			log.Warn().Str("file", file.String()).Msg("path contains the swap suffix but does not end with it, ignoring")
		}

		return original, ok
	})
}

// RevertOne discards the swapped in content of file and renames its aside
// copy back. Nothing is touched when there is no aside copy.
func (w Workspace) RevertOne(file filesystem.Path) (Result, error) {
	log := logging.GetLogger("swap")

	result := Result{
		File:    file,
		Working: w.Dir.Join(file.String()),
	}
	result.Aside = result.Working.WithSuffix(Suffix)

	exists, err := result.Aside.Exists()
	if err != nil {
		return result, filesystem.NewError(ErrNotFound, "stat", err, result.Aside)
	}

	if !exists {
		return result, filesystem.NewError(ErrNotFound, "stat", nil, result.Aside)
	}

	exists, err = result.Working.Exists()
	if err != nil {
		return result, filesystem.NewError(ErrDeleteFailed, "stat", err, result.Working)
	}

	if exists {
		if err := result.Working.Remove(); err != nil {
			return result, filesystem.NewError(ErrDeleteFailed, "remove", err, result.Working)
		}

		log.Debug().Str("file", result.Working.String()).Msg("removed")
		w.report("Removed '%s'.", result.Working)
	}

	if err := result.Aside.Rename(result.Working); err != nil {
		return result, filesystem.NewError(ErrRenameFailed, "rename", err, result.Aside, result.Working)
	}

	log.Debug().Str("from", result.Aside.String()).Str("to", result.Working.String()).Msg("renamed")
	w.report("Renamed '%s' -> '%s'.", result.Aside, result.Working)

	return result, nil
}
