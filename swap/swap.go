package swap

import (
	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/logging"
)

// Swap substitutes the selected files with their counterparts from the
// linked source directory. Files are handled one at a time in order and the
// first failure stops the run; files already swapped stay swapped.
func (w Workspace) Swap(mode Mode, args []string) ([]Result, error) {
	link, err := w.source()
	if err != nil {
		return nil, err
	}

	files, err := w.swapCandidates(mode, args)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	sourceDir := link.SourceDir()

	results := make([]Result, 0, len(files))
	for _, file := range files {
		result, err := w.SwapOne(file, sourceDir)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (w Workspace) swapCandidates(mode Mode, args []string) ([]filesystem.Path, error) {
	if mode == Explicit {
		return w.explicit(args)
	}

	// Aside copies are never swapped themselves
	return w.candidates(mode, args, "", func(file filesystem.Path) (filesystem.Path, bool) {
		return file, !file.Contains(Suffix)
	})
}

// SwapOne moves file aside and copies the file of the same name from
// sourceDir into its place. When an aside copy already exists the user is
// asked before it is overwritten; declining skips the file.
//
// The rename and the copy are separate steps. If the copy fails, the aside
// copy still holds the original and Revert restores it.
func (w Workspace) SwapOne(file, sourceDir filesystem.Path) (Result, error) {
	log := logging.GetLogger("swap")

	result := Result{
		File:    file,
		Working: w.Dir.Join(file.String()),
		Source:  sourceDir.Join(file.String()),
	}
	result.Aside = result.Working.WithSuffix(Suffix)

	info, err := result.Working.Stat()
	if err != nil {
		return result, filesystem.NewError(ErrNotFound, "stat", err, result.Working)
	}

	if !info.Mode().IsRegular() {
		return result, filesystem.NewError(ErrNotAFile, "stat", nil, result.Working)
	}

	sourceInfo, err := result.Source.Stat()
	if err != nil {
		return result, filesystem.NewError(ErrSourceFileMissing, "stat", err, result.Source)
	}

	if !sourceInfo.Mode().IsRegular() {
		return result, filesystem.NewError(ErrNotAFile, "stat", nil, result.Source)
	}

	exists, err := result.Aside.Exists()
	if err != nil {
		return result, filesystem.NewError(ErrRenameFailed, "stat", err, result.Aside)
	}

	if exists {
		ok, err := w.confirm("Overwrite '" + result.Aside.String() + "'? The original it holds will be lost.")
		if err != nil {
			return result, err
		}

		if !ok {
			log.Info().Str("file", file.String()).Msg("skipped, aside copy kept")
			w.report("Skipped '%s'.", result.Working)
			result.Skipped = true
			return result, nil
		}
	}

	if err := result.Working.Rename(result.Aside); err != nil {
		return result, filesystem.NewError(ErrRenameFailed, "rename", err, result.Working, result.Aside)
	}

	log.Debug().Str("from", result.Working.String()).Str("to", result.Aside.String()).Msg("renamed")
	w.report("Renamed '%s' -> '%s'.", result.Working, result.Aside)

	n, err := result.Source.CopyTo(result.Working)
	if err != nil {
		return result, filesystem.NewError(ErrCopyFailed, "copy", err, result.Source, result.Working)
	}

	if w.Options.Verify {
		if err := verify(result.Source, result.Working); err != nil {
			return result, filesystem.NewError(ErrCopyFailed, "verify", err, result.Source, result.Working)
		}
	}

	log.Debug().Str("from", result.Source.String()).Str("to", result.Working.String()).Int64("bytes", n).Msg("copied")
	w.report("Copied '%s' -> '%s'.", result.Source, result.Working)

	return result, nil
}
