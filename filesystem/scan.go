package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Scanner enumerates the files below a directory. The zero value reports
// every regular file.
type Scanner struct {
	// Contains, when not empty, keeps only files whose path below the scan
	// root contains it as a substring.
	Contains string

	// Skip lists paths that are never reported, such as a marker file.
	Skip []Path
}

// Scan walks root breadth first and returns the matching files, each joined
// onto root. Directories are visited through a queue rather than by
// recursion so that the depth of the tree does not matter. Any unreadable
// directory or entry aborts the whole scan and no partial result is
// returned. An empty result with a nil error means nothing matched.
func (s Scanner) Scan(root Path) ([]Path, error) {
	skip := make(map[string]bool, len(s.Skip))
	for _, p := range s.Skip {
		skip[filepath.Clean(string(p))] = true
	}

	files := []Path{}
	queue := []Path{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := dir.ReadDir()
		if err != nil {
			return nil, NewError(ErrUnreadable, "read dir", err, dir)
		}

		for _, entry := range entries {
			path := dir.Join(entry.Name())

			if !utf8.ValidString(string(path)) {
				return nil, NewError(ErrInvalidPath, "scan", nil, path)
			}

			info, err := entry.Info()
			if err != nil {
				return nil, NewError(ErrBadMetadata, "stat", err, path)
			}

			if info.IsDir() {
				queue = append(queue, path)
				continue
			}

			regular, err := isRegular(path, info)
			if err != nil {
				return nil, NewError(ErrBadMetadata, "stat", err, path)
			}

			if !regular || skip[string(path)] {
				continue
			}

			if s.Contains != "" {
				rel, err := path.Rel(root)
				if err != nil {
					return nil, NewError(ErrInvalidPath, "rel", err, path)
				}

				if !rel.Contains(s.Contains) {
					continue
				}
			}

			files = append(files, path)
		}
	}

	return files, nil
}

// Symlinks are reported when they resolve to a regular file and are never
// descended into. Dangling links are ignored.
func isRegular(path Path, info fs.FileInfo) (bool, error) {
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.Mode().IsRegular(), nil
	}

	target, err := os.Stat(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return target.Mode().IsRegular(), nil
}
