package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Path is a filesystem path with helpers for the os and filepath operations
// used on it. A relative Path is resolved against the process working
// directory.
type Path string

func MakePath(names ...string) Path {
	return Path(filepath.Join(names...))
}

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return MakePath(args...)
}

// WithSuffix appends suffix to the final element, so "a/b.txt" with
// ".fswap" becomes "a/b.txt.fswap".
func (p Path) WithSuffix(suffix string) Path {
	return Path(string(p) + suffix)
}

// TrimSuffix is the inverse of WithSuffix. The second result reports whether
// the suffix was present.
func (p Path) TrimSuffix(suffix string) (Path, bool) {
	s := string(p)
	if !strings.HasSuffix(s, suffix) || len(s) == len(suffix) {
		return p, false
	}

	return Path(strings.TrimSuffix(s, suffix)), true
}

func (p Path) Contains(substr string) bool {
	return strings.Contains(string(p), substr)
}

func (p Path) Abs() (Path, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(abs), nil
}

// Rel returns p expressed relative to base.
func (p Path) Rel(base Path) (Path, error) {
	rel, err := filepath.Rel(string(base), string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(rel), nil
}

func (p Path) Remove() error {
	return os.Remove(string(p))
}

func (p Path) Rename(to Path) error {
	return os.Rename(string(p), string(to))
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) ReadFile() ([]byte, error) {
	return os.ReadFile(string(p))
}

func (p Path) Open() (*os.File, error) {
	return os.Open(string(p))
}

// CreateExclusive creates the file at p, failing with an error satisfying
// os.IsExist if anything is already there.
func (p Path) CreateExclusive(perm os.FileMode) (*os.File, error) {
	return os.OpenFile(string(p), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

func (p Path) Stat() (os.FileInfo, error) {
	return os.Stat(string(p))
}

func (p Path) ReadDir() ([]os.DirEntry, error) {
	return os.ReadDir(string(p))
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) IsDir() (bool, error) {
	info, err := os.Stat(string(p))
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

// CopyTo copies the contents of p into dst, creating or truncating dst. The
// permission bits of p are carried over to a newly created dst.
func (p Path) CopyTo(dst Path) (int64, error) {
	src, err := os.Open(string(p))
	if err != nil {
		return 0, err
	}

	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(string(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, src)
	if err != nil {
		out.Close()
		return n, err
	}

	return n, out.Close()
}

func (p Path) String() string {
	return string(p)
}
