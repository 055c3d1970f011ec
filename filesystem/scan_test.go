package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmpDir(t *testing.T, paths []string) Path {
	dir := t.TempDir()

	for _, name := range paths {
		path := filepath.Join(dir, name)

		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("MkdirAll %s: %s", path, err)
			}
		} else {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatalf("MkdirAll %s: %s", path, err)
			}

			if err := os.WriteFile(path, []byte(name), 0644); err != nil {
				t.Fatalf("WriteFile %s: %s", path, err)
			}
		}
	}

	return Path(dir)
}

func relative(t *testing.T, root Path, files []Path) []string {
	rel := make([]string, len(files))
	for i, file := range files {
		r, err := file.Rel(root)
		require.NoError(t, err)
		rel[i] = r.String()
	}

	return rel
}

type ScanTestCase struct {
	Name       string
	Filesystem []string
	Scanner    Scanner
	Skip       []string
	Expected   []string
}

func TestScan(t *testing.T) {
	testCases := []ScanTestCase{
		{
			Name:       "empty directory",
			Filesystem: []string{"empty/"},
			Expected:   []string{},
		},
		{
			Name: "breadth first order",
			Filesystem: []string{
				"a/b/c/deep.txt",
				"a/mid.txt",
				"top.txt",
				"z/other.txt",
			},
			Expected: []string{
				"top.txt",
				"a/mid.txt",
				"z/other.txt",
				"a/b/c/deep.txt",
			},
		},
		{
			Name: "substring filter",
			Filesystem: []string{
				"config.yaml",
				"config.yaml.fswap",
				"nested/app.env.fswap",
				"nested/app.env",
				"dir.fswap/plain",
			},
			Scanner: Scanner{Contains: ".fswap"},
			Expected: []string{
				"config.yaml.fswap",
				"dir.fswap/plain",
				"nested/app.env.fswap",
			},
		},
		{
			Name: "skipped files",
			Filesystem: []string{
				".fswap",
				"sub/.fswap",
				"a.txt",
			},
			Skip: []string{".fswap"},
			Expected: []string{
				"a.txt",
				"sub/.fswap",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			root := tmpDir(t, testCase.Filesystem)

			scanner := testCase.Scanner
			for _, name := range testCase.Skip {
				scanner.Skip = append(scanner.Skip, root.Join(name))
			}

			files, err := scanner.Scan(root)
			require.NoError(t, err)
			assert.Equal(t, testCase.Expected, relative(t, root, files))
		})
	}
}

func TestScanFilterIgnoresRoot(t *testing.T) {
	root := tmpDir(t, []string{"work.fswap/a.txt"})

	files, err := Scanner{Contains: ".fswap"}.Scan(root.Join("work.fswap"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanSymlinks(t *testing.T) {
	root := tmpDir(t, []string{"real.txt", "dir/inner.txt"})

	require.NoError(t, os.Symlink(string(root.Join("real.txt")), string(root.Join("link.txt"))))
	require.NoError(t, os.Symlink(string(root.Join("dir")), string(root.Join("dirlink"))))
	require.NoError(t, os.Symlink(string(root.Join("gone")), string(root.Join("dangling"))))

	files, err := Scanner{}.Scan(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"real.txt", "link.txt", "dir/inner.txt"}, relative(t, root, files))
}

func TestScanErrors(t *testing.T) {
	root := tmpDir(t, []string{"file.txt"})

	_, err := Scanner{}.Scan(root.Join("missing"))
	require.ErrorIs(t, err, ErrUnreadable)
	require.ErrorIs(t, err, os.ErrNotExist)

	var fsErr *Error
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, []Path{root.Join("missing")}, fsErr.Paths)

	_, err = Scanner{}.Scan(root.Join("file.txt"))
	require.ErrorIs(t, err, ErrUnreadable)
}
