package swap

import (
	"os"
	"testing"

	"github.com/jamesbehr/fswap/marker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevertNotFound(t *testing.T) {
	tmp, ws := linked(t, []string{"work/a.txt", "src/a.txt"})
	before := snapshot(t, tmp)

	_, err := ws.Revert(Explicit, []string{"a.txt"})
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, before, snapshot(t, tmp))
}

func TestRevertWithoutWorkingFile(t *testing.T) {
	tmp, ws := linked(t, []string{"work/a.txt.fswap"})

	results, err := ws.Revert(Explicit, []string{"a.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names(results))

	assertContents(t, tmp, Contents{"work/a.txt": "work/a.txt.fswap"})
	assertMissing(t, tmp, []string{"work/a.txt.fswap"})
}

func TestRevertWithoutSourceDirectory(t *testing.T) {
	tmp, ws := linked(t, []string{"work/a.txt", "src/a.txt"})

	_, err := ws.Swap(Explicit, []string{"a.txt"})
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(tmp.Join("src").String()))

	_, err = ws.Revert(Explicit, []string{"a.txt"})
	require.NoError(t, err)

	assertContents(t, tmp, Contents{"work/a.txt": "work/a.txt"})
}

func TestRevertNotLinked(t *testing.T) {
	tmp := tmpDir(t, []string{"work/a.txt", "work/a.txt.fswap"})
	ws := Workspace{Dir: tmp.Join("work")}

	_, err := ws.Revert(Explicit, []string{"a.txt"})
	require.ErrorIs(t, err, marker.ErrNotLinked)

	assertContents(t, tmp, Contents{"work/a.txt.fswap": "work/a.txt.fswap"})
}

func TestRevertAll(t *testing.T) {
	tmp, ws := linked(t, []string{
		"work/a.txt", "src/a.txt",
		"work/sub/b.txt", "src/sub/b.txt",
		"work/untouched.txt",
	})

	_, err := ws.Swap(Explicit, []string{"a.txt", "sub/b.txt"})
	require.NoError(t, err)

	results, err := ws.Revert(All, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, names(results))

	assertContents(t, tmp, Contents{
		"work/a.txt":         "work/a.txt",
		"work/sub/b.txt":     "work/sub/b.txt",
		"work/untouched.txt": "work/untouched.txt",
		"work/.fswap":        "../src",
	})
	assertMissing(t, tmp, []string{"work/a.txt.fswap", "work/sub/b.txt.fswap"})

	_, err = ws.Revert(All, nil)
	require.ErrorIs(t, err, ErrNoFiles)
}

func TestRevertAllIgnoresSuffixInDirectoryName(t *testing.T) {
	tmp, ws := linked(t, []string{
		"work/a.txt.fswap",
		"work/cache.fswap/plain.txt",
	})

	results, err := ws.Revert(All, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names(results))

	assertContents(t, tmp, Contents{
		"work/a.txt":                 "work/a.txt.fswap",
		"work/cache.fswap/plain.txt": "work/cache.fswap/plain.txt",
	})
}

func TestRevertRecursive(t *testing.T) {
	tmp, ws := linked(t, []string{
		"work/a.txt.fswap",
		"work/one/b.txt.fswap",
		"work/two/c.txt.fswap",
	})

	results, err := ws.Revert(Recursive, []string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one/b.txt", "two/c.txt"}, names(results))

	assertContents(t, tmp, Contents{
		"work/a.txt.fswap": "work/a.txt.fswap",
		"work/one/b.txt":   "work/one/b.txt.fswap",
		"work/two/c.txt":   "work/two/c.txt.fswap",
	})
}

func TestRevertDeleteFailureKeepsAside(t *testing.T) {
	tmp, ws := linked(t, []string{"work/b/inner.txt", "work/b.fswap"})
	before := snapshot(t, tmp)

	_, err := ws.Revert(Explicit, []string{"b"})
	require.ErrorIs(t, err, ErrDeleteFailed)

	assert.Equal(t, before, snapshot(t, tmp))
	assertContents(t, tmp, Contents{"work/b.fswap": "work/b.fswap"})
}
