package swap

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jamesbehr/fswap/filesystem"
	"github.com/zeebo/blake3"
)

func digest(path filesystem.Path) ([]byte, error) {
	f, err := path.Open()
	if err != nil {
		return nil, err
	}

	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// verify checks that a and b hold the same bytes.
func verify(a, b filesystem.Path) error {
	da, err := digest(a)
	if err != nil {
		return err
	}

	db, err := digest(b)
	if err != nil {
		return err
	}

	if !bytes.Equal(da, db) {
		return fmt.Errorf("content differs (blake3 %x != %x)", da[:8], db[:8])
	}

	return nil
}
