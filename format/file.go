package format

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
)

const fileMode = 0644

// WriteFile encodes m in the format implied by the extension of path and
// writes it there. The destination is either replaced in full or left
// untouched.
func WriteFile(path string, m image.Image) (err error) {
	f, err := FromFilename(path)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := Encode(b, m, f); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b.Bytes()); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}

	if err = tmp.Chmod(fileMode); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
