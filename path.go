package identicon

import "path/filepath"

const filenamePrefix = "identicon-"

// OutputPath returns a file name in dir derived from the digest so that
// different inputs never share a destination.
func OutputPath(dir string, d Digest, ext string) string {
	return filepath.Join(dir, filenamePrefix+d.String()+ext)
}
