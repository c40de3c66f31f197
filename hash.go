package identicon

import (
	"crypto/md5"
	"encoding/hex"
)

// DigestSize is the number of bytes produced by Hash.
const DigestSize = md5.Size

// Digest is the hash of an input string and seeds every later stage.
type Digest []byte

// Hash returns the MD5 digest of input.
func Hash(input string) Digest {
	sum := md5.Sum([]byte(input))
	return Digest(sum[:])
}

// String returns the digest as lowercase hex
func (d Digest) String() string {
	return hex.EncodeToString(d)
}
