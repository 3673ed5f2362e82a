// Package uniuri generates cryptographically secure random strings suitable
// for use as unique identifiers.
package uniuri

import "crypto/rand"

// StdLen is the standard length of a uniuri string, ~95 bits of entropy.
const StdLen = 16

// StdChars is the set of characters allowed in a uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters. Bytes outside the unbiased range are rejected so the
// character distribution stays uniform.
func NewLen(length int) string {
	if length == 0 {
		return ""
	}

	clen := len(StdChars)
	maxrb := 255 - (256 % clen)
	out := make([]byte, length)
	buf := make([]byte, length+(length/4)+16)

	i := 0
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxrb {
				// Skip this byte to avoid modulo bias.
				continue
			}

			out[i] = StdChars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
