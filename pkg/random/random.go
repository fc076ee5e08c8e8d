package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Hex returns a hex string built from n random bytes (2n characters).
func Hex(n int) (string, error) {
	byt := make([]byte, n)
	if _, err := rand.Read(byt); err != nil {
		return "", err
	}
	return hex.EncodeToString(byt), nil
}
