package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a code of the given length. These codes gate
// account verification and password reset, so they come from crypto/rand.
func GenerateRandomToken(length int) string {
	charsetLen := big.NewInt(int64(len(tokenCharset)))
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}
