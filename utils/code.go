package utils

import (
	"crypto/rand"
	"math/big"
)

// codeAlphabet excludes easily-confused characters (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the length of human-presentable reservation codes.
const CodeLength = 10

// GenerateCode returns a short uppercase confirmation code suitable for
// QR payloads and check-in lookup.
func GenerateCode() string {
	b := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = codeAlphabet[0]
			continue
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}
