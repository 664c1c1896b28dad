package utils

import (
	"crypto/rand"
	"math/big"
)

// Ambiguous characters (0/O, 1/I/L) are excluded so codes survive being
// read aloud.
const tripCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// TripCodeLength matches the join-code column width.
const TripCodeLength = 6

// GenerateTripCode returns a random join code.
func GenerateTripCode() (string, error) {
	code := make([]byte, TripCodeLength)
	max := big.NewInt(int64(len(tripCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = tripCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
