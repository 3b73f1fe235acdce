package otp_code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const Digits = 6

var upperBound = big.NewInt(1_000_000)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate returns a zero-padded code of Digits digits.
func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return "", fmt.Errorf("read random code: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}
