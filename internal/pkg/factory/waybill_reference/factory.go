package waybill_reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 10
)

var alphabetSize = big.NewInt(int64(len(alphabet)))

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate returns Length characters drawn uniformly from A-Z and 0-9.
func (g *Generator) Generate() (string, error) {
	reference := make([]byte, Length)
	for i := range reference {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		reference[i] = alphabet[n.Int64()]
	}
	return string(reference), nil
}
