package random

import (
	"crypto/rand"
	"math/big"

	"github.com/myrjola/detectivequest/internal/errors"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// caseIDLength keeps case IDs short enough to read in a log line.
const caseIDLength uint = 8

// Letters returns n letters drawn uniformly from a-z and A-Z.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	upper := big.NewInt(int64(len(allowedLetters)))
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, upper)
		if err != nil {
			return "", errors.Wrap(err, "draw random letter")
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// CaseID identifies one investigation session in the logs.
func CaseID() (string, error) {
	return Letters(caseIDLength)
}
