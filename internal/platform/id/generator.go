package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for correlating requests.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Normalize returns the canonical form of a caller-supplied ID, or false when
// it is not a UUID.
func Normalize(v string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
