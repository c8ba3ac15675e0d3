// Package ids generates identifiers for projects and tasks.
package ids

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Generator produces a new identifier on every call
type Generator interface {
	NewID() string
}

// UUID generates random (v4) UUIDs
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence generates prefix-1, prefix-2, ... Not safe for concurrent use.
type Sequence struct {
	prefix string
	next   int
}

// NewSequence creates a sequence generator starting at 1
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

func (s *Sequence) NewID() string {
	id := s.prefix + "-" + strconv.Itoa(s.next)
	s.next++
	return id
}

// Kind names a generator in configuration
type Kind string

const (
	KindUUID     Kind = "uuid"
	KindSequence Kind = "sequence"
)

// ParseKind validates a generator name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindUUID, KindSequence:
		return k, nil
	case "":
		return KindUUID, nil
	default:
		return "", fmt.Errorf("unknown id generator %q (want uuid or sequence)", s)
	}
}

// New returns the generator for kind
func New(kind Kind) Generator {
	if kind == KindSequence {
		return NewSequence("id")
	}
	return UUID{}
}
