package todo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/model"
)

// IDSource hands out identifiers that are unique within one session.
type IDSource interface {
	Next() model.ID
}

// Strategy names an IDSource implementation in configuration.
type Strategy string

const (
	StrategySequence Strategy = "sequence"
	StrategyUUID     Strategy = "uuid"
)

// NewIDSource returns the source for the named strategy.
func NewIDSource(name string) (IDSource, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategySequence, "":
		return NewSequence(), nil
	case StrategyUUID:
		return NewUUIDs(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (want sequence or uuid)", name)
	}
}

// Sequence counts up from 1. Never reuses a value.
type Sequence struct {
	n uint64
}

func NewSequence() *Sequence { return &Sequence{} }

func (s *Sequence) Next() model.ID {
	s.n++
	return model.ID(strconv.FormatUint(s.n, 10))
}

// UUIDs hands out random version 4 UUIDs.
type UUIDs struct{}

func NewUUIDs() UUIDs { return UUIDs{} }

func (UUIDs) Next() model.ID { return model.ID(uuid.NewString()) }
