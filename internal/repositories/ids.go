package repositories

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for new records.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// CounterGenerator issues increasing decimal IDs starting at 1. It is
// deterministic, which keeps test fixtures readable.
type CounterGenerator struct {
	last atomic.Uint64
}

func NewCounterGenerator() *CounterGenerator {
	return &CounterGenerator{}
}

func (g *CounterGenerator) NewID() string {
	return strconv.FormatUint(g.last.Add(1), 10)
}

// NewIDGenerator builds the generator named in config: "uuid" (default) or "counter".
func NewIDGenerator(kind string) (IDGenerator, error) {
	switch kind {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "counter":
		return NewCounterGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported id generator: %s", kind)
	}
}
