package domain

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
)

// Position is a 2-D display coordinate. It has no meaning beyond rendering.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DefaultJitter is the maximum offset from the canvas midpoint on each axis
const DefaultJitter = 100.0

// PositionGenerator produces display coordinates for new funds
type PositionGenerator interface {
	NextPosition() Position
}

// JitterPositions scatters positions uniformly around a center point,
// independently per axis, so new nodes do not stack on each other
type JitterPositions struct {
	center Position
	spread float64
	rng    *rand.Rand
}

// NewJitterPositions centers positions on the midpoint of a width x height
// canvas. The same seed always yields the same sequence.
func NewJitterPositions(width, height, spread float64, seed uint64) *JitterPositions {
	return &JitterPositions{
		center: Position{X: width / 2, Y: height / 2},
		spread: spread,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NextPosition returns the next jittered coordinate
func (j *JitterPositions) NextPosition() Position {
	return Position{
		X: j.center.X + (j.rng.Float64()*2-1)*j.spread,
		Y: j.center.Y + (j.rng.Float64()*2-1)*j.spread,
	}
}

// IDGenerator mints fund identifiers
type IDGenerator interface {
	NextID() string
}

// ID sources accepted by NewIDGenerator
const (
	IDSourceCounter = "counter"
	IDSourceUUID    = "uuid"
)

// CounterIDs issues monotonically increasing identifiers ("fund-1", "fund-2", ...)
type CounterIDs struct {
	prefix string
	next   atomic.Uint64
}

// NewCounterIDs creates a counter source with the given prefix
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix}
}

// NextID returns the next identifier
func (c *CounterIDs) NextID() string {
	return fmt.Sprintf("%s-%d", c.prefix, c.next.Add(1))
}

// UUIDs issues random version 4 UUIDs
type UUIDs struct{}

// NextID returns a new random UUID
func (UUIDs) NextID() string {
	return uuid.NewString()
}

// NewIDGenerator returns the generator for a configured source name
func NewIDGenerator(source string) (IDGenerator, error) {
	switch source {
	case "", IDSourceCounter:
		return NewCounterIDs("fund"), nil
	case IDSourceUUID:
		return UUIDs{}, nil
	}
	return nil, fmt.Errorf("unknown id source %q, must be %q or %q", source, IDSourceCounter, IDSourceUUID)
}
