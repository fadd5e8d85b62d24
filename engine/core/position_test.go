package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionChebyshevDistance(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: -5}
	assert.Equal(t, 5, a.ChebyshevDistance(b))
}

func TestRotationFourStepsReturnsOriginal(t *testing.T) {
	r := Left
	for i := 0; i < 4; i++ {
		r = r.Next()
	}
	assert.Equal(t, Left, r)
}

func TestRotationDelta(t *testing.T) {
	assert.Equal(t, Position{X: 1, Y: 0}, Right.Delta())
	assert.Equal(t, Position{X: 0, Y: -1}, Top.Delta())
}

func TestNeighborIndexMatchesRotationDelta(t *testing.T) {
	p := Position{X: 5, Y: 5}
	for r := Rotation(0); r < 4; r++ {
		n := p.Add(r.Delta())
		assert.Equal(t, int(r), p.NeighborIndex(n))
	}
	assert.Equal(t, -1, p.NeighborIndex(Position{X: 100, Y: 100}))
}
