package snake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/snake"
)

func straightSnake(t *testing.T) snake.Snake {
	t.Helper()
	s, err := snake.New([]geom.Point{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 3, Y: 5}})
	require.NoError(t, err)
	return s
}

func TestNewRejectsNonAdjacentSegments(t *testing.T) {
	_, err := snake.New([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}})
	assert.Error(t, err)
}

func TestNewRejectsSelfCollision(t *testing.T) {
	_, err := snake.New([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}})
	assert.Error(t, err)
}

func TestAdvanceKeepsLengthConstant(t *testing.T) {
	s := straightSnake(t)
	next, err := s.Advance(geom.Up)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), next.Len())
	assert.Equal(t, geom.Point{X: 3, Y: 2}, next.Head())
	assert.Equal(t, geom.Point{X: 3, Y: 4}, next.Tail())
}

func TestAdvanceIntoOwnNeckFails(t *testing.T) {
	s := straightSnake(t)
	_, err := s.Advance(geom.Down) // head would land where the second segment is
	assert.Error(t, err)
}

func TestAdvanceIntoVacatedTailSucceeds(t *testing.T) {
	// A 2-long snake moving in a tight loop can step onto the cell its tail
	// is about to vacate.
	s, err := snake.New([]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 2}})
	require.NoError(t, err)
	_, err = s.Advance(geom.Left)
	assert.NoError(t, err)
}

func TestKeyDistinguishesPosesWithSameHead(t *testing.T) {
	a, err := snake.New([]geom.Point{{X: 2, Y: 2}, {X: 2, Y: 3}})
	require.NoError(t, err)
	b, err := snake.New([]geom.Point{{X: 2, Y: 2}, {X: 1, Y: 2}})
	require.NoError(t, err)
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestKeyIsStableForEqualPoses(t *testing.T) {
	a := straightSnake(t)
	b := straightSnake(t)
	assert.Equal(t, a.Key(), b.Key())
}

func TestOccupies(t *testing.T) {
	s := straightSnake(t)
	assert.True(t, s.Occupies(geom.Point{X: 3, Y: 5}))
	assert.False(t, s.Occupies(geom.Point{X: 0, Y: 0}))
}

func TestHorizontalSeedsExpectedPose(t *testing.T) {
	s, err := snake.Horizontal(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, geom.Point{X: 3, Y: -1}, s.Head())
	assert.Equal(t, geom.Point{X: 0, Y: -1}, s.Tail())
	assert.Equal(t, []geom.Point{
		{X: 3, Y: -1}, {X: 2, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: -1},
	}, s.Points())
}

func TestHorizontalRejectsNonPositiveLength(t *testing.T) {
	_, err := snake.Horizontal(0)
	assert.Error(t, err)
}

func TestFromSinglePointCollapsesEverySegment(t *testing.T) {
	p := geom.Point{X: 5, Y: 7}
	s, err := snake.FromSinglePoint(p, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, p, s.Head())
	assert.Equal(t, p, s.Tail())
	for _, q := range s.Points() {
		assert.Equal(t, p, q)
	}
}

func TestFromSinglePointRejectsOutOfBounds(t *testing.T) {
	_, err := snake.FromSinglePoint(geom.Point{X: 1000, Y: 0}, 2)
	assert.Error(t, err)
}
