package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenterOn(t *testing.T) {
	s := DefaultSurface()
	c := Container{Width: 400, Height: 300}

	assert.Equal(t, Scroll{X: 200, Y: 250}, CenterOn(400, 400, s, c))
	assert.Equal(t, Scroll{X: 0, Y: 0}, CenterOn(10, 10, s, c))
	assert.Equal(t, Scroll{X: 400, Y: 500}, CenterOn(790, 790, s, c))

	// a container larger than the surface never scrolls
	assert.Equal(t, Scroll{}, CenterOn(700, 700, s, Container{Width: 1000, Height: 900}))
}

func TestScrollAnimation(t *testing.T) {
	a := NewScrollAnimation(Scroll{}, Scroll{X: 100, Y: -40}, 4)
	assert.Equal(t, Scroll{X: 100, Y: -40}, a.Target())

	var prev Scroll
	for i := 0; i < 3; i++ {
		sc, done := a.Step()
		assert.False(t, done)
		assert.Greater(t, sc.X, prev.X)
		assert.Less(t, sc.Y, prev.Y)
		prev = sc
	}
	sc, done := a.Step()
	assert.True(t, done)
	assert.Equal(t, Scroll{X: 100, Y: -40}, sc)

	sc, done = a.Step()
	assert.True(t, done)
	assert.Equal(t, Scroll{X: 100, Y: -40}, sc)
}

func TestScrollAnimationJump(t *testing.T) {
	a := NewScrollAnimation(Scroll{X: 5}, Scroll{X: 50}, 0)
	sc, done := a.Step()
	assert.True(t, done)
	assert.Equal(t, Scroll{X: 50}, sc)
}
