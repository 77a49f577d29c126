package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestScreenToNDC(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		x, y float32
		want mgl32.Vec2
	}{
		{0, 0, mgl32.Vec2{-1, 1}},
		{800, 600, mgl32.Vec2{1, -1}},
		{400, 300, mgl32.Vec2{0, 0}},
		{200, 450, mgl32.Vec2{-0.5, -0.5}},
	}

	for _, tt := range tests {
		got := vp.ScreenToNDC(tt.x, tt.y)
		assert.InDelta(t, tt.want.X(), got.X(), 1e-6, "x para (%v, %v)", tt.x, tt.y)
		assert.InDelta(t, tt.want.Y(), got.Y(), 1e-6, "y para (%v, %v)", tt.x, tt.y)
	}
}

func TestViewportInvalid(t *testing.T) {
	vp := Viewport{}
	assert.False(t, vp.Valid())
	assert.Equal(t, float32(1), vp.Aspect())
	assert.Equal(t, mgl32.Vec2{}, vp.ScreenToNDC(10, 10))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(10, 0, 5))
	assert.Equal(t, float32(0), Clamp(-1, 0, 5))
	assert.Equal(t, float32(3), Clamp(3, 0, 5))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.True(t, Between(0, 0, 1))
	assert.False(t, Between(0, 1.5, 1))
}
