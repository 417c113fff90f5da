package backdrop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPointerTopLeft(t *testing.T) {
	var s Sampler
	s.RecordPointer(0, 0, 800, 600)
	got := s.Snapshot()
	assert.Equal(t, -1.0, got.X)
	assert.Equal(t, 1.0, got.Y)
}

func TestRecordPointerEdges(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{0, 0, -1, 1},
		{800, 0, 1, 1},
		{0, 600, -1, -1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
	}
	var s Sampler
	for _, tt := range tests {
		s.RecordPointer(tt.x, tt.y, 800, 600)
		got := s.Snapshot()
		assert.Equal(t, tt.wantX, got.X, "x for (%v,%v)", tt.x, tt.y)
		assert.Equal(t, tt.wantY, got.Y, "y for (%v,%v)", tt.x, tt.y)
	}
}

func TestRecordPointerStaysInRangeInsideViewport(t *testing.T) {
	var s Sampler
	for x := 0.0; x <= 1920; x += 37 {
		for y := 0.0; y <= 1080; y += 29 {
			s.RecordPointer(x, y, 1920, 1080)
			got := s.Snapshot()
			assert.True(t, got.X >= -1 && got.X <= 1, "x=%v out of range", got.X)
			assert.True(t, got.Y >= -1 && got.Y <= 1, "y=%v out of range", got.Y)
		}
	}
}

func TestRecordPointerOutsideViewportNotClamped(t *testing.T) {
	var s Sampler
	s.RecordPointer(1600, -300, 800, 600)
	got := s.Snapshot()
	assert.Equal(t, 3.0, got.X)
	assert.Equal(t, 2.0, got.Y)
}

func TestRecordPointerKeepsPixels(t *testing.T) {
	var s Sampler
	s.RecordPointer(123, 456, 800, 600)
	got := s.Snapshot()
	assert.Equal(t, 123.0, got.PixelX)
	assert.Equal(t, 456.0, got.PixelY)
}

func TestRecordPointerMalformedInput(t *testing.T) {
	var s Sampler
	s.RecordPointer(math.NaN(), math.Inf(1), 800, 600)
	got := s.Snapshot()
	assert.Equal(t, -1.0, got.X)
	assert.Equal(t, 1.0, got.Y)

	s.RecordPointer(1, 1, 0, -5)
	got = s.Snapshot()
	assert.Equal(t, 1.0, got.X)
	assert.Equal(t, -1.0, got.Y)
}

func TestRecordScroll(t *testing.T) {
	var s Sampler
	s.RecordScroll(250)
	assert.Equal(t, 250.0, s.Snapshot().Scroll)

	s.RecordScroll(-10)
	assert.Equal(t, 0.0, s.Snapshot().Scroll)

	s.RecordScroll(math.NaN())
	assert.Equal(t, 0.0, s.Snapshot().Scroll)
}

func TestRecordOverwrites(t *testing.T) {
	var s Sampler
	s.RecordPointer(0, 0, 800, 600)
	s.RecordPointer(800, 600, 800, 600)
	s.RecordScroll(10)
	s.RecordScroll(20)
	got := s.Snapshot()
	assert.Equal(t, 1.0, got.X)
	assert.Equal(t, -1.0, got.Y)
	assert.Equal(t, 20.0, got.Scroll)
}

func TestSnapshotIsCopy(t *testing.T) {
	var s Sampler
	s.RecordPointer(400, 300, 800, 600)
	snap := s.Snapshot()
	s.RecordPointer(0, 0, 800, 600)
	assert.Equal(t, 0.0, snap.X, "snapshot must not change after later samples")
}
