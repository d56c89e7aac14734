package smoothrect

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var someVectors = []Pair{
	P(1, 0), P(0, 1), P(3, -4), P(-2.5, 7.25), P(0.1, 0.2), P(-1e6, 1e-6),
}

func TestQuarterRotateTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := P(2, 5)
	assert.Equal(t, P(2, 5), QuarterRotate(v, 0))
	assert.Equal(t, P(-5, 2), QuarterRotate(v, 1))
	assert.Equal(t, P(-2, -5), QuarterRotate(v, 2))
	assert.Equal(t, P(5, -2), QuarterRotate(v, 3))
	assert.Equal(t, QuarterRotate(v, 1), QuarterRotate(v, 5))
	assert.Equal(t, QuarterRotate(v, 3), QuarterRotate(v, -1))
}

func TestQuarterRotateMatchesAffineRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, v := range someVectors {
		for k := 0; k < 4; k++ {
			want := Rotation(float64(k) * 90 * Deg2Rad).Transform(v)
			got := QuarterRotate(v, k)
			assert.InDelta(t, want.X(), got.X(), 1e-6*(1+v.Len()), "k=%d v=%v", k, v)
			assert.InDelta(t, want.Y(), got.Y(), 1e-6*(1+v.Len()), "k=%d v=%v", k, v)
		}
	}
}

func TestQuarterRotatePreservesMagnitude(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, v := range someVectors {
		for k := -4; k < 8; k++ {
			assert.Equal(t, v.Len(), QuarterRotate(v, k).Len(), "k=%d v=%v", k, v)
		}
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, v := range someVectors {
		w := v
		for i := 0; i < 4; i++ {
			w = QuarterRotate(w, 1)
		}
		assert.Equal(t, v, w)
	}
}

func TestTransposed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, P(4, 3), Transposed(P(3, 4)))
	v := P(0.3, 0.7)
	assert.Equal(t, v, Transposed(Transposed(v)))
}
