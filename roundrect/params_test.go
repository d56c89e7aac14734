package roundrect

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// panicErr runs f and returns the error it panicked with.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("expected panic with an error, got %v", r)
		}
	}()
	f()
	return nil
}

func TestCurveParametersFullSmoothness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCurveParameters(20, 1)
	t.Logf("params = %v", c)
	assert.InDelta(t, 40, c.EdgeConnectingOffset, 1e-12)
	assert.InDelta(t, 1-math.Sqrt2/2, c.ArcConnectingVector.X(), 1e-12)
	assert.InDelta(t, 1-math.Sqrt2/2, c.ArcConnectingVector.Y(), 1e-12)
	assert.InDelta(t, 2-math.Sqrt2, c.ArcCurveOffset, 1e-12) // 1 - tan(π/8)
	assert.InDelta(t, 40-(40-(2-math.Sqrt2))*2/3, c.EdgeCurveOffset, 1e-12)
	assert.InDelta(t, 13.7239, c.EdgeCurveOffset, 1e-4)
}

func TestCurveParametersHalfSmoothness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCurveParameters(10, 0.5)
	angle := math.Pi / 8
	assert.InDelta(t, 15, c.EdgeConnectingOffset, 1e-12)
	assert.InDelta(t, 1-math.Sin(angle), c.ArcConnectingVector.X(), 1e-12)
	assert.InDelta(t, 1-math.Cos(angle), c.ArcConnectingVector.Y(), 1e-12)
	assert.InDelta(t, 1-math.Tan(angle/2), c.ArcCurveOffset, 1e-12)
}

func TestCurveParametersAreOrdered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, radius := range []float64{1, 7.5, 20, 1000} {
		for _, s := range []float64{1e-6, 0.01, 0.25, 0.5, 0.75, 0.999, 1} {
			c := NewCurveParameters(radius, s)
			assert.Greater(t, c.EdgeConnectingOffset, c.EdgeCurveOffset, "r=%g s=%g", radius, s)
			assert.Greater(t, c.EdgeCurveOffset, c.ArcCurveOffset, "r=%g s=%g", radius, s)
			assert.Greater(t, c.ArcCurveOffset, 0.0, "r=%g s=%g", radius, s)
		}
	}
	// the edge-side control point sits two thirds of the way out
	for _, radius := range []float64{1e-4, 0.3, 20} {
		c := NewCurveParameters(radius, 0.5)
		assert.InDelta(t, (c.EdgeConnectingOffset-c.ArcCurveOffset)/3,
			c.EdgeCurveOffset-c.ArcCurveOffset, 1e-12, "r=%g", radius)
	}
}

func TestCurveParametersDependOnRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	small, large := NewCurveParameters(10, 0.5), NewCurveParameters(20, 0.5)
	assert.NotEqual(t, small, large)
	assert.Equal(t, small.ArcConnectingVector, large.ArcConnectingVector)
	assert.Equal(t, NewCurveParameters(20, 0.5), large)
}

func TestCurveParametersPreconditions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := panicErr(t, func() { NewCurveParameters(radius, 0.5) })
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %g: expected ErrInvalidRadius, got %v", radius, err)
		}
	}
	for _, s := range []float64{0, -0.5, 1.0000001, math.NaN()} {
		err := panicErr(t, func() { NewCurveParameters(10, s) })
		if !errors.Is(err, ErrInvalidSmoothness) {
			t.Errorf("smoothness %g: expected ErrInvalidSmoothness, got %v", s, err)
		}
	}
}
