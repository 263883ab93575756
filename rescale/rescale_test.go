package rescale_test

import (
	"math"
	"testing"

	"github.com/quantakit/crcal/pulse"
	"github.com/quantakit/crcal/rescale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baselineCR builds the reference calibrated pulse used across these
// tests: width=512.00000001, sigma=64, four-sigma edges, amp=1.
func baselineCR(t *testing.T) pulse.GaussianSquare {
	t.Helper()
	g, err := pulse.NewGaussianSquare(1, 768, 64, 512.00000001)
	require.NoError(t, err)

	return g
}

// expectedDuration applies the reference formula (edge area via erf,
// linear area scaling, nearest-grid rounding) for cross-checking.
func expectedDuration(g pulse.GaussianSquare, theta float64, mult int) int {
	absAmp := 1.0 // baselineCR uses amp=1
	nSigmas := g.NSigmas()
	gaussianArea := absAmp * g.Sigma() * math.Sqrt(2*math.Pi) * math.Erf(nSigmas)
	area := gaussianArea + absAmp*g.Width()
	targetArea := math.Abs(theta) / (math.Pi / 2) * area
	width := (targetArea - gaussianArea) / absAmp

	return int(math.Round((width+nSigmas*g.Sigma())/float64(mult))) * mult
}

// TestRescale_ReferenceDurations reproduces the reference scenario for
// θ ∈ {π/4, π/2, π}: the scaled duration must match the formula.
func TestRescale_ReferenceDurations(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()

	for _, theta := range []float64{math.Pi / 4, math.Pi / 2, math.Pi} {
		scaled, err := rescale.Rescale(g, theta, opts)
		require.NoError(t, err, "theta=%g", theta)
		assert.Equal(t, expectedDuration(g, theta, opts.SampleMultiple), scaled.Duration(),
			"duration mismatch at theta=%g", theta)
	}
}

// TestRescale_AreaInvariance verifies area(scaled) equals
// (|θ|/(π/2))·area(baseline), ignoring duration quantization: the
// flat-top width is exact, so the area is reconstructed from the
// baseline's edge contribution plus the scaled width.
func TestRescale_AreaInvariance(t *testing.T) {
	g := baselineCR(t)
	baseArea := rescale.Area(g)
	edges := baseArea - g.Width() // |amp|=1: edge area is total minus flat-top
	opts := rescale.DefaultOptions()

	for _, theta := range []float64{0.45, math.Pi / 4, 1.0, math.Pi / 2, 2.5, math.Pi, -math.Pi / 3} {
		scaled, err := rescale.Rescale(g, theta, opts)
		require.NoError(t, err, "theta=%g", theta)
		want := math.Abs(theta) / (math.Pi / 2) * baseArea
		assert.InDelta(t, want, edges+scaled.Width(), 1e-9,
			"area must scale linearly with |theta| (theta=%g)", theta)

		// With quantization included the area still lands within the
		// half-grid rounding slack.
		assert.InDelta(t, want, rescale.Area(scaled), 1e-3, "theta=%g", theta)
	}
}

// TestRescale_GridQuantization verifies every output duration is a
// multiple of the sample granularity, across granularities.
func TestRescale_GridQuantization(t *testing.T) {
	g := baselineCR(t)

	for _, mult := range []int{8, 16, 64} {
		opts := rescale.Options{SampleMultiple: mult}
		for theta := 0.4; theta < 4; theta += 0.17 {
			scaled, err := rescale.Rescale(g, theta, opts)
			require.NoError(t, err)
			assert.Zero(t, scaled.Duration()%mult,
				"duration %d not on the %d-sample grid (theta=%g)", scaled.Duration(), mult, theta)
		}
	}
}

// TestRescale_Deterministic verifies bit-identical output across calls.
func TestRescale_Deterministic(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()

	first, err := rescale.Rescale(g, 1.2345, opts)
	require.NoError(t, err)
	second, err := rescale.Rescale(g, 1.2345, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical pulses")
}

// TestRescale_DurationMonotonic verifies |θ1| < |θ2| implies
// duration(θ1) ≤ duration(θ2).
func TestRescale_DurationMonotonic(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()

	prev := -1
	for theta := 0.4; theta < 6; theta += 0.05 {
		scaled, err := rescale.Rescale(g, theta, opts)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, scaled.Duration(), prev,
			"duration decreased at theta=%g", theta)
		prev = scaled.Duration()
	}
}

// TestRescale_PreservesAmpAndSigma verifies amplitude (including phase
// and sign) and edge width carry over unchanged.
func TestRescale_PreservesAmpAndSigma(t *testing.T) {
	amp := complex(-0.23, 0.11)
	g, err := pulse.NewGaussianSquare(amp, 768, 64, 512)
	require.NoError(t, err)

	scaled, err := rescale.Rescale(g, math.Pi/3, rescale.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, amp, scaled.Amp(), "amplitude must not change")
	assert.Equal(t, 64.0, scaled.Sigma(), "edge width must not change")
}

// TestRescale_NegativeAngle verifies only |θ| enters the scaling.
func TestRescale_NegativeAngle(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()

	pos, err := rescale.Rescale(g, math.Pi/3, opts)
	require.NoError(t, err)
	neg, err := rescale.Rescale(g, -math.Pi/3, opts)
	require.NoError(t, err)
	assert.Equal(t, pos, neg)
}

// TestRescale_UnsupportedKind verifies every non-GaussianSquare family
// is rejected.
func TestRescale_UnsupportedKind(t *testing.T) {
	opts := rescale.DefaultOptions()

	ga, _ := pulse.NewGaussian(0.5, 160, 40)
	dr, _ := pulse.NewDrag(0.5, 160, 40, 1)
	ct, _ := pulse.NewConstant(0.5, 320)

	for _, w := range []pulse.Waveform{ga, dr, ct, nil} {
		_, err := rescale.Rescale(w, math.Pi/2, opts)
		assert.ErrorIs(t, err, rescale.ErrUnsupportedKind, "kind must be rejected: %v", w)
	}
}

// TestRescale_BadOptions covers granularity and angle validation.
func TestRescale_BadOptions(t *testing.T) {
	g := baselineCR(t)

	_, err := rescale.Rescale(g, math.Pi/2, rescale.Options{SampleMultiple: 0})
	assert.ErrorIs(t, err, rescale.ErrBadSampleMultiple)

	_, err = rescale.Rescale(g, math.NaN(), rescale.DefaultOptions())
	assert.ErrorIs(t, err, rescale.ErrNonFiniteAngle)

	_, err = rescale.Rescale(g, math.Inf(1), rescale.DefaultOptions())
	assert.ErrorIs(t, err, rescale.ErrNonFiniteAngle)
}

// TestRescale_TooSmallAngle verifies the default hard-error policy when
// the requested angle cannot be reached even with a zero flat-top.
func TestRescale_TooSmallAngle(t *testing.T) {
	g := baselineCR(t)

	// The Gaussian edges alone already overshoot these angles.
	for _, theta := range []float64{0, 1e-4, 0.05} {
		_, err := rescale.Rescale(g, theta, rescale.DefaultOptions())
		assert.ErrorIs(t, err, rescale.ErrInvalidResult, "theta=%g must error without clamping", theta)
	}
}

// TestRescale_ClampWidth verifies the opt-in clamp policy: a too-small
// angle yields the minimal edge-only pulse instead of an error.
func TestRescale_ClampWidth(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()
	opts.ClampWidth = true

	scaled, err := rescale.Rescale(g, 0, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scaled.Width(), "clamped flat-top is empty")

	// Duration is the edge extent rounded to the grid: 4σ·... = 256.
	want := int(math.Round(g.NSigmas()*g.Sigma()/16)) * 16
	assert.Equal(t, want, scaled.Duration())
}

// TestRescale_HugeAngle verifies angles whose scaled duration cannot
// be represented are rejected instead of wrapping into a malformed
// zero- or garbage-duration pulse.
func TestRescale_HugeAngle(t *testing.T) {
	g := baselineCR(t)
	opts := rescale.DefaultOptions()

	for _, theta := range []float64{1e17, 1e18, -1e18, math.MaxFloat64} {
		_, err := rescale.Rescale(g, theta, opts)
		assert.ErrorIs(t, err, rescale.ErrInvalidResult, "theta=%g must be rejected", theta)
	}

	// Large but representable angles still scale cleanly, so the
	// rejection above is the monotonic tail of the valid domain.
	scaled, err := rescale.Rescale(g, 1e10, opts)
	require.NoError(t, err)
	assert.Positive(t, scaled.Duration())
	assert.Zero(t, scaled.Duration()%opts.SampleMultiple)
}

// TestRescale_ShortEdgeRoundDown verifies a pulse whose edge extent is
// shorter than half the grid errors when round-down lands the duration
// below the exact flat-top, rather than silently truncating the width.
func TestRescale_ShortEdgeRoundDown(t *testing.T) {
	// Rise time 3 samples: round((100+3)/16)·16 = 96 < width.
	g, err := pulse.NewGaussianSquare(1, 103, 1, 100)
	require.NoError(t, err)

	_, err = rescale.Rescale(g, math.Pi/2, rescale.DefaultOptions())
	assert.ErrorIs(t, err, rescale.ErrInvalidResult)
}

// TestRescale_ZeroAmp verifies a zero-amplitude pulse cannot be scaled.
func TestRescale_ZeroAmp(t *testing.T) {
	g, err := pulse.NewGaussianSquare(0, 768, 64, 512)
	require.NoError(t, err)

	_, err = rescale.Rescale(g, math.Pi/2, rescale.DefaultOptions())
	assert.ErrorIs(t, err, rescale.ErrInvalidResult)
}
