package linear

import (
	"math"
	"testing"

	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

func TestSimpleRegression_Basic(t *testing.T) {
	// Test basic linear regression y = 2x + 1
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	lr := NewSimpleRegression()

	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if math.Abs(lr.Slope-2.0) > 0.01 {
		t.Errorf("Expected slope ~2.0, got %f", lr.Slope)
	}

	if math.Abs(lr.Intercept-1.0) > 0.01 {
		t.Errorf("Expected intercept ~1.0, got %f", lr.Intercept)
	}

	// Test prediction
	pred, err := lr.Predict([]float64{5, 6})
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	expected := []float64{11, 13}
	for i := range expected {
		if math.Abs(pred[i]-expected[i]) > 0.01 {
			t.Errorf("Expected prediction %f, got %f", expected[i], pred[i])
		}
	}

	// Exact fit has R² = 1
	r2, err := lr.RSquared()
	if err != nil {
		t.Fatalf("RSquared() failed: %v", err)
	}
	if math.Abs(r2-1.0) > 1e-10 {
		t.Errorf("Expected R² = 1 for exact fit, got %f", r2)
	}
}

func TestSimpleRegression_Origin(t *testing.T) {
	// Test without intercept: y = 2x
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	lr := NewSimpleRegression(WithOrigin(true))

	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if math.Abs(lr.Slope-2.0) > 0.01 {
		t.Errorf("Expected slope ~2.0, got %f", lr.Slope)
	}

	if lr.Intercept != 0 {
		t.Errorf("Expected intercept 0, got %f", lr.Intercept)
	}
}

func TestSimpleRegression_AnalyticStandardErrors(t *testing.T) {
	// Hand-computed reference: x = 1..5, y = {2, 4, 5, 4, 5}
	// slope = 0.6, intercept = 2.2, RSS = 2.4, s² = 0.8
	// SE(slope) = sqrt(0.8/10), SE(intercept) = sqrt(0.8*(1/5 + 9/10))
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	lr := NewSimpleRegression()
	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	tol := 1e-10

	if math.Abs(lr.Slope-0.6) > tol {
		t.Errorf("Slope = %v, want 0.6", lr.Slope)
	}
	if math.Abs(lr.Intercept-2.2) > tol {
		t.Errorf("Intercept = %v, want 2.2", lr.Intercept)
	}

	slopeSE, err := lr.SlopeStdErr()
	if err != nil {
		t.Fatalf("SlopeStdErr() failed: %v", err)
	}
	if want := math.Sqrt(0.08); math.Abs(slopeSE-want) > tol {
		t.Errorf("SlopeStdErr() = %v, want %v", slopeSE, want)
	}

	interceptSE, err := lr.InterceptStdErr()
	if err != nil {
		t.Fatalf("InterceptStdErr() failed: %v", err)
	}
	if want := math.Sqrt(0.88); math.Abs(interceptSE-want) > tol {
		t.Errorf("InterceptStdErr() = %v, want %v", interceptSE, want)
	}

	residVar, err := lr.ResidualVariance()
	if err != nil {
		t.Fatalf("ResidualVariance() failed: %v", err)
	}
	if math.Abs(residVar-0.8) > tol {
		t.Errorf("ResidualVariance() = %v, want 0.8", residVar)
	}

	r2, err := lr.RSquared()
	if err != nil {
		t.Fatalf("RSquared() failed: %v", err)
	}
	if math.Abs(r2-0.6) > tol {
		t.Errorf("RSquared() = %v, want 0.6", r2)
	}
}

func TestSimpleRegression_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{name: "empty data", x: []float64{}, y: []float64{}},
		{name: "length mismatch", x: []float64{1, 2, 3}, y: []float64{1, 2}},
		{name: "NaN in predictor", x: []float64{1, math.NaN()}, y: []float64{1, 2}},
		{name: "Inf in response", x: []float64{1, 2}, y: []float64{1, math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewSimpleRegression()
			if err := lr.Fit(tt.x, tt.y); err == nil {
				t.Error("Expected error from Fit, got nil")
			}
			if lr.IsFitted() {
				t.Error("Model should not be fitted after failed Fit")
			}
		})
	}
}

func TestSimpleRegression_DegenerateFit(t *testing.T) {
	// Constant predictor: slope is undefined
	x := []float64{3, 3, 3, 3}
	y := []float64{1, 2, 3, 4}

	lr := NewSimpleRegression()
	err := lr.Fit(x, y)
	if err == nil {
		t.Fatal("Expected degenerate fit error, got nil")
	}

	if !errors.Is(err, errors.ErrDegenerateFit) {
		t.Errorf("Expected ErrDegenerateFit, got %v", err)
	}

	var degErr *errors.DegenerateFitError
	if !errors.As(err, &degErr) {
		t.Fatalf("Expected DegenerateFitError, got %T", err)
	}
	if degErr.N != 4 {
		t.Errorf("Expected n=4 in error, got %d", degErr.N)
	}
}

func TestSimpleRegression_NoDegreesOfFreedom(t *testing.T) {
	// Two points determine a line exactly: no residual degrees of freedom
	x := []float64{1, 2}
	y := []float64{1, 3}

	lr := NewSimpleRegression()
	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("Fit should succeed with two points: %v", err)
	}

	if math.Abs(lr.Slope-2.0) > 1e-10 {
		t.Errorf("Slope = %v, want 2", lr.Slope)
	}

	if _, err := lr.SlopeStdErr(); err == nil {
		t.Error("SlopeStdErr should fail without residual degrees of freedom")
	}
	if _, err := lr.ResidualVariance(); err == nil {
		t.Error("ResidualVariance should fail without residual degrees of freedom")
	}
}

func TestSimpleRegression_PredictLargeInput(t *testing.T) {
	lr := NewSimpleRegression()
	if err := lr.Fit([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}); err != nil {
		t.Fatalf("Fit() failed: %v", err)
	}

	// Large enough to cross the internal parallelization threshold.
	n := 5000
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 10
	}

	got, err := lr.Predict(x)
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}
	if len(got) != n {
		t.Fatalf("Predict() returned %d values, want %d", len(got), n)
	}
	for i, xv := range x {
		want := lr.Intercept + lr.Slope*xv
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("Predict()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSimpleRegression_NotFitted(t *testing.T) {
	lr := NewSimpleRegression()

	if _, err := lr.Predict([]float64{1}); err == nil {
		t.Error("Predict should fail before Fit")
	} else {
		var nfErr *errors.NotFittedError
		if !errors.As(err, &nfErr) {
			t.Errorf("Expected NotFittedError, got %T", err)
		}
	}

	if _, err := lr.SlopeStdErr(); err == nil {
		t.Error("SlopeStdErr should fail before Fit")
	}
	if _, err := lr.Score([]float64{1}, []float64{1}); err == nil {
		t.Error("Score should fail before Fit")
	}
}

func TestSimpleRegression_Score(t *testing.T) {
	// Train on a noiseless line, score held-out points from the same line
	lr := NewSimpleRegression()
	if err := lr.Fit([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	score, err := lr.Score([]float64{5, 6, 7}, []float64{11, 13, 15})
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}

	if math.Abs(score-1.0) > 1e-10 {
		t.Errorf("Score() = %v, want 1.0", score)
	}
}
