// Package dct implements the 1D Type-II DCT with orthonormal scaling.
//
// The transform of a length-N sequence x (orthonormal, matching the
// scipy/numpy/cv2 "ortho" convention):
//
//	X[k] = scale(k) * sum_{n=0}^{N-1} x[n] * cos(pi/N * (n + 0.5) * k)
//	scale(0) = sqrt(1/N), scale(k>0) = sqrt(2/N)
//
// With this scaling the transform matrix is orthogonal: energy is
// preserved (Parseval) and the orthonormal Type-III DCT is the exact
// inverse. Coefficients are computed by direct summation in double
// precision; the angle pi/N*(n+0.5)*k is evaluated per term and never
// pre-rounded.
//
// All operations are pure and safe for concurrent use.
package dct

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Transform computes the orthonormal Type-II DCT of x by direct
// summation. It returns a new slice of the same length as x.
//
// x must be non-empty and contain only finite values; otherwise an
// error matching ErrInvalidInput is returned and no computation is
// performed. Inputs of very large magnitude do not fail but may lose
// relative precision in the accumulated sums.
//
// Cost is O(N²). For repeated transforms of the same length, New
// amortizes the basis evaluation.
func Transform(x []float64) ([]float64, error) {
	if err := validate(x); err != nil {
		return nil, err
	}
	n := len(x)
	out := make([]float64, n)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for k := 0; k < n; k++ {
		scale := scaleK
		if k == 0 {
			scale = scale0
		}
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += x[i] * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		out[k] = scale * sum
	}
	return out, nil
}

// DCT is a transform plan for sequences of a fixed length. The scaled
// cosine basis is evaluated once, so each subsequent transform costs
// one dot product per output coefficient. A DCT is immutable after New
// and safe for concurrent use by multiple goroutines.
type DCT struct {
	n     int
	basis []float64 // row-major n×n, row k = scale(k)*cos(pi/n*(i+0.5)*k)
}

// New returns a DCT plan for sequences of length n.
// It returns an error matching ErrInvalidInput if n < 1.
func New(n int) (*DCT, error) {
	if n < 1 {
		return nil, ErrEmptySequence
	}
	return &DCT{n: n, basis: basis(n)}, nil
}

// Len returns the sequence length the plan was built for.
func (d *DCT) Len() int { return d.n }

// Transform computes the orthonormal Type-II DCT of x into dst and
// returns dst. If dst is nil, a new slice is allocated; otherwise dst
// must have length Len. x must have length Len and contain only finite
// values. The result is numerically identical to the package-level
// Transform.
func (d *DCT) Transform(dst, x []float64) ([]float64, error) {
	if len(x) != d.n {
		return nil, &LengthError{Got: len(x), Want: d.n}
	}
	if err := validate(x); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]float64, d.n)
	} else if len(dst) != d.n {
		return nil, &LengthError{Got: len(dst), Want: d.n}
	}
	for k := 0; k < d.n; k++ {
		dst[k] = floats.Dot(d.basis[k*d.n:(k+1)*d.n], x)
	}
	return dst, nil
}

// Matrix returns the n×n orthonormal Type-II DCT basis as a dense
// matrix, with row k holding scale(k)*cos(pi/n*(i+0.5)*k). The matrix
// is orthogonal: multiplying it with a length-n column vector performs
// the transform, and its transpose is its inverse.
// It returns an error matching ErrInvalidInput if n < 1.
func Matrix(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrEmptySequence
	}
	return mat.NewDense(n, n, basis(n)), nil
}

// basis builds the row-major scaled cosine table for length n.
func basis(n int) []float64 {
	b := make([]float64, n*n)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for k := 0; k < n; k++ {
		scale := scaleK
		if k == 0 {
			scale = scale0
		}
		row := b[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			row[i] = scale * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
	}
	return b
}

// validate rejects empty sequences and non-finite elements before any
// computation is attempted.
func validate(x []float64) error {
	if len(x) == 0 {
		return ErrEmptySequence
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NonFiniteValueError{Index: i, Value: v}
		}
	}
	return nil
}
