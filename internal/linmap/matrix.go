// Package linmap provides the 2x2 matrix type and the structural operations
// and scalings a display panel can apply to it.
package linmap

import (
	"fmt"
	"math"

	"lineon/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// detEpsilon is the threshold below which a determinant is treated as zero.
const detEpsilon = 1e-10

// Matrix is a 2x2 real matrix in row-major order, representing a linear
// map of the plane.
type Matrix [2][2]float64

// Identity returns the 2x2 identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

// New builds a matrix from row-major cell values.
func New(a, b, c, d float64) Matrix {
	return Matrix{{a, b}, {c, d}}
}

// Transpose returns the matrix transpose.
func (m Matrix) Transpose() Matrix {
	return Matrix{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Add returns m + other.
func (m Matrix) Add(other Matrix) Matrix {
	return Matrix{
		{m[0][0] + other[0][0], m[0][1] + other[0][1]},
		{m[1][0] + other[1][0], m[1][1] + other[1][1]},
	}
}

// Sub returns m - other.
func (m Matrix) Sub(other Matrix) Matrix {
	return Matrix{
		{m[0][0] - other[0][0], m[0][1] - other[0][1]},
		{m[1][0] - other[1][0], m[1][1] - other[1][1]},
	}
}

// Scale returns the matrix with every cell multiplied by f.
func (m Matrix) Scale(f float64) Matrix {
	return Matrix{
		{m[0][0] * f, m[0][1] * f},
		{m[1][0] * f, m[1][1] * f},
	}
}

// Mul returns the matrix product m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		{
			m[0][0]*other[0][0] + m[0][1]*other[1][0],
			m[0][0]*other[0][1] + m[0][1]*other[1][1],
		},
		{
			m[1][0]*other[0][0] + m[1][1]*other[1][0],
			m[1][0]*other[0][1] + m[1][1]*other[1][1],
		},
	}
}

// Det returns the determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Trace returns the trace.
func (m Matrix) Trace() float64 {
	return m[0][0] + m[1][1]
}

// Norm returns the Frobenius norm.
func (m Matrix) Norm() float64 {
	return math.Sqrt(m[0][0]*m[0][0] + m[0][1]*m[0][1] +
		m[1][0]*m[1][0] + m[1][1]*m[1][1])
}

// Apply maps a point through the matrix (column-vector convention).
func (m Matrix) Apply(p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: m[0][0]*p.X + m[0][1]*p.Y,
		Y: m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Inverse returns the matrix inverse. On a singular or near-singular
// matrix it returns the identity and false.
func (m Matrix) Inverse() (Matrix, bool) {
	if math.Abs(m.Det()) <= detEpsilon {
		return Identity(), false
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Identity(), false
	}
	return fromDense(&inv), true
}

// Polar computes the polar decomposition m = R * P, where R is the
// orthogonal (rotation/reflection) factor and P the positive-semidefinite
// stretch factor. Returns identity factors and false when the underlying
// SVD fails to converge.
func (m Matrix) Polar() (rotation, stretch Matrix, ok bool) {
	var svd mat.SVD
	if !svd.Factorize(m.dense(), mat.SVDFull) {
		return Identity(), Identity(), false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	// R = U * Vᵀ
	var r mat.Dense
	r.Mul(&u, v.T())

	// P = V * Σ * Vᵀ
	var sv mat.Dense
	sv.Mul(&v, mat.NewDiagDense(2, sigma))
	var p mat.Dense
	p.Mul(&sv, v.T())

	return fromDense(&r), fromDense(&p), true
}

// String returns a compact single-line rendition, mainly for logging.
func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", m[0][0], m[0][1], m[1][0], m[1][1])
}

func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{m[0][0], m[0][1], m[1][0], m[1][1]})
}

func fromDense(d *mat.Dense) Matrix {
	return Matrix{
		{d.At(0, 0), d.At(0, 1)},
		{d.At(1, 0), d.At(1, 1)},
	}
}
