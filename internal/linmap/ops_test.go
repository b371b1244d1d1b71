package linmap

import (
	"math"
	"testing"
)

const tol = 1e-9

func matricesClose(a, b Matrix, eps float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func TestApplyOperationNone(t *testing.T) {
	m := New(1, 2, 3, 4)
	if got := ApplyOperation(m, OpNone); got != m {
		t.Fatalf("none changed the matrix: %v", got)
	}
}

func TestApplyOperationTranspose(t *testing.T) {
	m := New(1, 2, 3, 4)
	want := New(1, 3, 2, 4)
	if got := ApplyOperation(m, OpTranspose); got != want {
		t.Fatalf("transpose = %v, want %v", got, want)
	}
}

func TestSymmetricAndSkewPartsSum(t *testing.T) {
	m := New(1, 2, 3, 4)
	sym := ApplyOperation(m, OpSymmetric)
	skew := ApplyOperation(m, OpSkew)

	if sym != sym.Transpose() {
		t.Fatalf("symmetric part is not symmetric: %v", sym)
	}
	if skew.Transpose() != skew.Scale(-1) {
		t.Fatalf("skew part is not antisymmetric: %v", skew)
	}
	if got := sym.Add(skew); !matricesClose(got, m, tol) {
		t.Fatalf("sym + skew = %v, want %v", got, m)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := New(2, 1, 1, 3)
	inv := ApplyOperation(m, OpInverse)
	back := ApplyOperation(inv, OpInverse)
	if !matricesClose(back, m, tol) {
		t.Fatalf("inverse round trip = %v, want %v", back, m)
	}
	if got := m.Mul(inv); !matricesClose(got, Identity(), tol) {
		t.Fatalf("m * inv(m) = %v, want identity", got)
	}
}

func TestInverseSingularFallsBackToIdentity(t *testing.T) {
	m := New(1, 2, 2, 4) // det = 0
	if got := ApplyOperation(m, OpInverse); got != Identity() {
		t.Fatalf("inverse of singular = %v, want identity", got)
	}
}

func TestSquaredAndCubed(t *testing.T) {
	m := New(2, 0, 0, 3)
	if got := ApplyOperation(m, OpSquared); got != New(4, 0, 0, 9) {
		t.Fatalf("squared = %v, want [[4 0] [0 9]]", got)
	}
	if got := ApplyOperation(m, OpCubed); got != New(8, 0, 0, 27) {
		t.Fatalf("cubed = %v, want [[8 0] [0 27]]", got)
	}
}

func TestPolarFactorsReconstruct(t *testing.T) {
	m := New(2, 1, -1, 3)
	r := ApplyOperation(m, OpRotation)
	p := ApplyOperation(m, OpStretch)

	if got := r.Transpose().Mul(r); !matricesClose(got, Identity(), tol) {
		t.Fatalf("rotation factor not orthogonal: RᵗR = %v", got)
	}
	if !matricesClose(p, p.Transpose(), tol) {
		t.Fatalf("stretch factor not symmetric: %v", p)
	}
	// PSD check via trace and determinant
	if p.Trace() < -tol || p.Det() < -tol {
		t.Fatalf("stretch factor not positive-semidefinite: %v", p)
	}
	if got := r.Mul(p); !matricesClose(got, m, tol) {
		t.Fatalf("R*P = %v, want %v", got, m)
	}
}

func TestRotationOfPureRotation(t *testing.T) {
	theta := math.Pi / 3
	m := New(math.Cos(theta), -math.Sin(theta), math.Sin(theta), math.Cos(theta))

	if got := ApplyOperation(m, OpRotation); !matricesClose(got, m, tol) {
		t.Fatalf("rotation factor of a rotation = %v, want %v", got, m)
	}
	if got := ApplyOperation(m, OpStretch); !matricesClose(got, Identity(), tol) {
		t.Fatalf("stretch factor of a rotation = %v, want identity", got)
	}
}

func TestVolumetricDeviatoricSplit(t *testing.T) {
	m := New(3, 1, 2, 5)
	vol := ApplyOperation(m, OpVolumetric)
	dev := ApplyOperation(m, OpDeviatoric)

	if vol != New(4, 0, 0, 4) {
		t.Fatalf("volumetric = %v, want 4*I", vol)
	}
	if math.Abs(dev.Trace()) > tol {
		t.Fatalf("deviatoric trace = %g, want 0", dev.Trace())
	}
	if got := vol.Add(dev); !matricesClose(got, m, tol) {
		t.Fatalf("vol + dev = %v, want %v", got, m)
	}
}

func TestSubtractIdentity(t *testing.T) {
	m := New(3, 1, 2, 5)
	if got := ApplyOperation(m, OpSubtractIdentity); got != New(2, 1, 2, 4) {
		t.Fatalf("subtract_identity = %v", got)
	}
}

func TestApplyScalingNormalized(t *testing.T) {
	m := New(3, 0, 0, 4)
	got := ApplyScaling(m, ScaleNormalized)
	if math.Abs(got.Norm()-1) > tol {
		t.Fatalf("normalized norm = %g, want 1", got.Norm())
	}

	var zero Matrix
	if got := ApplyScaling(zero, ScaleNormalized); got != zero {
		t.Fatalf("normalizing zero matrix changed it: %v", got)
	}
}

func TestApplyScalingDeterminant(t *testing.T) {
	m := New(2, 0, 0, 2) // det = 4
	if got := ApplyScaling(m, ScaleDeterminant); !matricesClose(got, New(0.5, 0, 0, 0.5), tol) {
		t.Fatalf("determinant-scaled = %v", got)
	}

	singular := New(1, 2, 2, 4)
	if got := ApplyScaling(singular, ScaleDeterminant); got != singular {
		t.Fatalf("determinant scaling of singular matrix changed it: %v", got)
	}
}

func TestApplyScalingHalvedDoubled(t *testing.T) {
	m := New(2, 4, 6, 8)
	if got := ApplyScaling(m, ScaleHalved); got != New(1, 2, 3, 4) {
		t.Fatalf("halved = %v", got)
	}
	if got := ApplyScaling(m, ScaleDoubled); got != New(4, 8, 12, 16) {
		t.Fatalf("doubled = %v", got)
	}
	if got := ApplyScaling(m, ScaleOriginal); got != m {
		t.Fatalf("original changed the matrix: %v", got)
	}
}

func TestFormat(t *testing.T) {
	m := New(1, 0, 0.25, -2)
	want := "[ 1.0  0.0 ]\n[ 0.2  -2.0 ]"
	if got := m.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestDescribeTransform(t *testing.T) {
	if got := DescribeTransform(OpRotation, ScaleHalved); got != "Rotation (Halved)" {
		t.Fatalf("DescribeTransform = %q", got)
	}
	if got := DescribeTransform(OpNone, ScaleOriginal); got != "None" {
		t.Fatalf("DescribeTransform = %q", got)
	}
	if got := DescribeTransform(OpSubtractIdentity, ScaleDeterminant); got != "Subtract Identity (Determinant-scaled)" {
		t.Fatalf("DescribeTransform = %q", got)
	}
}
