package linmap

import "math"

// Operation is a structural transform applied to a base matrix.
type Operation string

const (
	OpNone             Operation = "none"
	OpTranspose        Operation = "transpose"
	OpSymmetric        Operation = "symmetric"
	OpSkew             Operation = "skew"
	OpInverse          Operation = "inverse"
	OpSquared          Operation = "squared"
	OpCubed            Operation = "cubed"
	OpRotation         Operation = "rotation"
	OpStretch          Operation = "stretch"
	OpVolumetric       Operation = "volumetric"
	OpDeviatoric       Operation = "deviatoric"
	OpSubtractIdentity Operation = "subtract_identity"
)

// Scaling is a magnitude normalization applied after the operation.
type Scaling string

const (
	ScaleOriginal    Scaling = "original"
	ScaleNormalized  Scaling = "normalized"
	ScaleDeterminant Scaling = "determinant"
	ScaleHalved      Scaling = "halved"
	ScaleDoubled     Scaling = "doubled"
)

// Operations lists all operations in menu order.
func Operations() []Operation {
	return []Operation{
		OpNone, OpTranspose, OpSymmetric, OpSkew, OpInverse,
		OpSquared, OpCubed, OpRotation, OpStretch,
		OpVolumetric, OpDeviatoric, OpSubtractIdentity,
	}
}

// Scalings lists all scalings in menu order.
func Scalings() []Scaling {
	return []Scaling{
		ScaleOriginal, ScaleNormalized, ScaleDeterminant,
		ScaleHalved, ScaleDoubled,
	}
}

// ApplyOperation derives a new matrix from m according to the operation.
// Numerically undefined cases (inverse of a singular matrix, a failed
// polar decomposition) silently yield the identity so the caller always
// has a valid map to render.
func ApplyOperation(m Matrix, op Operation) Matrix {
	switch op {
	case OpTranspose:
		return m.Transpose()
	case OpSymmetric:
		return m.Add(m.Transpose()).Scale(0.5)
	case OpSkew:
		return m.Sub(m.Transpose()).Scale(0.5)
	case OpInverse:
		inv, _ := m.Inverse()
		return inv
	case OpSquared:
		return m.Mul(m)
	case OpCubed:
		return m.Mul(m).Mul(m)
	case OpRotation:
		r, _, _ := m.Polar()
		return r
	case OpStretch:
		_, p, _ := m.Polar()
		return p
	case OpVolumetric:
		return Identity().Scale(m.Trace() / 2)
	case OpDeviatoric:
		return m.Sub(Identity().Scale(m.Trace() / 2))
	case OpSubtractIdentity:
		return m.Sub(Identity())
	}
	return m
}

// ApplyScaling rescales an already operation-transformed matrix. Scalings
// whose divisor is zero or near-zero leave the matrix unchanged.
func ApplyScaling(m Matrix, s Scaling) Matrix {
	switch s {
	case ScaleNormalized:
		if norm := m.Norm(); norm > 0 {
			return m.Scale(1 / norm)
		}
	case ScaleDeterminant:
		if det := m.Det(); math.Abs(det) > detEpsilon {
			return m.Scale(1 / det)
		}
	case ScaleHalved:
		return m.Scale(0.5)
	case ScaleDoubled:
		return m.Scale(2)
	}
	return m
}
