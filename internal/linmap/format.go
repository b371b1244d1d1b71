package linmap

import "fmt"

// operationLabels maps operations to the names shown in the UI.
var operationLabels = map[Operation]string{
	OpNone:             "None",
	OpTranspose:        "Transpose",
	OpSymmetric:        "Symmetric",
	OpSkew:             "Skew",
	OpInverse:          "Inverse",
	OpSquared:          "Squared",
	OpCubed:            "Cubed",
	OpRotation:         "Rotation",
	OpStretch:          "Stretch",
	OpVolumetric:       "Volumetric",
	OpDeviatoric:       "Deviatoric",
	OpSubtractIdentity: "Subtract Identity",
}

// scalingLabels maps scalings to the names shown in the UI.
var scalingLabels = map[Scaling]string{
	ScaleOriginal:    "Original",
	ScaleNormalized:  "Normalized",
	ScaleDeterminant: "Determinant-scaled",
	ScaleHalved:      "Halved",
	ScaleDoubled:     "Doubled",
}

// Label returns the operation's display name.
func (op Operation) Label() string {
	if l, ok := operationLabels[op]; ok {
		return l
	}
	return string(op)
}

// Label returns the scaling's display name.
func (s Scaling) Label() string {
	if l, ok := scalingLabels[s]; ok {
		return l
	}
	return string(s)
}

// Format renders the matrix as a two-line readout with one-decimal cells,
// suitable for a panel header.
func (m Matrix) Format() string {
	return fmt.Sprintf("[ %.1f  %.1f ]\n[ %.1f  %.1f ]",
		m[0][0], m[0][1], m[1][0], m[1][1])
}

// DescribeTransform names the applied operation and scaling for a panel
// header, e.g. "Rotation (Halved)". The scaling suffix is omitted when the
// scaling is Original.
func DescribeTransform(op Operation, s Scaling) string {
	if s == ScaleOriginal {
		return op.Label()
	}
	return fmt.Sprintf("%s (%s)", op.Label(), s.Label())
}
