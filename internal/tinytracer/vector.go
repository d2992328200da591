package tinytracer

import (
	"errors"
	"fmt"
	"math"
)

// Real is the scalar type used throughout the tracer.
type Real = float64

// Vector3 represents a point, direction or linear RGB color in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a x b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector. The zero vector has no
// direction, so normalizing it is a recoverable error, not a NaN.
func (v Vector3) Norm() (Vector3, error) {
	l := v.Len()
	if l == 0 {
		return Vector3{}, errors.New("cannot normalize zero-length vector")
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}

// At returns the component selected by index 0, 1 or 2 (x, y, z).
// Any other index is a programmer error and panics.
func (v Vector3) At(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector index out of range: %d", i))
}

// Set assigns the component selected by index 0, 1 or 2 (x, y, z).
// Any other index is a programmer error and panics.
func (v *Vector3) Set(i int, x Real) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(fmt.Sprintf("vector index out of range: %d", i))
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
