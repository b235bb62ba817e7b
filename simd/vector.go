package simd

// Real is satisfied by the floating-point vector types, so kernels can be
// written once for Float32x4 and Float64x2.
type Real[V any] interface {
	Float32x4 | Float64x2

	Add(V) V
	Sub(V) V
	Mul(V) V
	MulAdd(a, b V) V
	NegMulAdd(a, b V) V
	Abs() V
	Max(V) V
	Min(V) V
	Rcp() V
	Rsqrt() V
}

// Scalar is the lane type of a Real vector.
type Scalar interface {
	float32 | float64
}

// Lanes returns the number of lanes of V.
func Lanes[V Real[V]]() int {
	var v V
	if _, ok := any(v).(Float32x4); ok {
		return FloatWidth
	}
	return DoubleWidth
}

// Set returns a V with every lane set to c, rounded to the lane type.
func Set[V Real[V]](c float64) V {
	var v V
	switch p := any(&v).(type) {
	case *Float32x4:
		*p = BroadcastFloat32x4(float32(c))
	case *Float64x2:
		*p = BroadcastFloat64x2(c)
	}
	return v
}

// Load loads one V from the start of s. S must be the lane type of V.
func Load[V Real[V], S Scalar](s []S) V {
	var v V
	switch p := any(&v).(type) {
	case *Float32x4:
		*p = LoadFloat32x4(any(s).([]float32))
	case *Float64x2:
		*p = LoadFloat64x2(any(s).([]float64))
	}
	return v
}

// Store writes v to the start of s. S must be the lane type of V.
func Store[V Real[V], S Scalar](v V, s []S) {
	switch x := any(v).(type) {
	case Float32x4:
		x.Store(any(s).([]float32))
	case Float64x2:
		x.Store(any(s).([]float64))
	}
}

// ReduceSum adds the lanes of v, widened to float64.
func ReduceSum[V Real[V]](v V) float64 {
	switch x := any(v).(type) {
	case Float32x4:
		return float64(x.ReduceSum())
	case Float64x2:
		return x.ReduceSum()
	}
	return 0
}

// RecipNewtonRaphson refines an estimate r of 1/x with one Newton-Raphson
// step, r*(2 - x*r), roughly doubling the number of correct bits.
func RecipNewtonRaphson[V Real[V]](x, r V) V {
	return r.Mul(x.NegMulAdd(r, Set[V](2)))
}

// RSqrtNewtonRaphson refines an estimate r of 1/sqrt(x) with one step,
// r/2*(3 - x*r*r).
func RSqrtNewtonRaphson[V Real[V]](x, r V) V {
	t := x.Mul(r).NegMulAdd(r, Set[V](3))
	return r.Mul(Set[V](0.5)).Mul(t)
}
