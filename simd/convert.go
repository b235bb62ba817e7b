package simd

import "github.com/alexxy/gromacs/simd/vsx"

// SplitFloat32x4 widens f into two double vectors: lanes 0,1 into lo and
// lanes 2,3 into hi. Every float32 is exactly representable, so the
// conversion is exact.
func SplitFloat32x4(f Float32x4) (lo, hi Float64x2) {
	l := layout()
	r := vsx.Reg(f)
	// xvcvspdp reads hardware words 0 and 2; after the merge they hold two
	// consecutive elements in either layout.
	lo = Float64x2(vsx.Xvcvspdp(vsx.MergeHigh(l, r, r)))
	hi = Float64x2(vsx.Xvcvspdp(vsx.MergeLow(l, r, r)))
	return lo, hi
}

// MergeFloat64x2 narrows lo and hi into one float vector, lanes {lo0, lo1,
// hi0, hi1}. It is the inverse of SplitFloat32x4.
func MergeFloat64x2(lo, hi Float64x2) Float32x4 {
	l := layout()
	fa := vsx.Xvcvdpsp(vsx.Reg(lo)) // lo0 lo0 lo1 lo1
	fb := vsx.Xvcvdpsp(vsx.Reg(hi)) // hi0 hi0 hi1 hi1
	fc := vsx.MergeHigh(l, fa, fb)  // lo0 hi0 lo0 hi0
	fd := vsx.MergeLow(l, fa, fb)   // lo1 hi1 lo1 hi1
	return Float32x4(vsx.MergeHigh(l, fc, fd))
}
