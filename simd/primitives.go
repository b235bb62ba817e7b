package simd

import "github.com/alexxy/gromacs/simd/vsx"

// The operations that have a builtin and a fallback implementation. Each
// consults the active Primitives table.

// extractWord returns 32-bit element e of r.
func extractWord(r vsx.Reg, e int) uint32 {
	s := state()
	if s.prims.ExtractBuiltin {
		return vsx.VecExtract(s.target.Layout, r, e)
	}
	return vsx.ExtractDirect(s.target.Layout, r, e)
}

func negate32(r vsx.Reg) vsx.Reg {
	if state().prims.NegateBuiltin {
		return vsx.Xvnegsp(r)
	}
	return vsx.Vxor(r, vsx.SignBit32())
}

func negate64(r vsx.Reg) vsx.Reg {
	if state().prims.NegateBuiltin {
		return vsx.Xvnegdp(r)
	}
	return vsx.Vxor(r, vsx.SignBit64())
}

// mulWords multiplies 32-bit elements. Without vmuluwm the product comes
// from the signed halfword multiply of the low half of every word, which is
// the odd halfword on big-endian and the even one on little-endian.
func mulWords(a, b vsx.Reg) vsx.Reg {
	s := state()
	if s.prims.IntMulWord {
		return vsx.Vmuluwm(a, b)
	}
	if s.target.Layout == vsx.LittleEndian {
		return vsx.MulEven(s.target.Layout, a, b)
	}
	return vsx.MulOdd(s.target.Layout, a, b)
}

// reduce4 adds the four words of r as (x0+x2)+(x1+x3) and returns the sum in
// every word.
func reduce4(r vsx.Reg) vsx.Reg {
	r = vsx.Xvaddsp(r, vsx.Xxsldwi(r, r, 2))
	return vsx.Xvaddsp(r, vsx.Xxsldwi(r, r, 1))
}

// reduce2 adds the two doublewords of r and returns the sum in both.
func reduce2(r vsx.Reg) vsx.Reg {
	return vsx.Xvadddp(r, vsx.Xxsldwi(r, r, 2))
}

func splatShift(n int) vsx.Reg {
	return vsx.Splat32(uint32(n))
}
