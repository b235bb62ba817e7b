package simd

import "github.com/alexxy/gromacs/simd/vsx"

// Int32x2 is the integer twin of Float64x2. It occupies a full 4-lane
// register; logical lane i lives in physical lane 2i. Every constructor and
// conversion also writes the value to physical lane 2i+1, so the register
// can be reinterpreted as a Mask64x2.
type Int32x2 vsx.Reg

// LoadInt32x2 loads s[0] and s[1] into lanes 0 and 1.
func LoadInt32x2(s []int32) Int32x2 {
	d0 := vsx.Splat32(uint32(s[0]))
	d1 := vsx.Splat32(uint32(s[1]))
	if layout() == vsx.LittleEndian {
		return Int32x2(vsx.Xxpermdi(d1, d0, 0))
	}
	return Int32x2(vsx.Xxpermdi(d0, d1, 0))
}

// LoadUInt32x2 is the unaligned load, identical to LoadInt32x2.
func LoadUInt32x2(s []int32) Int32x2 {
	return LoadInt32x2(s)
}

// BroadcastInt32x2 sets both lanes to v.
func BroadcastInt32x2(v int32) Int32x2 {
	return Int32x2(vsx.Splat32(uint32(v)))
}

// ZeroInt32x2 returns a zero vector.
func ZeroInt32x2() Int32x2 {
	return Int32x2{}
}

// Store writes lanes 0 and 1 to s[0] and s[1]. Nothing else is written.
func (v Int32x2) Store(s []int32) {
	_ = s[1]
	s[0] = v.Get(0)
	s[1] = v.Get(1)
}

// StoreU is the unaligned store, identical to Store.
func (v Int32x2) StoreU(s []int32) {
	v.Store(s)
}

// Get returns logical lane i, read from physical lane 2i.
func (v Int32x2) Get(i int) int32 {
	return int32(extractWord(vsx.Reg(v), 2*i))
}

// Lanes returns both logical lanes.
func (v Int32x2) Lanes() [2]int32 {
	return [2]int32{v.Get(0), v.Get(1)}
}

func (v Int32x2) Add(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vadduwm(vsx.Reg(v), vsx.Reg(other)))
}

func (v Int32x2) Sub(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vsubuwm(vsx.Reg(v), vsx.Reg(other)))
}

// Mul multiplies lanes, with the same int16 caveat as Int32x4.Mul.
func (v Int32x2) Mul(other Int32x2) Int32x2 {
	return Int32x2(mulWords(vsx.Reg(v), vsx.Reg(other)))
}

func (v Int32x2) ShiftLeft(n int) Int32x2 {
	return Int32x2(vsx.Vslw(vsx.Reg(v), splatShift(n)))
}

// ShiftRight is a logical shift.
func (v Int32x2) ShiftRight(n int) Int32x2 {
	return Int32x2(vsx.Vsrw(vsx.Reg(v), splatShift(n)))
}

func (v Int32x2) And(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vand(vsx.Reg(v), vsx.Reg(other)))
}

// AndNot returns other & ^v.
func (v Int32x2) AndNot(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vandc(vsx.Reg(other), vsx.Reg(v)))
}

func (v Int32x2) Or(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vor(vsx.Reg(v), vsx.Reg(other)))
}

func (v Int32x2) Xor(other Int32x2) Int32x2 {
	return Int32x2(vsx.Vxor(vsx.Reg(v), vsx.Reg(other)))
}

// ConvertToFloat64 converts both lanes to float64 (xvcvsxwdp).
func (v Int32x2) ConvertToFloat64() Float64x2 {
	return Float64x2(vsx.Xvcvsxwdp(vsx.Reg(v)))
}

func (v Int32x2) Equal(other Int32x2) IntMask32x2 {
	return IntMask32x2(vsx.Vcmpequw(vsx.Reg(v), vsx.Reg(other)))
}

func (v Int32x2) Less(other Int32x2) IntMask32x2 {
	return IntMask32x2(vsx.Vcmpgtsw(vsx.Reg(other), vsx.Reg(v)))
}

func (v Int32x2) BlendZero(m IntMask32x2) Int32x2 {
	return Int32x2(vsx.Vand(vsx.Reg(v), vsx.Reg(m)))
}

func (v Int32x2) BlendNotZero(m IntMask32x2) Int32x2 {
	return Int32x2(vsx.Vandc(vsx.Reg(v), vsx.Reg(m)))
}

func (v Int32x2) BlendV(other Int32x2, m IntMask32x2) Int32x2 {
	return Int32x2(vsx.Xxsel(vsx.Reg(v), vsx.Reg(other), vsx.Reg(m)))
}
