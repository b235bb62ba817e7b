package simd

import (
	"math"
	"testing"

	"github.com/alexxy/gromacs/simd/vsx"
)

type engineConfig struct {
	name   string
	target Target
	prims  Primitives
}

func engineConfigs() []engineConfig {
	targets := []Target{
		{Layout: vsx.BigEndian, ISA: POWER7},
		{Layout: vsx.BigEndian, ISA: POWER8},
		{Layout: vsx.LittleEndian, ISA: POWER8},
		{Layout: vsx.LittleEndian, ISA: POWER9},
	}
	var cfgs []engineConfig
	for _, tgt := range targets {
		cfgs = append(cfgs,
			engineConfig{tgt.String() + "/builtin", tgt, DefaultPrimitives(tgt)},
			engineConfig{tgt.String() + "/generic", tgt, GenericPrimitives(tgt)},
		)
	}
	return cfgs
}

// forEachConfig runs fn once per target and primitive table and restores
// the original configuration afterwards.
func forEachConfig(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	orig := state()
	t.Cleanup(func() { active.Store(orig) })
	for _, c := range engineConfigs() {
		if err := Configure(c.target, c.prims); err != nil {
			t.Fatalf("Configure(%s): %v", c.name, err)
		}
		t.Run(c.name, fn)
	}
}

func TestLoadStoreGet(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		data := []float32{1, 2, 3, 4, 5}
		v := LoadFloat32x4(data)
		for i := range 4 {
			if got := v.Get(i); got != data[i] {
				t.Errorf("Get: lane %d: got %v, want %v", i, got, data[i])
			}
		}
		out := make([]float32, 5)
		out[4] = 99
		v.StoreU(out)
		for i := range 4 {
			if out[i] != data[i] {
				t.Errorf("StoreU: lane %d: got %v, want %v", i, out[i], data[i])
			}
		}
		if out[4] != 99 {
			t.Errorf("StoreU wrote past 4 lanes: got %v", out[4])
		}

		iv := LoadUInt32x4([]int32{-1, 0, 7, math.MaxInt32})
		want := [4]int32{-1, 0, 7, math.MaxInt32}
		for i := range 4 {
			if got := iv.Get(i); got != want[i] {
				t.Errorf("Int32x4.Get: lane %d: got %v, want %v", i, got, want[i])
			}
		}

		if got := Load1Float32x4(data[2:]).Lanes(); got != [4]float32{3, 3, 3, 3} {
			t.Errorf("Load1Float32x4: got %v", got)
		}
	})
}

func TestShortSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadFloat32x4 on a 3-element slice did not panic")
		}
	}()
	LoadFloat32x4([]float32{1, 2, 3})
}

func TestAndNotOperandOrder(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a := BroadcastInt32x4(int32(-16711936)) // 0xFF00FF00
		b := BroadcastInt32x4(0x0F0F0F0F)
		for i, got := range a.AndNot(b).Lanes() {
			if uint32(got) != 0x000F000F {
				t.Errorf("Int32x4.AndNot: lane %d: got %#x, want 0x000f000f", i, uint32(got))
			}
		}
		fa, fb := a.AsFloat32x4(), b.AsFloat32x4()
		for i, got := range fa.AndNot(fb).AsInt32x4().Lanes() {
			if uint32(got) != 0x000F000F {
				t.Errorf("Float32x4.AndNot: lane %d: got %#x, want 0x000f000f", i, uint32(got))
			}
		}
	})
}

func TestReduceSum(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		if got := LoadFloat32x4([]float32{1, 2, 3, 4}).ReduceSum(); got != 10 {
			t.Errorf("Float32x4.ReduceSum: got %v, want 10", got)
		}
		if got := LoadFloat64x2([]float64{1.5, 2.5}).ReduceSum(); got != 4 {
			t.Errorf("Float64x2.ReduceSum: got %v, want 4", got)
		}
		// (x0+x2)+(x1+x3) = 0 + 2. A left-to-right sum would lose a 1.
		if got := LoadFloat32x4([]float32{1e8, 1, -1e8, 1}).ReduceSum(); got != 2 {
			t.Errorf("ReduceSum order: got %v, want 2", got)
		}
	})
}

func TestFusedMultiply(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a, b, c := BroadcastFloat32x4(2), BroadcastFloat32x4(3), BroadcastFloat32x4(1)
		checks := []struct {
			name string
			got  Float32x4
			want float32
		}{
			{"MulAdd", a.MulAdd(b, c), 7},
			{"MulSub", a.MulSub(b, c), 5},
			{"NegMulAdd", a.NegMulAdd(b, c), -5},
			{"NegMulSub", a.NegMulSub(b, c), -7},
		}
		for _, ck := range checks {
			for i, got := range ck.got.Lanes() {
				if got != ck.want {
					t.Errorf("%s: lane %d: got %v, want %v", ck.name, i, got, ck.want)
				}
			}
		}

		da, db, dc := BroadcastFloat64x2(2), BroadcastFloat64x2(3), BroadcastFloat64x2(1)
		if got := da.NegMulAdd(db, dc).Lanes(); got != [2]float64{-5, -5} {
			t.Errorf("Float64x2.NegMulAdd: got %v, want [-5 -5]", got)
		}
		if got := da.NegMulSub(db, dc).Lanes(); got != [2]float64{-7, -7} {
			t.Errorf("Float64x2.NegMulSub: got %v, want [-7 -7]", got)
		}
	})
}

func TestMulAddRoundsOnce(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		// x*x sits on a float32 tie that the 2^-80 addend resolves upward.
		x := BroadcastFloat32x4(1 + 0x1p-12)
		tiny := BroadcastFloat32x4(0x1p-80)
		for i, got := range x.MulAdd(x, tiny).Lanes() {
			if bits := math.Float32bits(got); bits != 0x3f801001 {
				t.Errorf("MulAdd: lane %d: got %#x, want 0x3f801001", i, bits)
			}
		}
		for i, got := range x.NegMulSub(x, tiny).Lanes() {
			if bits := math.Float32bits(got); bits != 0xbf801001 {
				t.Errorf("NegMulSub: lane %d: got %#x, want 0xbf801001", i, bits)
			}
		}
	})
}

func TestBlendV(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a := LoadFloat32x4([]float32{1, 2, 3, 4})
		b := LoadFloat32x4([]float32{10, 20, 30, 40})
		m := MaskFromBools([4]bool{true, false, true, false})

		if got, want := a.BlendV(b, m).Lanes(), [4]float32{10, 2, 30, 4}; got != want {
			t.Errorf("BlendV: got %v, want %v", got, want)
		}
		if got, want := a.BlendZero(m).Lanes(), [4]float32{1, 0, 3, 0}; got != want {
			t.Errorf("BlendZero: got %v, want %v", got, want)
		}
		if got, want := a.BlendNotZero(m).Lanes(), [4]float32{0, 2, 0, 4}; got != want {
			t.Errorf("BlendNotZero: got %v, want %v", got, want)
		}

		ia := LoadInt32x4([]int32{1, 2, 3, 4})
		ib := LoadInt32x4([]int32{10, 20, 30, 40})
		if got, want := ia.BlendV(ib, m.ToInt()).Lanes(), [4]int32{10, 2, 30, 4}; got != want {
			t.Errorf("Int32x4.BlendV: got %v, want %v", got, want)
		}
	})
}

func TestIntMultiply(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a := LoadInt32x4([]int32{2, 3, 4, 5})
		b := BroadcastInt32x4(10)
		if got, want := a.Mul(b).Lanes(), [4]int32{20, 30, 40, 50}; got != want {
			t.Errorf("Int32x4.Mul: got %v, want %v", got, want)
		}
		d := LoadInt32x2([]int32{-7, 12})
		if got, want := d.Mul(BroadcastInt32x2(3)).Lanes(), [2]int32{-21, 36}; got != want {
			t.Errorf("Int32x2.Mul: got %v, want %v", got, want)
		}
	})
}

func TestIntMultiplyWordRange(t *testing.T) {
	orig := state()
	t.Cleanup(func() { active.Store(orig) })

	tgt := Target{Layout: NativeLayout, ISA: POWER8}
	if err := Configure(tgt, DefaultPrimitives(tgt)); err != nil {
		t.Fatal(err)
	}
	a := BroadcastInt32x4(100000)
	if got := a.Mul(BroadcastInt32x4(3)).Get(0); got != 300000 {
		t.Errorf("vmuluwm: got %d, want 300000", got)
	}
}

func TestIntShiftsAndArithmetic(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		v := BroadcastInt32x4(-16)
		if got := uint32(v.ShiftRight(2).Get(3)); got != 0x3FFFFFFC {
			t.Errorf("ShiftRight: got %#x, want 0x3ffffffc", got)
		}
		if got := v.ShiftLeft(4).Get(1); got != -256 {
			t.Errorf("ShiftLeft: got %d, want -256", got)
		}
		a := LoadInt32x4([]int32{1, 2, 3, 4})
		if got, want := a.Add(a).Sub(BroadcastInt32x4(1)).Lanes(), [4]int32{1, 3, 5, 7}; got != want {
			t.Errorf("Add/Sub: got %v, want %v", got, want)
		}
	})
}

func TestCompareAndMasks(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a := LoadFloat32x4([]float32{1, 2, 3, 4})
		b := BroadcastFloat32x4(2)
		checks := []struct {
			name string
			m    Mask32x4
			want [4]bool
		}{
			{"Equal", a.Equal(b), [4]bool{false, true, false, false}},
			{"Less", a.Less(b), [4]bool{true, false, false, false}},
			{"LessEqual", a.LessEqual(b), [4]bool{true, true, false, false}},
		}
		for _, c := range checks {
			for i := range 4 {
				if got := c.m.GetBit(i); got != c.want[i] {
					t.Errorf("%s: lane %d: got %v, want %v", c.name, i, got, c.want[i])
				}
			}
		}
		if !a.Less(b).Or(a.Equal(b)).AnyTrue() {
			t.Error("Or(...).AnyTrue: got false")
		}
		if a.Less(b).And(a.Equal(b)).AnyTrue() {
			t.Error("And(...).AnyTrue: got true")
		}

		ia := LoadInt32x4([]int32{-1, 5, 5, 9})
		ib := BroadcastInt32x4(5)
		if got := ia.Less(ib).ToFloat(); !got.GetBit(0) || got.GetBit(1) {
			t.Errorf("Int32x4.Less: got lanes %v %v", got.GetBit(0), got.GetBit(1))
		}
		if !ia.Equal(ib).AnyTrue() {
			t.Error("Int32x4.Equal.AnyTrue: got false")
		}
	})
}

func TestRoundingAndConversion(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		f := LoadFloat32x4([]float32{2.5, -2.5, 1.7, -0.3})
		if got, want := f.Round().Lanes(), [4]float32{2, -2, 2, 0}; got != want {
			t.Errorf("Round: got %v, want %v", got, want)
		}
		if got, want := f.Trunc().Lanes(), [4]float32{2, -2, 1, 0}; got != want {
			t.Errorf("Trunc: got %v, want %v", got, want)
		}
		if got, want := f.ConvertToInt32().Lanes(), [4]int32{2, -2, 2, 0}; got != want {
			t.Errorf("ConvertToInt32: got %v, want %v", got, want)
		}
		if got, want := f.ConvertToInt32Trunc().Lanes(), [4]int32{2, -2, 1, 0}; got != want {
			t.Errorf("ConvertToInt32Trunc: got %v, want %v", got, want)
		}
		fr := LoadFloat32x4([]float32{2.5, -2.25, 7, 0.125}).Fraction()
		if got, want := fr.Lanes(), [4]float32{0.5, -0.25, 0, 0.125}; got != want {
			t.Errorf("Fraction: got %v, want %v", got, want)
		}
		if got, want := LoadInt32x4([]int32{-3, 0, 1 << 24, 9}).ConvertToFloat32().Lanes(), [4]float32{-3, 0, 1 << 24, 9}; got != want {
			t.Errorf("ConvertToFloat32: got %v, want %v", got, want)
		}

		d := LoadFloat64x2([]float64{2.5, -3.7})
		if got, want := d.Round().Lanes(), [2]float64{3, -4}; got != want {
			t.Errorf("Float64x2.Round: got %v, want %v", got, want)
		}
		if got, want := d.ConvertToInt32().Lanes(), [2]int32{3, -4}; got != want {
			t.Errorf("Float64x2.ConvertToInt32: got %v, want %v", got, want)
		}
		if got, want := d.ConvertToInt32Trunc().Lanes(), [2]int32{2, -3}; got != want {
			t.Errorf("Float64x2.ConvertToInt32Trunc: got %v, want %v", got, want)
		}
		if got, want := d.Fraction().Get(0), 0.5; got != want {
			t.Errorf("Float64x2.Fraction: got %v, want %v", got, want)
		}
	})
}

func TestNegAbsMinMax(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		v := LoadFloat32x4([]float32{0, -1, 2, -3})
		neg := v.Neg()
		if got, want := neg.Lanes(), [4]float32{0, 1, -2, 3}; got != want {
			t.Errorf("Neg: got %v, want %v", got, want)
		}
		if !math.Signbit(float64(neg.Get(0))) {
			t.Error("Neg(+0): sign bit not set")
		}
		if got, want := v.Abs().Lanes(), [4]float32{0, 1, 2, 3}; got != want {
			t.Errorf("Abs: got %v, want %v", got, want)
		}
		w := BroadcastFloat32x4(-1)
		if got, want := v.Max(w).Lanes(), [4]float32{0, -1, 2, -1}; got != want {
			t.Errorf("Max: got %v, want %v", got, want)
		}
		if got, want := v.Min(w).Lanes(), [4]float32{-1, -1, -1, -3}; got != want {
			t.Errorf("Min: got %v, want %v", got, want)
		}

		d := LoadFloat64x2([]float64{1.5, -2})
		if got, want := d.Neg().Lanes(), [2]float64{-1.5, 2}; got != want {
			t.Errorf("Float64x2.Neg: got %v, want %v", got, want)
		}
		if got, want := d.Abs().Max(BroadcastFloat64x2(1.75)).Lanes(), [2]float64{1.75, 2}; got != want {
			t.Errorf("Float64x2.Abs.Max: got %v, want %v", got, want)
		}
	})
}

func TestExponentMantissa(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		values := [][]float32{
			{1, 1.5, 3, 0.375},
			{1e-20, 6.02e23, 1.1754944e-38, 3.4028235e38},
			{7.25, 1024, 0.1, 123.456},
		}
		for _, in := range values {
			v := LoadFloat32x4(in)
			e := v.GetExponent()
			m := v.GetMantissa()
			back := m.Mul(e.SetExponent())
			for i := range 4 {
				_, fexp := math.Frexp(float64(in[i]))
				if got, want := e.Get(i), float32(fexp-1); got != want {
					t.Errorf("GetExponent(%v): got %v, want %v", in[i], got, want)
				}
				if mm := m.Get(i); mm < 1 || mm >= 2 {
					t.Errorf("GetMantissa(%v): got %v, want [1, 2)", in[i], mm)
				}
				if got := back.Get(i); math.Float32bits(got) != math.Float32bits(in[i]) {
					t.Errorf("mantissa*2^exponent: lane %d: got %v, want %v", i, got, in[i])
				}
			}
		}
		if got := BroadcastFloat32x4(2.5).SetExponent().Get(0); got != 4 {
			t.Errorf("SetExponent(2.5): got %v, want 4 (ties to even)", got)
		}
		if got := BroadcastFloat32x4(-8).GetMantissa().Get(0); got != 1 {
			t.Errorf("GetMantissa(-8): got %v, want 1", got)
		}
	})
}

func TestExponentMantissaDouble(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		values := [][]float64{{10, 0.1}, {1, 1e300}, {3.5e-300, 2}}
		for _, in := range values {
			v := LoadFloat64x2(in)
			e := v.GetExponent()
			m := v.GetMantissa()
			back := m.Mul(e.SetExponent())
			for i := range 2 {
				_, fexp := math.Frexp(in[i])
				if got, want := e.Get(i), float64(fexp-1); got != want {
					t.Errorf("Float64x2.GetExponent(%v): got %v, want %v", in[i], got, want)
				}
				if got := back.Get(i); got != in[i] {
					t.Errorf("Float64x2 mantissa*2^exponent: got %v, want %v", got, in[i])
				}
			}
		}
		if got, want := LoadFloat64x2([]float64{3, -2.5}).SetExponent().Lanes(), [2]float64{8, 0.125}; got != want {
			t.Errorf("Float64x2.SetExponent: got %v, want %v", got, want)
		}
	})
}

func TestEstimatesAndRefinement(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		x := LoadFloat32x4([]float32{0.3, 2, 9, 1234.5})
		r := RecipNewtonRaphson(x, x.Rcp())
		s := RSqrtNewtonRaphson(x, x.Rsqrt())
		for i := range 4 {
			xi := float64(x.Get(i))
			if rel := math.Abs(float64(x.Rcp().Get(i))*xi - 1); rel >= 1.0/(1<<RcpBits) {
				t.Errorf("Rcp(%v): relative error %g", xi, rel)
			}
			if rel := math.Abs(float64(r.Get(i))*xi - 1); rel > 1e-6 {
				t.Errorf("RecipNewtonRaphson(%v): relative error %g", xi, rel)
			}
			if rel := math.Abs(float64(s.Get(i))*math.Sqrt(xi) - 1); rel > 1e-6 {
				t.Errorf("RSqrtNewtonRaphson(%v): relative error %g", xi, rel)
			}
		}

		d := LoadFloat64x2([]float64{3, 0.01})
		dr := RecipNewtonRaphson(d, RecipNewtonRaphson(d, d.Rcp()))
		for i := range 2 {
			if rel := math.Abs(dr.Get(i)*d.Get(i) - 1); rel > 1e-12 {
				t.Errorf("Float64x2 two-step recip(%v): relative error %g", d.Get(i), rel)
			}
		}
	})
}

func TestLogicalOps(t *testing.T) {
	forEachConfig(t, func(t *testing.T) {
		a := LoadInt32x4([]int32{0x0F, 0xF0, 0xFF, 0})
		b := BroadcastInt32x4(0x3C)
		if got, want := a.And(b).Lanes(), [4]int32{0x0C, 0x30, 0x3C, 0}; got != want {
			t.Errorf("And: got %#x, want %#x", got, want)
		}
		if got, want := a.Or(b).Lanes(), [4]int32{0x3F, 0xFC, 0xFF, 0x3C}; got != want {
			t.Errorf("Or: got %#x, want %#x", got, want)
		}
		if got, want := a.Xor(b).Lanes(), [4]int32{0x33, 0xCC, 0xC3, 0x3C}; got != want {
			t.Errorf("Xor: got %#x, want %#x", got, want)
		}
		// Clearing the sign bit with Xor on the float view.
		f := BroadcastFloat32x4(-3).Xor(BroadcastInt32x4(math.MinInt32).AsFloat32x4())
		if got := f.Get(2); got != 3 {
			t.Errorf("Float32x4.Xor sign: got %v, want 3", got)
		}
	})
}

func TestCapabilities(t *testing.T) {
	c := Capabilities()
	if !c.Float || !c.Double || !c.FMA || !c.Simd4Float {
		t.Errorf("Capabilities: missing a required feature: %+v", c)
	}
	if c.Fraction || c.Simd4Double || c.Hardware {
		t.Errorf("Capabilities: unexpected feature: %+v", c)
	}
	if c.FloatWidth != 4 || c.DoubleWidth != 2 || c.FInt32Width != 4 || c.DInt32Width != 2 {
		t.Errorf("Capabilities widths: got %d/%d/%d/%d", c.FloatWidth, c.DoubleWidth, c.FInt32Width, c.DInt32Width)
	}
	if c.RsqrtBits != 14 || c.RcpBits != 14 {
		t.Errorf("Capabilities estimate bits: got %d/%d, want 14/14", c.RsqrtBits, c.RcpBits)
	}
	if Lanes[Float32x4]() != FloatWidth || Lanes[Float64x2]() != DoubleWidth {
		t.Error("Lanes: wrong width")
	}
}

func TestCheckAndResetOverflow(t *testing.T) {
	s := CheckAndResetOverflow()
	if s != OverflowUnsupported {
		t.Errorf("CheckAndResetOverflow: got %v, want %v", s, OverflowUnsupported)
	}
	if s.Checked() {
		t.Error("OverflowUnsupported.Checked: got true")
	}
	if OverflowClear.String() != "clear" {
		t.Errorf("OverflowClear.String: got %q", OverflowClear.String())
	}
}
