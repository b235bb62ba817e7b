package vsx

import "testing"

func TestVandcOperandOrder(t *testing.T) {
	a := Splat32(0x0F0F0F0F)
	b := Splat32(0xFF00FF00)
	got := Vandc(a, b)
	for k := range 4 {
		if got.Word(k) != 0x000F000F {
			t.Errorf("Vandc: word %d: got %#x, want 0x000f000f", k, got.Word(k))
		}
	}
}

func TestXxsel(t *testing.T) {
	a := FromWords(BigEndian, [4]uint32{1, 2, 3, 4})
	b := FromWords(BigEndian, [4]uint32{5, 6, 7, 8})
	m := FromWords(BigEndian, [4]uint32{0xFFFFFFFF, 0, 0xFFFFFFFF, 0})
	want := [4]uint32{5, 2, 7, 4}
	if got := Xxsel(a, b, m).Words(BigEndian); got != want {
		t.Errorf("Xxsel: got %v, want %v", got, want)
	}
}

func TestHalfwordMultiply(t *testing.T) {
	av := [4]int32{2, 3, -4, 5}
	bv := [4]int32{10, 10, 10, -10}
	want := [4]int32{20, 30, -40, -50}
	for _, l := range Layouts() {
		a, b := FromInt32s(l, av), FromInt32s(l, bv)

		// The low-order halfword of every word is the one that carries a
		// small value, regardless of which name each layout gives it.
		if got := Vmulosh(a, b).Int32s(l); got != want {
			t.Errorf("%v: Vmulosh: got %v, want %v", l, got, want)
		}
		var mul Reg
		if l == LittleEndian {
			mul = MulEven(l, a, b)
		} else {
			mul = MulOdd(l, a, b)
		}
		if got := mul.Int32s(l); got != want {
			t.Errorf("%v: halfword multiply: got %v, want %v", l, got, want)
		}
		if got := Vmuluwm(a, b).Int32s(l); got != want {
			t.Errorf("%v: Vmuluwm: got %v, want %v", l, got, want)
		}
	}
}

func TestShifts(t *testing.T) {
	x := Splat32(0x80000010)
	n := Splat32(4)
	if got := Vslw(x, n).Word(0); got != 0x00000100 {
		t.Errorf("Vslw: got %#x", got)
	}
	if got := Vsrw(x, n).Word(0); got != 0x08000001 {
		t.Errorf("Vsrw: got %#x", got)
	}
	if got := Vsraw(x, n).Word(0); got != 0xF8000001 {
		t.Errorf("Vsraw: got %#x", got)
	}
	// Only the low five bits of the count are used.
	if got := Vslw(Splat32(1), Splat32(33)).Word(2); got != 2 {
		t.Errorf("Vslw count 33: got %#x, want 0x2", got)
	}
}

func TestIntegerCompare(t *testing.T) {
	a := FromInt32s(BigEndian, [4]int32{-1, 0, 5, 7})
	b := FromInt32s(BigEndian, [4]int32{0, 0, 5, 6})
	if got, want := Vcmpequw(a, b).Words(BigEndian), [4]uint32{0, 0xFFFFFFFF, 0xFFFFFFFF, 0}; got != want {
		t.Errorf("Vcmpequw: got %x, want %x", got, want)
	}
	if got, want := Vcmpgtsw(a, b).Words(BigEndian), [4]uint32{0, 0, 0, 0xFFFFFFFF}; got != want {
		t.Errorf("Vcmpgtsw: got %x, want %x", got, want)
	}
	if AnyNe(a, a) {
		t.Error("AnyNe(a, a): got true")
	}
	if !AnyNe(a, b) {
		t.Error("AnyNe(a, b): got false")
	}
}

func TestModularArithmetic(t *testing.T) {
	a := Splat32(0xFFFFFFFF)
	b := Splat32(2)
	if got := Vadduwm(a, b).Word(0); got != 1 {
		t.Errorf("Vadduwm: got %d, want 1", got)
	}
	if got := Vsubuwm(b, a).Word(0); got != 3 {
		t.Errorf("Vsubuwm: got %d, want 3", got)
	}
}
