package vsx

// Mfvsrwz moves the low word of doubleword 0 (hardware word 1) to a general
// purpose register, zero-extended. POWER8 and later.
func Mfvsrwz(a Reg) uint32 {
	return a.Word(1)
}

// VecExtract is the compiler builtin vec_extract: element e in element order.
func VecExtract(l Layout, a Reg, e int) uint32 {
	return a.Word(l.WordIndex(e & 3))
}

// ExtractShift returns the xxsldwi amount that rotates element e into
// hardware word 1, where Mfvsrwz reads it.
func ExtractShift(l Layout, e int) uint {
	if l == LittleEndian {
		return uint(2-e) & 3
	}
	return uint(e+3) & 3
}

// ExtractDirect reads element e with xxsldwi followed by mfvsrwz.
func ExtractDirect(l Layout, a Reg, e int) uint32 {
	return Mfvsrwz(Xxsldwi(a, a, ExtractShift(l, e)))
}
