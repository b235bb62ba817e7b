package simd

import "github.com/alexxy/gromacs/simd/vsx"

// Capability flags of the VSX engine. These are constants so kernels can
// select code paths without runtime cost.
const (
	HaveFloat  = true
	HaveDouble = true

	// HaveHardware reports native vector execution. The instruction
	// semantics run in portable Go, so this is false on every GOARCH.
	HaveHardware = false

	HaveLoadU   = true
	HaveStoreU  = true
	HaveLogical = true
	HaveFMA     = true

	// HaveFraction is false: Fraction is computed as x - Trunc(x).
	HaveFraction = false

	HaveFInt32            = true
	HaveFInt32Extract     = true
	HaveFInt32Logical     = true
	HaveFInt32Arithmetics = true

	HaveDInt32            = true
	HaveDInt32Extract     = true
	HaveDInt32Logical     = true
	HaveDInt32Arithmetics = true

	Simd4HaveFloat  = true
	Simd4HaveDouble = false
)

// Vector widths and estimate precision.
const (
	FloatWidth  = 4
	DoubleWidth = 2
	FInt32Width = 4
	DInt32Width = 2

	RsqrtBits = vsx.EstimateBits
	RcpBits   = vsx.EstimateBits
)

// CapabilityTable is the capability constants as a value, for reporting.
type CapabilityTable struct {
	Float             bool `yaml:"float"`
	Double            bool `yaml:"double"`
	Hardware          bool `yaml:"hardware"`
	LoadU             bool `yaml:"loadu"`
	StoreU            bool `yaml:"storeu"`
	Logical           bool `yaml:"logical"`
	FMA               bool `yaml:"fma"`
	Fraction          bool `yaml:"fraction"`
	FInt32            bool `yaml:"fint32"`
	FInt32Extract     bool `yaml:"fint32_extract"`
	FInt32Logical     bool `yaml:"fint32_logical"`
	FInt32Arithmetics bool `yaml:"fint32_arithmetics"`
	DInt32            bool `yaml:"dint32"`
	DInt32Extract     bool `yaml:"dint32_extract"`
	DInt32Logical     bool `yaml:"dint32_logical"`
	DInt32Arithmetics bool `yaml:"dint32_arithmetics"`
	Simd4Float        bool `yaml:"simd4_float"`
	Simd4Double       bool `yaml:"simd4_double"`

	FloatWidth  int `yaml:"float_width"`
	DoubleWidth int `yaml:"double_width"`
	FInt32Width int `yaml:"fint32_width"`
	DInt32Width int `yaml:"dint32_width"`
	RsqrtBits   int `yaml:"rsqrt_bits"`
	RcpBits     int `yaml:"rcp_bits"`
}

// Capabilities returns the capability constants of this build.
func Capabilities() CapabilityTable {
	return CapabilityTable{
		Float:             HaveFloat,
		Double:            HaveDouble,
		Hardware:          HaveHardware,
		LoadU:             HaveLoadU,
		StoreU:            HaveStoreU,
		Logical:           HaveLogical,
		FMA:               HaveFMA,
		Fraction:          HaveFraction,
		FInt32:            HaveFInt32,
		FInt32Extract:     HaveFInt32Extract,
		FInt32Logical:     HaveFInt32Logical,
		FInt32Arithmetics: HaveFInt32Arithmetics,
		DInt32:            HaveDInt32,
		DInt32Extract:     HaveDInt32Extract,
		DInt32Logical:     HaveDInt32Logical,
		DInt32Arithmetics: HaveDInt32Arithmetics,
		Simd4Float:        Simd4HaveFloat,
		Simd4Double:       Simd4HaveDouble,
		FloatWidth:        FloatWidth,
		DoubleWidth:       DoubleWidth,
		FInt32Width:       FInt32Width,
		DInt32Width:       DInt32Width,
		RsqrtBits:         RsqrtBits,
		RcpBits:           RcpBits,
	}
}
