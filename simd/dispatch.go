package simd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/alexxy/gromacs/internal/cpu"
	"github.com/alexxy/gromacs/simd/vsx"
)

// ISA is the POWER instruction set level the engine targets.
type ISA int

const (
	// POWER7 has VSX but no direct moves and no 32-bit vector multiply.
	POWER7 ISA = iota + 7

	// POWER8 adds mfvsrwz, vmuluwm and little-endian operation.
	POWER8

	// POWER9 adds the ISA 3.0 vector instructions.
	POWER9
)

// String returns "power7", "power8" or "power9".
func (i ISA) String() string {
	switch i {
	case POWER7:
		return "power7"
	case POWER8:
		return "power8"
	case POWER9:
		return "power9"
	default:
		return "unknown"
	}
}

// ParseISA accepts the names returned by String, case-insensitively, with or
// without the "power" prefix ("POWER8", "p8" and "8" are all POWER8).
func ParseISA(s string) (ISA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "power")
	name = strings.TrimPrefix(name, "p")
	switch name {
	case "7":
		return POWER7, nil
	case "8":
		return POWER8, nil
	case "9":
		return POWER9, nil
	}
	return 0, fmt.Errorf("parse ISA %q: %w", s, ErrInvalidTarget)
}

// Target is the machine the engine emulates.
type Target struct {
	Layout vsx.Layout
	ISA    ISA
}

func (t Target) String() string {
	return t.ISA.String() + "/" + t.Layout.String()
}

// Validate reports whether the target exists: little-endian requires POWER8.
func (t Target) Validate() error {
	if t.Layout != vsx.BigEndian && t.Layout != vsx.LittleEndian {
		return fmt.Errorf("target %v: unknown layout: %w", t, ErrInvalidTarget)
	}
	if t.ISA < POWER7 || t.ISA > POWER9 {
		return fmt.Errorf("target %v: unknown ISA %d: %w", t, int(t.ISA), ErrInvalidTarget)
	}
	if t.Layout == vsx.LittleEndian && t.ISA < POWER8 {
		return fmt.Errorf("target %v: little-endian needs POWER8 or later: %w", t, ErrInvalidTarget)
	}
	return nil
}

// Primitives selects, per operation, between a compiler builtin and the
// equivalent hand-written instruction sequence. Both produce the same lane
// values.
type Primitives struct {
	// NegateBuiltin uses xvnegsp/xvnegdp; otherwise the sign bit is flipped
	// with a vector xor.
	NegateBuiltin bool `yaml:"negate_builtin"`

	// IntMulWord uses vmuluwm (POWER8); otherwise the product is taken from
	// the even/odd signed halfword multiply, which is exact only when both
	// operands fit in 16 bits.
	IntMulWord bool `yaml:"int_mul_word"`

	// ExtractBuiltin trusts vec_extract. It is unreliable on little-endian
	// POWER8, where lanes must be read with DirectMove.
	ExtractBuiltin bool `yaml:"extract_builtin"`

	// DirectMove reads lanes with xxsldwi followed by mfvsrwz (POWER8).
	DirectMove bool `yaml:"direct_move"`
}

// Validate checks that every primitive is available on t and that lane
// extraction has a usable path.
func (p Primitives) Validate(t Target) error {
	if p.IntMulWord && t.ISA < POWER8 {
		return fmt.Errorf("primitives: vmuluwm needs POWER8, target is %v: %w", t, ErrInvalidPrimitives)
	}
	if p.DirectMove && t.ISA < POWER8 {
		return fmt.Errorf("primitives: mfvsrwz needs POWER8, target is %v: %w", t, ErrInvalidPrimitives)
	}
	if p.ExtractBuiltin && t.Layout == vsx.LittleEndian {
		return fmt.Errorf("primitives: vec_extract is unreliable on %v: %w", t, ErrInvalidPrimitives)
	}
	if !p.ExtractBuiltin && !p.DirectMove {
		return fmt.Errorf("primitives: no lane extraction path: %w", ErrInvalidPrimitives)
	}
	return nil
}

var (
	// ErrInvalidTarget is returned for an unknown or impossible Target.
	ErrInvalidTarget = errors.New("simd: invalid target")

	// ErrInvalidPrimitives is returned for a Primitives table the target
	// cannot execute.
	ErrInvalidPrimitives = errors.New("simd: invalid primitives")
)

// DefaultPrimitives returns the builtin-first table for t.
func DefaultPrimitives(t Target) Primitives {
	p8 := t.ISA >= POWER8
	return Primitives{
		NegateBuiltin:  true,
		IntMulWord:     p8,
		ExtractBuiltin: t.Layout == vsx.BigEndian,
		DirectMove:     p8,
	}
}

// GenericPrimitives returns the table that uses every hand-written sequence
// t can execute. On POWER7 lanes are still read with vec_extract, since
// there is no direct move.
func GenericPrimitives(t Target) Primitives {
	p8 := t.ISA >= POWER8
	return Primitives{
		ExtractBuiltin: !p8,
		DirectMove:     p8,
	}
}

type engineState struct {
	target Target
	prims  Primitives
}

var active atomic.Pointer[engineState]

func state() *engineState {
	return active.Load()
}

func layout() vsx.Layout {
	return active.Load().target.Layout
}

// Configure replaces the active target and primitives. It is meant for
// tools and tests and must not race with vector operations.
func Configure(t Target, p Primitives) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := p.Validate(t); err != nil {
		return err
	}
	active.Store(&engineState{target: t, prims: p})
	return nil
}

// CurrentTarget returns the active target.
func CurrentTarget() Target {
	return state().target
}

// CurrentPrimitives returns the active primitive table.
func CurrentPrimitives() Primitives {
	return state().prims
}

// DetectTarget returns the target for this build and processor, with the
// GMX_SIMD_ISA override applied.
func DetectTarget() (Target, error) {
	t := Target{Layout: NativeLayout, ISA: ISA(cpu.DetectFeatures().Generation())}
	if v := os.Getenv("GMX_SIMD_ISA"); v != "" {
		isa, err := ParseISA(v)
		if err != nil {
			return Target{}, fmt.Errorf("GMX_SIMD_ISA: %w", err)
		}
		t.ISA = isa
	}
	return t, t.Validate()
}

// GenericPrimitivesEnv checks the GMX_SIMD_GENERIC_PRIMITIVES environment
// variable. Any non-empty value that does not parse as false enables it.
func GenericPrimitivesEnv() bool {
	val := os.Getenv("GMX_SIMD_GENERIC_PRIMITIVES")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Reset re-runs detection and installs the resulting configuration.
func Reset() error {
	t, err := DetectTarget()
	if err != nil {
		return err
	}
	return Configure(t, envPrimitives(t))
}

// envPrimitives is the primitive table for t that the environment asks for.
func envPrimitives(t Target) Primitives {
	if GenericPrimitivesEnv() || cpu.DetectFeatures().ForceGeneric {
		return GenericPrimitives(t)
	}
	return DefaultPrimitives(t)
}

var initErr error

// InitError returns the error that made package initialization ignore the
// GMX_SIMD_ISA override, or nil if the override (if any) was applied.
func InitError() error {
	return initErr
}

// resetOrFallback is Reset, except that an unusable ISA override is dropped
// in favour of POWER8 on the native layout. The generic primitive choice is
// kept either way. The override's error is returned.
func resetOrFallback() error {
	err := Reset()
	if err != nil {
		t := Target{Layout: NativeLayout, ISA: POWER8}
		active.Store(&engineState{target: t, prims: envPrimitives(t)})
	}
	return err
}

func init() {
	initErr = resetOrFallback()
}
