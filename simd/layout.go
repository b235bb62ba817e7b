package simd

import "github.com/alexxy/gromacs/simd/vsx"

// NativeLayout is the element order of this build. It is defined by the
// per-GOARCH byte order files; a GOARCH missing from both lists fails to
// compile on the undefined identifier below.
const NativeLayout vsx.Layout = layoutRequiresKnownGOARCH

// Only the gc and gccgo toolchains are known to lay out [16]byte register
// values as this package expects.
const _ = requiresGcOrGccgo
