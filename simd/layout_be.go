//go:build ppc64 || s390x || mips || mips64

package simd

import "github.com/alexxy/gromacs/simd/vsx"

const layoutRequiresKnownGOARCH = vsx.BigEndian
