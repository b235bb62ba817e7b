//go:build ppc64le || amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || wasm

package simd

import "github.com/alexxy/gromacs/simd/vsx"

const layoutRequiresKnownGOARCH = vsx.LittleEndian
