//go:build gc || gccgo

package simd

const requiresGcOrGccgo = true
