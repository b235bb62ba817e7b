// Package cpu detects the POWER processor generation the simd engine targets.
//
// Detection runs once on the first call to DetectFeatures and is cached.
// Tests can replace the detected values with SetForcedFeatures.
package cpu

import (
	"sync"
)

// Generation is a POWER instruction set level.
type Generation int

const (
	// GenerationPOWER7 has VSX but no direct moves and no word multiply.
	GenerationPOWER7 Generation = iota + 7

	// GenerationPOWER8 adds mfvsrwz/mtvsrwz, vmuluwm and little-endian mode.
	GenerationPOWER8

	// GenerationPOWER9 adds ISA 3.0 vector instructions.
	GenerationPOWER9
)

// String returns "POWER7", "POWER8" or "POWER9".
func (g Generation) String() string {
	switch g {
	case GenerationPOWER7:
		return "POWER7"
	case GenerationPOWER8:
		return "POWER8"
	case GenerationPOWER9:
		return "POWER9"
	default:
		return "Unknown"
	}
}

// Features describes the processor as far as the vector engine cares.
type Features struct {
	IsPOWER8 bool // ISA 2.07
	IsPOWER9 bool // ISA 3.00
	HasDARN  bool
	HasSCV   bool

	// Native is false when the host is not a POWER processor and the
	// instruction semantics are executed in software.
	Native bool

	// ForceGeneric disables every optional primitive.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

// Generation returns the highest generation the features imply. Emulated
// hosts report POWER8, the oldest generation that runs little-endian.
func (f Features) Generation() Generation {
	switch {
	case f.IsPOWER9:
		return GenerationPOWER9
	case f.IsPOWER8:
		return GenerationPOWER8
	case !f.Native:
		return GenerationPOWER8
	}
	return GenerationPOWER7
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the cached processor features. Safe for concurrent
// use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
