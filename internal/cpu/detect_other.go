//go:build !ppc64 && !ppc64le

package cpu

import "runtime"

// detectFeaturesImpl reports an emulated host. No POWER feature bits are set.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
