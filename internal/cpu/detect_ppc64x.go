//go:build ppc64 || ppc64le

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func detectFeaturesImpl() Features {
	return Features{
		IsPOWER8:     cpu.PPC64.IsPOWER8,
		IsPOWER9:     cpu.PPC64.IsPOWER9,
		HasDARN:      cpu.PPC64.HasDARN,
		HasSCV:       cpu.PPC64.HasSCV,
		Native:       true,
		Architecture: runtime.GOARCH,
	}
}
