package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/viterin/vek/vek32"
	syscpu "golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"

	"github.com/alexxy/gromacs/internal/cpu"
	"github.com/alexxy/gromacs/simd"
)

type textReport interface {
	rows() [][2]string
}

func writeReport(w io.Writer, format string, r textReport) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range r.rows() {
			fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q", format)
}

type capabilities simd.CapabilityTable

func capsReport() capabilities {
	return capabilities(simd.Capabilities())
}

func (c capabilities) rows() [][2]string {
	b := func(v bool) string { return fmt.Sprint(v) }
	i := func(v int) string { return fmt.Sprint(v) }
	return [][2]string{
		{"float", b(c.Float)},
		{"double", b(c.Double)},
		{"hardware", b(c.Hardware)},
		{"loadu/storeu", b(c.LoadU && c.StoreU)},
		{"logical", b(c.Logical)},
		{"fma", b(c.FMA)},
		{"fraction", b(c.Fraction)},
		{"fint32", b(c.FInt32 && c.FInt32Extract && c.FInt32Logical && c.FInt32Arithmetics)},
		{"dint32", b(c.DInt32 && c.DInt32Extract && c.DInt32Logical && c.DInt32Arithmetics)},
		{"simd4 float", b(c.Simd4Float)},
		{"simd4 double", b(c.Simd4Double)},
		{"float width", i(c.FloatWidth)},
		{"double width", i(c.DoubleWidth)},
		{"fint32 width", i(c.FInt32Width)},
		{"dint32 width", i(c.DInt32Width)},
		{"rsqrt bits", i(c.RsqrtBits)},
		{"rcp bits", i(c.RcpBits)},
	}
}

type target struct {
	ISA        string          `yaml:"isa"`
	Layout     string          `yaml:"layout"`
	Primitives simd.Primitives `yaml:"primitives"`
	Overflow   string          `yaml:"overflow"`
	InitError  string          `yaml:"init_error,omitempty"`
}

func targetReport() target {
	t := simd.CurrentTarget()
	r := target{
		ISA:        t.ISA.String(),
		Layout:     t.Layout.String(),
		Primitives: simd.CurrentPrimitives(),
		Overflow:   simd.CheckAndResetOverflow().String(),
	}
	if err := simd.InitError(); err != nil {
		r.InitError = err.Error()
	}
	return r
}

func (t target) rows() [][2]string {
	p := t.Primitives
	return [][2]string{
		{"isa", t.ISA},
		{"layout", t.Layout},
		{"negate", choose(p.NegateBuiltin, "xvnegsp", "xor sign bit")},
		{"int multiply", choose(p.IntMulWord, "vmuluwm", "halfword even/odd")},
		{"extract", choose(p.ExtractBuiltin, "vec_extract", "xxsldwi+mfvsrwz")},
		{"direct move", fmt.Sprint(p.DirectMove)},
		{"overflow check", t.Overflow},
		{"ignored override", choose(t.InitError != "", t.InitError, "none")},
	}
}

func choose(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

type host struct {
	GOARCH      string   `yaml:"goarch"`
	CPUs        int      `yaml:"cpus"`
	Generation  string   `yaml:"generation"`
	Native      bool     `yaml:"native"`
	POWER8      bool     `yaml:"power8"`
	POWER9      bool     `yaml:"power9"`
	DARN        bool     `yaml:"darn"`
	SCV         bool     `yaml:"scv"`
	HostVector  []string `yaml:"host_vector,omitempty"`
	Accelerated bool     `yaml:"vek_accelerated"`
	VekFeatures []string `yaml:"vek_features,omitempty"`
}

func hostReport() host {
	f := cpu.DetectFeatures()
	info := vek32.Info()
	h := host{
		GOARCH:      runtime.GOARCH,
		CPUs:        runtime.NumCPU(),
		Generation:  f.Generation().String(),
		Native:      f.Native,
		POWER8:      f.IsPOWER8,
		POWER9:      f.IsPOWER9,
		DARN:        f.HasDARN,
		SCV:         f.HasSCV,
		Accelerated: info.Acceleration,
		VekFeatures: info.CPUFeatures,
	}
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"sse4.1", syscpu.X86.HasSSE41},
		{"avx2", syscpu.X86.HasAVX2},
		{"fma", syscpu.X86.HasFMA},
		{"avx512f", syscpu.X86.HasAVX512F},
		{"asimd", syscpu.ARM64.HasASIMD},
		{"sve", syscpu.ARM64.HasSVE},
		{"vx", syscpu.S390X.HasVX},
	} {
		if feat.ok {
			h.HostVector = append(h.HostVector, feat.name)
		}
	}
	return h
}

func (h host) rows() [][2]string {
	return [][2]string{
		{"goarch", h.GOARCH},
		{"cpus", fmt.Sprint(h.CPUs)},
		{"generation", h.Generation},
		{"native POWER", fmt.Sprint(h.Native)},
		{"power8/power9", fmt.Sprintf("%v/%v", h.POWER8, h.POWER9)},
		{"darn/scv", fmt.Sprintf("%v/%v", h.DARN, h.SCV)},
		{"host vector", fmt.Sprint(h.HostVector)},
		{"vek accelerated", fmt.Sprint(h.Accelerated)},
		{"vek features", fmt.Sprint(h.VekFeatures)},
	}
}
