package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexxy/gromacs/simd"
	"github.com/alexxy/gromacs/simd/simd4"
)

type checkResult struct {
	Name   string `yaml:"name"`
	OK     bool   `yaml:"ok"`
	Detail string `yaml:"detail,omitempty"`
}

type checkResults struct {
	Target  string        `yaml:"target"`
	Results []checkResult `yaml:"results"`
}

var errSelfCheck = errors.New("self-check failed")

func (r checkResults) rows() [][2]string {
	rows := [][2]string{{"target", r.Target}}
	for _, c := range r.Results {
		status := "ok"
		if !c.OK {
			status = "FAIL " + c.Detail
		}
		rows = append(rows, [2]string{c.Name, status})
	}
	return rows
}

// Err returns an error naming the first failed check, or nil.
func (r checkResults) Err() error {
	for _, c := range r.Results {
		if !c.OK {
			return fmt.Errorf("%s: %w", c.Name, errSelfCheck)
		}
	}
	return nil
}

var selfChecks = []struct {
	name string
	run  func() error
}{
	{"lane order", checkLaneOrder},
	{"reduce order", checkReduceOrder},
	{"float/double round trip", checkSplitMerge},
	{"dot3", checkDot3},
	{"int multiply", checkIntMultiply},
	{"estimate precision", checkEstimates},
	{"exponent/mantissa", checkExponent},
	{"double int lanes", checkDoubleInt},
}

func selfCheck() checkResults {
	r := checkResults{Target: simd.CurrentTarget().String()}
	for _, c := range selfChecks {
		res := checkResult{Name: c.name, OK: true}
		if err := c.run(); err != nil {
			res.OK = false
			res.Detail = err.Error()
		}
		r.Results = append(r.Results, res)
	}
	return r
}

func checkLaneOrder() error {
	in := []float32{1, 2, 3, 4}
	v := simd.LoadFloat32x4(in)
	for i := range 4 {
		if got := v.Get(i); got != in[i] {
			return fmt.Errorf("lane %d: got %v, want %v", i, got, in[i])
		}
	}
	out := make([]float32, 4)
	v.Store(out)
	for i := range 4 {
		if out[i] != in[i] {
			return fmt.Errorf("store lane %d: got %v, want %v", i, out[i], in[i])
		}
	}
	return nil
}

func checkReduceOrder() error {
	v := simd.LoadFloat32x4([]float32{1e8, 1, -1e8, 1})
	if got := v.ReduceSum(); got != 2 {
		return fmt.Errorf("got %v, want 2", got)
	}
	return nil
}

func checkSplitMerge() error {
	in := []float32{float32(math.Pi), -1.5, 3.4028235e38, 1e-30}
	back := simd.MergeFloat64x2(simd.SplitFloat32x4(simd.LoadFloat32x4(in)))
	for i := range 4 {
		if math.Float32bits(back.Get(i)) != math.Float32bits(in[i]) {
			return fmt.Errorf("lane %d: got %v, want %v", i, back.Get(i), in[i])
		}
	}
	return nil
}

func checkDot3() error {
	a := simd4.Load3([]float32{1, 2, 3})
	if got := simd4.DotProduct3(a, a); got != 14 {
		return fmt.Errorf("got %v, want 14", got)
	}
	return nil
}

func checkIntMultiply() error {
	a := simd.LoadInt32x4([]int32{-300, 2, 32767, -32768})
	b := simd.LoadInt32x4([]int32{7, -9, 2, 1})
	want := [4]int32{-2100, -18, 65534, -32768}
	if got := a.Mul(b).Lanes(); got != want {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

func checkEstimates() error {
	x := simd.BroadcastFloat32x4(3)
	r := simd.RecipNewtonRaphson(x, x.Rcp()).Get(0)
	if math.Abs(float64(r)*3-1) > 1e-6 {
		return fmt.Errorf("refined 1/3 = %v", r)
	}
	d := simd.BroadcastFloat64x2(2)
	s := simd.RSqrtNewtonRaphson(d, simd.RSqrtNewtonRaphson(d, d.Rsqrt())).Get(0)
	if math.Abs(s*math.Sqrt2-1) > 1e-12 {
		return fmt.Errorf("refined 1/sqrt(2) = %v", s)
	}
	return nil
}

func checkExponent() error {
	v := simd.LoadFloat32x4([]float32{1, 8, 0.375, 1e10})
	e, m := v.GetExponent(), v.GetMantissa()
	back := m.Mul(e.SetExponent())
	for i := range 4 {
		if back.Get(i) != v.Get(i) {
			return fmt.Errorf("lane %d: mantissa*2^exponent = %v, want %v", i, back.Get(i), v.Get(i))
		}
	}
	return nil
}

func checkDoubleInt() error {
	i := simd.LoadInt32x2([]int32{-5, 11})
	if got := i.ConvertToFloat64().Lanes(); got != [2]float64{-5, 11} {
		return fmt.Errorf("convert: got %v", got)
	}
	d := simd.LoadFloat64x2([]float64{2.5, -7.5})
	if got := d.ConvertToInt32().Lanes(); got != [2]int32{3, -8} {
		return fmt.Errorf("round: got %v, want [3 -8]", got)
	}
	return nil
}
