package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexxy/gromacs/simd"
	"github.com/alexxy/gromacs/simd/vsx"
)

// fileConfig is the YAML configuration file.
//
//	isa: power8
//	layout: little-endian
//	format: yaml
//	primitives:
//	  negate_builtin: false
//	  int_mul_word: true
//	  extract_builtin: false
//	  direct_move: true
type fileConfig struct {
	ISA        string           `yaml:"isa"`
	Layout     string           `yaml:"layout"`
	Generic    bool             `yaml:"generic"`
	Format     string           `yaml:"format"`
	Primitives *simd.Primitives `yaml:"primitives"`
}

type options struct {
	configPath string
	isa        string
	layout     string
	generic    bool
	format     string
	verbose    bool
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func parseLayout(s string) (vsx.Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "be", "big", "big-endian":
		return vsx.BigEndian, nil
	case "le", "little", "little-endian":
		return vsx.LittleEndian, nil
	}
	return 0, fmt.Errorf("parse layout %q: %w", s, simd.ErrInvalidTarget)
}

// resolve merges the config file under the flags and returns the engine
// configuration to install. Flags that were set explicitly win.
func (o *options) resolve(cmd *cobra.Command) (simd.Target, simd.Primitives, error) {
	var cfg fileConfig
	if o.configPath != "" {
		c, err := loadConfig(o.configPath)
		if err != nil {
			return simd.Target{}, simd.Primitives{}, err
		}
		cfg = *c
	}
	flags := cmd.Flags()
	if o.isa == "" {
		o.isa = cfg.ISA
	}
	if o.layout == "" {
		o.layout = cfg.Layout
	}
	if !flags.Changed("generic") && cfg.Generic {
		o.generic = true
	}
	if !flags.Changed("format") && cfg.Format != "" {
		o.format = cfg.Format
	}

	t := simd.CurrentTarget()
	if o.isa != "" {
		isa, err := simd.ParseISA(o.isa)
		if err != nil {
			return simd.Target{}, simd.Primitives{}, err
		}
		t.ISA = isa
	}
	if o.layout != "" {
		l, err := parseLayout(o.layout)
		if err != nil {
			return simd.Target{}, simd.Primitives{}, err
		}
		t.Layout = l
	}

	p := simd.DefaultPrimitives(t)
	switch {
	case o.generic:
		p = simd.GenericPrimitives(t)
	case cfg.Primitives != nil:
		p = *cfg.Primitives
	}
	return t, p, nil
}

func (o *options) apply(cmd *cobra.Command) error {
	if err := simd.InitError(); err != nil {
		log.Printf("environment override ignored at startup: %v", err)
	}
	t, p, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if err := simd.Configure(t, p); err != nil {
		return err
	}
	if o.verbose {
		log.Printf("target %v, primitives %+v", t, p)
	}
	return nil
}
