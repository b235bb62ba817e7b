// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command simdinfo reports what the VSX engine provides on this build and
// host, and checks that the active configuration produces correct lanes.
//
// Usage:
//
//	simdinfo caps
//	simdinfo target --isa power7 --layout big-endian
//	simdinfo selfcheck --generic
//	simdinfo host --format yaml
//
// Settings come from flags, then SIMDINFO_* environment variables, then an
// optional YAML file given with --config.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("simdinfo: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "simdinfo",
		Short:         "Inspect the VSX SIMD engine",
		Long:          "simdinfo prints the SIMD capability table, the active target and primitive strategies, host processor features, and runs a lane-level self-check.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", getEnvStr("SIMDINFO_CONFIG", ""), "YAML configuration file")
	pf.StringVar(&opts.isa, "isa", getEnvStr("SIMDINFO_ISA", ""), "Target ISA: power7, power8, power9 (empty = detected)")
	pf.StringVar(&opts.layout, "layout", getEnvStr("SIMDINFO_LAYOUT", ""), "Register layout: big-endian, little-endian (empty = native)")
	pf.BoolVar(&opts.generic, "generic", getEnvBool("SIMDINFO_GENERIC", false), "Use the generic primitive sequences")
	pf.StringVar(&opts.format, "format", getEnvStr("SIMDINFO_FORMAT", "text"), "Output format: text, yaml")
	pf.BoolVarP(&opts.verbose, "verbose", "v", getEnvBool("SIMDINFO_VERBOSE", false), "Log configuration steps")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simdinfo v%s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "caps",
		Short: "Print the capability table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeReport(cmd.OutOrStdout(), opts.format, capsReport())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "target",
		Short: "Print the active target and primitive strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeReport(cmd.OutOrStdout(), opts.format, targetReport())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "host",
		Short: "Print host processor features",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeReport(cmd.OutOrStdout(), opts.format, hostReport())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "selfcheck",
		Short: "Run lane-level checks against the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := selfCheck()
			if err := writeReport(cmd.OutOrStdout(), opts.format, results); err != nil {
				return err
			}
			return results.Err()
		},
	})
	return rootCmd
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
			return b
		}
		switch strings.ToLower(val) {
		case "yes", "on":
			return true
		case "no", "off":
			return false
		}
	}
	return defaultVal
}
