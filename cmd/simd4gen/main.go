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

// Command simd4gen writes the constructor forwarders of the simd4 package.
//
// Usage:
//
//	simd4gen -out simd4_gen.go
//
// Or via go:generate in simd/simd4:
//
//	//go:generate go run ../../cmd/simd4gen -out simd4_gen.go
//
// It loads the simd package, keeps every exported non-generic function that
// returns a single-precision vector or mask and takes no double-precision
// argument, and emits a forwarder named for the simd4 types.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	srcPkg  = flag.String("pkg", "github.com/alexxy/gromacs/simd", "Import path of the package to forward")
	outFile = flag.String("out", "simd4_gen.go", "Output file, - for stdout")
	pkgName = flag.String("name", "simd4", "Package name of the generated file")
)

func main() {
	flag.Parse()

	gen := &Generator{
		SourcePkg:  *srcPkg,
		PackageOut: *pkgName,
		Renames:    DefaultRenames,
	}
	src, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outFile == "-" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s (%d forwarders)\n", *outFile, gen.Count)
}
