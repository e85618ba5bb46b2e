// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command gentable writes the quarter-wave sine table used by package trig.
//
// Usage:
//
//	go run ./internal/gentable -o table.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
)

const (
	quarterSteps = 1024
	maxRatio     = 0xffff
	perLine      = 12
)

func main() {
	out := flag.String("o", "table.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString("// Copyright 2026 The gogpu Authors\n")
	buf.WriteString("// SPDX-License-Identifier: MIT\n\n")
	buf.WriteString("// Code generated by gentable; DO NOT EDIT.\n\n")
	buf.WriteString("package trig\n\n")
	buf.WriteString("// sineTable holds round(sin(i*π/(2*quarterSteps)) * MaxRatio) for\n")
	buf.WriteString("// i in [0, quarterSteps].\n")
	buf.WriteString("var sineTable = [quarterSteps + 1]int32{\n")
	for i := 0; i <= quarterSteps; i++ {
		if i%perLine == 0 {
			buf.WriteString("\t")
		}
		v := math.Round(math.Sin(float64(i)*math.Pi/(2*quarterSteps)) * maxRatio)
		fmt.Fprintf(&buf, "%d,", int32(v))
		if i%perLine == perLine-1 || i == quarterSteps {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentable: format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gentable: %v", err)
	}
}
