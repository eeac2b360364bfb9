// SPDX-License-Identifier: MIT

// Command linalgdemo walks through the vector and matrix operations on a
// fixed set of inputs and prints every intermediate result to stdout.
//
// Usage:
//
//	linalgdemo [-log-level debug|info|warn|error]
//
// At debug level the matrix package reports operand swaps in Multiply.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

var log = logging.Logger("linalgdemo")

func main() {
	var (
		logLevel = flag.String("log-level", "info", "log level for all subsystems (debug, info, warn, error)")
	)
	flag.Parse()

	lvl, err := logging.LevelFromString(*logLevel)
	if err != nil {
		lvl = logging.LevelInfo
	}
	logging.SetAllLoggers(lvl)

	if err := run(os.Stdout); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

// run prints the vector section followed by the matrix section.
func run(w io.Writer) error {
	if err := runVectors(w); err != nil {
		return fmt.Errorf("vectors: %w", err)
	}
	fmt.Fprintln(w)
	if err := runMatrices(w); err != nil {
		return fmt.Errorf("matrices: %w", err)
	}
	log.Debug("demo complete")

	return nil
}

func runVectors(w io.Writer) error {
	v1 := vector.FromSlice([]float64{1, 3, 5})
	v2 := vector.FromSlice([]float64{2, 4, 15})

	dot, err := vector.Dot(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Dot product of v1 and v2:", dot)

	cross, err := vector.Cross(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Cross product of v1 and v2:", cross)

	angle, err := v1.AngleBetween(v2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Angle between v1 and v2:", angle)
	fmt.Fprintln(w, "The length of v1:", v1.Length())
	fmt.Fprintln(w, "Unit vector of v2:", v2.UnitVector())

	if err = v1.Add(v2); err != nil {
		return err
	}
	fmt.Fprintln(w, "v2 is added to v1. Final v1:", v1)
	v2.MultiplyByScalar(2)
	fmt.Fprintln(w, "v2 is multiplied by 2. Final v2:", v2)
	if err = v1.Subtract(v2); err != nil {
		return err
	}
	fmt.Fprintln(w, "v2 is subtracted from v1. Final v1:", v1)

	fmt.Fprintln(w, "Standard unit vectors for a 3D subspace:")
	basis, err := vector.StandardUnitVectors(3)
	if err != nil {
		return err
	}
	for _, e := range basis {
		fmt.Fprintln(w, e)
	}

	return nil
}

func runMatrices(w io.Writer) error {
	m1, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 6, 5}, {14, 16, 20}, {8, 10, 11}})
	if err != nil {
		return err
	}
	m2, err := matrix.NewFromRows([][]float64{{5, 2, 7, 11, 1}, {3, 5, 12, 4, 8}, {5, 10, 16, 2, 9}})
	if err != nil {
		return err
	}
	section(w, "m1:", m1)
	section(w, "m2:", m2)
	fmt.Fprintln(w)

	product, err := matrix.Multiply(m1, m2)
	if err != nil {
		return err
	}
	section(w, "Multiplication of m1 and m2:", product)
	section(w, "Transpose of m1:", m1.Transpose())

	m3, err := matrix.NewFromRows([][]float64{{12, 4, 4}, {7, 0, 1}, {4, 0, 9}})
	if err != nil {
		return err
	}
	section(w, "m3:", m3)
	det, err := m3.Determinant()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Determinant of m3:", det)

	m5, err := matrix.NewIdentity(3)
	if err != nil {
		return err
	}
	section(w, "3x3 Identity Matrix:", m5)
	m5.MultiplyByScalar(5)
	section(w, "m5 is multiplied by 5:", m5)

	section(w, "m3:", m3)
	if err = m3.Add(m5); err != nil {
		return err
	}
	section(w, "m5 is added to m3. m3:", m3)
	if err = m3.Subtract(m5); err != nil {
		return err
	}
	section(w, "m5 is subtracted from m3. m3:", m3)

	if err = m3.InterchangeRows(0, 1); err != nil {
		return err
	}
	section(w, "m3's first two row is interchanged:", m3)
	if err = m3.ScaleRow(1, 3); err != nil {
		return err
	}
	section(w, "Row 1 of m3 is multiplied by 3:", m3)
	if err = m3.AddScaledRow(0, 1, 3); err != nil {
		return err
	}
	section(w, "3 times row 0 is added to row 1:", m3)

	inv, err := m3.Inverse()
	if err != nil {
		return err
	}
	section(w, "The inverse of m3:", inv)

	return nil
}

// section prints a title line followed by a rendered matrix and a blank line.
func section(w io.Writer, title string, m *matrix.Dense) {
	fmt.Fprintf(w, "%s\n%s\n", title, m)
}
