// SPDX-License-Identifier: MIT

// Command matheat renders a stored float64 matrix as a PNG heatmap.
//
// Usage:
//
//	matheat -in m.lvmx -out m.png [-title s] [-size 4in]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/linalg/matrixio"
	"github.com/katalvlaran/linalg/render"
	"gonum.org/v1/plot/vg"
)

var errMissingFlag = errors.New("both -in and -out are required")

func main() {
	log.SetFlags(0)
	log.SetPrefix("matheat: ")
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run parses args, loads the input matrix and writes the heatmap.
func run(args []string, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("matheat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input matrix file (float64, matrixio format)")
	out := fs.String("out", "", "output PNG file")
	title := fs.String("title", "", "plot title")
	size := fs.String("size", "4in", "image width and height, e.g. 4in, 10cm, 300pt")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		fs.Usage()
		return errMissingFlag
	}

	side, err := vg.ParseLength(*size)
	if err != nil {
		return fmt.Errorf("-size %q: %w", *size, err)
	}

	m, err := matrixio.Load[float64](*in)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return render.Heatmap[float64](f, m, render.WithTitle(*title), render.WithSize(side, side))
}
