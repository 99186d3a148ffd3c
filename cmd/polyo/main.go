package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2x3systems/polyo/libpolyo"
	"github.com/2x3systems/polyo/polyo"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"
)

const usage = `usage: polyo [flags] <maximalSize | lo..hi>
       polyo -script file.py
       polyo -repl

Counts fixed polyominoes of up to maximalSize cells (Redelmeier's algorithm).
`

type runOpts struct {
	Format string // "text" or "yaml"
	Check  bool   // verify search state restoration
	Audit  bool   // verify every polyomino is connected and counted once
	Show   bool   // include a drawing of the lattice searched
}

type countReport struct {
	MaxSize int         `yaml:"max_size"`
	Counts  []sizeCount `yaml:"counts"`
	Total   int64       `yaml:"total"`
	Audited bool        `yaml:"audited,omitempty"`
	Lattice string      `yaml:"lattice,omitempty"`
	Elapsed string      `yaml:"elapsed"`
}

type sizeCount struct {
	Size  int   `yaml:"size"`
	Count int64 `yaml:"count"`
}

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("v", "0")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts runOpts
	flag.StringVar(&opts.Format, "format", "text", "output format: text or yaml")
	flag.BoolVar(&opts.Check, "check", false, "verify the search state is restored after every step")
	flag.BoolVar(&opts.Audit, "audit", false, "verify every polyomino is connected and counted exactly once")
	flag.BoolVar(&opts.Show, "lattice", false, "also draw the lattice the search runs over")
	scriptPath := flag.String("script", "", "run the given gpython script (module _polyo is available)")
	startREPL := flag.Bool("repl", false, "start an interactive gpython session")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	exitCode := 0
	switch {
	case len(*scriptPath) > 0 || *startREPL:
		if err := go_gpython(*scriptPath); err != nil {
			exitCode = 1
		}
	case flag.NArg() != 1:
		flag.Usage()
		exitCode = 2
	default:
		err := runCount(os.Stdout, flag.Arg(0), opts)
		if err != nil {
			klog.Errorf("%v", err)
			exitCode = 1
			if errors.Is(err, polyo.ErrBadSizeRange) || errors.Is(err, errBadFormat) {
				exitCode = 2
			}
		}
	}

	klog.Flush()
	os.Exit(exitCode)
}

var errBadFormat = errors.New("unknown output format")

// runCount counts polyominoes for the given size expression and writes the requested sizes to out.
func runCount(out io.Writer, sizeExpr string, opts runOpts) error {
	if opts.Format != "text" && opts.Format != "yaml" {
		return errors.Wrapf(errBadFormat, "%q", opts.Format)
	}

	lo, hi, err := libpolyo.ParseSizeRange(sizeExpr)
	if err != nil {
		return err
	}

	startTime := time.Now()

	var counts polyo.Counts
	if opts.Audit {
		var aud *libpolyo.Auditor
		counts, aud, err = libpolyo.AuditFixed(hi)
		if err == nil {
			klog.V(1).Infof("audit passed: %d distinct polyominoes", aud.NumDistinct())
			aud.Close()
		}
	} else {
		counts, err = libpolyo.CountFixed(hi, polyo.CountOpts{
			CheckRestore: opts.Check,
		})
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	selected := counts[lo-1 : hi]

	var drawing strings.Builder
	if opts.Show {
		if err = libpolyo.WriteLattice(&drawing, libpolyo.BuildLattice(hi)); err != nil {
			return err
		}
	}

	switch opts.Format {
	case "yaml":
		report := countReport{
			MaxSize: hi,
			Counts:  make([]sizeCount, 0, len(selected)),
			Total:   selected.Total(),
			Audited: opts.Audit,
			Elapsed: elapsed.String(),
			Lattice: drawing.String(),
		}
		for i, ci := range selected {
			report.Counts = append(report.Counts, sizeCount{
				Size:  lo + i,
				Count: ci,
			})
		}
		enc := yaml.NewEncoder(out)
		if err = enc.Encode(&report); err != nil {
			return err
		}
		return enc.Close()
	default:
		if _, err = io.WriteString(out, drawing.String()); err != nil {
			return err
		}
		selected.WriteAsString(out)
		_, err = io.WriteString(out, "\n")
		return err
	}
}
