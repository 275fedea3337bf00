// Command pqbench benchmarks CRYSTALS-Dilithium3 against RSA-PSS (SHA-256)
// at 2048- and 3072-bit moduli: a functional correctness demonstration
// followed by per-operation latency and artifact-size comparison.
//
// The program takes no arguments, consults no environment variables and
// persists nothing; all output goes to stdout. Exit code 0 on success, 1 on
// an uncaught error.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/pqbench/pqbench/benchmark"
	"github.com/pqbench/pqbench/report"
	"github.com/pqbench/pqbench/sig"
	"github.com/pqbench/pqbench/sig/dilithium"
	"github.com/pqbench/pqbench/sig/rsapss"
)

const demoMessage = "Hello, Post-Quantum World!"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	// Outermost handler: primitive failures never surface as errors, so
	// anything reaching here is genuinely unexpected.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("unexpected failure: %v", r)
		}
	}()

	out := report.New(os.Stdout)

	demo := dilithium.New()
	defer demo.Close()
	out.Demonstrate(demo, demoMessage)

	return runComparison(out)
}

func runComparison(out *report.Reporter) error {
	suite, err := benchmark.NewSuite(benchmark.DefaultConfig())
	if err != nil {
		return err
	}

	out.Banner("  DILITHIUM vs RSA BENCHMARK SUITE")
	out.Configuration(suite.Config())

	contenders := []struct {
		label  string
		scheme sig.Scheme
	}{
		{"CRYSTALS-Dilithium3 (NIST Level 3)", dilithium.New()},
		{"RSA-2048 (Traditional)", rsapss.New(2048)},
		{"RSA-3072 (128-bit security)", rsapss.New(3072)},
	}

	for _, c := range contenders {
		out.Testing(c.label)
		suite.RunScheme(c.scheme)
		out.Done()
		c.scheme.Close()
	}

	results := suite.Results()

	out.Banner("         PERFORMANCE COMPARISON")
	out.Table(results)

	out.Banner("          DETAILED ANALYSIS")
	out.Analysis(results)

	out.Banner("      BENCHMARK COMPLETED SUCCESSFULLY")
	return nil
}
