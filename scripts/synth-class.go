//go:build ignore

// Generate synthetic .class score files for local benchmarking.
// Usage: go run ./scripts/synth-class.go -out testdata
//
// Each line is "<id> <label> <evalue> <bitscore>". Positive log10 e-values are
// drawn around -12 and negatives around -2, so lower scores are hits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// Dataset shapes: overlap grows with spread.
var sets = []struct {
	Name      string
	Positives int
	Negatives int
	Spread    float64
}{
	{"set_1", 400, 1600, 2.5},
	{"set_2", 250, 2500, 4.0},
}

func main() {
	outDir := flag.String("out", "testdata", "Output directory")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	for _, s := range sets {
		path := filepath.Join(*outDir, s.Name+".class")
		if err := writeSet(path, rng, s.Positives, s.Negatives, s.Spread); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  -> %s (%d positives, %d negatives)\n", path, s.Positives, s.Negatives)
	}
}

func writeSet(path string, rng *rand.Rand, pos, neg int, spread float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# id label evalue bitscore")

	// shuffle labels so the file is not sorted by class
	labels := make([]int, 0, pos+neg)
	for range pos {
		labels = append(labels, 1)
	}
	for range neg {
		labels = append(labels, 0)
	}
	rng.Shuffle(len(labels), func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })

	for i, label := range labels {
		center := -2.0
		if label == 1 {
			center = -12.0
		}
		exp := center + rng.NormFloat64()*spread
		evalue := math.Pow(10, exp)
		bits := math.Max(0, -exp*3.3+rng.NormFloat64())
		fmt.Fprintf(w, "seq%05d %d %.3g %.1f\n", i, label, evalue, bits)
	}

	return w.Flush()
}
