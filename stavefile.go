//go:build stave

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
	"c": Clean,
}

// All runs the complete build pipeline: lint, test, and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// binaries lists the commands under cmd/.
var binaries = []string{"perfstat", "perfbench"}

// Build compiles the perfstat and perfbench binaries.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_Stat, Build_Bench)
	return nil
}

// Build_Stat compiles the perfstat binary.
func Build_Stat() error {
	return buildBinary("perfstat")
}

// Build_Bench compiles the perfbench binary with version information.
func Build_Bench() error {
	return buildBinary("perfbench")
}

func buildBinary(name string) error {
	st.Deps(Init)

	out := "bin/" + name
	rebuild, err := target.Glob(out, "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Printf("%s is up to date\n", name)
		}
		return nil
	}

	return sh.RunV("go", "build", "-ldflags", buildLdflags(), "-o", out, "./cmd/"+name)
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with race detection, coverage and shuffled order.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "-shuffle=on", "./...")
}

// TestShort runs the metric, log and config packages only; chart and
// command tests render images and are slower.
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", ".", "./dataset", "./thresholdlog", "./internal/...")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// LintFix runs golangci-lint with auto-fix enabled.
func LintFix() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-local", "github.com/jamesainslie/go-perfstat", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages, including the stavefile and scripts.
func Vet() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if err := sh.RunV("go", "vet", "-tags", "stave", "./stavefile.go"); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "./scripts/synth-class.go")
}

// Clean removes build artifacts.
func Clean() error {
	artifacts := []string{
		"bin/",
		"testdata/set_1.class",
		"testdata/set_2.class",
	}
	for _, a := range artifacts {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binaries to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	for _, name := range binaries {
		src := "bin/" + name
		dst := bin + "/" + name
		if runtime.GOOS == "windows" {
			dst += ".exe"
		}
		if err := sh.Copy(dst, src); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
		if st.Verbose() {
			fmt.Printf("Installed %s to %s\n", name, dst)
		}
	}
	return nil
}

// Bench namespace for evaluation targets against local datasets.
type Bench st.Namespace

// datasets returns the score files named by PERFSTAT_DATASETS, or the defaults.
func datasets() []string {
	if v := os.Getenv("PERFSTAT_DATASETS"); v != "" {
		return strings.Fields(v)
	}
	return []string{"testdata/set_1.class", "testdata/set_2.class"}
}

// Synth writes synthetic score files to testdata/ for local runs.
func (Bench) Synth() error {
	return sh.RunV("go", "run", "./scripts/synth-class.go", "-out", "testdata")
}

// Sweep runs a threshold sweep on the first dataset.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/perfbench", "sweep", datasets()[0])
}

// Compare sweeps every dataset and renders both MCC plot presets.
func (Bench) Compare() error {
	st.Deps(Build_Bench)
	args := append([]string{"compare", "--out-dir", "bin"}, datasets()...)
	return sh.RunV("./bin/perfbench", args...)
}

// ROC renders the pooled ROC curve of every dataset.
func (Bench) ROC() error {
	st.Deps(Build_Bench)
	args := append([]string{"roc", "-o", "bin/roc_curve.png"}, datasets()...)
	return sh.RunV("./bin/perfbench", args...)
}

// CI runs the full CI pipeline: lint, test, build and a smoke run.
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build, Smoke)
	return nil
}

// Smoke generates synthetic score files in a temporary directory and runs
// both binaries over them.
func Smoke() error {
	st.Deps(Build)

	dir, err := os.MkdirTemp("", "perfstat-smoke-")
	if err != nil {
		return fmt.Errorf("creating smoke dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	if err := sh.RunV("go", "run", "./scripts/synth-class.go", "-out", dir); err != nil {
		return fmt.Errorf("generating data: %w", err)
	}
	set1 := filepath.Join(dir, "set_1.class")
	set2 := filepath.Join(dir, "set_2.class")

	steps := [][]string{
		{"./bin/perfstat", set1, "1e-3"},
		{"./bin/perfbench", "sweep", set1, "--structured", filepath.Join(dir, "set_1.pb")},
		{"./bin/perfbench", "mcc-plot", filepath.Join(dir, "set_1.pb"), "-o", filepath.Join(dir, "mcc.png")},
		{"./bin/perfbench", "compare", "--out-dir", dir, set1, set2},
		{"./bin/perfbench", "roc", "-o", filepath.Join(dir, "roc_curve.png"), set1, set2},
	}
	for _, step := range steps {
		if err := sh.RunV(step[0], step[1:]...); err != nil {
			return fmt.Errorf("%s: %w", strings.Join(step[:2], " "), err)
		}
	}
	return nil
}

// Check runs quick validation (vet, lint, core package tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage writes bin/coverage.out and bin/coverage.html.
func Coverage() error {
	st.Deps(Init)
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("creating bin: %w", err)
	}
	if err := sh.RunV("go", "test", "-race", "-coverprofile=bin/coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=bin/coverage.out", "-o", "bin/coverage.html")
}

// Tidy runs go mod tidy and fails if go.mod or go.sum changed.
func Tidy() error {
	if err := sh.Run("go", "mod", "tidy"); err != nil {
		return err
	}
	output, err := sh.Output("git", "diff", "--exit-code", "go.mod", "go.sum")
	if err != nil {
		if output == "" {
			return fmt.Errorf("checking module files: %w", err)
		}
		return fmt.Errorf("module files are not tidy:\n%s", output)
	}
	return nil
}
