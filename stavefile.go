//go:build stave

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

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

var binaries = []string{"rolema", "rolema-bench"}

// All runs lint and test, then builds.
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

// Build compiles rolema and rolema-bench.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_CLI, Build_Bench)
	return nil
}

// Build_CLI compiles bin/rolema.
func Build_CLI() error {
	st.Deps(Init)
	return buildBinary("rolema")
}

// Build_Bench compiles bin/rolema-bench.
func Build_Bench() error {
	st.Deps(Init)
	return buildBinary("rolema-bench")
}

func buildBinary(name string) error {
	out := filepath.Join("bin", name)
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

	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	ldflags := "-X main.version=" + strings.TrimSpace(version)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, "./cmd/"+name)
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// TestShort runs tests in short mode.
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-short", "-race", "./...")
}

// Fuzz runs the encoder fuzz target for FUZZTIME (default 30s).
func Fuzz() error {
	fuzztime := os.Getenv("FUZZTIME")
	if fuzztime == "" {
		fuzztime = "30s"
	}
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "FuzzEncode", "-fuzztime", fuzztime, ".")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	for _, a := range append([]string{"bin/", "dist/"}, binaries...) {
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
		dst := filepath.Join(bin, name)
		if runtime.GOOS == "windows" {
			dst += ".exe"
		}
		if err := sh.Copy(dst, filepath.Join("bin", name)); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
		if st.Verbose() {
			fmt.Printf("Installed %s to %s\n", name, dst)
		}
	}
	return nil
}

// Dict namespace for community dictionary targets.
type Dict st.Namespace

// Compile merges ROLEMA_DICT and ROLEMA_STORE into dist/community.pb.xz.
func (Dict) Compile() error {
	st.Deps(Build_CLI)
	if err := os.MkdirAll("dist", 0o755); err != nil {
		return err
	}
	return sh.RunV("./bin/rolema", "dict", "compile", "dist/community.pb.xz")
}

// Bench namespace for benchmark-related targets.
type Bench st.Namespace

func corpusDir() string {
	if dir := os.Getenv("ROLEMA_CORPUS"); dir != "" {
		return dir
	}
	return "cmd/rolema-bench/testdata/corpus"
}

// Run evaluates the plain encoder against the corpus.
func (Bench) Run() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/rolema-bench", "--corpus", corpusDir(), "--mismatches")
}

// Sweep ranks every encoder variant by collision rate.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/rolema-bench", "--corpus", corpusDir(), "--sweep")
}

// Collisions lists every code shared by two or more corpus names.
func (Bench) Collisions() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/rolema-bench", "--corpus", corpusDir(), "--collisions")
}

// CI runs the full CI pipeline (lint, test, build).
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}

// Check runs quick validation (vet, lint, short tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage generates a coverage report.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}
