//go:build mage

// Package main contains Mage build targets for grammar-engine developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "grammar-engine"
	cmdPkg  = "./cmd/grammar-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// sampleText is the paragraph every operation is demonstrated on.
const sampleText = "Duane has invited Maggie and me to attend a few Oregon Shakespeare Festival " +
	"openings with him this weekend so we could see plays like Fat Ham and The Importance " +
	"of Being Ernest, plus the usual charity shopping and Mass! Today will be a particularly " +
	"busy day, as we will have two plays; one at about 1:30, and another in the evening. " +
	"Luckily, Maggie and I live about a block away from OSF, so we can retreat to our little " +
	"haven and take a nap after the first play, if needed. Call 541-555-0100 with questions."

// Sample builds the binary and runs every operation over a sample paragraph.
func Sample() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	ops, err := sh.Output(bin, "operations")
	if err != nil {
		return fmt.Errorf("listing operations: %w", err)
	}

	fmt.Println("Input:", sampleText)
	for _, op := range strings.Fields(ops) {
		cmd := exec.Command(bin, op)
		cmd.Stdin = strings.NewReader(sampleText)
		var stdout bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("running %s: %w", op, err)
		}
		fmt.Printf("\n[%s]\n%s\n", op, stdout.String())
	}
	return nil
}

// Stats prints project metrics: Go production and test lines of code.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
// Directories starting with "_" or "." are skipped, as the go tool does.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
