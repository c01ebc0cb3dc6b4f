//go:build mage

// Package main contains Mage build targets for lengthconv developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "lengthconv"
	cmdPkg  = "./cmd/lengthconv"
)

// Default is the target run by a bare "mage".
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests after vetting.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "./...")
}

// Demo builds the binary and converts a few sample values.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	samples := [][]string{
		{"convert", "100", "--from", "m", "--to", "cm"},
		{"convert", "1", "--from", "km", "--to", "mm"},
		{"units"},
	}
	for _, args := range samples {
		if err := sh.RunV(bin, args...); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	fmt.Println("Removing", binDir)
	return sh.Rm(binDir)
}
