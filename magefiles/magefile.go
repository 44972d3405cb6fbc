// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for docr developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	binDir  = "bin"
	binName = "docr"
	cmdPkg  = "./cmd/docr"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Install builds and installs docr into GOPATH/bin.
func Install() error {
	cmd := exec.Command("go", "install", cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go install: %w", err)
	}
	fmt.Println("Installed docr")
	return nil
}

// Deps reports whether the external collaborators docr shells out to are on
// PATH: libreoffice, ocrmypdf, and a container runtime for markitdown.
func Deps() error {
	bins := []string{"libreoffice", "ocrmypdf", "docker", "podman", "pdftotext"}
	for _, bin := range bins {
		if path, err := exec.LookPath(bin); err == nil {
			fmt.Printf("  found:   %s (%s)\n", bin, path)
		} else {
			fmt.Printf("  missing: %s\n", bin)
		}
	}
	return nil
}
