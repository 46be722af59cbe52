// Package testutil provides testing utilities for Dialogorithm tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// FakeLatex is a shell script standing in for pdflatex. It writes a
// placeholder PDF for the job into -output-directory.
const FakeLatex = `for a in "$@"; do
  case "$a" in -output-directory=*) d="${a#-output-directory=}";; esac
done
echo "This is fake pdfTeX"
echo "%PDF-1.5" > "$d/phone_formula.pdf"
`

// FakeRaster is a shell script standing in for pdftoppm. It writes PNGDATA
// to the output prefix (its last argument) plus ".png".
const FakeRaster = `for a in "$@"; do last="$a"; done
printf 'PNGDATA' > "$last.png"
`

// SkipIfNoShell skips the test if /bin/sh is not available.
func SkipIfNoShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping test")
	}
}

// WriteScript creates an executable shell script named name in dir and
// returns its path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	return path
}

// FakeToolchain installs scripts in place of the LaTeX compiler and the
// rasterizer and returns their paths. latex and raster default to FakeLatex
// and FakeRaster when empty.
func FakeToolchain(t *testing.T, latex, raster string) (latexCmd, rasterCmd string) {
	t.Helper()
	SkipIfNoShell(t)

	if latex == "" {
		latex = FakeLatex
	}
	if raster == "" {
		raster = FakeRaster
	}
	bin := t.TempDir()
	return WriteScript(t, bin, "fake-latex", latex), WriteScript(t, bin, "fake-raster", raster)
}

// ScratchDir points TMPDIR at a fresh directory for the rest of the test and
// returns it, so tests can check that temporary work is cleaned up.
func ScratchDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	return dir
}

// AssertEmptyDir fails the test if dir has any entries.
func AssertEmptyDir(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	if len(entries) > 0 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected %s to be empty, found %v", dir, names)
	}
}
