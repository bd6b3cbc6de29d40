// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex compiles LaTeX sources to PDF by invoking pdflatex.
// The compiler runs behind a capability interface so the pipeline can be
// tested without a TeX installation.
package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkaeser/menuboard/internal/textenc"
)

const (
	binPDFLaTeX = "pdflatex"

	// compilePasses is the fixed number of pdflatex invocations per
	// source. The second pass resolves cross-references the first pass
	// introduces; both passes use identical arguments.
	compilePasses = 2

	// defaultTimeout bounds a single pdflatex pass.
	defaultTimeout = 60 * time.Second

	// diagnosticTail limits how much decoded pdflatex output is
	// surfaced in errors.
	diagnosticTail = 500
)

// Compiler turns a LaTeX source file into a PDF. The returned path
// points at the compiled output; an error means no usable output exists.
type Compiler interface {
	Compile(ctx context.Context, texPath string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// PDFLaTeX compiles sources with the pdflatex binary, directing
// auxiliary output to a dedicated directory.
type PDFLaTeX struct {
	auxDir  string
	timeout time.Duration
	exec    executor
}

// NewPDFLaTeX creates a compiler writing auxiliary output under auxDir.
// A non-positive timeout falls back to the 60-second default per pass.
func NewPDFLaTeX(auxDir string, timeout time.Duration) *PDFLaTeX {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PDFLaTeX{auxDir: auxDir, timeout: timeout, exec: osExecutor{}}
}

// Available reports whether the pdflatex binary exists on PATH.
func (c *PDFLaTeX) Available() bool {
	_, err := c.exec.LookPath(binPDFLaTeX)
	return err == nil
}

// Compile runs pdflatex twice over texPath and returns the path of the
// produced PDF inside the auxiliary directory. pdflatex exits non-zero
// for recoverable issues, so success is judged by the existence of the
// output file, not the exit code.
func (c *PDFLaTeX) Compile(ctx context.Context, texPath string) (string, error) {
	base := filepath.Base(texPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	absAux, err := filepath.Abs(c.auxDir)
	if err != nil {
		return "", fmt.Errorf("resolving aux directory: %w", err)
	}
	if err := os.MkdirAll(absAux, 0o755); err != nil {
		return "", fmt.Errorf("creating aux directory: %w", err)
	}

	args := []string{
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory=" + absAux,
		"-synctex=1",
		base,
	}
	env := append(os.Environ(), "TEXMFOUTPUT="+absAux, "TEXMFCACHE="+absAux)

	var stdout, stderr []byte
	for pass := 1; pass <= compilePasses; pass++ {
		passCtx, cancel := context.WithTimeout(ctx, c.timeout)
		stdout, stderr, err = c.exec.Run(passCtx, filepath.Dir(texPath), env, binPDFLaTeX, args...)
		cancel()

		if errors.Is(passCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("pdflatex timed out after %s on pass %d for %s", c.timeout, pass, base)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// A non-zero exit is not conclusive; the output check below decides.
	}

	pdfPath := filepath.Join(absAux, name+".pdf")
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return "", fmt.Errorf("pdflatex produced no output for %s: %s", base, diagnostics(stdout, stderr))
	}
	return pdfPath, nil
}

// diagnostics decodes captured pdflatex output with the encoding
// fallback chain and returns the most useful tail of it. pdflatex
// writes its errors to stdout; stderr is usually empty.
func diagnostics(stdout, stderr []byte) string {
	out := strings.TrimSpace(textenc.Decode(stdout))
	errOut := strings.TrimSpace(textenc.Decode(stderr))

	msg := out
	if errOut != "" {
		if msg != "" {
			msg += "\n"
		}
		msg += errOut
	}
	if msg == "" {
		return "(no diagnostic output)"
	}
	return tail(msg, diagnosticTail)
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
