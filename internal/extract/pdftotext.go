package extract

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Extractor extracts text from uploaded case files using the pdftotext binary.
type Extractor struct {
	binary string
	runner CommandRunner
}

// NewExtractor creates an extractor that shells out to the given pdftotext binary.
func NewExtractor(binary string) *Extractor {
	return NewExtractorWithRunner(binary, execRunner{})
}

// NewExtractorWithRunner creates an extractor with a custom command runner.
func NewExtractorWithRunner(binary string, runner CommandRunner) *Extractor {
	if binary == "" {
		binary = "pdftotext"
	}
	return &Extractor{binary: binary, runner: runner}
}

// ExtractText converts a PDF file to plain text. Plain text uploads pass
// through unchanged.
func (e *Extractor) ExtractText(ctx context.Context, fileBytes []byte, contentType string) (string, error) {
	switch {
	case contentType == "text/plain" || strings.HasPrefix(contentType, "text/plain;"):
		return string(fileBytes), nil
	case contentType == "application/pdf":
		return e.extractPDF(ctx, fileBytes)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, fileBytes []byte) (string, error) {
	tmp, err := os.CreateTemp("", "case-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", domain.ErrExtractionFailed, err)
	}
	defer func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil {
			log.Printf("[EXTRACT] failed to remove temp file %s: %v", tmp.Name(), rmErr)
		}
	}()

	if _, err := tmp.Write(fileBytes); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: write temp file: %v", domain.ErrExtractionFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close temp file: %v", domain.ErrExtractionFailed, err)
	}

	out, err := e.runner.Run(ctx, e.binary, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	return string(out), nil
}
