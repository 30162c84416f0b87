// Package pdftext extracts plain text from candidate documents. PDF files go
// through the pure-Go reader first and fall back to the poppler pdftotext
// binary, which copes better with exotic layouts.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// MinTextLength is the minimum extracted length considered a successful
	// extraction. Shorter output usually means a scanned or image-only PDF.
	MinTextLength = 50
	// MaxFileSize caps input documents at 20 MiB.
	MaxFileSize = 20 << 20

	pdfMagic = "%PDF-"
)

// ErrTextTooShort is returned when extraction yields too little text to be
// usable.
var ErrTextTooShort = errors.New("extracted text is too short")

// Extract reads the document at path and returns its plain text. Supported
// extensions are .pdf and .txt.
func Extract(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("document %s exceeds the %d byte limit", path, int64(MaxFileSize))
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return extractPDF(path)
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
}

// Supported reports whether Extract handles the file's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

func extractPDF(path string) (string, error) {
	if err := checkPDFHeader(path); err != nil {
		return "", err
	}

	text, nativeErr := extractNative(path)
	if nativeErr == nil && len(strings.TrimSpace(text)) >= MinTextLength {
		return text, nil
	}

	text, popplerErr := extractPoppler(path)
	if popplerErr == nil && len(strings.TrimSpace(text)) >= MinTextLength {
		return text, nil
	}

	if nativeErr != nil && popplerErr != nil {
		return "", fmt.Errorf("pdf extraction failed for %s: %w (pdftotext fallback: %v)", path, nativeErr, popplerErr)
	}
	return "", fmt.Errorf("%w for %s (likely a scanned or image-only pdf)", ErrTextTooShort, path)
}

func checkPDFHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := f.Read(header); err != nil {
		return fmt.Errorf("read pdf header: %w", err)
	}
	if string(header) != pdfMagic {
		return fmt.Errorf("%s is not a pdf document", path)
	}
	return nil
}

func extractNative(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("buffer pdf text: %w", err)
	}

	return buf.String(), nil
}

func extractPoppler(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(output), nil
}
