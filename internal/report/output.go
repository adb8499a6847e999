package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OutputPath computes the deterministic output location:
// {output_dir}/{prefix}_{code}_{YYYY-MM-DD}.pdf, with spaces in the code
// replaced by underscores. An empty code falls back to the prefix.
func OutputPath(layout Layout, code string, now time.Time) string {
	codePart := strings.ReplaceAll(strings.TrimSpace(code), " ", "_")
	if codePart == "" {
		codePart = layout.OutputPrefix
	}
	name := fmt.Sprintf("%s_%s_%s.pdf", layout.OutputPrefix, codePart, now.Format("2006-01-02"))
	return filepath.Join(layout.OutputDir, name)
}

// Save serializes the finished document. The output directory is created if
// absent; nothing is written when composition has already failed, so a
// fatal render error never leaves a partial file behind.
func (c *Canvas) Save(code string) (string, error) {
	if err := c.pdf.Error(); err != nil {
		return "", fmt.Errorf("failed to render document: %v", err)
	}
	path := OutputPath(c.layout, code, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %v", err)
	}
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF: %v", err)
	}
	return path, nil
}
