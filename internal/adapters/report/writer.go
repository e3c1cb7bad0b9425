package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// FileWriter renders reports into <dir>/<basename>_report.txt
type FileWriter struct {
	dir      string
	renderer *Renderer
	logger   *zap.Logger
}

// NewFileWriter creates a new report writer
func NewFileWriter(dir string, renderer *Renderer, logger *zap.Logger) *FileWriter {
	return &FileWriter{
		dir:      dir,
		renderer: renderer,
		logger:   logger,
	}
}

// ReportPath returns the report location for a message file
func (w *FileWriter) ReportPath(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(w.dir, base+"_report.txt")
}

// Write implements core.ReportWriter
func (w *FileWriter) Write(analysis *core.Analysis) (string, error) {
	text, err := w.renderer.Render(analysis)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := w.ReportPath(analysis.Source)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	w.logger.Debug("Report written", zap.String("path", path), zap.String("analysis_id", analysis.ID))
	return path, nil
}
