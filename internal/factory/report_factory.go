package factory

import (
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/adapters/report"
	"github.com/mikey/eml-analyzer/internal/config"
)

// ReportFactory creates the report writer
type ReportFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewReportFactory creates a new report factory
func NewReportFactory(cfg *config.Config, logger *zap.Logger) *ReportFactory {
	return &ReportFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReportWriter creates a writer into the configured output directory
func (f *ReportFactory) CreateReportWriter() *report.FileWriter {
	renderer := report.NewRenderer(f.cfg.GetAnalysis().HomeCountry)
	return report.NewFileWriter(f.cfg.GetString("output.dir"), renderer, f.logger)
}
