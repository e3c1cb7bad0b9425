package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// BatchService analyzes every message of a source in turn and writes one report each
type BatchService struct {
	source    core.MessageSource
	extractor core.MessageExtractor
	service   *Service
	writer    core.ReportWriter
	logger    *zap.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(
	source core.MessageSource,
	extractor core.MessageExtractor,
	service *Service,
	writer core.ReportWriter,
	logger *zap.Logger,
) *BatchService {
	return &BatchService{
		source:    source,
		extractor: extractor,
		service:   service,
		writer:    writer,
		logger:    logger,
	}
}

// Run processes the whole batch. A failing message is recorded in its
// result and does not stop the batch; only a source listing failure or
// cancellation between messages returns an error.
func (b *BatchService) Run(ctx context.Context) ([]core.BatchResult, error) {
	paths, err := b.source.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	b.logger.Info("Messages discovered", zap.Int("count", len(paths)))

	results := make([]core.BatchResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, b.ProcessFile(ctx, path))
	}
	return results, nil
}

// ProcessFile extracts, analyzes and reports a single message file
func (b *BatchService) ProcessFile(ctx context.Context, path string) core.BatchResult {
	result := core.BatchResult{Source: path}

	msg, err := b.extractor.Extract(path)
	if err != nil {
		b.logger.Error("Skipping message", zap.String("file", path), zap.Error(err))
		result.Err = err
		return result
	}

	analysis := b.service.Analyze(ctx, msg)
	result.Verdict = &analysis.Verdict

	reportPath, err := b.writer.Write(analysis)
	if err != nil {
		b.logger.Error("Failed to write report", zap.String("file", path), zap.Error(err))
		result.Err = err
		return result
	}
	result.ReportPath = reportPath

	b.logger.Info("Processed message",
		zap.String("file", path),
		zap.String("report", reportPath),
		zap.Int("score", analysis.Verdict.Score),
		zap.String("grade", analysis.Verdict.Grade.String()))

	return result
}
