package ports

import (
	"context"

	"github.com/mikey/eml-analyzer/internal/core"
)

// BatchRunner analyzes a whole input batch
type BatchRunner interface {
	// Run processes every message and returns one result per message
	Run(ctx context.Context) ([]core.BatchResult, error)
}
