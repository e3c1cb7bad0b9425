package analyzer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

type fakeSource struct {
	paths []string
	err   error
}

func (f fakeSource) List() ([]string, error) { return f.paths, f.err }

type fakeExtractor struct{}

func (fakeExtractor) Extract(path string) (*core.Message, error) {
	if path == "bad.eml" {
		return nil, core.ErrExtraction
	}
	return &core.Message{Source: path, Body: "act now"}, nil
}

type fakeWriter struct {
	written []string
}

func (f *fakeWriter) Write(a *core.Analysis) (string, error) {
	f.written = append(f.written, a.Source)
	return "reports/" + a.Source + "_report.txt", nil
}

func newTestBatch(src core.MessageSource, writer core.ReportWriter) *BatchService {
	return NewBatchService(src, fakeExtractor{}, newTestService(nil), writer, zap.NewNop())
}

func TestBatchRunContinuesAfterFailure(t *testing.T) {
	writer := &fakeWriter{}
	batch := newTestBatch(fakeSource{paths: []string{"a.eml", "bad.eml", "c.eml"}}, writer)

	results, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !errors.Is(results[1].Err, core.ErrExtraction) || results[1].Verdict != nil {
		t.Errorf("expected extraction failure for bad.eml, got %+v", results[1])
	}
	if results[2].Err != nil || results[2].Verdict == nil || results[2].Verdict.Score != 2 {
		t.Errorf("unexpected result for c.eml %+v", results[2])
	}
	if len(writer.written) != 2 {
		t.Errorf("expected 2 reports, got %v", writer.written)
	}
}

func TestBatchRunSourceError(t *testing.T) {
	listErr := errors.New("missing")
	batch := newTestBatch(fakeSource{err: listErr}, &fakeWriter{})

	if _, err := batch.Run(context.Background()); !errors.Is(err, listErr) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestBatchRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := newTestBatch(fakeSource{paths: []string{"a.eml"}}, &fakeWriter{})
	results, err := batch.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
