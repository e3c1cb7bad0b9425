package eml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/jhillyerd/enmime"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/heuristics"
	"github.com/mikey/eml-analyzer/internal/utils"
)

// Extractor reads .eml files into the analysis model
type Extractor struct {
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(textProcessor *utils.TextProcessor, logger *zap.Logger) *Extractor {
	return &Extractor{
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// Extract parses the message stored at path
func (e *Extractor) Extract(path string) (*core.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrExtraction, err)
	}
	defer f.Close()

	msg, err := e.Read(f)
	if err != nil {
		return nil, err
	}
	msg.Source = path
	return msg, nil
}

// Read parses a message from r
func (e *Extractor) Read(r io.Reader) (*core.Message, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrExtraction, err)
	}

	for _, perr := range env.Errors {
		e.logger.Debug("MIME parse warning", zap.String("warning", perr.Error()))
	}

	return &core.Message{
		Header:      headerInfo(env),
		Body:        e.body(env),
		Attachments: attachments(env.Root),
	}, nil
}

func headerInfo(env *enmime.Envelope) core.HeaderInfo {
	return core.HeaderInfo{
		From:         optionalHeader(env, "From"),
		To:           optionalHeader(env, "To"),
		ReplyTo:      optionalHeader(env, "Reply-To"),
		Subject:      optionalHeader(env, "Subject"),
		Date:         optionalHeader(env, "Date"),
		ReceivedHops: env.GetHeaderValues("Received"),
	}
}

func optionalHeader(env *enmime.Envelope, name string) core.OptionalString {
	values := env.GetHeaderValues(name)
	if len(values) == 0 {
		return core.None()
	}
	return core.Some(values[0])
}

// body joins the text/plain parts of the message. When there are none the
// HTML parts are converted to text instead. Attachments are never read.
func (e *Extractor) body(env *enmime.Envelope) string {
	var plain, html []string
	walkParts(env.Root, func(p *enmime.Part) {
		if isAttachment(p) {
			return
		}
		switch strings.ToLower(p.ContentType) {
		case "text/plain":
			plain = append(plain, string(p.Content))
		case "text/html":
			html = append(html, string(p.Content))
		}
	})

	switch {
	case len(plain) > 0:
		return e.textProcessor.ProcessText(strings.Join(plain, "\n"))
	case len(html) > 0:
		joined := strings.Join(html, "\n")
		text, err := html2text.FromString(joined, html2text.Options{})
		if err != nil {
			e.logger.Debug("HTML to text conversion failed, using raw HTML", zap.Error(err))
			text = joined
		}
		return e.textProcessor.ProcessText(text)
	default:
		return e.textProcessor.ProcessText(env.Text)
	}
}

// attachments returns every attachment part that carries a filename
func attachments(root *enmime.Part) []core.AttachmentInfo {
	var found []core.AttachmentInfo
	walkParts(root, func(p *enmime.Part) {
		if !isAttachment(p) || p.FileName == "" {
			return
		}
		found = append(found, core.AttachmentInfo{
			Filename:  p.FileName,
			Extension: heuristics.FileExtension(p.FileName),
			MIME:      strings.ToLower(p.ContentType),
			SizeBytes: int64(len(p.Content)),
		})
	})
	return found
}

func isAttachment(p *enmime.Part) bool {
	return strings.EqualFold(p.Disposition, "attachment")
}

// walkParts visits p and its descendants depth first, in document order
func walkParts(p *enmime.Part, visit func(*enmime.Part)) {
	for ; p != nil; p = p.NextSibling {
		visit(p)
		walkParts(p.FirstChild, visit)
	}
}
