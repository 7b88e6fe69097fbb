package printing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sis/backend/internal/application/document"
	"go.uber.org/zap"
)

const (
	defaultRenderTimeout = 30 * time.Second

	// A4 paper in inches
	paperWidth  = 8.27
	paperHeight = 11.69
	pageMargin  = 0.4
)

// ChromedpConfig contains configuration for the chromedp renderer
type ChromedpConfig struct {
	// RemoteURL is the URL of a remote Chrome/Chromium instance. If empty,
	// chromedp launches a local browser.
	RemoteURL string
	// RenderTimeout bounds a single render operation
	RenderTimeout time.Duration
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// Logger for debug output
	Logger *zap.Logger
}

// ChromedpRenderer renders the document templates to PDF via the Chrome
// DevTools Protocol.
type ChromedpRenderer struct {
	engine      *TemplateEngine
	timeout     time.Duration
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// Ensure ChromedpRenderer implements document.Renderer
var _ document.Renderer = (*ChromedpRenderer)(nil)

// NewChromedpRenderer creates a new chromedp-based PDF renderer
func NewChromedpRenderer(cfg *ChromedpConfig) (*ChromedpRenderer, error) {
	if cfg == nil {
		cfg = &ChromedpConfig{}
	}

	engine, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}

	timeout := cfg.RenderTimeout
	if timeout == 0 {
		timeout = defaultRenderTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromedpRenderer{
		engine:  engine,
		timeout: timeout,
		logger:  logger,
	}

	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("font-render-hinting", "none"),
		)
		if cfg.NoSandbox {
			opts = append(opts, chromedp.Flag("no-sandbox", true))
		}
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}

	return r, nil
}

// Close releases the browser allocator
func (r *ChromedpRenderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}

// RenderAdmissionLetter renders an admission letter to PDF
func (r *ChromedpRenderer) RenderAdmissionLetter(ctx context.Context, data document.AdmissionLetterData) ([]byte, error) {
	return r.render(ctx, TemplateAdmissionLetter, data)
}

// RenderReceipt renders a payment receipt to PDF
func (r *ChromedpRenderer) RenderReceipt(ctx context.Context, data document.ReceiptData) ([]byte, error) {
	return r.render(ctx, TemplateReceipt, data)
}

// RenderInvoice renders an invoice to PDF
func (r *ChromedpRenderer) RenderInvoice(ctx context.Context, data document.InvoiceData) ([]byte, error) {
	return r.render(ctx, TemplateInvoice, data)
}

// RenderStudentID renders a student ID card to PDF
func (r *ChromedpRenderer) RenderStudentID(ctx context.Context, data document.StudentIDData) ([]byte, error) {
	return r.render(ctx, TemplateStudentID, data)
}

func (r *ChromedpRenderer) render(ctx context.Context, templateName string, data any) ([]byte, error) {
	html, err := r.engine.Render(templateName, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("rendered HTML for %s is empty", templateName)
	}

	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginRight(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("PDF rendering timed out after %v: %w", r.timeout, err)
		}
		r.logger.Error("chromedp rendering failed",
			zap.String("template", templateName),
			zap.Error(err))
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("generated PDF for %s is empty", templateName)
	}

	r.logger.Debug("PDF rendered",
		zap.String("template", templateName),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(started)))
	return pdfData, nil
}
