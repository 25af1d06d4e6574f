package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jaurre/social-savvy-ai/internal/pipeline"
)

const (
	pageMargin = 20.0
	qrSize     = 256 // pixels in the embedded PNG
	qrWidthMM  = 45.0
)

// Exporter writes printable one-page briefs for generated posts. The brief
// carries the full copy, the hashtags, and a QR code pointing at the editor
// deep link so a designer can pick the image up on another device.
type Exporter struct {
	OutputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{OutputDir: outputDir}
}

// ExportPost renders the post as a PDF and returns the file path.
func (e *Exporter) ExportPost(post pipeline.GeneratedPost) (string, error) {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Header: network and objective
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(120, 120, 120)
	header := fmt.Sprintf("%s  ·  %s", strings.ToUpper(string(post.Network)), strings.ToUpper(string(post.Objective)))
	pdf.CellFormat(contentWidth, 6, tr(header), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 30, 30)
	pdf.MultiCell(contentWidth, 8, tr(post.Title), "", "L", false)
	pdf.Ln(2)

	// Body paragraphs, with the closing call to action in bold
	paragraphs := copyParagraphs(post)
	for i, paragraph := range paragraphs {
		if i == len(paragraphs)-1 && len(paragraphs) > 1 {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(30, 30, 30)
		} else {
			pdf.SetFont("Helvetica", "", 12)
			pdf.SetTextColor(60, 60, 60)
		}
		pdf.MultiCell(contentWidth, 6, tr(paragraph), "", "L", false)
		pdf.Ln(2)
	}

	// Hashtags
	if len(post.Hashtags) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 180)
		pdf.MultiCell(contentWidth, 5, tr(strings.Join(post.Hashtags, " ")), "", "L", false)
		pdf.Ln(4)
	}

	// Editing note when the image needs manual work
	if post.RequiresEditing {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(180, 80, 80)
		pdf.MultiCell(contentWidth, 5, tr("La imagen de este post es provisional y debe editarse antes de publicar."), "", "L", false)
		pdf.Ln(2)
	}

	// QR code linking to the editor
	if post.EditorDeepLink != "" {
		if err := e.drawEditorQR(pdf, tr, post.EditorDeepLink); err != nil {
			return "", err
		}
	}

	pdfPath := filepath.Join(e.OutputDir, fmt.Sprintf("%s.pdf", post.ID))
	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	return pdfPath, nil
}

// copyParagraphs returns the post copy without the title and hashtag line,
// which the brief renders separately.
func copyParagraphs(post pipeline.GeneratedPost) []string {
	var out []string
	for _, section := range strings.Split(post.FullText, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" || section == post.Title || strings.HasPrefix(section, "#") {
			continue
		}
		out = append(out, section)
	}
	return out
}

func (e *Exporter) drawEditorQR(pdf *gofpdf.Fpdf, tr func(string) string, link string) error {
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("editor-qr", opts, bytes.NewReader(qrPNG))

	pageWidth, pageHeight := pdf.GetPageSize()
	x := pageWidth - pageMargin - qrWidthMM
	y := pageHeight - pageMargin - qrWidthMM - 8
	pdf.ImageOptions("editor-qr", x, y, qrWidthMM, qrWidthMM, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(x, y+qrWidthMM+1)
	pdf.CellFormat(qrWidthMM, 4, tr("Escanea para editar la imagen"), "", 0, "C", false, 0, "")

	return nil
}
