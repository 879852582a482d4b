package export

import (
	"context"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// pdfEpoch pins the document dates so identical users render identical bytes.
var pdfEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PDFExporter renders a user as a one-page A4 document.
type PDFExporter struct {
	fileExporter
	compress bool
}

// NewPDFExporter creates a PDF exporter writing to target.
func NewPDFExporter(target ports.ExportTarget, opts ...FileOption) *PDFExporter {
	e := &PDFExporter{compress: true}
	e.fileExporter = newFileExporter(FormatPDF, "pdf", target, e.renderPDF, opts)
	return e
}

// Export writes user to a new PDF file.
func (e *PDFExporter) Export(ctx context.Context, user domain.User) error {
	return e.export(ctx, user)
}

func (e *PDFExporter) renderPDF(w io.Writer, user domain.User) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetTitle("User export", false)
	pdf.SetCreator("hexport", false)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "User export", "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Name", user.Name},
		{"Email", user.Email},
		{"Date of birth", user.BirthDate()},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

var _ ports.UserExporter = (*PDFExporter)(nil)
