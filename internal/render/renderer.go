// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

// Package render composes issued documents as PDF files: an optional
// background template, the certified text fields, the captain's signature
// image, and the QR code carrying the verification URL.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// Background template formats are detected by magic bytes only; the stored
// file name is not trusted.
var (
	pdfMagic  = []byte("%PDF")
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8}
)

// Input is everything one render needs. Template and Signature are raw
// decrypted blobs; either may be empty.
type Input struct {
	// ReferenceNo is printed on the document.
	ReferenceNo string

	// HolderName is the certified resident name.
	HolderName string

	// Body is the certification text. Wrapped to the page width at the
	// configured body position.
	Body string

	// Layout is the document type's stored layout; missing fields take
	// defaults.
	Layout models.LayoutConfig

	// Template is the optional background blob (PDF first page, PNG or
	// JPEG full-bleed).
	Template []byte

	// Signature is the captain's signature image (PNG or JPEG).
	Signature []byte

	// QRContent is the full verification URL encoded into the QR code.
	QRContent string
}

// Output carries the finished PDF.
type Output struct {
	PDF []byte

	// UsedBlankFallback is set when a template blob was supplied but could
	// not be used as a background. The document is still produced on a
	// blank page.
	UsedBlankFallback bool
}

// DocumentRenderer produces the final PDF for an issued document.
type DocumentRenderer interface {
	Render(ctx context.Context, input Input) (Output, error)
}

// PDFRenderer is the gofpdf-backed implementation of [DocumentRenderer].
// Stateless and safe for concurrent use; every call builds its own document.
type PDFRenderer struct {
	logger *logger.Logger
}

// NewPDFRenderer constructs a [PDFRenderer].
func NewPDFRenderer(log *logger.Logger) *PDFRenderer {
	return &PDFRenderer{logger: log}
}

// Render implements [DocumentRenderer]. The page is A4 in points with a
// top-left origin, matching the stored layout coordinates directly.
func (r *PDFRenderer) Render(ctx context.Context, input Input) (Output, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	fellBack := r.drawBackground(pdf, input.Template)
	if fellBack {
		log.Warn().
			Str("func", "PDFRenderer.Render").
			Str("reference_no", input.ReferenceNo).
			Msg("template blob unusable, rendering on blank page")
	}

	layout := resolveLayout(input.Layout)

	namePos := layout[models.LayoutFieldName]
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(namePos.X, namePos.Y, input.HolderName)

	bodyPos := layout[models.LayoutFieldBody]
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(bodyPos.X, bodyPos.Y)
	pdf.MultiCell(pageWidth-2*bodyPos.X, 16, input.Body, "", "L", false)

	if len(input.Signature) > 0 {
		sigPos := layout[models.LayoutFieldSignature]
		if err := drawImage(pdf, "signature", input.Signature, sigPos.X, sigPos.Y, signatureWidth, signatureHeight); err != nil {
			return Output{}, fmt.Errorf("%w: placing signature: %w", ErrRenderFailed, err)
		}
	}

	qrPNG, err := qrcode.Encode(input.QRContent, qrcode.Medium, 256)
	if err != nil {
		return Output{}, fmt.Errorf("%w: encoding qr: %w", ErrRenderFailed, err)
	}
	qrPos := layout[models.LayoutFieldQR]
	if err := drawImage(pdf, "qr", qrPNG, qrPos.X, qrPos.Y, qrSize, qrSize); err != nil {
		return Output{}, fmt.Errorf("%w: placing qr: %w", ErrRenderFailed, err)
	}

	refPos := layout[models.LayoutFieldReference]
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(refPos.X, refPos.Y, "Reference No: "+input.ReferenceNo)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Err(err).
			Str("func", "PDFRenderer.Render").
			Str("reference_no", input.ReferenceNo).
			Msg("failed to produce pdf output")
		return Output{}, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return Output{PDF: buf.Bytes(), UsedBlankFallback: fellBack}, nil
}

// drawBackground paints the template blob full-bleed behind the content.
// Reports true when a blob was present but could not be used.
func (r *PDFRenderer) drawBackground(pdf *gofpdf.Fpdf, template []byte) (fellBack bool) {
	if len(template) == 0 {
		return false
	}

	switch {
	case bytes.HasPrefix(template, pdfMagic):
		return !importPDFTemplate(pdf, template)

	case bytes.HasPrefix(template, pngMagic), bytes.HasPrefix(template, jpegMagic):
		if err := drawImage(pdf, "template", template, 0, 0, pageWidth, pageHeight); err != nil {
			return true
		}
		return false

	default:
		return true
	}
}

// importPDFTemplate places page one of a PDF blob as the background.
// The importer panics on malformed input, so the whole import is fenced
// with a recover; a bad template degrades to a blank page instead of
// killing the render.
func importPDFTemplate(pdf *gofpdf.Fpdf, template []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	var rs io.ReadSeeker = bytes.NewReader(template)
	tpl := gofpdi.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, pageHeight)

	return !pdf.Err()
}

// drawImage registers an image blob under name and places it at the given
// box. Format is detected from the magic bytes.
func drawImage(pdf *gofpdf.Fpdf, name string, blob []byte, x, y, w, h float64) error {
	imageType := ""
	switch {
	case bytes.HasPrefix(blob, pngMagic):
		imageType = "PNG"
	case bytes.HasPrefix(blob, jpegMagic):
		imageType = "JPG"
	default:
		return fmt.Errorf("unsupported image format for %q", name)
	}

	options := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(blob))
	if pdf.Err() {
		return fmt.Errorf("registering image %q: %w", name, pdf.Error())
	}

	pdf.ImageOptions(name, x, y, w, h, false, options, 0, "")
	if pdf.Err() {
		return fmt.Errorf("placing image %q: %w", name, pdf.Error())
	}

	return nil
}
