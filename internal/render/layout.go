package render

import "github.com/ncastillo/eserbisyo/models"

// A4 page dimensions in PDF points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// Fixed element dimensions in points.
const (
	signatureWidth  = 150
	signatureHeight = 70
	qrSize          = 90
)

// defaultLayout positions every drawable field when the document type's
// stored layout omits it. Coordinates are top-left origin.
var defaultLayout = models.LayoutConfig{
	models.LayoutFieldName:      {X: 100, Y: 200},
	models.LayoutFieldBody:      {X: 70, Y: 300},
	models.LayoutFieldSignature: {X: 380, Y: 600},
	models.LayoutFieldQR:        {X: 50, Y: 700},
	models.LayoutFieldReference: {X: 50, Y: 800},
}

// resolveLayout merges the configured layout over the defaults. Unknown
// fields in the stored config are dropped; known fields keep their
// configured position even when it places them off-page, the catalogue is
// trusted.
func resolveLayout(configured models.LayoutConfig) models.LayoutConfig {
	resolved := make(models.LayoutConfig, len(defaultLayout))

	for field, position := range defaultLayout {
		resolved[field] = position
	}
	for field, position := range configured {
		if _, known := defaultLayout[field]; known {
			resolved[field] = position
		}
	}

	return resolved
}
