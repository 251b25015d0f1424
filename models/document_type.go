// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LayoutField names a drawable content field of a rendered document.
// The set is closed: unknown names in a stored layout are ignored and every
// known field has a default position the renderer falls back to.
type LayoutField string

const (
	LayoutFieldName      LayoutField = "name"
	LayoutFieldBody      LayoutField = "body"
	LayoutFieldSignature LayoutField = "signature"
	LayoutFieldQR        LayoutField = "qr"
	LayoutFieldReference LayoutField = "reference"
)

// Position is a coordinate pair in PDF points, measured from the top-left
// corner of the page.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig maps content fields to their configured positions. It is
// persisted as a JSON column; fields absent from the map take renderer
// defaults.
type LayoutConfig map[LayoutField]Position

// Value implements [driver.Valuer] so a LayoutConfig can be bound directly
// as a query argument.
func (l LayoutConfig) Value() (driver.Value, error) {
	if l == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l)
}

// Scan implements [sql.Scanner] for reading the JSON layout column.
func (l *LayoutConfig) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = LayoutConfig{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported layout column type %T", src)
	}
}

// StringList is a JSON-persisted list of strings, used for the
// required-attachment list of a document type.
type StringList []string

// Value implements [driver.Valuer].
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements [sql.Scanner].
func (s *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
}

// DocumentType is the template/config entity for one issuable document kind.
type DocumentType struct {
	// DocumentTypeID is the internal unique identifier.
	DocumentTypeID int64 `json:"document_type_id"`

	// Name is the display name, e.g. "Barangay Clearance".
	Name string `json:"name"`

	// BaseFee is the standard fee in pesos.
	BaseFee float64 `json:"base_fee"`

	// Requirements lists the attachments a resident must supply.
	Requirements StringList `json:"requirements"`

	// Layout positions the rendered content fields.
	Layout LayoutConfig `json:"layout"`

	// TemplateFile is the vault filename of the optional background
	// template blob (PDF or raster image).
	TemplateFile *string `json:"-"`

	// Available controls whether residents may request this type.
	Available bool `json:"available"`
}

// TableName returns the name of the database table
// associated with the DocumentType model.
func (d DocumentType) TableName() string {
	return "document_types"
}
