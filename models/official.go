package models

import "time"

// Official roles recognised by the role guard. Values mirror the positions
// of a barangay office.
const (
	RoleCaptain    = "Captain"
	RoleSecretary  = "Secretary"
	RoleTreasurer  = "Treasurer"
	RoleSuperAdmin = "Super Admin"
)

// Official is a staff account authorised to process requests.
// PasswordHash must never leave trusted boundaries.
type Official struct {
	// OfficialID is the internal unique identifier.
	OfficialID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the official's password.
	PasswordHash string `json:"-"`

	// FullName is the display name.
	FullName string `json:"full_name"`

	// Role controls which engine operations the official may invoke.
	Role string `json:"role"`

	// Position is the official's title, shown on rendered documents.
	Position string `json:"position"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Official model.
func (o Official) TableName() string {
	return "officials"
}

// Resident is the owner of document requests. ContactNo is stored
// field-encrypted at rest.
type Resident struct {
	// ResidentID is the internal unique identifier.
	ResidentID int64 `json:"-"`

	// FirstName and LastName compose the certified name on documents.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// AddressStreet is the street address certified on documents.
	AddressStreet string `json:"address_street"`

	// ContactNo is the resident's contact number. Persisted in the
	// field-encrypted "iv:ciphertext" form; plaintext only in memory.
	ContactNo string `json:"contact_no,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Resident model.
func (r Resident) TableName() string {
	return "residents"
}

// DigitalSignature references an official's signature image blob in the
// vault. The renderer uses the currently active one.
type DigitalSignature struct {
	SignatureID int64     `json:"signature_id"`
	OfficialID  int64     `json:"official_id"`
	File        string    `json:"-"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DigitalSignature model.
func (d DigitalSignature) TableName() string {
	return "digital_signatures"
}
