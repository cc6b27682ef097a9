package model

import "time"

// ClaimStatus is the triage state of a claim.
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "PENDING"
	StatusVerified ClaimStatus = "VERIFIED"
	StatusRejected ClaimStatus = "REJECTED"
	StatusResolved ClaimStatus = "RESOLVED"
)

// SeverityLevel is the assessed severity of a claim.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "LOW"
	SeverityMedium   SeverityLevel = "MEDIUM"
	SeverityHigh     SeverityLevel = "HIGH"
	SeverityCritical SeverityLevel = "CRITICAL"
)

// DetectionType records how a claim was detected.
type DetectionType string

const (
	DetectionAutomatic DetectionType = "AUTOMATIC"
	DetectionManual    DetectionType = "MANUAL"
)

// User is a backend-owned account. Instances held here are transient
// copies returned from API calls; the backend is the source of truth.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Image is an evidence image attached to a claim. The hash is opaque to
// this client and never computed locally.
type Image struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Claim is an insurance claim with its owning user and evidence images
// embedded, matching the backend response shape.
type Claim struct {
	ID               int64         `json:"id"`
	User             User          `json:"user"`
	Location         string        `json:"location"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Status           ClaimStatus   `json:"status"`
	Hash             string        `json:"hash"`
	Severity         SeverityLevel `json:"severity"`
	Description      string        `json:"description"`
	DetectionType    DetectionType `json:"detectionType"`
	ConfirmationTime *time.Time    `json:"confirmationTime,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	Images           []Image       `json:"images"`
}

// SessionRole is the locally held dashboard role, distinct from any
// backend-side authority.
type SessionRole string

const (
	RoleAdmin SessionRole = "admin"
	RoleStaff SessionRole = "staff"
)

// SessionUser is the locally held authenticated identity. It has no
// server-verified relation to User.
type SessionUser struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  SessionRole `json:"role"`
	Name  string      `json:"name"`
}
