package model

// Request payloads mirror the backend DTOs. Update payloads use pointer
// fields with omitempty so unset fields are left out of the JSON body and
// the server leaves them unchanged.

type CreateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type CreateClaimRequest struct {
	UserID        int64         `json:"userId"`
	Location      string        `json:"location"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Status        ClaimStatus   `json:"status"`
	Hash          string        `json:"hash"`
	Severity      SeverityLevel `json:"severity"`
	Description   string        `json:"description"`
	DetectionType DetectionType `json:"detectionType"`
}

type UpdateClaimRequest struct {
	Location      *string        `json:"location,omitempty"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	Status        *ClaimStatus   `json:"status,omitempty"`
	Hash          *string        `json:"hash,omitempty"`
	Severity      *SeverityLevel `json:"severity,omitempty"`
	Description   *string        `json:"description,omitempty"`
	DetectionType *DetectionType `json:"detectionType,omitempty"`
}

type CreateImageRequest struct {
	ClaimID   int64  `json:"claim_id"`
	URL       string `json:"url"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

type UpdateImageRequest struct {
	URL       *string `json:"url,omitempty"`
	Hash      *string `json:"hash,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResponse is the payload returned by the backend login endpoint.
type LoginResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type,omitempty"`      // "Bearer"
	ExpiresIn int64  `json:"expiresIn,omitempty"` // seconds
	User      User   `json:"user"`
}
