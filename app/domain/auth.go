package domain

// OtpTypeSignup is the default GoTrue verification type for email signup codes.
const OtpTypeSignup = "signup"

// User represents a provider-managed user record. It is read-only to this
// service; every field originates from the provider's response.
type User struct {
	ID               string                   `json:"id"`
	Email            string                   `json:"email"`
	UserMetadata     map[string]interface{}   `json:"user_metadata,omitempty"`
	CreatedAt        string                   `json:"created_at,omitempty"`
	ConfirmedAt      string                   `json:"confirmed_at,omitempty"`
	EmailConfirmedAt string                   `json:"email_confirmed_at,omitempty"`
	Identities       []map[string]interface{} `json:"identities,omitempty"`
}

// HasEmptyIdentities reports whether the provider returned an identities
// list that is present but empty. GoTrue signals a duplicate signup this
// way while still answering 200.
func (u *User) HasEmptyIdentities() bool {
	return u.Identities != nil && len(u.Identities) == 0
}

// Session represents provider-issued session tokens. Present only after a
// successful OTP verification.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest is the inbound registration payload
type RegisterRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// VerifyOtpRequest is the inbound OTP verification payload
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required,otp_token"`
	Type  string `json:"type" validate:"omitempty,oneof=signup email magiclink recovery"`
}

// ResendOtpRequest is the inbound OTP resend payload
type ResendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResult is the outcome of a registration or verification, as returned
// to the caller. Session stays nil until the OTP has been verified.
type AuthResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Message string   `json:"message"`
}
