package supabase

import "auth-api/app/domain"

// Wire formats for the GoTrue endpoints this service calls. Field names
// follow the provider's JSON contract, not ours.

type signupRequest struct {
	Email    string                 `json:"email"`
	Password string                 `json:"password"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

type otpRequest struct {
	Email      string `json:"email"`
	CreateUser bool   `json:"create_user"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
	Type  string `json:"type"`
}

type userPayload struct {
	ID               string                   `json:"id"`
	Email            string                   `json:"email"`
	UserMetadata     map[string]interface{}   `json:"user_metadata"`
	CreatedAt        string                   `json:"created_at"`
	ConfirmedAt      string                   `json:"confirmed_at"`
	EmailConfirmedAt string                   `json:"email_confirmed_at"`
	Identities       []map[string]interface{} `json:"identities"`
}

type sessionPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	User    *userPayload    `json:"user"`
	Session *sessionPayload `json:"session"`
}

func (p *userPayload) toDomain() *domain.User {
	if p == nil {
		return nil
	}
	return &domain.User{
		ID:               p.ID,
		Email:            p.Email,
		UserMetadata:     p.UserMetadata,
		CreatedAt:        p.CreatedAt,
		ConfirmedAt:      p.ConfirmedAt,
		EmailConfirmedAt: p.EmailConfirmedAt,
		Identities:       p.Identities,
	}
}

func (p *sessionPayload) toDomain() *domain.Session {
	if p == nil {
		return nil
	}
	return &domain.Session{
		AccessToken:  p.AccessToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
		RefreshToken: p.RefreshToken,
	}
}
