package response

import (
	"sort"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserResponse is the public view of a user
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Phone       *string   `json:"phone,omitempty"`
	Showroom    *string   `json:"showroom,omitempty"`
	Roles       []string  `json:"roles"`
	Permissions []string  `json:"permissions"`
}

// NewUserResponse maps a user loaded with roles
func NewUserResponse(u *entity.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}
	permissions := u.GetPermissions()
	sort.Strings(permissions)

	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Phone:       u.Phone,
		Showroom:    u.Showroom,
		Roles:       roles,
		Permissions: permissions,
	}
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// NewTokenResponse builds a bearer token response; expiresIn is the access token lifetime
func NewTokenResponse(u *entity.User, accessToken, refreshToken string, expiresIn time.Duration) TokenResponse {
	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(expiresIn.Seconds()),
		User:         NewUserResponse(u),
	}
}
