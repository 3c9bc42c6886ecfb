package api

import (
	"context"
	"net/http"
	"net/url"

	"pulse/core"
)

// TokenResponse is the login endpoint's reply.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The backend expects a
// form-encoded body here, unlike every other endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out TokenResponse
	return out, c.postForm(ctx, "/api/auth/login", form, &out)
}

// Register creates a new account and returns its profile. fullName may be
// empty; it is sent as null to match the backend's optional field.
func (c *Client) Register(ctx context.Context, email, username, password, fullName string) (core.User, error) {
	in := struct {
		Email    string  `json:"email"`
		Username string  `json:"username"`
		Password string  `json:"password"`
		FullName *string `json:"full_name"`
	}{Email: email, Username: username, Password: password}
	if fullName != "" {
		in.FullName = &fullName
	}

	var out core.User
	return out, c.postJSON(ctx, "/api/auth/register", in, &out)
}

// CurrentUser fetches the profile for the given bearer token.
func (c *Client) CurrentUser(ctx context.Context, token string) (core.User, error) {
	var out core.User
	return out, c.do(ctx, http.MethodGet, "/api/auth/me", nil, "", token, &out)
}
