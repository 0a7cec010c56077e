package api

import (
	"context"
	"net/http"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register creates an account and returns the new user plus the session
// token the server issued.
func (c *Client) Register(ctx context.Context, email, name, password string) (models.User, string, error) {
	var user models.User
	token, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/api/auth/register",
		body:         registerRequest{Email: email, Name: name, Password: password},
		authEndpoint: true,
	}, &user)
	return user, token, err
}

// Login authenticates and returns the user plus the session token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, string, error) {
	var user models.User
	token, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/api/auth/login",
		body:         loginRequest{Email: email, Password: password},
		authEndpoint: true,
	}, &user)
	return user, token, err
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/logout"}, nil)
	return err
}

// Me returns the currently authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/api/auth/me"}, &user)
	return user, err
}

// ForgotPassword starts the password-reset flow for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/api/auth/password/forgot",
		body:         forgotPasswordRequest{Email: email},
		authEndpoint: true,
	}, nil)
	return err
}

// ResetPassword completes the password-reset flow.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	_, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/api/auth/password/reset",
		body:         resetPasswordRequest{Token: token, Password: password},
		authEndpoint: true,
	}, nil)
	return err
}
