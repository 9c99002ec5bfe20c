package rental

import (
	"context"
	"net/http"

	"github.com/carhive/storefront/internal/models"
)

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &result)
	return result, err
}

type RegisterRequest struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Password       string      `json:"password"`
	Role           models.Role `json:"role"`
	DrivingLicence string      `json:"drivingLicence,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &user)
	return user, err
}
