package rental

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carhive/storefront/internal/models"
)

// PendingAdmins lists admin registrations waiting for approval.
func (c *Client) PendingAdmins(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/admin/pending-admins", token, nil, &users)
	return users, err
}

// ApproveAdmin activates a pending admin account. The grant is
// one-way; there is no corresponding revoke call.
func (c *Client) ApproveAdmin(ctx context.Context, token string, adminID int64) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/approve-admin/%d", adminID), token, nil, &user)
	return user, err
}
