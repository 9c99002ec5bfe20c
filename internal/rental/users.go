package rental

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/carhive/storefront/internal/models"
)

// UploadLicenceImage forwards a licence image to the rental API as a
// multipart upload and returns the refreshed user record.
func (c *Client) UploadLicenceImage(ctx context.Context, token string, userID int64, filename string, file io.Reader) (models.User, error) {
	path := fmt.Sprintf("/users/%d/license-image", userID)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return models.User{}, &TransportError{Op: "encode " + path, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.User{}, &TransportError{Op: "encode " + path, Err: err}
	}
	if err := writer.Close(); err != nil {
		return models.User{}, &TransportError{Op: "encode " + path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return models.User{}, &TransportError{Op: "build " + path, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var user models.User
	if err := c.send(req, path, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
