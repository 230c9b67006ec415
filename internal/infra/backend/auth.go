package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"hotel-portal/internal/pkg/errs"
)

const bearerPrefix = "Bearer "

// Authenticate exchanges credentials for the raw token text. A leading
// "Bearer " is stripped so the cookie only ever holds the token itself.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	const op = "auth.login"
	b, err := json.Marshal(credentialsDTO{Email: email, Password: password})
	if err != nil {
		return "", errs.Wrapf(err, "%s: encode body", op)
	}
	resp, err := c.do(ctx, call{
		op:          op,
		method:      http.MethodPost,
		path:        "/authentication",
		body:        bytes.NewReader(b),
		contentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(resp.body))
	token = strings.Trim(token, `"`)
	return strings.TrimPrefix(token, bearerPrefix), nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) error {
	return c.sendJSON(ctx, "auth.signup", http.MethodPost, "/guest/signup",
		credentialsDTO{Email: email, Password: password}, nil)
}
