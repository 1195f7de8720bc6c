package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// maxBodySize caps how much of a /me response is read.
const maxBodySize = 1 << 20

// Verifier resolves bearer tokens through the user service's /me endpoint.
type Verifier struct {
	meURL      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a user-service verifier. baseURL is the service's API
// root, e.g. http://127.0.0.1:8090/api/v1. httpClient is shared by all
// requests and owned by the caller.
func NewVerifier(baseURL string, httpClient *http.Client, logger *slog.Logger) *Verifier {
	return &Verifier{
		meURL:      strings.TrimRight(baseURL, "/") + "/me",
		httpClient: httpClient,
		log:        logger.With("adapter", "user_service"),
	}
}

// meResponse is the envelope returned by GET /me.
type meResponse struct {
	Data *meUser `json:"data"`
}

type meUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
	IsAdmin  bool   `json:"is_admin"`
}

// Verify returns the user the token belongs to.
// A rejected or malformed answer yields domain.ErrUnauthorized; a failed
// round trip yields domain.ErrServiceUnavailable. Nothing is retried.
func (v *Verifier) Verify(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.meURL, nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("create /me request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.User{}, err
		}
		v.log.ErrorContext(ctx, "user service unreachable", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("user service: %w", domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		v.log.WarnContext(ctx, "user service rejected token", slog.Int("status", resp.StatusCode))
		return domain.User{}, fmt.Errorf("user service status %d: %w", resp.StatusCode, domain.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		v.log.ErrorContext(ctx, "user service read failed", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("user service: %w", domain.ErrServiceUnavailable)
	}

	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		v.log.WarnContext(ctx, "user service returned invalid json")
		return domain.User{}, fmt.Errorf("user service: invalid response: %w", domain.ErrUnauthorized)
	}
	if me.Data == nil || me.Data.ID == 0 {
		v.log.WarnContext(ctx, "user service returned no user")
		return domain.User{}, fmt.Errorf("user service: empty user: %w", domain.ErrUnauthorized)
	}

	return toDomain(*me.Data), nil
}

// toDomain maps unknown user types to other so they never pass the lecturer gate.
func toDomain(u meUser) domain.User {
	userType := domain.UserType(u.UserType)
	if !userType.IsValid() {
		userType = domain.UserTypeOther
	}
	return domain.User{
		ID:       u.ID,
		FullName: u.FullName,
		UserType: userType,
		IsAdmin:  u.IsAdmin,
	}
}
