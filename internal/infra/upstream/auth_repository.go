package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/domain/repository"
)

// authRepository implements repository.AuthRepository against the upstream
// auth and user endpoints.
type authRepository struct {
	client *Client
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{
		client: client,
	}
}

// Login exchanges credentials for a bearer token. The upstream is sloppy
// about where the token lands, so four locations are tried in order:
// the Authorization response header, the body token field, data.token,
// and finally the body being a bare JSON string.
func (repo *authRepository) Login(ctx context.Context, username, password string) (string, error) {
	const action = "login"

	payload := map[string]any{
		"username": username,
		"password": password,
	}

	resp, raw, err := repo.client.do(ctx, http.MethodPost, "/auth", "", false, payload)
	if err != nil {
		return "", transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fallback(bodyMessage(raw), "Login gagal. Periksa username dan password Anda.")

		return "", &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if token := extractToken(resp, raw); token != "" {
		return token, nil
	}

	return "", repository.ErrTokenMissing
}

func extractToken(resp *http.Response, raw []byte) string {
	if header := resp.Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	var body struct {
		Token string `json:"token"`
		Data  struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Token != "" {
			return body.Token
		}
		if body.Data.Token != "" {
			return body.Data.Token
		}
	}

	var bare string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	return ""
}

// Register creates a new upstream account.
func (repo *authRepository) Register(ctx context.Context, input repository.RegisterInput) error {
	const action = "registrasi"

	resp, raw, err := repo.client.do(ctx, http.MethodPost, "/auth/register", "", false, input)
	if err != nil {
		return transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fallback(bodyMessage(raw), "Registrasi gagal. Silakan coba lagi.")

		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	return nil
}

// FetchProfile retrieves the user profile behind the versioned users path.
func (repo *authRepository) FetchProfile(ctx context.Context, token string, userID int) (*entity.User, error) {
	const action = "mengambil profil"
	path := "/" + repo.client.version + "/users/" + strconv.Itoa(userID)

	resp, raw, err := repo.client.do(ctx, http.MethodGet, path, token, false, nil)
	if err != nil {
		return nil, transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw, action)
	}

	// The profile arrives either wrapped in data or as the bare object.
	var wrapped struct {
		Data *entity.User `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, ErrUnexpectedFormat
	}

	return &user, nil
}
