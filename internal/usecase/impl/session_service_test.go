package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/domain/repository"
	mockRepo "fleetgate/internal/mocks/repository"
	mockService "fleetgate/internal/mocks/service"
	"fleetgate/internal/usecase"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	authRepo     *mockRepo.MockAuthRepository
	sessionRepo  *mockRepo.MockSessionRepository
	tokenDecoder *mockService.MockTokenDecoder
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	authRepo := mockRepo.NewMockAuthRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenDecoder := mockService.NewMockTokenDecoder(t)
	service := NewSessionService(authRepo, sessionRepo, tokenDecoder, newTestConfig(), newDiscardLogger())

	return sessionServiceFixtures{
		service:      service,
		authRepo:     authRepo,
		sessionRepo:  sessionRepo,
		tokenDecoder: tokenDecoder,
	}
}

func TestSessionService_Login(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		Login(ctx, "budi", "secret").
		Return("token-abc", nil)
	fx.tokenDecoder.EXPECT().
		DecodeClaims("token-abc").
		Return(&entity.User{ID: 42, Username: "budi", Realname: "Budi"}, nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Username: " budi ", Password: "secret"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "budi", session.Username)
	assert.Equal(t, "token-abc", session.Token)
	assert.Equal(t, 42, session.User.ID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestSessionService_Login_MissingCredentials(t *testing.T) {
	fx := createTestSessionService(t)

	for _, input := range []*usecase.LoginInput{
		{},
		{Username: "budi"},
		{Password: "secret"},
		{Username: "   ", Password: "secret"},
	} {
		_, err := fx.service.Login(context.Background(), input)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Username dan password harus diisi.", appErr.Details())
	}
}

func TestSessionService_Login_UnreadableClaimsStillLogsIn(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		Login(ctx, "budi", "secret").
		Return("opaque-token", nil)
	fx.tokenDecoder.EXPECT().
		DecodeClaims("opaque-token").
		Return(nil, domainerrors.ErrUpstreamFormat)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "budi", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "budi", session.Username)
}

func TestSessionService_Login_BadCredentials(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		Login(ctx, "budi", "wrong").
		Return("", domainerrors.ErrLoginFailed)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "budi", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
}

func TestSessionService_Authenticate(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()
	session := &entity.Session{
		ID:        id,
		Username:  "budi",
		Token:     "token-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(session, nil)
	fx.tokenDecoder.EXPECT().
		IsExpired("token-abc").
		Return(false)

	got, err := fx.service.Authenticate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionService_Authenticate_Unknown(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.Authenticate(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_Authenticate_ExpiredSessionIsPurged(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, ExpiresAt: time.Now().Add(-time.Minute)}, nil)
	fx.sessionRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	_, err := fx.service.Authenticate(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_Authenticate_ExpiredTokenIsPurged(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, Token: "stale", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.tokenDecoder.EXPECT().
		IsExpired("stale").
		Return(true)
	fx.sessionRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	_, err := fx.service.Authenticate(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	require.NoError(t, fx.service.Logout(ctx, id))
}

func TestSessionService_Logout_UnknownSessionIsNotAnError(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrSessionNotFound)

	require.NoError(t, fx.service.Logout(ctx, id))
}

func TestSessionService_Register(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		Register(ctx, repository.RegisterInput{
			Username: "budi",
			Email:    "budi@example.com",
			Password: "secret",
			Realname: "Budi",
		}).
		Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: " budi ",
		Email:    " budi@example.com ",
		Password: "secret",
		Realname: " Budi ",
	})
	require.NoError(t, err)
}

func TestSessionService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:  "budi",
		Password:  "secret",
		Password2: "different",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Password tidak sama.", appErr.Details())
}

func TestSessionService_Profile(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	session := &entity.Session{Token: "token-abc", User: entity.User{ID: 42}}

	fx.authRepo.EXPECT().
		FetchProfile(ctx, "token-abc", 42).
		Return(&entity.User{ID: 42, Realname: "Budi"}, nil)

	user, err := fx.service.Profile(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Realname)
}
