package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleetgate/config"
	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/domain/repository"
	"fleetgate/internal/domain/service"
	"fleetgate/internal/errors"
	"fleetgate/internal/usecase"
)

type sessionService struct {
	authRepo     repository.AuthRepository
	sessionRepo  repository.SessionRepository
	tokenDecoder service.TokenDecoder
	cfg          *config.Config
	logger       *slog.Logger
}

// NewSessionService creates the session usecase: upstream authentication
// plus the server-side session store.
func NewSessionService(
	authRepo repository.AuthRepository,
	sessionRepo repository.SessionRepository,
	tokenDecoder service.TokenDecoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authRepo:     authRepo,
		sessionRepo:  sessionRepo,
		tokenDecoder: tokenDecoder,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError("Username dan password harus diisi.")
	}

	token, err := s.authRepo.Login(ctx, username, input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.tokenDecoder.DecodeClaims(token)
	if err != nil {
		// the token still authenticates upstream calls even when its
		// claims cannot be read
		s.logger.Warn("decoding token claims failed", slog.Any("error", err))
		user = &entity.User{Username: username}
	}
	if user.Username == "" {
		user.Username = username
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		Username:  user.Username,
		Token:     token,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Session.TTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "persisting session")
	}

	return session, nil
}

func (s *sessionService) Authenticate(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionExpired
		}
		return nil, err
	}

	if session.Expired(time.Now()) || s.tokenDecoder.IsExpired(session.Token) {
		if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("purging expired session failed", slog.Any("error", err))
		}
		return nil, domainerrors.ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	err := s.sessionRepo.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return err
	}
	return nil
}

func (s *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return domainerrors.NewValidationError("Username dan password harus diisi.")
	}
	if input.Password2 != "" && input.Password != input.Password2 {
		return domainerrors.NewValidationError("Password tidak sama.")
	}
	return s.authRepo.Register(ctx, repository.RegisterInput{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Realname: strings.TrimSpace(input.Realname),
	})
}

func (s *sessionService) Profile(ctx context.Context, session *entity.Session) (*entity.User, error) {
	return s.authRepo.FetchProfile(ctx, session.Token, session.User.ID)
}
