package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"hotel-portal/internal/domain/auth"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/pkg/jwt"
	"hotel-portal/internal/usecase/notice"
)

//go:generate mockgen -source=session.go -destination=../testutil/mock/usecase/mock_session.go -package=usecasemock

var ErrTokenRejected = errs.New("backend issued an unreadable token")

type SessionGateway interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) error
	MyRooms(ctx context.Context) ([]room.Room, error)
}

type SessionUseCase interface {
	Login(ctx context.Context, creds auth.Credentials) (session.Session, error)
	SignUp(ctx context.Context, su user.SignUp) error
	Logout(ctx context.Context, sess session.Session) session.Session
	// Current rebuilds the session from the credential cookie. It makes no
	// backend call; an unreadable or expired token yields an anonymous session.
	Current(token string) session.Session
	// WithCheckIn looks up whether the caller is checked into a room.
	WithCheckIn(ctx context.Context, sess session.Session) session.Session
}

type sessionUseCaseImpl struct {
	gateway SessionGateway
	decoder *jwt.Decoder
	clock   clock.Clock
	logger  *slog.Logger
}

func NewSessionUseCase(gateway SessionGateway, decoder *jwt.Decoder, clk clock.Clock, logger *slog.Logger) SessionUseCase {
	return &sessionUseCaseImpl{
		gateway: gateway,
		decoder: decoder,
		clock:   clk,
		logger:  logger,
	}
}

func (s *sessionUseCaseImpl) Login(ctx context.Context, creds auth.Credentials) (session.Session, error) {
	token, err := s.gateway.Authenticate(ctx, creds.Email().Value(), creds.Password())
	if err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound) {
			return session.Anonymous(), notice.Override(err, auth.ErrInvalidCredentials.Error())
		}
		return session.Anonymous(), notice.Wrap(err, notice.Default)
	}

	sess := s.Current(token)
	if !sess.IsLoggedIn(s.clock.Now()) {
		return session.Anonymous(), errs.Mark(errs.New("login returned an expired or unreadable token"), ErrTokenRejected)
	}
	return s.WithCheckIn(ctx, sess), nil
}

func (s *sessionUseCaseImpl) SignUp(ctx context.Context, su user.SignUp) error {
	err := s.gateway.SignUp(ctx, su.Email.Value(), su.Password.Value())
	return notice.Wrap(err, notice.Default)
}

func (s *sessionUseCaseImpl) Logout(_ context.Context, sess session.Session) session.Session {
	if sess.Email() != "" {
		s.logger.Info("session ended", slog.String("email", sess.Email()))
	}
	return session.Anonymous()
}

func (s *sessionUseCaseImpl) Current(token string) session.Session {
	if token == "" {
		return session.Anonymous()
	}
	claims, err := s.decoder.Validate(token, s.clock.Now())
	if err != nil {
		return session.Anonymous()
	}
	return session.New(token, claims.Email(), session.RoleFromClaims(claims.Roles), claims.Expiry())
}

func (s *sessionUseCaseImpl) WithCheckIn(ctx context.Context, sess session.Session) session.Session {
	if !sess.IsLoggedIn(s.clock.Now()) {
		return sess
	}
	rooms, err := s.gateway.MyRooms(backend.WithCredential(ctx, sess.Token()))
	if err != nil {
		s.logger.Warn("check-in lookup failed", slog.String("email", sess.Email()), slog.Any("error", err))
		return sess.WithCheckedIn(false)
	}
	return sess.WithCheckedIn(len(rooms) > 0)
}
