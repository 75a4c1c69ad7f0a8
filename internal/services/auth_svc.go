package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/tokenclaims"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginReq, locale string) (*session.Session, error)
	Logout(ctx context.Context, sess *session.Session) error
	Me(ctx context.Context) (*entities.User, error)
	// ServiceLogin signs a worker's service account in without creating a dashboard session.
	ServiceLogin(ctx context.Context, email, password string) (apiclient.Tokens, error)
}

type authServiceImpl struct {
	client    *apiclient.Client
	sessions  *session.Store
	claims    *tokenclaims.Parser
	validator *validator.Validate
	log       *logrus.Logger
}

func NewAuthService(
	client *apiclient.Client,
	sessions *session.Store,
	claims *tokenclaims.Parser,
	validator *validator.Validate,
	log *logrus.Logger,
) AuthService {
	return &authServiceImpl{
		client:    client,
		sessions:  sessions,
		claims:    claims,
		validator: validator,
		log:       log,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req models.LoginReq, locale string) (*session.Session, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	result, err := s.login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	claims, err := s.claims.Parse(result.AccessToken)
	if err != nil {
		s.log.WithError(err).Warn("Backend issued an unreadable access token")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	role := result.User.Role
	if role == "" {
		role = claims.Role
	}
	if !session.IsDashboardRole(role) {
		s.log.WithFields(logrus.Fields{"email": req.Email, "role": role}).Warn("Login refused for non-dashboard role")
		return nil, apperrors.ErrRoleNotAllowed
	}

	userID := claims.UserIdentifier()
	if result.User.ID > 0 {
		userID = strconv.FormatInt(result.User.ID, 10)
	}
	name := result.User.Name
	if name == "" {
		name = claims.Name
	}
	email := result.User.Email
	if email == "" {
		email = req.Email
	}
	if result.User.Locale != "" {
		locale = result.User.Locale
	}

	sess, err := s.sessions.Create(ctx, &session.Session{
		UserID:       userID,
		Name:         name,
		Email:        email,
		Role:         role,
		Locale:       locale,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternalServerError, err)
	}
	return sess, nil
}

func (s *authServiceImpl) ServiceLogin(ctx context.Context, email, password string) (apiclient.Tokens, error) {
	result, err := s.login(ctx, email, password)
	if err != nil {
		return apiclient.Tokens{}, err
	}
	return apiclient.Tokens{AccessToken: result.AccessToken, RefreshToken: result.RefreshToken}, nil
}

func (s *authServiceImpl) login(ctx context.Context, email, password string) (*entities.LoginResult, error) {
	var result entities.LoginResult
	_, err := s.client.Do(ctx, apiclient.Request{
		Method:    http.MethodPost,
		Path:      s.client.Endpoints().Login,
		Body:      models.LoginReq{Email: email, Password: password},
		Anonymous: true,
	}, &result)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrValidation) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response without access token", apperrors.ErrBackendUnavailable)
	}
	return &result, nil
}

// Logout always ends the local session; the backend call is best effort.
func (s *authServiceImpl) Logout(ctx context.Context, sess *session.Session) error {
	ctx = session.NewContext(ctx, sess)
	if _, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   s.client.Endpoints().Logout,
	}, nil); err != nil {
		s.log.WithField("session_id", sess.ID).WithError(err).Warn("Backend logout failed")
	}

	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternalServerError, err)
	}
	s.log.WithFields(logrus.Fields{"user_id": sess.UserID, "role": sess.Role}).Info("Session ended")
	return nil
}

func (s *authServiceImpl) Me(ctx context.Context) (*entities.User, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrSessionExpired
	}

	var user entities.User
	if _, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   s.client.Endpoints().Me,
	}, &user); err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = sess.Role
	}
	return &user, nil
}
