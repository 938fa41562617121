package services

import (
	"context"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/internal/auth"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates admin users and issues session tokens.
type AuthService struct {
	admins store.AdminUserStore
	issuer *auth.TokenIssuer
}

func NewAuthService(admins store.AdminUserStore, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{admins: admins, issuer: issuer}
}

// Login verifies the credentials and returns a session token. Unknown
// usernames and wrong passwords produce the same client-visible error.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest, ip string) (*types.LoginResponse, error) {
	user, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			logger.LogSecurityEvent(logger.EventLoginFailed, ip, "admin",
				"username", req.Username, "reason", "unknown_user")
			return nil, errors.AuthenticationFailed("Invalid username or password")
		}
		return nil, errors.NewDatabaseError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.LogSecurityEvent(logger.EventLoginFailed, ip, "admin",
			"username", req.Username, "reason", "bad_password")
		return nil, errors.AuthenticationFailed("Invalid username or password")
	}

	token, expiresAt, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		logger.GetLogger().Errorw("Failed to issue session token", "error", err)
		return nil, errors.InternalServerError("Failed to create session")
	}

	if err := s.admins.TouchLastLogin(ctx, user.ID); err != nil {
		logger.GetLogger().Warnw("Failed to record last login", "error", err, "user_id", user.ID)
	}

	logger.LogSecurityEvent(logger.EventLoginSucceeded, ip, "admin", "username", user.Username)
	return &types.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
