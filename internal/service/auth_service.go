package service

import (
	"context"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/auth"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Login checks the password and issues a bearer token. Unknown emails and
// wrong passwords get the same answer.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponseDTO, error) {
	invalid := apperror.Unauthorized("Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, invalid
		}
		log.Error().Err(err).Msg("Login: repository error")
		return nil, err
	}
	if user.PasswordHash == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("userID", user.ID.String()).Msg("Login: password mismatch")
		return nil, invalid
	}

	token, expiresAt, err := s.tokens.Sign(user)
	if err != nil {
		log.Error().Err(err).Msg("Login: could not sign token")
		return nil, apperror.Configuration("token signing is not available")
	}

	return &dto.LoginResponseDTO{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: dto.UserDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	}, nil
}
