package usecases

import (
	"context"
	"errors"
	"strings"

	"campusmind/internal/application/directory/dto"
	"campusmind/internal/domain/directory"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User        *dto.UserDTO
	AccessToken string
	ExpiresIn   int64
}

type LoginWithPasswordUseCase struct {
	userRepo directory.UserRepository
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo directory.UserRepository,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// An unknown email and a wrong password must be indistinguishable.
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if !existing.Credential().Matches(cmd.Password) {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Generate(existing.ID(), existing.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", existing.ID())
		return nil, apperrors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role().String())

	return &LoginWithPasswordResult{
		User:        dto.ToUserDTO(existing),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
