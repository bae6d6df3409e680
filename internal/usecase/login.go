package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ideas26/leadflow-api/internal/auth"
	"github.com/ideas26/leadflow-api/internal/entity"
)

type LoginUseCase struct {
	Users UserRepositoryInterface
	JWT   *auth.JWTManager
}

func NewLoginUseCase(users UserRepositoryInterface, jwtManager *auth.JWTManager) *LoginUseCase {
	return &LoginUseCase{
		Users: users,
		JWT:   jwtManager,
	}
}

// Execute checks admin credentials and mints a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	normalized, fieldErrors := ValidateLoginInput(input)
	if len(fieldErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "login rejected",
			Fields:  fieldErrors,
		}
	}

	invalidCredentials := &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}

	user, err := uc.Users.FindByEmail(ctx, normalized.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load user: " + err.Error(),
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(normalized.Password)) != nil {
		return nil, invalidCredentials
	}

	token, expiresAt, err := uc.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TOKEN_ERROR",
			Message: "failed to mint session token: " + err.Error(),
		}
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserInfo{
			ID:    user.ID,
			Email: user.Email,
		},
	}, nil
}
