package usecase

import (
	"skillserve/internal/infrastructure/token"
	"skillserve/pkg/errors"
)

type AuthUseCase struct {
	tokenService *token.Service
}

func NewAuthUseCase(tokenService *token.Service) *AuthUseCase {
	return &AuthUseCase{
		tokenService: tokenService,
	}
}

func (uc *AuthUseCase) IssueToken(email string) (string, error) {
	signed, err := uc.tokenService.Issue(email)
	if err != nil {
		return "", errors.Internal("Failed to issue token", err)
	}
	return signed, nil
}
