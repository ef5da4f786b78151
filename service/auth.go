package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"halaqat/domain"
	"halaqat/utils"
)

type authService struct {
	store       domain.Storage
	accessToken *utils.JWTManager
}

func NewAuthService(store domain.Storage, secret string) domain.AuthUseCase {
	return &authService{
		store:       store,
		accessToken: utils.NewJWTManager(secret, 24*time.Hour),
	}
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

func (s *authService) LoginTeacher(ctx context.Context, username, password string) (*domain.Teacher, string) {
	teacher := s.store.ValidateTeacher(ctx, username, password)
	if teacher == nil {
		return nil, ""
	}

	token, err := s.accessToken.GenerateToken(teacher.ID, domain.RoleTeacher)
	if err != nil {
		log.Error().Str("username", username).Err(err).Msg("failed to issue teacher token")
		return nil, ""
	}
	return teacher, token
}

func (s *authService) LoginParent(ctx context.Context, username, password string) (*domain.Parent, string) {
	parent := s.store.ValidateParent(ctx, username, password)
	if parent == nil {
		return nil, ""
	}

	token, err := s.accessToken.GenerateToken(parent.ID, domain.RoleParent)
	if err != nil {
		log.Error().Str("username", username).Err(err).Msg("failed to issue parent token")
		return nil, ""
	}
	return parent, token
}

func (s *authService) CurrentAccount(ctx context.Context, subject, role string) any {
	switch role {
	case domain.RoleTeacher:
		if teacher := s.store.GetTeacher(ctx, subject); teacher != nil {
			return teacher
		}
	case domain.RoleParent:
		if parent := s.store.GetParent(ctx, subject); parent != nil {
			return parent
		}
	}
	return nil
}
