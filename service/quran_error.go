package service

import (
	"context"

	"halaqat/domain"
)

type quranErrorUseCase struct {
	store domain.Storage
}

func NewQuranErrorUseCase(store domain.Storage) domain.QuranErrorUseCase {
	return &quranErrorUseCase{store: store}
}

func (s *quranErrorUseCase) GetQuranErrorsByStudent(ctx context.Context, studentID string) []domain.QuranError {
	return s.store.GetQuranErrorsByStudent(ctx, studentID)
}

func (s *quranErrorUseCase) CreateQuranError(ctx context.Context, payload *domain.InsertQuranError) (*domain.QuranError, error) {
	return s.store.CreateQuranError(ctx, payload)
}

func (s *quranErrorUseCase) DeleteQuranError(ctx context.Context, id string) bool {
	return s.store.DeleteQuranError(ctx, id)
}
