package service

import (
	"context"

	"halaqat/domain"
)

type dailyRecordUseCase struct {
	store domain.Storage
}

func NewDailyRecordUseCase(store domain.Storage) domain.DailyRecordUseCase {
	return &dailyRecordUseCase{store: store}
}

func (s *dailyRecordUseCase) GetDailyRecord(ctx context.Context, id string) *domain.DailyRecord {
	return s.store.GetDailyRecord(ctx, id)
}

func (s *dailyRecordUseCase) GetDailyRecordsByStudent(ctx context.Context, studentID string) []domain.DailyRecord {
	return s.store.GetDailyRecordsByStudent(ctx, studentID)
}

func (s *dailyRecordUseCase) GetDailyRecordsByTeacher(ctx context.Context, teacherID string) []domain.DailyRecord {
	return s.store.GetDailyRecordsByTeacher(ctx, teacherID)
}

func (s *dailyRecordUseCase) CreateDailyRecord(ctx context.Context, payload *domain.InsertDailyRecord) (*domain.DailyRecord, error) {
	return s.store.CreateDailyRecord(ctx, payload)
}

func (s *dailyRecordUseCase) UpdateDailyRecord(ctx context.Context, id string, patch *domain.DailyRecordPatch) *domain.DailyRecord {
	return s.store.UpdateDailyRecord(ctx, id, patch)
}

func (s *dailyRecordUseCase) DeleteDailyRecord(ctx context.Context, id string) bool {
	return s.store.DeleteDailyRecord(ctx, id)
}
