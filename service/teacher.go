package service

import (
	"context"

	"halaqat/domain"
)

type teacherUseCase struct {
	store domain.Storage
}

func NewTeacherUseCase(store domain.Storage) domain.TeacherUseCase {
	return &teacherUseCase{store: store}
}

func (s *teacherUseCase) GetTeacher(ctx context.Context, id string) *domain.Teacher {
	return s.store.GetTeacher(ctx, id)
}

func (s *teacherUseCase) GetAllTeachers(ctx context.Context) []domain.Teacher {
	return s.store.GetAllTeachers(ctx)
}

func (s *teacherUseCase) CreateTeacher(ctx context.Context, payload *domain.InsertTeacher) (*domain.Teacher, error) {
	return s.store.CreateTeacher(ctx, payload)
}
