package service

import (
	"context"

	"halaqat/domain"
)

type studentUseCase struct {
	store domain.Storage
}

func NewStudentUseCase(store domain.Storage) domain.StudentUseCase {
	return &studentUseCase{store: store}
}

func (s *studentUseCase) GetStudent(ctx context.Context, id string) *domain.Student {
	return s.store.GetStudent(ctx, id)
}

func (s *studentUseCase) GetAllStudents(ctx context.Context) []domain.Student {
	return s.store.GetAllStudents(ctx)
}

func (s *studentUseCase) GetStudentsByTeacher(ctx context.Context, teacherID string) []domain.Student {
	return s.store.GetStudentsByTeacher(ctx, teacherID)
}

func (s *studentUseCase) GetStudentsByParent(ctx context.Context, parentID string) []domain.Student {
	return s.store.GetStudentsByParent(ctx, parentID)
}

func (s *studentUseCase) CreateStudent(ctx context.Context, payload *domain.InsertStudent) (*domain.Student, error) {
	return s.store.CreateStudent(ctx, payload)
}

func (s *studentUseCase) UpdateStudent(ctx context.Context, id string, patch *domain.StudentPatch) *domain.Student {
	return s.store.UpdateStudent(ctx, id, patch)
}

func (s *studentUseCase) DeleteStudent(ctx context.Context, id string) bool {
	return s.store.DeleteStudent(ctx, id)
}
