package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"halaqat/domain"
	"halaqat/utils"
)

type postgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage wraps a booted GORM connection in the Storage contract.
// Referential integrity (student→teacher and the rest) is enforced here by
// the schema's foreign keys; the other backends do not enforce it.
func NewPostgresStorage(db *gorm.DB) domain.Storage {
	return &postgresStorage{db: db}
}

// collapse records why a backend call produced no result before the error is
// swallowed into the soft not-found signal. Three outcomes reach here: a
// plain miss (gorm.ErrRecordNotFound, not worth a log line), a backend
// failure (logged), or nil on paths that already handled the miss.
func (r *postgresStorage) collapse(op string, err error) {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	log.Warn().Str("op", op).Str("detail", utils.TranslateDBError(err)).Err(err).
		Msg("storage failure collapsed to not-found")
}

// Teachers

func (r *postgresStorage) GetTeacher(ctx context.Context, id string) *domain.Teacher {
	var teacher domain.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "id = ?", id).Error; err != nil {
		r.collapse("GetTeacher", err)
		return nil
	}
	return &teacher
}

func (r *postgresStorage) GetTeacherByUsername(ctx context.Context, username string) *domain.Teacher {
	var teacher domain.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "username = ?", username).Error; err != nil {
		r.collapse("GetTeacherByUsername", err)
		return nil
	}
	return &teacher
}

func (r *postgresStorage) GetAllTeachers(ctx context.Context) []domain.Teacher {
	teachers := make([]domain.Teacher, 0)
	if err := r.db.WithContext(ctx).Find(&teachers).Error; err != nil {
		r.collapse("GetAllTeachers", err)
		return []domain.Teacher{}
	}
	return teachers
}

func (r *postgresStorage) CreateTeacher(ctx context.Context, payload *domain.InsertTeacher) (*domain.Teacher, error) {
	teacher := domain.Teacher{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Password:   payload.Password,
		Name:       payload.Name,
		Gender:     payload.Gender,
		CircleName: payload.CircleName,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&teacher).Error; err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	return &teacher, nil
}

func (r *postgresStorage) ValidateTeacher(ctx context.Context, username, password string) *domain.Teacher {
	teacher := r.GetTeacherByUsername(ctx, username)
	if teacher != nil && utils.ComparePassword(teacher.Password, password) {
		return teacher
	}
	return nil
}

// Parents

func (r *postgresStorage) GetParent(ctx context.Context, id string) *domain.Parent {
	var parent domain.Parent
	if err := r.db.WithContext(ctx).First(&parent, "id = ?", id).Error; err != nil {
		r.collapse("GetParent", err)
		return nil
	}
	return &parent
}

func (r *postgresStorage) GetParentByUsername(ctx context.Context, username string) *domain.Parent {
	var parent domain.Parent
	if err := r.db.WithContext(ctx).First(&parent, "username = ?", username).Error; err != nil {
		r.collapse("GetParentByUsername", err)
		return nil
	}
	return &parent
}

func (r *postgresStorage) CreateParent(ctx context.Context, payload *domain.InsertParent) (*domain.Parent, error) {
	parent := domain.Parent{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Password:   payload.Password,
		FatherName: payload.FatherName,
		MotherName: payload.MotherName,
		Phone:      payload.Phone,
		Email:      payload.Email,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&parent).Error; err != nil {
		return nil, fmt.Errorf("failed to create parent: %w", err)
	}
	return &parent, nil
}

func (r *postgresStorage) ValidateParent(ctx context.Context, username, password string) *domain.Parent {
	parent := r.GetParentByUsername(ctx, username)
	if parent != nil && utils.ComparePassword(parent.Password, password) {
		return parent
	}
	return nil
}

// Students

func (r *postgresStorage) GetStudent(ctx context.Context, id string) *domain.Student {
	var student domain.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		r.collapse("GetStudent", err)
		return nil
	}
	return &student
}

func (r *postgresStorage) GetAllStudents(ctx context.Context) []domain.Student {
	students := make([]domain.Student, 0)
	if err := r.db.WithContext(ctx).Find(&students).Error; err != nil {
		r.collapse("GetAllStudents", err)
		return []domain.Student{}
	}
	return students
}

func (r *postgresStorage) GetStudentsByTeacher(ctx context.Context, teacherID string) []domain.Student {
	students := make([]domain.Student, 0)
	if err := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Find(&students).Error; err != nil {
		r.collapse("GetStudentsByTeacher", err)
		return []domain.Student{}
	}
	return students
}

func (r *postgresStorage) GetStudentsByParent(ctx context.Context, parentID string) []domain.Student {
	students := make([]domain.Student, 0)
	if err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&students).Error; err != nil {
		r.collapse("GetStudentsByParent", err)
		return []domain.Student{}
	}
	return students
}

func (r *postgresStorage) CreateStudent(ctx context.Context, payload *domain.InsertStudent) (*domain.Student, error) {
	student := domain.Student{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Age:       payload.Age,
		Phone:     payload.Phone,
		Level:     payload.Level,
		TeacherID: payload.TeacherID,
		ParentID:  payload.ParentID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return &student, nil
}

func (r *postgresStorage) UpdateStudent(ctx context.Context, id string, patch *domain.StudentPatch) *domain.Student {
	changes := studentPatchColumns(patch)
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.Student{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			r.collapse("UpdateStudent", res.Error)
			return nil
		}
		if res.RowsAffected == 0 {
			return nil
		}
	}
	return r.GetStudent(ctx, id)
}

func (r *postgresStorage) DeleteStudent(ctx context.Context, id string) bool {
	res := r.db.WithContext(ctx).Delete(&domain.Student{}, "id = ?", id)
	if res.Error != nil {
		r.collapse("DeleteStudent", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// Daily records

func (r *postgresStorage) GetDailyRecord(ctx context.Context, id string) *domain.DailyRecord {
	var record domain.DailyRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		r.collapse("GetDailyRecord", err)
		return nil
	}
	return &record
}

func (r *postgresStorage) GetDailyRecordsByStudent(ctx context.Context, studentID string) []domain.DailyRecord {
	records := make([]domain.DailyRecord, 0)
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		r.collapse("GetDailyRecordsByStudent", err)
		return []domain.DailyRecord{}
	}
	return records
}

func (r *postgresStorage) GetDailyRecordsByTeacher(ctx context.Context, teacherID string) []domain.DailyRecord {
	records := make([]domain.DailyRecord, 0)
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		r.collapse("GetDailyRecordsByTeacher", err)
		return []domain.DailyRecord{}
	}
	return records
}

func (r *postgresStorage) CreateDailyRecord(ctx context.Context, payload *domain.InsertDailyRecord) (*domain.DailyRecord, error) {
	record := domain.DailyRecord{
		ID:              uuid.NewString(),
		StudentID:       payload.StudentID,
		TeacherID:       payload.TeacherID,
		HijriDate:       payload.HijriDate,
		Day:             payload.Day,
		DailyLesson:     payload.DailyLesson,
		LessonFromVerse: payload.LessonFromVerse,
		LessonToVerse:   payload.LessonToVerse,
		LastFivePages:   payload.LastFivePages,
		DailyReview:     payload.DailyReview,
		ReviewFrom:      payload.ReviewFrom,
		ReviewTo:        payload.ReviewTo,
		PageCount:       payload.PageCount,
		Errors:          payload.Errors,
		Reminders:       payload.Reminders,
		ListenerName:    payload.ListenerName,
		Behavior:        payload.Behavior,
		Other:           payload.Other,
		TotalScore:      payload.TotalScore,
		Notes:           payload.Notes,
		CreatedAt:       time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create daily record: %w", err)
	}
	return &record, nil
}

func (r *postgresStorage) UpdateDailyRecord(ctx context.Context, id string, patch *domain.DailyRecordPatch) *domain.DailyRecord {
	changes := dailyRecordPatchColumns(patch)
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.DailyRecord{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			r.collapse("UpdateDailyRecord", res.Error)
			return nil
		}
		if res.RowsAffected == 0 {
			return nil
		}
	}
	return r.GetDailyRecord(ctx, id)
}

func (r *postgresStorage) DeleteDailyRecord(ctx context.Context, id string) bool {
	res := r.db.WithContext(ctx).Delete(&domain.DailyRecord{}, "id = ?", id)
	if res.Error != nil {
		r.collapse("DeleteDailyRecord", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// Quran errors

func (r *postgresStorage) GetQuranErrorsByStudent(ctx context.Context, studentID string) []domain.QuranError {
	quranErrors := make([]domain.QuranError, 0)
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&quranErrors).Error; err != nil {
		r.collapse("GetQuranErrorsByStudent", err)
		return []domain.QuranError{}
	}
	return quranErrors
}

func (r *postgresStorage) CreateQuranError(ctx context.Context, payload *domain.InsertQuranError) (*domain.QuranError, error) {
	quranError := domain.QuranError{
		ID:         uuid.NewString(),
		StudentID:  payload.StudentID,
		Surah:      payload.Surah,
		Verse:      payload.Verse,
		PageNumber: payload.PageNumber,
		ErrorType:  payload.ErrorType,
		Position:   payload.Position,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&quranError).Error; err != nil {
		return nil, fmt.Errorf("failed to create quran error: %w", err)
	}
	return &quranError, nil
}

func (r *postgresStorage) DeleteQuranError(ctx context.Context, id string) bool {
	res := r.db.WithContext(ctx).Delete(&domain.QuranError{}, "id = ?", id)
	if res.Error != nil {
		r.collapse("DeleteQuranError", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// Patch-to-column mapping. Column names follow GORM's snake_case naming of
// the domain structs.

func studentPatchColumns(patch *domain.StudentPatch) map[string]interface{} {
	changes := map[string]interface{}{}
	if patch == nil {
		return changes
	}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Age != nil {
		changes["age"] = *patch.Age
	}
	if patch.Phone != nil {
		changes["phone"] = *patch.Phone
	}
	if patch.Level != nil {
		changes["level"] = *patch.Level
	}
	if patch.TeacherID != nil {
		changes["teacher_id"] = *patch.TeacherID
	}
	if patch.ParentID != nil {
		changes["parent_id"] = *patch.ParentID
	}
	return changes
}

func dailyRecordPatchColumns(patch *domain.DailyRecordPatch) map[string]interface{} {
	changes := map[string]interface{}{}
	if patch == nil {
		return changes
	}
	if patch.HijriDate != nil {
		changes["hijri_date"] = *patch.HijriDate
	}
	if patch.Day != nil {
		changes["day"] = *patch.Day
	}
	if patch.DailyLesson != nil {
		changes["daily_lesson"] = *patch.DailyLesson
	}
	if patch.LessonFromVerse != nil {
		changes["lesson_from_verse"] = *patch.LessonFromVerse
	}
	if patch.LessonToVerse != nil {
		changes["lesson_to_verse"] = *patch.LessonToVerse
	}
	if patch.LastFivePages != nil {
		changes["last_five_pages"] = *patch.LastFivePages
	}
	if patch.DailyReview != nil {
		changes["daily_review"] = *patch.DailyReview
	}
	if patch.ReviewFrom != nil {
		changes["review_from"] = *patch.ReviewFrom
	}
	if patch.ReviewTo != nil {
		changes["review_to"] = *patch.ReviewTo
	}
	if patch.PageCount != nil {
		changes["page_count"] = *patch.PageCount
	}
	if patch.Errors != nil {
		changes["errors"] = *patch.Errors
	}
	if patch.Reminders != nil {
		changes["reminders"] = *patch.Reminders
	}
	if patch.ListenerName != nil {
		changes["listener_name"] = *patch.ListenerName
	}
	if patch.Behavior != nil {
		changes["behavior"] = *patch.Behavior
	}
	if patch.Other != nil {
		changes["other"] = *patch.Other
	}
	if patch.TotalScore != nil {
		changes["total_score"] = *patch.TotalScore
	}
	if patch.Notes != nil {
		changes["notes"] = *patch.Notes
	}
	return changes
}
