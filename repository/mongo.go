package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"halaqat/domain"
	"halaqat/utils"
)

type mongoStorage struct {
	teachers     *mongo.Collection
	parents      *mongo.Collection
	students     *mongo.Collection
	dailyRecords *mongo.Collection
	quranErrors  *mongo.Collection
}

// NewMongoStorage maps the four entity families onto collections. Listings
// are single equality-filtered queries; there are no cross-collection joins
// and no referential integrity.
func NewMongoStorage(db *mongo.Database) domain.Storage {
	return &mongoStorage{
		teachers:     db.Collection("teachers"),
		parents:      db.Collection("parents"),
		students:     db.Collection("students"),
		dailyRecords: db.Collection("dailyRecords"),
		quranErrors:  db.Collection("quranErrors"),
	}
}

func (r *mongoStorage) collapse(op string, err error) {
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return
	}
	log.Warn().Str("op", op).Err(err).Msg("storage failure collapsed to not-found")
}

// Teachers

func (r *mongoStorage) GetTeacher(ctx context.Context, id string) *domain.Teacher {
	var teacher domain.Teacher
	if err := r.teachers.FindOne(ctx, bson.M{"_id": id}).Decode(&teacher); err != nil {
		r.collapse("GetTeacher", err)
		return nil
	}
	return &teacher
}

func (r *mongoStorage) GetTeacherByUsername(ctx context.Context, username string) *domain.Teacher {
	var teacher domain.Teacher
	if err := r.teachers.FindOne(ctx, bson.M{"username": username}).Decode(&teacher); err != nil {
		r.collapse("GetTeacherByUsername", err)
		return nil
	}
	return &teacher
}

func (r *mongoStorage) GetAllTeachers(ctx context.Context) []domain.Teacher {
	cursor, err := r.teachers.Find(ctx, bson.M{})
	if err != nil {
		r.collapse("GetAllTeachers", err)
		return []domain.Teacher{}
	}
	teachers := make([]domain.Teacher, 0)
	if err := cursor.All(ctx, &teachers); err != nil {
		r.collapse("GetAllTeachers", err)
		return []domain.Teacher{}
	}
	return teachers
}

func (r *mongoStorage) CreateTeacher(ctx context.Context, payload *domain.InsertTeacher) (*domain.Teacher, error) {
	teacher := domain.Teacher{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Password:   payload.Password,
		Name:       payload.Name,
		Gender:     payload.Gender,
		CircleName: payload.CircleName,
		CreatedAt:  time.Now(),
	}
	if _, err := r.teachers.InsertOne(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	return &teacher, nil
}

func (r *mongoStorage) ValidateTeacher(ctx context.Context, username, password string) *domain.Teacher {
	teacher := r.GetTeacherByUsername(ctx, username)
	if teacher != nil && utils.ComparePassword(teacher.Password, password) {
		return teacher
	}
	return nil
}

// Parents

func (r *mongoStorage) GetParent(ctx context.Context, id string) *domain.Parent {
	var parent domain.Parent
	if err := r.parents.FindOne(ctx, bson.M{"_id": id}).Decode(&parent); err != nil {
		r.collapse("GetParent", err)
		return nil
	}
	return &parent
}

func (r *mongoStorage) GetParentByUsername(ctx context.Context, username string) *domain.Parent {
	var parent domain.Parent
	if err := r.parents.FindOne(ctx, bson.M{"username": username}).Decode(&parent); err != nil {
		r.collapse("GetParentByUsername", err)
		return nil
	}
	return &parent
}

func (r *mongoStorage) CreateParent(ctx context.Context, payload *domain.InsertParent) (*domain.Parent, error) {
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
	if _, err := r.parents.InsertOne(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to create parent: %w", err)
	}
	return &parent, nil
}

func (r *mongoStorage) ValidateParent(ctx context.Context, username, password string) *domain.Parent {
	parent := r.GetParentByUsername(ctx, username)
	if parent != nil && utils.ComparePassword(parent.Password, password) {
		return parent
	}
	return nil
}

// Students

func (r *mongoStorage) GetStudent(ctx context.Context, id string) *domain.Student {
	var student domain.Student
	if err := r.students.FindOne(ctx, bson.M{"_id": id}).Decode(&student); err != nil {
		r.collapse("GetStudent", err)
		return nil
	}
	return &student
}

func (r *mongoStorage) GetAllStudents(ctx context.Context) []domain.Student {
	return r.findStudents(ctx, "GetAllStudents", bson.M{})
}

func (r *mongoStorage) GetStudentsByTeacher(ctx context.Context, teacherID string) []domain.Student {
	return r.findStudents(ctx, "GetStudentsByTeacher", bson.M{"teacherId": teacherID})
}

func (r *mongoStorage) GetStudentsByParent(ctx context.Context, parentID string) []domain.Student {
	return r.findStudents(ctx, "GetStudentsByParent", bson.M{"parentId": parentID})
}

func (r *mongoStorage) findStudents(ctx context.Context, op string, filter bson.M) []domain.Student {
	cursor, err := r.students.Find(ctx, filter)
	if err != nil {
		r.collapse(op, err)
		return []domain.Student{}
	}
	students := make([]domain.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		r.collapse(op, err)
		return []domain.Student{}
	}
	return students
}

func (r *mongoStorage) CreateStudent(ctx context.Context, payload *domain.InsertStudent) (*domain.Student, error) {
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
	if _, err := r.students.InsertOne(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return &student, nil
}

func (r *mongoStorage) UpdateStudent(ctx context.Context, id string, patch *domain.StudentPatch) *domain.Student {
	set := studentPatchDocument(patch)
	if len(set) == 0 {
		return r.GetStudent(ctx, id)
	}
	var student domain.Student
	err := r.students.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if err != nil {
		r.collapse("UpdateStudent", err)
		return nil
	}
	return &student
}

func (r *mongoStorage) DeleteStudent(ctx context.Context, id string) bool {
	res, err := r.students.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.collapse("DeleteStudent", err)
		return false
	}
	return res.DeletedCount > 0
}

// Daily records

func (r *mongoStorage) GetDailyRecord(ctx context.Context, id string) *domain.DailyRecord {
	var record domain.DailyRecord
	if err := r.dailyRecords.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		r.collapse("GetDailyRecord", err)
		return nil
	}
	return &record
}

func (r *mongoStorage) GetDailyRecordsByStudent(ctx context.Context, studentID string) []domain.DailyRecord {
	return r.findDailyRecords(ctx, "GetDailyRecordsByStudent", bson.M{"studentId": studentID})
}

func (r *mongoStorage) GetDailyRecordsByTeacher(ctx context.Context, teacherID string) []domain.DailyRecord {
	return r.findDailyRecords(ctx, "GetDailyRecordsByTeacher", bson.M{"teacherId": teacherID})
}

func (r *mongoStorage) findDailyRecords(ctx context.Context, op string, filter bson.M) []domain.DailyRecord {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.dailyRecords.Find(ctx, filter, opts)
	if err != nil {
		r.collapse(op, err)
		return []domain.DailyRecord{}
	}
	records := make([]domain.DailyRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		r.collapse(op, err)
		return []domain.DailyRecord{}
	}
	return records
}

func (r *mongoStorage) CreateDailyRecord(ctx context.Context, payload *domain.InsertDailyRecord) (*domain.DailyRecord, error) {
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
	if _, err := r.dailyRecords.InsertOne(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create daily record: %w", err)
	}
	return &record, nil
}

func (r *mongoStorage) UpdateDailyRecord(ctx context.Context, id string, patch *domain.DailyRecordPatch) *domain.DailyRecord {
	set := dailyRecordPatchDocument(patch)
	if len(set) == 0 {
		return r.GetDailyRecord(ctx, id)
	}
	var record domain.DailyRecord
	err := r.dailyRecords.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		r.collapse("UpdateDailyRecord", err)
		return nil
	}
	return &record
}

func (r *mongoStorage) DeleteDailyRecord(ctx context.Context, id string) bool {
	res, err := r.dailyRecords.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.collapse("DeleteDailyRecord", err)
		return false
	}
	return res.DeletedCount > 0
}

// Quran errors

func (r *mongoStorage) GetQuranErrorsByStudent(ctx context.Context, studentID string) []domain.QuranError {
	cursor, err := r.quranErrors.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		r.collapse("GetQuranErrorsByStudent", err)
		return []domain.QuranError{}
	}
	quranErrors := make([]domain.QuranError, 0)
	if err := cursor.All(ctx, &quranErrors); err != nil {
		r.collapse("GetQuranErrorsByStudent", err)
		return []domain.QuranError{}
	}
	return quranErrors
}

func (r *mongoStorage) CreateQuranError(ctx context.Context, payload *domain.InsertQuranError) (*domain.QuranError, error) {
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
	if _, err := r.quranErrors.InsertOne(ctx, quranError); err != nil {
		return nil, fmt.Errorf("failed to create quran error: %w", err)
	}
	return &quranError, nil
}

func (r *mongoStorage) DeleteQuranError(ctx context.Context, id string) bool {
	res, err := r.quranErrors.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.collapse("DeleteQuranError", err)
		return false
	}
	return res.DeletedCount > 0
}

// Patch-to-$set mapping. Field names stay camelCase, matching the bson tags
// written by the create path.

func studentPatchDocument(patch *domain.StudentPatch) bson.M {
	set := bson.M{}
	if patch == nil {
		return set
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Level != nil {
		set["level"] = *patch.Level
	}
	if patch.TeacherID != nil {
		set["teacherId"] = *patch.TeacherID
	}
	if patch.ParentID != nil {
		set["parentId"] = *patch.ParentID
	}
	return set
}

func dailyRecordPatchDocument(patch *domain.DailyRecordPatch) bson.M {
	set := bson.M{}
	if patch == nil {
		return set
	}
	if patch.HijriDate != nil {
		set["hijriDate"] = *patch.HijriDate
	}
	if patch.Day != nil {
		set["day"] = *patch.Day
	}
	if patch.DailyLesson != nil {
		set["dailyLesson"] = *patch.DailyLesson
	}
	if patch.LessonFromVerse != nil {
		set["lessonFromVerse"] = *patch.LessonFromVerse
	}
	if patch.LessonToVerse != nil {
		set["lessonToVerse"] = *patch.LessonToVerse
	}
	if patch.LastFivePages != nil {
		set["lastFivePages"] = *patch.LastFivePages
	}
	if patch.DailyReview != nil {
		set["dailyReview"] = *patch.DailyReview
	}
	if patch.ReviewFrom != nil {
		set["reviewFrom"] = *patch.ReviewFrom
	}
	if patch.ReviewTo != nil {
		set["reviewTo"] = *patch.ReviewTo
	}
	if patch.PageCount != nil {
		set["pageCount"] = *patch.PageCount
	}
	if patch.Errors != nil {
		set["errors"] = *patch.Errors
	}
	if patch.Reminders != nil {
		set["reminders"] = *patch.Reminders
	}
	if patch.ListenerName != nil {
		set["listenerName"] = *patch.ListenerName
	}
	if patch.Behavior != nil {
		set["behavior"] = *patch.Behavior
	}
	if patch.Other != nil {
		set["other"] = *patch.Other
	}
	if patch.TotalScore != nil {
		set["totalScore"] = *patch.TotalScore
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	return set
}
