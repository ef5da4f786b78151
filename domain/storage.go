package domain

import "context"

const (
	RoleTeacher = "teacher"
	RoleParent  = "parent"

	GenderMale   = "male"
	GenderFemale = "female"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	BehaviorGood = "good"
	BehaviorBad  = "bad"

	// ErrorTypeRepeated marks a mistake the student keeps making;
	// ErrorTypePrevious marks one that was corrected before and resurfaced.
	ErrorTypeRepeated = "repeated"
	ErrorTypePrevious = "previous"
)

// Storage is the persistence contract shared by the in-memory, PostgreSQL
// and MongoDB backends. Misses are soft signals: a nil pointer, false, or
// an empty slice. Backend failures are collapsed into the same signals
// after being logged, so callers cannot tell "absent" from "unreachable".
// Create is the only operation that surfaces an error.
//
// Daily-record listings are returned most-recent-created-first in every
// backend; no other listing guarantees an order.
type Storage interface {
	// Teachers
	GetTeacher(ctx context.Context, id string) *Teacher
	GetTeacherByUsername(ctx context.Context, username string) *Teacher
	GetAllTeachers(ctx context.Context) []Teacher
	CreateTeacher(ctx context.Context, payload *InsertTeacher) (*Teacher, error)
	ValidateTeacher(ctx context.Context, username, password string) *Teacher

	// Parents
	GetParent(ctx context.Context, id string) *Parent
	GetParentByUsername(ctx context.Context, username string) *Parent
	CreateParent(ctx context.Context, payload *InsertParent) (*Parent, error)
	ValidateParent(ctx context.Context, username, password string) *Parent

	// Students
	GetStudent(ctx context.Context, id string) *Student
	GetAllStudents(ctx context.Context) []Student
	GetStudentsByTeacher(ctx context.Context, teacherID string) []Student
	GetStudentsByParent(ctx context.Context, parentID string) []Student
	CreateStudent(ctx context.Context, payload *InsertStudent) (*Student, error)
	UpdateStudent(ctx context.Context, id string, patch *StudentPatch) *Student
	DeleteStudent(ctx context.Context, id string) bool

	// Daily records
	GetDailyRecord(ctx context.Context, id string) *DailyRecord
	GetDailyRecordsByStudent(ctx context.Context, studentID string) []DailyRecord
	GetDailyRecordsByTeacher(ctx context.Context, teacherID string) []DailyRecord
	CreateDailyRecord(ctx context.Context, payload *InsertDailyRecord) (*DailyRecord, error)
	UpdateDailyRecord(ctx context.Context, id string, patch *DailyRecordPatch) *DailyRecord
	DeleteDailyRecord(ctx context.Context, id string) bool

	// Quran errors
	GetQuranErrorsByStudent(ctx context.Context, studentID string) []QuranError
	CreateQuranError(ctx context.Context, payload *InsertQuranError) (*QuranError, error)
	DeleteQuranError(ctx context.Context, id string) bool
}
