package domain

import (
	"context"
	"time"
)

// DailyRecord is one memorization/review session. Every field beyond the
// student, teacher and date is optional free entry; nothing here is ever
// computed or aggregated at write time, including TotalScore.
type DailyRecord struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	StudentID string `gorm:"type:uuid;not null;index" json:"studentId" bson:"studentId"`
	TeacherID string `gorm:"type:uuid;not null;index" json:"teacherId" bson:"teacherId"`

	HijriDate string `gorm:"not null" json:"hijriDate" bson:"hijriDate"`
	Day       string `gorm:"not null;size:20" json:"day" bson:"day"`

	// Memorization and review
	DailyLesson     *string `json:"dailyLesson" bson:"dailyLesson,omitempty"`
	LessonFromVerse *int    `json:"lessonFromVerse" bson:"lessonFromVerse,omitempty"`
	LessonToVerse   *int    `json:"lessonToVerse" bson:"lessonToVerse,omitempty"`
	LastFivePages   *string `json:"lastFivePages" bson:"lastFivePages,omitempty"`
	DailyReview     *string `json:"dailyReview" bson:"dailyReview,omitempty"`
	ReviewFrom      *string `json:"reviewFrom" bson:"reviewFrom,omitempty"`
	ReviewTo        *string `json:"reviewTo" bson:"reviewTo,omitempty"`
	PageCount       *int    `json:"pageCount" bson:"pageCount,omitempty"`
	Errors          *string `json:"errors" bson:"errors,omitempty"`
	Reminders       *string `json:"reminders" bson:"reminders,omitempty"`
	ListenerName    *string `json:"listenerName" bson:"listenerName,omitempty"`

	// Evaluation and behavior
	Behavior   *string `gorm:"size:10" json:"behavior" bson:"behavior,omitempty"` // good | bad
	Other      *string `gorm:"size:10" json:"other" bson:"other,omitempty"`       // good | bad
	TotalScore *int    `json:"totalScore" bson:"totalScore,omitempty"`
	Notes      *string `json:"notes" bson:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt" bson:"createdAt"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-" bson:"-"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-" bson:"-"`
}

type InsertDailyRecord struct {
	StudentID       string
	TeacherID       string
	HijriDate       string
	Day             string
	DailyLesson     *string
	LessonFromVerse *int
	LessonToVerse   *int
	LastFivePages   *string
	DailyReview     *string
	ReviewFrom      *string
	ReviewTo        *string
	PageCount       *int
	Errors          *string
	Reminders       *string
	ListenerName    *string
	Behavior        *string
	Other           *string
	TotalScore      *int
	Notes           *string
}

// DailyRecordPatch is a partial update: nil fields are left untouched.
type DailyRecordPatch struct {
	HijriDate       *string
	Day             *string
	DailyLesson     *string
	LessonFromVerse *int
	LessonToVerse   *int
	LastFivePages   *string
	DailyReview     *string
	ReviewFrom      *string
	ReviewTo        *string
	PageCount       *int
	Errors          *string
	Reminders       *string
	ListenerName    *string
	Behavior        *string
	Other           *string
	TotalScore      *int
	Notes           *string
}

type DailyRecordUseCase interface {
	GetDailyRecord(ctx context.Context, id string) *DailyRecord
	GetDailyRecordsByStudent(ctx context.Context, studentID string) []DailyRecord
	GetDailyRecordsByTeacher(ctx context.Context, teacherID string) []DailyRecord
	CreateDailyRecord(ctx context.Context, payload *InsertDailyRecord) (*DailyRecord, error)
	UpdateDailyRecord(ctx context.Context, id string, patch *DailyRecordPatch) *DailyRecord
	DeleteDailyRecord(ctx context.Context, id string) bool
}
