package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

// QuranError marks a verse a student misread while reciting. One mark per
// (student, verse, page) is enforced by the caller, not by the schema.
type QuranError struct {
	ID         string         `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	StudentID  string         `gorm:"type:uuid;not null;index" json:"studentId" bson:"studentId"`
	Surah      string         `gorm:"not null" json:"surah" bson:"surah"`
	Verse      int            `gorm:"not null" json:"verse" bson:"verse"`
	PageNumber int            `gorm:"not null" json:"pageNumber" bson:"pageNumber"`
	ErrorType  string         `gorm:"not null;size:20" json:"errorType" bson:"errorType"` // repeated | previous
	Position   datatypes.JSON `gorm:"type:jsonb" json:"position" bson:"position,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt" bson:"createdAt"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-" bson:"-"`
}

type InsertQuranError struct {
	StudentID  string
	Surah      string
	Verse      int
	PageNumber int
	ErrorType  string
	Position   datatypes.JSON
}

type QuranErrorUseCase interface {
	GetQuranErrorsByStudent(ctx context.Context, studentID string) []QuranError
	CreateQuranError(ctx context.Context, payload *InsertQuranError) (*QuranError, error)
	DeleteQuranError(ctx context.Context, id string) bool
}
