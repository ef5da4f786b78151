package domain

import (
	"context"
	"time"
)

type Teacher struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username" bson:"username"`
	Password   string    `gorm:"not null" json:"-" bson:"password"`
	Name       string    `gorm:"not null;size:100" json:"name" bson:"name"`
	Gender     string    `gorm:"not null;size:10" json:"gender" bson:"gender"` // male | female
	CircleName string    `gorm:"not null" json:"circleName" bson:"circleName"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt" bson:"createdAt"`
}

// InsertTeacher carries the caller-supplied fields of a new teacher; id and
// createdAt are assigned by the storage backend.
type InsertTeacher struct {
	Username   string
	Password   string
	Name       string
	Gender     string
	CircleName string
}

type TeacherUseCase interface {
	GetTeacher(ctx context.Context, id string) *Teacher
	GetAllTeachers(ctx context.Context) []Teacher
	CreateTeacher(ctx context.Context, payload *InsertTeacher) (*Teacher, error)
}
