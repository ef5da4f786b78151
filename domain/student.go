package domain

import (
	"context"
	"time"
)

type Student struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	Name      string    `gorm:"not null;size:100" json:"name" bson:"name"`
	Age       int       `gorm:"not null" json:"age" bson:"age"`
	Phone     *string   `gorm:"size:20" json:"phone" bson:"phone,omitempty"`
	Level     string    `gorm:"not null;size:20" json:"level" bson:"level"` // beginner | intermediate | advanced
	TeacherID string    `gorm:"type:uuid;not null;index" json:"teacherId" bson:"teacherId"`
	ParentID  *string   `gorm:"type:uuid;index" json:"parentId" bson:"parentId,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt" bson:"createdAt"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-" bson:"-"`
	Parent  *Parent  `gorm:"foreignKey:ParentID" json:"-" bson:"-"`
}

type InsertStudent struct {
	Name      string
	Age       int
	Phone     *string
	Level     string
	TeacherID string
	ParentID  *string
}

// StudentPatch is a partial update: nil fields are left untouched.
type StudentPatch struct {
	Name      *string
	Age       *int
	Phone     *string
	Level     *string
	TeacherID *string
	ParentID  *string
}

type StudentUseCase interface {
	GetStudent(ctx context.Context, id string) *Student
	GetAllStudents(ctx context.Context) []Student
	GetStudentsByTeacher(ctx context.Context, teacherID string) []Student
	GetStudentsByParent(ctx context.Context, parentID string) []Student
	CreateStudent(ctx context.Context, payload *InsertStudent) (*Student, error)
	UpdateStudent(ctx context.Context, id string, patch *StudentPatch) *Student
	DeleteStudent(ctx context.Context, id string) bool
}
