package domain

import "time"

type Parent struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username" bson:"username"`
	Password   string    `gorm:"not null" json:"-" bson:"password"`
	FatherName string    `gorm:"not null" json:"fatherName" bson:"fatherName"`
	MotherName *string   `json:"motherName" bson:"motherName,omitempty"`
	Phone      string    `gorm:"not null;size:20" json:"phone" bson:"phone"`
	Email      *string   `json:"email" bson:"email,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt" bson:"createdAt"`
}

type InsertParent struct {
	Username   string
	Password   string
	FatherName string
	MotherName *string
	Phone      string
	Email      *string
}
