package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"halaqat/domain"
)

type CreateQuranErrorRequest struct {
	StudentID  string          `json:"studentId" binding:"required,uuid"`
	Surah      string          `json:"surah" binding:"required"`
	Verse      int             `json:"verse" binding:"required,gt=0"`
	PageNumber int             `json:"pageNumber" binding:"required,gt=0,lte=604"`
	ErrorType  string          `json:"errorType" binding:"required,errortype"`
	Position   json.RawMessage `json:"position" binding:"omitempty"`
}

func MapCreateQuranErrorRequest(req *CreateQuranErrorRequest) domain.InsertQuranError {
	return domain.InsertQuranError{
		StudentID:  req.StudentID,
		Surah:      req.Surah,
		Verse:      req.Verse,
		PageNumber: req.PageNumber,
		ErrorType:  req.ErrorType,
		Position:   datatypes.JSON(req.Position),
	}
}
