package dto

import "halaqat/domain"

type CreateDailyRecordRequest struct {
	StudentID string `json:"studentId" binding:"required,uuid"`
	TeacherID string `json:"teacherId" binding:"required,uuid"`
	HijriDate string `json:"hijriDate" binding:"required"`
	Day       string `json:"day" binding:"required,max=20"`

	DailyLesson     *string `json:"dailyLesson" binding:"omitempty"`
	LessonFromVerse *int    `json:"lessonFromVerse" binding:"omitempty,gte=0"`
	LessonToVerse   *int    `json:"lessonToVerse" binding:"omitempty,gte=0"`
	LastFivePages   *string `json:"lastFivePages" binding:"omitempty"`
	DailyReview     *string `json:"dailyReview" binding:"omitempty"`
	ReviewFrom      *string `json:"reviewFrom" binding:"omitempty"`
	ReviewTo        *string `json:"reviewTo" binding:"omitempty"`
	PageCount       *int    `json:"pageCount" binding:"omitempty,gte=0"`
	Errors          *string `json:"errors" binding:"omitempty"`
	Reminders       *string `json:"reminders" binding:"omitempty"`
	ListenerName    *string `json:"listenerName" binding:"omitempty"`
	Behavior        *string `json:"behavior" binding:"omitempty,oneof=good bad"`
	Other           *string `json:"other" binding:"omitempty,oneof=good bad"`
	TotalScore      *int    `json:"totalScore" binding:"omitempty,gte=0,lte=100"`
	Notes           *string `json:"notes" binding:"omitempty"`
}

type UpdateDailyRecordRequest struct {
	HijriDate *string `json:"hijriDate" binding:"omitempty"`
	Day       *string `json:"day" binding:"omitempty,max=20"`

	DailyLesson     *string `json:"dailyLesson" binding:"omitempty"`
	LessonFromVerse *int    `json:"lessonFromVerse" binding:"omitempty,gte=0"`
	LessonToVerse   *int    `json:"lessonToVerse" binding:"omitempty,gte=0"`
	LastFivePages   *string `json:"lastFivePages" binding:"omitempty"`
	DailyReview     *string `json:"dailyReview" binding:"omitempty"`
	ReviewFrom      *string `json:"reviewFrom" binding:"omitempty"`
	ReviewTo        *string `json:"reviewTo" binding:"omitempty"`
	PageCount       *int    `json:"pageCount" binding:"omitempty,gte=0"`
	Errors          *string `json:"errors" binding:"omitempty"`
	Reminders       *string `json:"reminders" binding:"omitempty"`
	ListenerName    *string `json:"listenerName" binding:"omitempty"`
	Behavior        *string `json:"behavior" binding:"omitempty,oneof=good bad"`
	Other           *string `json:"other" binding:"omitempty,oneof=good bad"`
	TotalScore      *int    `json:"totalScore" binding:"omitempty,gte=0,lte=100"`
	Notes           *string `json:"notes" binding:"omitempty"`
}

func MapCreateDailyRecordRequest(req *CreateDailyRecordRequest) domain.InsertDailyRecord {
	return domain.InsertDailyRecord{
		StudentID:       req.StudentID,
		TeacherID:       req.TeacherID,
		HijriDate:       req.HijriDate,
		Day:             req.Day,
		DailyLesson:     req.DailyLesson,
		LessonFromVerse: req.LessonFromVerse,
		LessonToVerse:   req.LessonToVerse,
		LastFivePages:   req.LastFivePages,
		DailyReview:     req.DailyReview,
		ReviewFrom:      req.ReviewFrom,
		ReviewTo:        req.ReviewTo,
		PageCount:       req.PageCount,
		Errors:          req.Errors,
		Reminders:       req.Reminders,
		ListenerName:    req.ListenerName,
		Behavior:        req.Behavior,
		Other:           req.Other,
		TotalScore:      req.TotalScore,
		Notes:           req.Notes,
	}
}

func MapUpdateDailyRecordRequest(req *UpdateDailyRecordRequest) domain.DailyRecordPatch {
	return domain.DailyRecordPatch{
		HijriDate:       req.HijriDate,
		Day:             req.Day,
		DailyLesson:     req.DailyLesson,
		LessonFromVerse: req.LessonFromVerse,
		LessonToVerse:   req.LessonToVerse,
		LastFivePages:   req.LastFivePages,
		DailyReview:     req.DailyReview,
		ReviewFrom:      req.ReviewFrom,
		ReviewTo:        req.ReviewTo,
		PageCount:       req.PageCount,
		Errors:          req.Errors,
		Reminders:       req.Reminders,
		ListenerName:    req.ListenerName,
		Behavior:        req.Behavior,
		Other:           req.Other,
		TotalScore:      req.TotalScore,
		Notes:           req.Notes,
	}
}
