package dto

import "halaqat/domain"

type CreateStudentRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Age      int     `json:"age" binding:"required,gt=0,lt=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Level    string  `json:"level" binding:"required,level"`
	ParentID *string `json:"parentId" binding:"omitempty,uuid"`
}

type UpdateStudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	Age       *int    `json:"age" binding:"omitempty,gt=0,lt=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Level     *string `json:"level" binding:"omitempty,level"`
	TeacherID *string `json:"teacherId" binding:"omitempty,uuid"`
	ParentID  *string `json:"parentId" binding:"omitempty,uuid"`
}

func MapCreateStudentRequest(req *CreateStudentRequest, teacherID string) domain.InsertStudent {
	return domain.InsertStudent{
		Name:      req.Name,
		Age:       req.Age,
		Phone:     req.Phone,
		Level:     req.Level,
		TeacherID: teacherID,
		ParentID:  req.ParentID,
	}
}

func MapUpdateStudentRequest(req *UpdateStudentRequest) domain.StudentPatch {
	return domain.StudentPatch{
		Name:      req.Name,
		Age:       req.Age,
		Phone:     req.Phone,
		Level:     req.Level,
		TeacherID: req.TeacherID,
		ParentID:  req.ParentID,
	}
}
