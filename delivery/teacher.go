package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halaqat/domain"
	"halaqat/utils"
)

type TeacherHandler struct {
	teacherUC domain.TeacherUseCase
}

func NewTeacherHandler(r *gin.Engine, teacherUC domain.TeacherUseCase) {
	handler := &TeacherHandler{teacherUC: teacherUC}

	r.GET("/api/teachers", handler.GetAllTeachers)
	r.GET("/api/teachers/:teacherId", handler.GetTeacher)
}

func (h *TeacherHandler) GetAllTeachers(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	teachers := h.teacherUC.GetAllTeachers(c.Request.Context())

	utils.PrintLogInfo(&name, 200, "GetAllTeachers", nil)
	c.JSON(http.StatusOK, teachers)
}

func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	teacher := h.teacherUC.GetTeacher(c.Request.Context(), c.Param("teacherId"))
	if teacher == nil {
		utils.PrintLogInfo(&name, 404, "GetTeacher", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "المعلم غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "GetTeacher", nil)
	c.JSON(http.StatusOK, teacher)
}
