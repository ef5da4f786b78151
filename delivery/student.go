package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halaqat/domain"
	"halaqat/dto"
	"halaqat/utils"
)

type StudentHandler struct {
	studUC domain.StudentUseCase
}

func NewStudentHandler(r *gin.Engine, studUC domain.StudentUseCase) {
	handler := &StudentHandler{studUC: studUC}

	r.GET("/api/students", handler.GetAllStudents)
	r.GET("/api/teachers/:teacherId/students", handler.GetStudentsByTeacher)
	r.POST("/api/teachers/:teacherId/students", handler.CreateStudent)
	r.GET("/api/parents/:parentId/students", handler.GetStudentsByParent)
	r.PUT("/api/students/:studentId", handler.UpdateStudent)
	r.DELETE("/api/students/:studentId", handler.DeleteStudent)
}

func (h *StudentHandler) GetAllStudents(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	students := h.studUC.GetAllStudents(c.Request.Context())

	utils.PrintLogInfo(&name, 200, "GetAllStudents", nil)
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudentsByTeacher(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	students := h.studUC.GetStudentsByTeacher(c.Request.Context(), c.Param("teacherId"))

	utils.PrintLogInfo(&name, 200, "GetStudentsByTeacher", nil)
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudentsByParent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	students := h.studUC.GetStudentsByParent(c.Request.Context(), c.Param("parentId"))

	utils.PrintLogInfo(&name, 200, "GetStudentsByParent", nil)
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "CreateStudent", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.TranslateValidationError(err)})
		return
	}

	payload := dto.MapCreateStudentRequest(&req, c.Param("teacherId"))
	student, err := h.studUC.CreateStudent(c.Request.Context(), &payload)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "CreateStudent", &err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": utils.TranslateDBError(err)})
		return
	}

	utils.PrintLogInfo(&name, 201, "CreateStudent", nil)
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "UpdateStudent", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.TranslateValidationError(err)})
		return
	}

	patch := dto.MapUpdateStudentRequest(&req)
	student := h.studUC.UpdateStudent(c.Request.Context(), c.Param("studentId"), &patch)
	if student == nil {
		utils.PrintLogInfo(&name, 404, "UpdateStudent", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "الطالب غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "UpdateStudent", nil)
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if !h.studUC.DeleteStudent(c.Request.Context(), c.Param("studentId")) {
		utils.PrintLogInfo(&name, 404, "DeleteStudent", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "الطالب غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "DeleteStudent", nil)
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الطالب بنجاح"})
}
