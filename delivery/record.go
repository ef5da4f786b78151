package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halaqat/domain"
	"halaqat/dto"
	"halaqat/utils"
)

type DailyRecordHandler struct {
	recordUC domain.DailyRecordUseCase
}

func NewDailyRecordHandler(r *gin.Engine, recordUC domain.DailyRecordUseCase) {
	handler := &DailyRecordHandler{recordUC: recordUC}

	r.GET("/api/teachers/:teacherId/records", handler.GetRecordsByTeacher)
	r.POST("/api/teachers/:teacherId/records", handler.CreateRecordForTeacher)
	r.GET("/api/students/:studentId/records", handler.GetRecordsByStudent)
	r.POST("/api/records", handler.CreateRecord)
	r.PUT("/api/records/:recordId", handler.UpdateRecord)
	r.DELETE("/api/records/:recordId", handler.DeleteRecord)
}

func (h *DailyRecordHandler) GetRecordsByTeacher(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	records := h.recordUC.GetDailyRecordsByTeacher(c.Request.Context(), c.Param("teacherId"))

	utils.PrintLogInfo(&name, 200, "GetRecordsByTeacher", nil)
	c.JSON(http.StatusOK, records)
}

func (h *DailyRecordHandler) GetRecordsByStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	records := h.recordUC.GetDailyRecordsByStudent(c.Request.Context(), c.Param("studentId"))

	utils.PrintLogInfo(&name, 200, "GetRecordsByStudent", nil)
	c.JSON(http.StatusOK, records)
}

// CreateRecordForTeacher takes the teacher from the path; the body's
// teacherId, if present, is overridden.
func (h *DailyRecordHandler) CreateRecordForTeacher(c *gin.Context) {
	h.createRecord(c, c.Param("teacherId"), "CreateRecordForTeacher")
}

func (h *DailyRecordHandler) CreateRecord(c *gin.Context) {
	h.createRecord(c, "", "CreateRecord")
}

func (h *DailyRecordHandler) createRecord(c *gin.Context, teacherID, fn string) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateDailyRecordRequest
	if teacherID != "" {
		req.TeacherID = teacherID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, fn, &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.TranslateValidationError(err)})
		return
	}
	if teacherID != "" {
		req.TeacherID = teacherID
	}

	payload := dto.MapCreateDailyRecordRequest(&req)
	record, err := h.recordUC.CreateDailyRecord(c.Request.Context(), &payload)
	if err != nil {
		utils.PrintLogInfo(&name, 500, fn, &err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": utils.TranslateDBError(err)})
		return
	}

	utils.PrintLogInfo(&name, 201, fn, nil)
	c.JSON(http.StatusCreated, record)
}

func (h *DailyRecordHandler) UpdateRecord(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateDailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "UpdateRecord", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.TranslateValidationError(err)})
		return
	}

	patch := dto.MapUpdateDailyRecordRequest(&req)
	record := h.recordUC.UpdateDailyRecord(c.Request.Context(), c.Param("recordId"), &patch)
	if record == nil {
		utils.PrintLogInfo(&name, 404, "UpdateRecord", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "السجل غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "UpdateRecord", nil)
	c.JSON(http.StatusOK, record)
}

func (h *DailyRecordHandler) DeleteRecord(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if !h.recordUC.DeleteDailyRecord(c.Request.Context(), c.Param("recordId")) {
		utils.PrintLogInfo(&name, 404, "DeleteRecord", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "السجل غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "DeleteRecord", nil)
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف السجل بنجاح"})
}
