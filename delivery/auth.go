package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halaqat/config"
	"halaqat/domain"
	"halaqat/dto"
	"halaqat/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

type loginResponse struct {
	*domain.Teacher
	Token string `json:"token,omitempty"`
}

type parentLoginResponse struct {
	*domain.Parent
	Token string `json:"token,omitempty"`
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase, rateLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/api/auth")
	auth.Use(rateLimiter)
	{
		auth.POST("/login", handler.Login)
		auth.POST("/validate", handler.Login)
		auth.POST("/parent-login", handler.ParentLogin)
	}

	me := r.Group("/api/auth")
	me.Use(config.AuthMiddleware(authUC.GetAccessTokenManager()))
	{
		me.GET("/me", handler.Me)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "Login", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "بيانات غير صالحة"})
		return
	}

	teacher, token := h.authUC.LoginTeacher(c.Request.Context(), req.Username, req.Password)
	if teacher == nil {
		utils.PrintLogInfo(&name, 401, "Login", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "اسم المستخدم أو كلمة المرور غير صحيحة"})
		return
	}

	utils.PrintLogInfo(&name, 200, "Login", nil)
	c.JSON(http.StatusOK, loginResponse{Teacher: teacher, Token: token})
}

func (h *AuthHandler) ParentLogin(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "ParentLogin", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "بيانات غير صالحة"})
		return
	}

	parent, token := h.authUC.LoginParent(c.Request.Context(), req.Username, req.Password)
	if parent == nil {
		utils.PrintLogInfo(&name, 401, "ParentLogin", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "اسم المستخدم أو كلمة المرور غير صحيحة"})
		return
	}

	utils.PrintLogInfo(&name, 200, "ParentLogin", nil)
	c.JSON(http.StatusOK, parentLoginResponse{Parent: parent, Token: token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	subject := c.GetString("subject")
	role := c.GetString("role")

	account := h.authUC.CurrentAccount(c.Request.Context(), subject, role)
	if account == nil {
		utils.PrintLogInfo(&name, 404, "Me", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "الحساب غير موجود"})
		return
	}

	utils.PrintLogInfo(&name, 200, "Me", nil)
	c.JSON(http.StatusOK, account)
}
