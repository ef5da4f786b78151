package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halaqat/domain"
	"halaqat/repository"
	"halaqat/service"
	"halaqat/utils"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}
	os.Exit(m.Run())
}

type testApp struct {
	router *gin.Engine
	store  domain.Storage
	authUC domain.AuthUseCase
}

func newTestApp(seed bool) *testApp {
	store := repository.NewMemoryStorage(seed)

	router := gin.New()
	passthrough := gin.HandlerFunc(func(c *gin.Context) { c.Next() })

	authUC := service.NewAuthService(store, testSecret)
	NewAuthHandler(router, authUC, passthrough)
	NewTeacherHandler(router, service.NewTeacherUseCase(store))
	NewStudentHandler(router, service.NewStudentUseCase(store))
	NewDailyRecordHandler(router, service.NewDailyRecordUseCase(store))
	NewQuranErrorHandler(router, service.NewQuranErrorUseCase(store))

	return &testApp{router: router, store: store, authUC: authUC}
}

func (a *testApp) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (a *testApp) createTeacher(t *testing.T, username string) *domain.Teacher {
	t.Helper()
	teacher, err := a.store.CreateTeacher(context.Background(), &domain.InsertTeacher{
		Username:   username,
		Password:   "123456",
		Name:       "أ. اختبار",
		Gender:     domain.GenderMale,
		CircleName: "حلقة الاختبار",
	})
	require.NoError(t, err)
	return teacher
}

func (a *testApp) createStudent(t *testing.T, teacherID string) *domain.Student {
	t.Helper()
	student, err := a.store.CreateStudent(context.Background(), &domain.InsertStudent{
		Name:      "عبدالله أحمد",
		Age:       10,
		Level:     domain.LevelBeginner,
		TeacherID: teacherID,
	})
	require.NoError(t, err)
	return student
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(false)
	app.createTeacher(t, "hassan")

	w := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "hassan", "password": "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "hassan", resp["username"])
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, resp, "password")
	assert.NotContains(t, w.Body.String(), "123456")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(false)
	app.createTeacher(t, "hassan")

	w := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "hassan", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "اسم المستخدم أو كلمة المرور غير صحيحة", resp["message"])
}

func TestLoginSameMessageForUnknownUser(t *testing.T) {
	app := newTestApp(false)
	app.createTeacher(t, "hassan")

	wrongPass := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "hassan", "password": "x"})
	unknownUser := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "ghost", "password": "123456"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(false)

	w := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "hassan"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp(false)
	app.createTeacher(t, "saud")

	w := app.do(t, http.MethodPost, "/api/auth/validate", gin.H{"username": "saud", "password": "123456"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParentLoginEndpoint(t *testing.T) {
	app := newTestApp(false)
	_, err := app.store.CreateParent(context.Background(), &domain.InsertParent{
		Username:   "parent1",
		Password:   "123456",
		FatherName: "أحمد محمد",
		Phone:      "0505123456",
	})
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/api/auth/parent-login", gin.H{"username": "parent1", "password": "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "أحمد محمد", resp["fatherName"])
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, resp, "password")
}

func TestAuthMe(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "saleh")

	token, err := app.authUC.GetAccessTokenManager().GenerateToken(teacher.ID, domain.RoleTeacher)
	require.NoError(t, err)

	w := app.do(t, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, teacher.ID, resp["id"])
	assert.Equal(t, "saleh", resp["username"])
}

func TestAuthMeRejectsMissingToken(t *testing.T) {
	app := newTestApp(false)

	w := app.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllTeachers(t *testing.T) {
	app := newTestApp(true)

	w := app.do(t, http.MethodGet, "/api/teachers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teachers []map[string]any
	decodeJSON(t, w, &teachers)
	assert.Len(t, teachers, 13)
	for _, teacher := range teachers {
		assert.NotContains(t, teacher, "password")
		assert.NotEmpty(t, teacher["circleName"])
	}
}

func TestGetTeacherNotFound(t *testing.T) {
	app := newTestApp(false)

	w := app.do(t, http.MethodGet, "/api/teachers/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "المعلم غير موجود", resp["message"])
}

func TestCreateStudentEndpoint(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "ibrahim")

	w := app.do(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/students", gin.H{
		"name":  "محمد عبدالله",
		"age":   12,
		"level": "advanced",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "محمد عبدالله", resp["name"])
	assert.Equal(t, float64(12), resp["age"])
	assert.Equal(t, "advanced", resp["level"])
	assert.Equal(t, teacher.ID, resp["teacherId"])
	assert.NotEmpty(t, resp["id"])
}

func TestCreateStudentRejectsBadLevel(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "ibrahim")

	w := app.do(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/students", gin.H{
		"name":  "محمد",
		"age":   12,
		"level": "expert",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentListingEndpoints(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "nabil")
	other := app.createTeacher(t, "saud")
	app.createStudent(t, teacher.ID)
	app.createStudent(t, teacher.ID)
	app.createStudent(t, other.ID)

	w := app.do(t, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	decodeJSON(t, w, &all)
	assert.Len(t, all, 3)

	w = app.do(t, http.MethodGet, "/api/teachers/"+teacher.ID+"/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []map[string]any
	decodeJSON(t, w, &mine)
	assert.Len(t, mine, 2)

	// unknown teacher gets an empty array, not null and not 404
	w = app.do(t, http.MethodGet, "/api/teachers/nonexistent/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetStudentsByParentEndpoint(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "hind")

	parent, err := app.store.CreateParent(context.Background(), &domain.InsertParent{
		Username:   "parent1",
		Password:   "123456",
		FatherName: "أحمد",
		Phone:      "0505123456",
	})
	require.NoError(t, err)

	_, err = app.store.CreateStudent(context.Background(), &domain.InsertStudent{
		Name:      "فاطمة",
		Age:       9,
		Level:     domain.LevelBeginner,
		TeacherID: teacher.ID,
		ParentID:  &parent.ID,
	})
	require.NoError(t, err)

	w := app.do(t, http.MethodGet, "/api/parents/"+parent.ID+"/students", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var children []map[string]any
	decodeJSON(t, w, &children)
	require.Len(t, children, 1)
	assert.Equal(t, "فاطمة", children[0]["name"])
}

func TestUpdateStudentEndpoint(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "asma")
	student := app.createStudent(t, teacher.ID)

	w := app.do(t, http.MethodPut, "/api/students/"+student.ID, gin.H{"name": "اسم جديد"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "اسم جديد", resp["name"])
	assert.Equal(t, float64(student.Age), resp["age"])
}

func TestUpdateStudentNotFound(t *testing.T) {
	app := newTestApp(false)

	w := app.do(t, http.MethodPut, "/api/students/nonexistent", gin.H{"name": "اسم"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "الطالب غير موجود", resp["message"])
}

func TestDeleteStudentEndpoint(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "nour")
	student := app.createStudent(t, teacher.ID)

	w := app.do(t, http.MethodDelete, "/api/students/"+student.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodDelete, "/api/students/"+student.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDailyRecordEndpoints(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "madina")
	student := app.createStudent(t, teacher.ID)

	w := app.do(t, http.MethodPost, "/api/records", gin.H{
		"studentId":   student.ID,
		"teacherId":   teacher.ID,
		"hijriDate":   "1447-03-10",
		"day":         "الاثنين",
		"dailyLesson": "سورة الملك",
		"totalScore":  90,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record map[string]any
	decodeJSON(t, w, &record)
	recordID := record["id"].(string)
	assert.Equal(t, "سورة الملك", record["dailyLesson"])
	assert.Equal(t, float64(90), record["totalScore"])

	w = app.do(t, http.MethodGet, "/api/students/"+student.ID+"/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []map[string]any
	decodeJSON(t, w, &records)
	require.Len(t, records, 1)

	w = app.do(t, http.MethodPut, "/api/records/"+recordID, gin.H{"totalScore": 75})
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	decodeJSON(t, w, &updated)
	assert.Equal(t, float64(75), updated["totalScore"])
	assert.Equal(t, "سورة الملك", updated["dailyLesson"])

	w = app.do(t, http.MethodDelete, "/api/records/"+recordID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodDelete, "/api/records/"+recordID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecordUnderTeacherPath(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "raghad")
	student := app.createStudent(t, teacher.ID)

	// teacherId comes from the path, not the body
	w := app.do(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/records", gin.H{
		"studentId": student.ID,
		"hijriDate": "1447-03-11",
		"day":       "الثلاثاء",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record map[string]any
	decodeJSON(t, w, &record)
	assert.Equal(t, teacher.ID, record["teacherId"])

	w = app.do(t, http.MethodGet, "/api/teachers/"+teacher.ID+"/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []map[string]any
	decodeJSON(t, w, &records)
	assert.Len(t, records, 1)
}

func TestQuranErrorEndpoints(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "nashwa")
	student := app.createStudent(t, teacher.ID)

	w := app.do(t, http.MethodPost, "/api/quran-errors", gin.H{
		"studentId":  student.ID,
		"surah":      "البقرة",
		"verse":      255,
		"pageNumber": 42,
		"errorType":  "repeated",
		"position":   gin.H{"wordIndex": 3},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var mark map[string]any
	decodeJSON(t, w, &mark)
	markID := mark["id"].(string)
	assert.Equal(t, "البقرة", mark["surah"])
	assert.Equal(t, "repeated", mark["errorType"])

	w = app.do(t, http.MethodGet, "/api/students/"+student.ID+"/quran-errors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var marks []map[string]any
	decodeJSON(t, w, &marks)
	require.Len(t, marks, 1)

	w = app.do(t, http.MethodDelete, "/api/quran-errors/"+markID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodDelete, "/api/quran-errors/"+markID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuranErrorRejectsBadType(t *testing.T) {
	app := newTestApp(false)
	teacher := app.createTeacher(t, "nashwa")
	student := app.createStudent(t, teacher.ID)

	w := app.do(t, http.MethodPost, "/api/quran-errors", gin.H{
		"studentId":  student.ID,
		"surah":      "البقرة",
		"verse":      255,
		"pageNumber": 42,
		"errorType":  "tashkeel",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
