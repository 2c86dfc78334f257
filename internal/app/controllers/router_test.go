package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/controllers"
	"github.com/emre/schoolhub/internal/app/repositories/inmem"
	"github.com/emre/schoolhub/internal/app/routes"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
	"github.com/emre/schoolhub/internal/pkg/auth"
)

// newTestRouter wires the full HTTP surface over the in-memory stores.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := inmem.Open()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "schoolhub.test",
	})

	adminStore := inmem.NewAdminStore(db)
	sclassStore := inmem.NewSclassStore(db)
	subjectStore := inmem.NewSubjectStore(db)
	teacherStore := inmem.NewTeacherStore(db)
	studentStore := inmem.NewStudentStore(db)

	svcs := &services.Services{
		AdminService:    services.NewAdminService(adminStore, jwtService),
		SclassService:   services.NewSclassService(sclassStore, studentStore, subjectStore, teacherStore),
		SubjectService:  services.NewSubjectService(subjectStore, teacherStore),
		TeacherService:  services.NewTeacherService(teacherStore, subjectStore, jwtService),
		StudentService:  services.NewStudentService(studentStore, jwtService),
		NoticeService:   services.NewNoticeService(inmem.NewNoticeStore(db)),
		ComplainService: services.NewComplainService(inmem.NewComplainStore(db)),
	}

	router := gin.New()
	routes.SetupRouter(router, controllers.NewControllers(svcs), middleware.NewAuthMiddleware(jwtService))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerAdmin(t *testing.T, router *gin.Engine, email, schoolName string) map[string]any {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/register", gin.H{
		"name":       "Head",
		"email":      email,
		"password":   "secret123",
		"schoolName": schoolName,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)
}

func TestRouter_AdminRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	admin := registerAdmin(t, router, "jane@school.test", "Riverside High")
	assert.Equal(t, "Riverside High", admin["schoolName"])
	assert.NotContains(t, admin, "password")

	t.Run("duplicate email travels as a 200 message", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/register", gin.H{
			"name":       "Other",
			"email":      "jane@school.test",
			"password":   "secret123",
			"schoolName": "Lakeside High",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Email already exists", decodeBody(t, rec)["message"])
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/register", gin.H{
			"name": "Nameless",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login returns a token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/login", gin.H{
			"email":    "jane@school.test",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password is a 200 message", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/login", gin.H{
			"email":    "jane@school.test",
			"password": "wrong-password",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Invalid password", decodeBody(t, rec)["message"])
	})
}

func TestRouter_ClassLifecycle(t *testing.T) {
	router := newTestRouter(t)
	admin := registerAdmin(t, router, "jane@school.test", "Riverside High")
	schoolID := int64(admin["id"].(float64))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classes", gin.H{
		"sclassName": "Class 1",
		"adminId":    schoolID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	classID := int64(decodeBody(t, rec)["id"].(float64))

	t.Run("duplicate name", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/classes", gin.H{
			"sclassName": "Class 1",
			"adminId":    schoolID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sorry this class name already exists", decodeBody(t, rec)["message"])
	})

	t.Run("list and detail", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/schools/%d/classes", schoolID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/classes/%d", classID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Class 1", decodeBody(t, rec)["sclassName"])
	})

	t.Run("empty school list is a 200 message", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/schools/9999/classes", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No sclasses found", decodeBody(t, rec)["message"])
	})

	t.Run("bulk delete reports deletedCount", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/schools/%d/classes", schoolID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["deletedCount"])
	})

	t.Run("bad id is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/classes/not-a-number", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_StudentAttendanceFlow(t *testing.T) {
	router := newTestRouter(t)
	admin := registerAdmin(t, router, "jane@school.test", "Riverside High")
	schoolID := int64(admin["id"].(float64))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classes", gin.H{
		"sclassName": "Class 1",
		"adminId":    schoolID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	classID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/subjects", gin.H{
		"subjects": []gin.H{{"subName": "Math", "subCode": "MTH", "sessions": 10}},
		"adminId":  schoolID,
		"sclassId": classID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var subjects []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subjects))
	require.Len(t, subjects, 1)
	subjectID := int64(subjects[0]["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/students/register", gin.H{
		"name":     "Alice",
		"rollNum":  1,
		"password": "secret123",
		"sclassId": classID,
		"adminId":  schoolID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	studentID := int64(decodeBody(t, rec)["id"].(float64))

	attendancePath := fmt.Sprintf("/api/v1/students/%d/attendance", studentID)
	rec = doJSON(t, router, http.MethodPut, attendancePath, gin.H{
		"subjectId": subjectID,
		"date":      "2025-03-10T00:00:00Z",
		"status":    "Present",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("same date is rejected with a message", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, attendancePath, gin.H{
			"subjectId": subjectID,
			"date":      "2025-03-10T12:00:00Z",
			"status":    "Absent",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Attendance already taken for this date", decodeBody(t, rec)["message"])
	})

	t.Run("invalid status is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, attendancePath, gin.H{
			"subjectId": subjectID,
			"date":      "2025-03-12T00:00:00Z",
			"status":    "Late",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("exam result upsert", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/students/%d/exam-result", studentID)
		rec := doJSON(t, router, http.MethodPut, path, gin.H{
			"subjectId":     subjectID,
			"marksObtained": 60,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(60), decodeBody(t, rec)["marksObtained"])
	})

	t.Run("remove scoped to one subject reports modifiedCount", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete,
			fmt.Sprintf("%s?subjectId=%d", attendancePath, subjectID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["modifiedCount"])
	})

	t.Run("school-wide clear on an empty history is a zero count", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete,
			fmt.Sprintf("/api/v1/schools/%d/attendance", schoolID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(0), decodeBody(t, rec)["modifiedCount"])
	})
}

func TestRouter_Profile(t *testing.T) {
	router := newTestRouter(t)
	registerAdmin(t, router, "jane@school.test", "Riverside High")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admins/login", gin.H{
		"email":    "jane@school.test",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	t.Run("without a token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with a garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with the login token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Riverside High", decodeBody(t, rec)["schoolName"])
	})
}

func TestRouter_TeacherAssignment(t *testing.T) {
	router := newTestRouter(t)
	admin := registerAdmin(t, router, "jane@school.test", "Riverside High")
	schoolID := int64(admin["id"].(float64))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classes", gin.H{
		"sclassName": "Class 1",
		"adminId":    schoolID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	classID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/subjects", gin.H{
		"subjects": []gin.H{{"subName": "Math", "subCode": "MTH", "sessions": 10}},
		"adminId":  schoolID,
		"sclassId": classID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var subjects []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subjects))
	subjectID := int64(subjects[0]["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/teachers/register", gin.H{
		"name":          "Smith",
		"email":         "smith@school.test",
		"password":      "secret123",
		"schoolId":      schoolID,
		"teachSclassId": classID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	teacherID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/teachers/%d/subject", teacherID), gin.H{
		"subjectId": subjectID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(subjectID), body["teachSubjectId"])

	t.Run("the subject side reflects the assignment", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/subjects/%d", subjectID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		subject := decodeBody(t, rec)
		teacher, ok := subject["teacher"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(teacherID), teacher["id"])
	})

	t.Run("deleting the class cascades over the wire", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/classes/%d", classID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/teachers/%d", teacherID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No teacher found", decodeBody(t, rec)["message"])
	})
}
