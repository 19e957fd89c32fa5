package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/saarthi-api/internal/middleware"
	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/service"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

func newContext(method, target, body string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type fakeUserSrv struct {
	users      []models.User
	lastRole   string
	lastLookup string
	created    *models.CreateUserRequest
}

func (f *fakeUserSrv) ListByRole(_ context.Context, role string) ([]models.User, error) {
	f.lastRole = role
	if role == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "role parameter required")
	}
	return f.users, nil
}

func (f *fakeUserSrv) Get(_ context.Context, id int) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

func (f *fakeUserSrv) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.lastLookup = "username:" + username
	return &models.User{ID: 1, Username: username}, nil
}

func (f *fakeUserSrv) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.lastLookup = "email:" + email
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

func (f *fakeUserSrv) Create(_ context.Context, req models.CreateUserRequest) (*models.User, error) {
	f.created = &req
	return &models.User{ID: 9, Username: req.Username, PasswordHash: "secret-hash"}, nil
}

func TestUserHandlerListRequiresRole(t *testing.T) {
	h := NewUserHandler(&fakeUserSrv{})
	c, rec := newContext(http.MethodGet, "/users", "")

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "role parameter required", decodeError(t, rec).Message)
}

func TestUserHandlerListByRoleReturnsBareArray(t *testing.T) {
	srv := &fakeUserSrv{users: []models.User{{ID: 1, Username: "admin1", Role: models.RoleAdmin}}}
	h := NewUserHandler(srv)
	c, rec := newContext(http.MethodGet, "/users?role=admin", "")

	h.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", srv.lastRole)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "admin1", users[0]["username"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, users[0], "passwordHash")
}

func TestUserHandlerLookups(t *testing.T) {
	srv := &fakeUserSrv{}
	h := NewUserHandler(srv)

	c, rec := newContext(http.MethodGet, "/users?username=student1", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "username:student1", srv.lastLookup)

	c, rec = newContext(http.MethodGet, "/users?email=ghost@demo.com", "")
	h.List(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "email:ghost@demo.com", srv.lastLookup)
}

func TestUserHandlerGetRejectsNonNumericID(t *testing.T) {
	h := NewUserHandler(&fakeUserSrv{})
	c, rec := newContext(http.MethodGet, "/users/abc", "", gin.Param{Key: "id", Value: "abc"})

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, appErrors.ErrValidation.Code, decodeError(t, rec).Code)
}

func TestUserHandlerCreate(t *testing.T) {
	srv := &fakeUserSrv{}
	h := NewUserHandler(srv)

	c, rec := newContext(http.MethodPost, "/users", `{"username":"s1","email":"s1@demo.com","password":"pw","role":"student","name":"S"}`)
	h.Create(c)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "s1", srv.created.Username)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	c, rec = newContext(http.MethodPost, "/users", `{"username":`)
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeAuthSrv struct{}

func (fakeAuthSrv) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password != "password" {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}
	return &models.LoginResponse{User: models.User{ID: 1, Email: req.Email}, AccessToken: "token", ExpiresIn: 60}, nil
}

func (fakeAuthSrv) Me(_ context.Context, userID int) (*models.User, error) {
	return &models.User{ID: userID}, nil
}

func TestAuthHandler(t *testing.T) {
	h := NewAuthHandler(fakeAuthSrv{})

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"a@demo.com","password":"nope"}`)
	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, rec).Message)

	c, rec = newContext(http.MethodPost, "/auth/login", `{"email":"a@demo.com","password":"password"}`)
	h.Login(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"token"`)

	c, rec = newContext(http.MethodGet, "/auth/me", "")
	h.Me(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newContext(http.MethodGet, "/auth/me", "")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: 5})
	h.Me(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

type fakeChatSrv struct {
	lastUser, lastLimit int
}

func (f *fakeChatSrv) History(_ context.Context, userID, limit int) ([]models.ChatMessage, error) {
	f.lastUser, f.lastLimit = userID, limit
	return []models.ChatMessage{}, nil
}

func (f *fakeChatSrv) Send(_ context.Context, req models.CreateChatMessageRequest) (*models.ChatExchange, error) {
	user := models.ChatMessage{ID: 1, UserID: req.UserID, Message: req.Message}
	reply := models.ChatMessage{ID: 2, UserID: req.UserID, Message: "reply", IsAI: true}
	return &models.ChatExchange{UserMessage: user, AIMessage: &reply}, nil
}

func TestChatHandler(t *testing.T) {
	srv := &fakeChatSrv{}
	h := NewChatHandler(srv)

	c, rec := newContext(http.MethodGet, "/chat/4?limit=10", "", gin.Param{Key: "userId", Value: "4"})
	h.History(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.Equal(t, 4, srv.lastUser)
	assert.Equal(t, 10, srv.lastLimit)

	c, rec = newContext(http.MethodGet, "/chat/4?limit=ten", "", gin.Param{Key: "userId", Value: "4"})
	h.History(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext(http.MethodPost, "/chat", `{"userId":4,"message":"hi"}`)
	h.Send(c)
	require.Equal(t, http.StatusOK, rec.Code)
	var exchange map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exchange))
	assert.Equal(t, false, exchange["userMessage"]["isAI"])
	assert.Equal(t, true, exchange["aiMessage"]["isAI"])
}

type fakeAssessmentSrv struct {
	lastCreatedBy *int
}

func (f *fakeAssessmentSrv) List(_ context.Context, createdBy *int) ([]models.Assessment, error) {
	f.lastCreatedBy = createdBy
	return []models.Assessment{}, nil
}

func (f *fakeAssessmentSrv) Get(_ context.Context, id int) (*models.Assessment, error) {
	return &models.Assessment{ID: id}, nil
}

func (f *fakeAssessmentSrv) Create(_ context.Context, req models.CreateAssessmentRequest) (*models.Assessment, error) {
	return &models.Assessment{ID: 1, Title: req.Title}, nil
}

func (f *fakeAssessmentSrv) Update(_ context.Context, id int, _ models.AssessmentPatch) (*models.Assessment, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Assessment not found")
}

func TestAssessmentHandler(t *testing.T) {
	srv := &fakeAssessmentSrv{}
	h := NewAssessmentHandler(srv)

	c, rec := newContext(http.MethodGet, "/assessments?createdBy=2", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.lastCreatedBy)
	assert.Equal(t, 2, *srv.lastCreatedBy)

	c, rec = newContext(http.MethodGet, "/assessments", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, srv.lastCreatedBy)

	c, rec = newContext(http.MethodPost, "/assessments", `{"title":"Quiz"}`)
	h.Create(c)
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(http.MethodPut, "/assessments/77", `{"status":"active"}`, gin.Param{Key: "id", Value: "77"})
	h.Update(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.ErrorBody{Message: "Assessment not found", Code: "NOT_FOUND"}, decodeError(t, rec))
}

type fakeStudentAssessmentSrv struct {
	found bool
}

func (f *fakeStudentAssessmentSrv) ListByStudent(context.Context, int) ([]models.StudentAssessment, error) {
	return []models.StudentAssessment{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeStudentAssessmentSrv) Find(_ context.Context, studentID, assessmentID int) (*models.StudentAssessment, error) {
	f.found = true
	return &models.StudentAssessment{ID: 3, StudentID: studentID, AssessmentID: assessmentID}, nil
}

func (f *fakeStudentAssessmentSrv) Create(_ context.Context, req models.CreateStudentAssessmentRequest) (*models.StudentAssessment, error) {
	return &models.StudentAssessment{ID: 4, StudentID: req.StudentID}, nil
}

func (f *fakeStudentAssessmentSrv) Update(_ context.Context, id int, _ models.StudentAssessmentPatch) (*models.StudentAssessment, error) {
	return &models.StudentAssessment{ID: id}, nil
}

type fakeProgressSrv struct {
	subject string
}

func (f *fakeProgressSrv) ListByStudent(context.Context, int) ([]models.StudentProgress, error) {
	return []models.StudentProgress{}, nil
}

func (f *fakeProgressSrv) FindBySubject(_ context.Context, _ int, subject string) (*models.StudentProgress, error) {
	f.subject = subject
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Student progress not found")
}

func (f *fakeProgressSrv) Create(_ context.Context, req models.CreateStudentProgressRequest) (*models.StudentProgress, error) {
	return &models.StudentProgress{ID: 1, Subject: req.Subject}, nil
}

func (f *fakeProgressSrv) Update(_ context.Context, id int, _ models.StudentProgressPatch) (*models.StudentProgress, error) {
	return &models.StudentProgress{ID: id}, nil
}

func TestStudentHandler(t *testing.T) {
	assessments := &fakeStudentAssessmentSrv{}
	progress := &fakeProgressSrv{}
	h := NewStudentHandler(assessments, progress)

	c, rec := newContext(http.MethodGet, "/student-assessments/1", "", gin.Param{Key: "studentId", Value: "1"})
	h.ListAssessments(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, assessments.found)

	c, rec = newContext(http.MethodGet, "/student-assessments/1?assessmentId=5", "", gin.Param{Key: "studentId", Value: "1"})
	h.ListAssessments(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, assessments.found)
	assert.Contains(t, rec.Body.String(), `"assessmentId":5`)

	c, rec = newContext(http.MethodPut, "/student-assessments/x", `{}`, gin.Param{Key: "id", Value: "x"})
	h.UpdateAssessment(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext(http.MethodGet, "/student-progress/1?subject=Physics", "", gin.Param{Key: "studentId", Value: "1"})
	h.ListProgress(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Physics", progress.subject)

	c, rec = newContext(http.MethodPost, "/student-progress", `{"studentId":1,"subject":"Physics"}`)
	h.CreateProgress(c)
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(http.MethodPost, "/student-progress", `{"studentId":"one"}`)
	h.CreateProgress(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeInterventionSrv struct {
	filter models.InterventionFilter
}

func (f *fakeInterventionSrv) List(_ context.Context, filter models.InterventionFilter) ([]models.Intervention, error) {
	f.filter = filter
	return []models.Intervention{}, nil
}

func (f *fakeInterventionSrv) Create(_ context.Context, req models.CreateInterventionRequest) (*models.Intervention, error) {
	return &models.Intervention{ID: 1, StudentID: req.StudentID}, nil
}

func (f *fakeInterventionSrv) Update(_ context.Context, id int, _ models.InterventionPatch) (*models.Intervention, error) {
	return &models.Intervention{ID: id}, nil
}

func TestInterventionHandlerFilters(t *testing.T) {
	srv := &fakeInterventionSrv{}
	h := NewInterventionHandler(srv)

	c, rec := newContext(http.MethodGet, "/interventions?studentId=3&educatorId=2", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.filter.StudentID)
	require.NotNil(t, srv.filter.EducatorID)
	assert.Equal(t, 3, *srv.filter.StudentID)
	assert.Equal(t, 2, *srv.filter.EducatorID)

	c, rec = newContext(http.MethodGet, "/interventions?educatorId=abc", "")
	h.List(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeAnalyticsSrv struct {
	hit bool
}

func (f *fakeAnalyticsSrv) RiskOverview(context.Context) (*models.RiskOverview, bool, error) {
	return &models.RiskOverview{TotalStudents: 2, AtRisk: []models.RiskStudent{}}, f.hit, nil
}

func (f *fakeAnalyticsSrv) System(context.Context) models.SystemMetrics {
	return models.SystemMetrics{RequestsTotal: 7}
}

type fakeExportSrv struct {
	format string
}

func (f *fakeExportSrv) RiskReport(_ context.Context, format string) (*service.ExportFile, error) {
	f.format = format
	if format != "csv" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return &service.ExportFile{Filename: "risk.csv", ContentType: "text/csv", Body: []byte("a,b\n")}, nil
}

func TestAnalyticsHandler(t *testing.T) {
	analytics := &fakeAnalyticsSrv{hit: true}
	exports := &fakeExportSrv{}
	h := NewAnalyticsHandler(analytics, exports)

	c, rec := newContext(http.MethodGet, "/analytics/risk", "")
	h.Risk(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get(middleware.CacheHeader))
	assert.Contains(t, rec.Body.String(), `"totalStudents":2`)

	c, rec = newContext(http.MethodGet, "/analytics/risk/export", "")
	h.Export(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", exports.format)
	assert.Equal(t, `attachment; filename="risk.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", rec.Body.String())

	c, rec = newContext(http.MethodGet, "/analytics/risk/export?format=xlsx", "")
	h.Export(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext(http.MethodGet, "/analytics/system", "")
	h.System(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestsTotal":7`)
}

func TestMetricsHandlerReadiness(t *testing.T) {
	ready := true
	h := NewMetricsHandler(service.NewMetricsService(), func() bool { return ready })

	c, rec := newContext(http.MethodGet, "/ready", "")
	h.Ready(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	ready = false
	c, rec = newContext(http.MethodGet, "/ready", "")
	h.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	c, rec = newContext(http.MethodGet, "/health", "")
	h.Health(c)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	c, rec = newContext(http.MethodGet, "/metrics", "")
	h.Prometheus(c)
	assert.Equal(t, http.StatusOK, rec.Code)
}
