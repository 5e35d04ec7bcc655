package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/config"
	"github.com/justsurfingit/internhunt/internal/models"
	"github.com/justsurfingit/internhunt/internal/services"
	svcmocks "github.com/justsurfingit/internhunt/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testSecret = "session-secret"
	testOwner  = "user_1"
)

type mocks struct {
	search    *svcmocks.MockJobSearcher
	generator *svcmocks.MockTextGenerator
	resumes   *svcmocks.MockResumeScorer
	assistant *svcmocks.MockAssistant
	profiles  *svcmocks.MockProfiles
	matcher   *svcmocks.MockMatcher
	savedJobs *svcmocks.MockSavedJobs
	notifier  *svcmocks.MockNotifier
	orders    *svcmocks.MockOrderCreator
	webhooks  *svcmocks.MockWebhookProcessor
}

func newServer(t *testing.T, cfg *config.Config) (*gin.Engine, mocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := mocks{
		search:    svcmocks.NewMockJobSearcher(ctrl),
		generator: svcmocks.NewMockTextGenerator(ctrl),
		resumes:   svcmocks.NewMockResumeScorer(ctrl),
		assistant: svcmocks.NewMockAssistant(ctrl),
		profiles:  svcmocks.NewMockProfiles(ctrl),
		matcher:   svcmocks.NewMockMatcher(ctrl),
		savedJobs: svcmocks.NewMockSavedJobs(ctrl),
		notifier:  svcmocks.NewMockNotifier(ctrl),
		orders:    svcmocks.NewMockOrderCreator(ctrl),
		webhooks:  svcmocks.NewMockWebhookProcessor(ctrl),
	}
	if cfg == nil {
		cfg = &config.Config{Env: "test"}
	}
	logger := zap.NewNop()
	server := NewRouter(cfg, logger, auth.NewSessionVerifier(testSecret).Middleware(), Handlers{
		Jobs:      NewJobHandler(m.search, m.generator, m.resumes, m.assistant, logger),
		Profiles:  NewProfileHandler(m.profiles, m.matcher, logger),
		SavedJobs: NewSavedJobHandler(m.savedJobs, m.notifier, logger),
		Payments:  NewPaymentHandler(m.orders, m.webhooks, logger),
	})
	return server, m
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.NewSessionVerifier(testSecret).IssueToken(testOwner, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, server *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", bearer(t))
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestHealth(t *testing.T) {
	server, _ := newServer(t, nil)

	recorder := do(t, server, http.MethodGet, "/api/health", "", false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get(requestIDHeader))
}

func TestInternships(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		mock     func(m mocks)
		wantCode int
		wantBody string
	}{
		{
			name: "results",
			path: "/api/internships?q=go&location=india&tag=remote",
			mock: func(m mocks) {
				m.search.EXPECT().Search(gomock.Any(), services.SearchQuery{Query: "go", Location: "india", Tag: "remote"}).
					Return([]models.JobPosting{{JobID: "j1", Title: "Go Intern", CompanyName: "Acme"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"jobs_results":[{"job_id":"j1","title":"Go Intern","company_name":"Acme","location":"","via":"","description":"","extensions":null,"apply_options":null}]}`,
		},
		{
			name: "missing key",
			path: "/api/internships",
			mock: func(m mocks) {
				m.search.EXPECT().Search(gomock.Any(), services.SearchQuery{}).
					Return(nil, apperr.Config("Missing SERPAPI_KEY in environment variables."))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Missing SERPAPI_KEY in environment variables."}`,
		},
		{
			name: "upstream failure with details",
			path: "/api/internships?q=go",
			mock: func(m mocks) {
				m.search.EXPECT().Search(gomock.Any(), gomock.Any()).
					Return(nil, apperr.Upstream("Failed to fetch from SerpAPI.", errors.New("status 401")).WithDetails(`{"error":"Invalid API key"}`))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch from SerpAPI.","details":"{\"error\":\"Invalid API key\"}"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newServer(t, nil)
			tc.mock(m)

			recorder := do(t, server, http.MethodGet, tc.path, "", false)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mock     func(m mocks)
		wantCode int
		wantBody string
	}{
		{
			name: "ok",
			body: `{"prompt":"hello"}`,
			mock: func(m mocks) {
				m.generator.EXPECT().Generate(gomock.Any(), "hello").Return("hi there", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"text":"hi there"}`,
		},
		{
			name:     "invalid json",
			body:     `{"prompt":`,
			mock:     func(m mocks) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing prompt",
			body: `{}`,
			mock: func(m mocks) {
				m.generator.EXPECT().Generate(gomock.Any(), "").Return("", apperr.InvalidInput("Missing prompt.", nil))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing prompt."}`,
		},
		{
			name: "all models failed",
			body: `{"prompt":"hello"}`,
			mock: func(m mocks) {
				m.generator.EXPECT().Generate(gomock.Any(), "hello").
					Return("", apperr.Upstream("generation failed", errors.New("429")).WithDetails("429"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"generation failed","details":"429"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newServer(t, nil)
			tc.mock(m)

			recorder := do(t, server, http.MethodPost, "/api/gemini", tc.body, false)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestGenerate_RateLimited(t *testing.T) {
	server, m := newServer(t, &config.Config{Env: "test", AIRatePerMinute: 1})
	m.generator.EXPECT().Generate(gomock.Any(), "hello").Return("hi", nil).Times(1)

	first := do(t, server, http.MethodPost, "/api/gemini", `{"prompt":"hello"}`, false)
	second := do(t, server, http.MethodPost, "/api/gemini", `{"prompt":"hello"}`, false)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestGenerate_RateLimitIgnoresForwardedFor(t *testing.T) {
	testCases := []struct {
		name        string
		proxies     []string
		wantLimited int
	}{
		{name: "untrusted peer", wantLimited: 19},
		{name: "trusted proxy", proxies: []string{"192.0.2.1"}, wantLimited: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newServer(t, &config.Config{Env: "test", AIRatePerMinute: 6, TrustedProxies: tc.proxies})
			m.generator.EXPECT().Generate(gomock.Any(), "hello").Return("hi", nil).AnyTimes()

			limited := 0
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/gemini", strings.NewReader(`{"prompt":"hello"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
				recorder := httptest.NewRecorder()
				server.ServeHTTP(recorder, req)
				if recorder.Code == http.StatusTooManyRequests {
					limited++
				}
			}
			assert.Equal(t, tc.wantLimited, limited)
		})
	}
}

func resumeRequest(t *testing.T, withFile bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("jobTitle", "Backend Intern"))
	require.NoError(t, w.WriteField("jobDescription", "Go and SQL"))
	if withFile {
		part, err := w.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ai/score-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestScoreResume(t *testing.T) {
	server, m := newServer(t, nil)
	m.resumes.EXPECT().Score(gomock.Any(), []byte("%PDF-1.4 fake"), "Backend Intern", "Go and SQL").
		Return(&services.ResumeScore{Score: 70, Feedback: "Solid.", SkillGaps: []string{"SQL"}}, nil)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, resumeRequest(t, true))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"score":70,"feedback":"Solid.","skillGaps":["SQL"]}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, resumeRequest(t, false))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, recorder.Body.String())
}

func TestAssist(t *testing.T) {
	server, m := newServer(t, nil)
	body := `{"job_id":"j1","title":"SDE Intern","company_name":"Acme","action":"cold_dm"}`

	recorder := do(t, server, http.MethodPost, "/api/ai/assist", body, false)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	m.assistant.EXPECT().Assist(gomock.Any(), testOwner, services.AssistRequest{
		JobID: "j1", Title: "SDE Intern", CompanyName: "Acme", Action: services.ActionColdDM,
	}).Return("Hi there", nil)

	recorder = do(t, server, http.MethodPost, "/api/ai/assist", body, true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"text":"Hi there"}`, recorder.Body.String())

	recorder = do(t, server, http.MethodPost, "/api/ai/assist", `{"title":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProfile(t *testing.T) {
	server, m := newServer(t, nil)

	m.profiles.EXPECT().Get(gomock.Any(), testOwner).Return(nil, false, nil)
	recorder := do(t, server, http.MethodGet, "/api/user/profile", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{}`, recorder.Body.String())

	m.profiles.EXPECT().Upsert(gomock.Any(), testOwner, models.UserProfile{Name: "Asha", Skills: "Go, React", Year: "3rd Year"}).
		Return(&models.UserProfile{UserID: testOwner, Name: "Asha", Skills: "Go, React", Year: "3rd Year"}, nil)
	recorder = do(t, server, http.MethodPost, "/api/user/profile", `{"name":"Asha","skills":["Go","React"],"year":"3rd Year","isPro":true}`, true)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool               `json:"success"`
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Asha", resp.Profile.Name)
	assert.False(t, resp.Profile.IsPro)

	m.profiles.EXPECT().Get(gomock.Any(), testOwner).Return(nil, false, apperr.Persistence("Failed to fetch profile", errors.New("db down")))
	recorder = do(t, server, http.MethodGet, "/api/user/profile", "", true)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch profile","details":"db down"}`, recorder.Body.String())
}

func TestMatch(t *testing.T) {
	server, m := newServer(t, nil)
	jobs := []models.JobPosting{{JobID: "j1", Description: "React"}}

	m.matcher.EXPECT().MatchJobs(gomock.Any(), testOwner, jobs, services.VariantBasic).
		Return([]services.MatchResult{{JobID: "j1", Score: 70, Reason: "You know React, perfect for their tech stack.", MatchedSkills: []string{"React"}}}, nil)

	body, err := json.Marshal(map[string]any{"jobs": jobs})
	require.NoError(t, err)
	recorder := do(t, server, http.MethodPost, "/api/user/match?variant=basic", string(body), true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"results":[{"job_id":"j1","score":70,"reason":"You know React, perfect for their tech stack.","matched_skills":["React"]}]}`, recorder.Body.String())
}

func TestSavedJobs_List(t *testing.T) {
	server, m := newServer(t, nil)
	jobs := []models.SavedJob{{JobID: "j1", Status: models.StatusSaved}}

	m.savedJobs.EXPECT().List(gomock.Any(), testOwner).Return(jobs, nil)
	m.notifier.EXPECT().Check(gomock.Any(), testOwner, jobs).Return(services.Notification{Count: 1})

	recorder := do(t, server, http.MethodGet, "/api/user/saved-jobs", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get(urgentHeader))

	var got []models.SavedJob
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "j1", got[0].JobID)
}

func TestSavedJobs_Unauthorized(t *testing.T) {
	server, _ := newServer(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/user/saved-jobs"},
		{http.MethodPost, "/api/user/saved-jobs"},
		{http.MethodPatch, "/api/user/saved-jobs/status"},
		{http.MethodPost, "/api/checkout/create-order"},
	} {
		recorder := do(t, server, route.method, route.path, `{}`, false)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, route.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, recorder.Body.String())
	}
}

func TestSavedJobs_Toggle(t *testing.T) {
	server, m := newServer(t, nil)
	body := `{"job_id":"j1","title":"Go Intern","company_name":"Acme"}`
	job := models.JobPosting{JobID: "j1", Title: "Go Intern", CompanyName: "Acme"}

	gomock.InOrder(
		m.savedJobs.EXPECT().Toggle(gomock.Any(), testOwner, job).Return(true, nil),
		m.savedJobs.EXPECT().Toggle(gomock.Any(), testOwner, job).Return(false, nil),
	)

	recorder := do(t, server, http.MethodPost, "/api/user/saved-jobs", body, true)
	assert.JSONEq(t, `{"message":"Job saved","saved":true}`, recorder.Body.String())

	recorder = do(t, server, http.MethodPost, "/api/user/saved-jobs", body, true)
	assert.JSONEq(t, `{"message":"Job removed","saved":false}`, recorder.Body.String())
}

func TestSavedJobs_UpdateStatus(t *testing.T) {
	deadline, err := models.ParseDate("2026-11-02")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		body     string
		mock     func(m mocks)
		wantCode int
		wantBody string
	}{
		{
			name: "updated",
			body: `{"job_id":"j1","status":"Applied","deadline":"2026-11-02"}`,
			mock: func(m mocks) {
				m.savedJobs.EXPECT().Update(gomock.Any(), testOwner, gomock.Any()).
					DoAndReturn(func(_ any, _ string, upd services.StatusUpdate) (*models.SavedJob, error) {
						assert.Equal(t, "j1", upd.JobID)
						assert.Equal(t, models.StatusApplied, *upd.Status)
						assert.Equal(t, "2026-11-02", *upd.Deadline)
						return &models.SavedJob{JobID: "j1", Status: models.StatusApplied, Deadline: &deadline}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"status":"Applied","deadline":"2026-11-02"}`,
		},
		{
			name:     "missing job id",
			body:     `{"status":"Applied"}`,
			mock:     func(m mocks) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			body: `{"job_id":"nope","status":"Offer"}`,
			mock: func(m mocks) {
				m.savedJobs.EXPECT().Update(gomock.Any(), testOwner, gomock.Any()).
					Return(nil, apperr.NotFound("Saved job not found", nil))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Saved job not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newServer(t, nil)
			tc.mock(m)

			recorder := do(t, server, http.MethodPatch, "/api/user/saved-jobs/status", tc.body, true)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestSavedJobs_Delete(t *testing.T) {
	server, m := newServer(t, nil)
	m.savedJobs.EXPECT().Delete(gomock.Any(), testOwner, "j1").Return(nil)

	recorder := do(t, server, http.MethodDelete, "/api/user/saved-jobs?job_id=j1", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}

func TestSavedJobs_Urgent(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	soon := models.NewDate(now.Add(24 * time.Hour))
	later := models.NewDate(now.Add(10 * 24 * time.Hour))

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	saved := svcmocks.NewMockSavedJobs(ctrl)
	h := NewSavedJobHandler(saved, svcmocks.NewMockNotifier(ctrl), zap.NewNop())
	h.now = func() time.Time { return now }

	saved.EXPECT().List(gomock.Any(), testOwner).Return([]models.SavedJob{
		{JobID: "soon", Deadline: &soon},
		{JobID: "later", Deadline: &later},
	}, nil)

	server := gin.New()
	server.GET("/urgent", func(c *gin.Context) { auth.SetOwnerID(c, testOwner) }, h.Urgent)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/urgent", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var note services.Notification
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &note))
	assert.Equal(t, 1, note.Count)
	assert.Equal(t, "Urgent Deadlines!", note.Title)
	assert.Equal(t, "You have 1 application(s) closing soon.", note.Body)
	assert.Empty(t, note.UserID)
	require.Len(t, note.Jobs, 1)
	assert.Equal(t, "soon", note.Jobs[0].JobID)
}

func TestCreateOrder(t *testing.T) {
	server, m := newServer(t, nil)

	m.orders.EXPECT().CreateOrder(gomock.Any(), testOwner, 499.0, "").
		Return(&services.Order{ID: "order_1", Amount: 49900, Currency: "INR", Status: "created"}, nil)
	recorder := do(t, server, http.MethodPost, "/api/checkout/create-order", `{"amount":499}`, true)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var order services.Order
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(49900), order.Amount)

	recorder = do(t, server, http.MethodPost, "/api/checkout/create-order", `{"currency":"INR"}`, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	m.orders.EXPECT().CreateOrder(gomock.Any(), testOwner, 10.0, "INR").
		Return(nil, apperr.Upstream("Failed to create order", errors.New("status 400")).
			WithDetails(services.ProviderError{Code: "BAD_REQUEST_ERROR", Description: "bad amount"}))
	recorder = do(t, server, http.MethodPost, "/api/checkout/create-order", `{"amount":10,"currency":"INR"}`, true)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Failed to create order","details":{"code":"BAD_REQUEST_ERROR","description":"bad amount"}}`, recorder.Body.String())
}

func TestWebhook(t *testing.T) {
	body := `{"event":"order.paid"}`

	testCases := []struct {
		name     string
		mock     func(m mocks)
		wantCode int
		wantBody string
	}{
		{
			name: "accepted",
			mock: func(m mocks) {
				m.webhooks.EXPECT().Process(gomock.Any(), []byte(body), "sig").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true}`,
		},
		{
			name: "bad signature",
			mock: func(m mocks) {
				m.webhooks.EXPECT().Process(gomock.Any(), []byte(body), "sig").
					Return(apperr.InvalidInput("Invalid signature", nil))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid signature"}`,
		},
		{
			name: "db failure",
			mock: func(m mocks) {
				m.webhooks.EXPECT().Process(gomock.Any(), []byte(body), "sig").
					Return(apperr.Persistence("DB Update Failed", errors.New("deadlock")))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"DB Update Failed","details":"deadlock"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newServer(t, nil)
			tc.mock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/razorpay", strings.NewReader(body))
			req.Header.Set(signatureHeader, "sig")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}
