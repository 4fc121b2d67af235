package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/alert"
	alerthandler "farmguard/internal/alert/handler"
	"farmguard/internal/assessment"
	assessmenthandler "farmguard/internal/assessment/handler"
	"farmguard/internal/compliance"
	compliancehandler "farmguard/internal/compliance/handler"
	"farmguard/internal/dashboard"
	dashboardhandler "farmguard/internal/dashboard/handler"
	"farmguard/internal/identity"
	identityhandler "farmguard/internal/identity/handler"
	"farmguard/internal/jwttoken"
	"farmguard/internal/profile"
	profilehandler "farmguard/internal/profile/handler"
	httptransport "farmguard/internal/transport/http"
	"farmguard/pkg/catalog"
	"farmguard/pkg/testutil"
)

// newAPI assembles the full router on in-memory stores, mirroring the wiring
// in cmd/server but without the audit worker or metrics registry.
func newAPI(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.Default()

	alertStore := alert.NewInMemoryStore()
	require.NoError(t, alert.SeedSampleAlerts(context.Background(), alertStore))

	jwtService := jwttoken.NewJWTService("integration-test-key", "farmguard", "farmguard-api")
	validator := jwttoken.NewMiddlewareAdapter(jwtService)
	revocation := identity.NewMemoryTRL()

	identityService := identity.NewService(identity.NewInMemoryUserStore(), jwtService, revocation, time.Hour)
	profileService := profile.NewService(profile.NewInMemoryStore())
	assessmentService := assessment.NewService(cat, assessment.NewInMemoryStore(), 5)
	complianceService := compliance.NewService(cat, compliance.NewInMemoryStore())
	alertService := alert.NewService(alertStore)
	dashboardService := dashboard.NewService(assessmentService, complianceService, alertService, 3)

	return httptransport.NewRouter(httptransport.Handlers{
		Identity:   identityhandler.New(identityService, logger),
		Profile:    profilehandler.New(profileService, logger),
		Assessment: assessmenthandler.New(assessmentService, logger),
		Compliance: compliancehandler.New(complianceService, logger),
		Alert:      alerthandler.New(alertService, logger),
		Dashboard:  dashboardhandler.New(dashboardService, logger),
	}, validator, revocation, nil, logger)
}

func signupAndLogin(t *testing.T, api http.Handler, email string) string {
	t.Helper()

	rr := testutil.DoRequest(api, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/signup",
		identity.SignupRequest{Name: "Jordan Reyes", Email: email, Password: "pasture-gate-9"}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = testutil.DoRequest(api, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login",
		identity.LoginRequest{Email: email, Password: "pasture-gate-9"}))
	require.Equal(t, http.StatusOK, rr.Code)

	var result identity.LoginResult
	testutil.DecodeResponse(t, rr, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}

func authed(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = testutil.NewJSONRequest(t, method, path, body)
	} else {
		req = testutil.NewRequest(t, method, path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func allAnswers(value string) map[string]string {
	answers := make(map[string]string, len(catalog.Default().Questions))
	for _, q := range catalog.Default().Questions {
		answers[q.ID] = value
	}
	return answers
}

func TestFullFlow_SignupToDashboard(t *testing.T) {
	api := newAPI(t)
	token := signupAndLogin(t, api, "jordan@greypine.farm")

	// Duplicate signup conflicts.
	rr := testutil.DoRequest(api, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/signup",
		identity.SignupRequest{Name: "Jordan Reyes", Email: "jordan@greypine.farm", Password: "pasture-gate-9"}))
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Protected routes reject missing tokens.
	rr = testutil.DoRequest(api, testutil.NewRequest(t, http.MethodGet, "/api/assessment/history"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// First submission: all yes is a perfect score.
	rr = testutil.DoRequest(api, authed(t, http.MethodPost, "/api/assessment", token,
		assessment.SubmitRequest{Answers: allAnswers("yes")}))
	require.Equal(t, http.StatusCreated, rr.Code)

	var first assessment.SubmitResult
	testutil.DecodeResponse(t, rr, &first)
	assert.Equal(t, 100, first.Score)
	assert.Equal(t, assessment.RiskLow, first.RiskLevel)

	// Second submission: all no bottoms out.
	rr = testutil.DoRequest(api, authed(t, http.MethodPost, "/api/assessment", token,
		assessment.SubmitRequest{Answers: allAnswers("no")}))
	require.Equal(t, http.StatusCreated, rr.Code)

	var second assessment.SubmitResult
	testutil.DecodeResponse(t, rr, &second)
	assert.Equal(t, 0, second.Score)
	assert.Equal(t, assessment.RiskHigh, second.RiskLevel)

	// History is newest first.
	rr = testutil.DoRequest(api, authed(t, http.MethodGet, "/api/assessment/history", token, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []assessment.Record
	testutil.DecodeResponse(t, rr, &records)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)

	// Mark one checklist item done.
	rr = testutil.DoRequest(api, authed(t, http.MethodPost, "/api/compliance", token,
		compliance.SetStateRequest{ItemID: "c1", Status: true}))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(api, authed(t, http.MethodGet, "/api/compliance", token, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var views []compliance.ItemView
	testutil.DecodeResponse(t, rr, &views)
	require.Len(t, views, len(catalog.Default().ComplianceItems))
	done := 0
	for _, v := range views {
		if v.Status {
			done++
			assert.Equal(t, "c1", v.ItemID)
		}
	}
	assert.Equal(t, 1, done)

	// Dashboard reflects the latest assessment and the compliance rate.
	rr = testutil.DoRequest(api, authed(t, http.MethodGet, "/api/dashboard", token, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var stats dashboard.Stats
	testutil.DecodeResponse(t, rr, &stats)
	assert.Equal(t, string(assessment.RiskHigh), stats.CurrentRisk)
	assert.Equal(t, 0, stats.CurrentScore)
	require.Len(t, stats.HistorySeries, 2)
	assert.Equal(t, 100, stats.HistorySeries[0].Score) // chronological
	assert.Equal(t, 0, stats.HistorySeries[1].Score)
	assert.InDelta(t, 1.0/float64(len(views)), stats.ComplianceRate, 1e-9)
	assert.Len(t, stats.AlertSummary, 3)
}

func TestDashboard_EmptyState(t *testing.T) {
	api := newAPI(t)
	token := signupAndLogin(t, api, "fresh@greypine.farm")

	rr := testutil.DoRequest(api, authed(t, http.MethodGet, "/api/dashboard", token, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var stats dashboard.Stats
	testutil.DecodeResponse(t, rr, &stats)
	assert.Equal(t, dashboard.RiskNotAssessed, stats.CurrentRisk)
	assert.Equal(t, 0, stats.CurrentScore)
	assert.NotNil(t, stats.HistorySeries)
	assert.Empty(t, stats.HistorySeries)
	assert.Zero(t, stats.ComplianceRate)
}

func TestLogout_RevokesToken(t *testing.T) {
	api := newAPI(t)
	token := signupAndLogin(t, api, "logout@greypine.farm")

	rr := testutil.DoRequest(api, authed(t, http.MethodGet, "/api/auth/me", token, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(api, authed(t, http.MethodPost, "/api/auth/logout", token, nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(api, authed(t, http.MethodGet, "/api/auth/me", token, nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSubjectIsolation(t *testing.T) {
	api := newAPI(t)
	tokenA := signupAndLogin(t, api, "a@greypine.farm")
	tokenB := signupAndLogin(t, api, "b@greypine.farm")

	rr := testutil.DoRequest(api, authed(t, http.MethodPost, "/api/assessment", tokenA,
		assessment.SubmitRequest{Answers: allAnswers("yes")}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = testutil.DoRequest(api, authed(t, http.MethodGet, "/api/assessment/history", tokenB, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []json.RawMessage
	testutil.DecodeResponse(t, rr, &records)
	assert.Empty(t, records)
}
