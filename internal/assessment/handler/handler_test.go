package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"farmguard/internal/assessment"
	"farmguard/pkg/domainerrors"
	"farmguard/pkg/testutil"
)

type stubService struct {
	submitFn  func(ctx context.Context, subjectID string, raw map[string]string) (assessment.Record, error)
	historyFn func(ctx context.Context, subjectID string) ([]assessment.Record, error)
}

func (s stubService) Submit(ctx context.Context, subjectID string, raw map[string]string) (assessment.Record, error) {
	return s.submitFn(ctx, subjectID, raw)
}

func (s stubService) History(ctx context.Context, subjectID string) ([]assessment.Record, error) {
	return s.historyFn(ctx, subjectID)
}

type AssessmentHandlerSuite struct {
	suite.Suite
}

func TestAssessmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssessmentHandlerSuite))
}

func newTestRouter(svc Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func (s *AssessmentHandlerSuite) TestSubmit_Created() {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := stubService{
		submitFn: func(_ context.Context, subjectID string, raw map[string]string) (assessment.Record, error) {
			s.Equal("subject-1", subjectID)
			s.Equal("yes", raw["q1"])
			return assessment.Record{
				ID:        "rec-1",
				SubjectID: subjectID,
				Score:     90,
				RiskLevel: assessment.RiskLow,
				CreatedAt: now,
			}, nil
		},
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/assessment",
		assessment.SubmitRequest{Answers: map[string]string{"q1": "yes"}})
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	require.Equal(s.T(), http.StatusCreated, rr.Code)

	var result assessment.SubmitResult
	testutil.DecodeResponse(s.T(), rr, &result)
	assert.Equal(s.T(), "rec-1", result.ID)
	assert.Equal(s.T(), 90, result.Score)
	assert.Equal(s.T(), assessment.RiskLow, result.RiskLevel)
}

func (s *AssessmentHandlerSuite) TestSubmit_ValidationFailureIs400() {
	svc := stubService{
		submitFn: func(context.Context, string, map[string]string) (assessment.Record, error) {
			return assessment.Record{}, domainerrors.New(domainerrors.CodeBadRequest, "missing answer for required question: q2")
		},
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/assessment",
		assessment.SubmitRequest{Answers: map[string]string{"q1": "yes"}})
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	var body map[string]string
	testutil.DecodeResponse(s.T(), rr, &body)
	assert.Equal(s.T(), "bad_request", body["error"])
}

func (s *AssessmentHandlerSuite) TestSubmit_MalformedBodyIs400() {
	svc := stubService{
		submitFn: func(context.Context, string, map[string]string) (assessment.Record, error) {
			s.Fail("service must not be called")
			return assessment.Record{}, nil
		},
	}

	req := testutil.NewRequest(s.T(), http.MethodPost, "/api/assessment")
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *AssessmentHandlerSuite) TestSubmit_StorageFailureIs500() {
	svc := stubService{
		submitFn: func(context.Context, string, map[string]string) (assessment.Record, error) {
			return assessment.Record{}, domainerrors.Wrap(domainerrors.CodeInternal, "persist assessment", assert.AnError)
		},
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/assessment",
		assessment.SubmitRequest{Answers: map[string]string{"q1": "yes"}})
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	assert.Equal(s.T(), http.StatusInternalServerError, rr.Code)

	var body map[string]string
	testutil.DecodeResponse(s.T(), rr, &body)
	assert.Equal(s.T(), "internal error", body["message"])
}

func (s *AssessmentHandlerSuite) TestHistory_EmptyIsJSONArray() {
	svc := stubService{
		historyFn: func(context.Context, string) ([]assessment.Record, error) {
			return nil, nil
		},
	}

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/assessment/history")
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	require.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), "[]", rr.Body.String())
}
