package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/compliance"
	"farmguard/pkg/catalog"
	"farmguard/pkg/domainerrors"
	"farmguard/pkg/testutil"
)

type stubService struct {
	statesFn   func(ctx context.Context, subjectID string) ([]compliance.ItemView, error)
	setStateFn func(ctx context.Context, subjectID, itemID string, status bool) error
}

func (s stubService) States(ctx context.Context, subjectID string) ([]compliance.ItemView, error) {
	return s.statesFn(ctx, subjectID)
}

func (s stubService) SetState(ctx context.Context, subjectID, itemID string, status bool) error {
	return s.setStateFn(ctx, subjectID, itemID, status)
}

func newTestRouter(svc Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestGetStates_ReturnsMergedViews(t *testing.T) {
	svc := stubService{
		statesFn: func(_ context.Context, subjectID string) ([]compliance.ItemView, error) {
			assert.Equal(t, "subject-1", subjectID)
			return []compliance.ItemView{
				{ItemID: "c1", Label: "Footbaths", Cadence: catalog.CadenceDaily, Status: true},
				{ItemID: "c2", Label: "Shower protocol", Cadence: catalog.CadenceDaily},
			}, nil
		},
	}

	req := testutil.NewRequest(t, http.MethodGet, "/api/compliance")
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	require.Equal(t, http.StatusOK, rr.Code)

	var views []compliance.ItemView
	testutil.DecodeResponse(t, rr, &views)
	require.Len(t, views, 2)
	assert.True(t, views[0].Status)
	assert.False(t, views[1].Status)
}

func TestSetState_NoContent(t *testing.T) {
	called := false
	svc := stubService{
		setStateFn: func(_ context.Context, subjectID, itemID string, status bool) error {
			called = true
			assert.Equal(t, "subject-1", subjectID)
			assert.Equal(t, "c3", itemID)
			assert.True(t, status)
			return nil
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/compliance",
		compliance.SetStateRequest{ItemID: "c3", Status: true})
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, called)
}

func TestSetState_UnknownItemIs400(t *testing.T) {
	svc := stubService{
		setStateFn: func(context.Context, string, string, bool) error {
			return domainerrors.New(domainerrors.CodeBadRequest, "unknown compliance item id: c99")
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/compliance",
		compliance.SetStateRequest{ItemID: "c99", Status: true})
	req = testutil.WithSubjectID(req, "subject-1")

	rr := testutil.DoRequest(newTestRouter(svc), req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
