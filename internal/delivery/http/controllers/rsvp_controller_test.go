package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funlet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRSVPService struct {
	data     *domain.RSVPData
	err      error
	lastCode string
}

func (f *fakeRSVPService) GetRSVPData(ctx context.Context, invitationCode string) (*domain.RSVPData, error) {
	f.lastCode = invitationCode
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func postRSVPData(t *testing.T, c *RSVPController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rsvp-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.GetRSVPData(rec, req)
	return rec
}

func TestGetRSVPData_Success(t *testing.T) {
	svc := &fakeRSVPService{data: &domain.RSVPData{
		Invitation: &domain.Invitation{ID: "inv-1", InvitationCode: "abc123xy"},
		Event:      &domain.Event{ID: "evt-1", Title: "Taco Night"},
		HostName:   "Ana",
		Counts:     domain.RSVPCounts{In: 2, NoResponse: 1},
	}}
	c := NewRSVPController(testLogger, svc)

	rec := postRSVPData(t, c, `{"invitation_code":"abc123xy"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123xy", svc.lastCode)

	var resp struct {
		Data  *domain.RSVPData `json:"data"`
		Error any              `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Taco Night", resp.Data.Event.Title)
	assert.Equal(t, 2, resp.Data.Counts.In)
}

func TestGetRSVPData_NotFound(t *testing.T) {
	svc := &fakeRSVPService{err: domain.ErrNotFound}
	c := NewRSVPController(testLogger, svc)

	rec := postRSVPData(t, c, `{"invitation_code":"nope1234"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}

func TestGetRSVPData_MissingCode(t *testing.T) {
	svc := &fakeRSVPService{}
	c := NewRSVPController(testLogger, svc)

	rec := postRSVPData(t, c, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invitation_code is required")
	assert.Empty(t, svc.lastCode)
}

func TestGetRSVPData_ServiceError(t *testing.T) {
	svc := &fakeRSVPService{err: errors.New("db down")}
	c := NewRSVPController(testLogger, svc)

	rec := postRSVPData(t, c, `{"invitation_code":"abc123xy"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"internal_error"`)
}
