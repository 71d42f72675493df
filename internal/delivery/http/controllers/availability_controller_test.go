package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/delivery/http/helpers"
	"weeklyslots/internal/delivery/http/middleware"
	"weeklyslots/internal/domain"
)

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.SetUserID(req.Context(), userID))
}

func TestAvailabilityController_Unauthorized(t *testing.T) {
	ctrl := NewAvailabilityController(discardLogger(), &mockAvailabilityService{})
	handlers := map[string]http.HandlerFunc{
		"availability":    ctrl.ListMyAvailability,
		"available slots": ctrl.ListMyAvailableSlots,
		"community slots": ctrl.ListCommunitySlots,
		"week":            ctrl.GetMyWeek,
		"toggle":          ctrl.ToggleSlot,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h(rr, httptest.NewRequest(http.MethodGet, "/me/availability", nil))
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, helpers.ErrCodeUnauthorized, errorCode(t, rr))
		})
	}
}

func TestAvailabilityController_ListMyAvailability(t *testing.T) {
	svc := &mockAvailabilityService{set: domain.NewSlotIDSet("b", "a", "c")}
	ctrl := NewAvailabilityController(discardLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.ListMyAvailability(rr, asUser(httptest.NewRequest(http.MethodGet, "/me/availability", nil), "member-1"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "member-1", svc.userID)
	assert.JSONEq(t, `{"data":{"slot_ids":["a","b","c"]},"error":null}`, rr.Body.String())
}

func TestAvailabilityController_ListMyAvailableSlots(t *testing.T) {
	svc := &mockAvailabilityService{slots: []*domain.TimeSlot{
		{ID: slotOne, CommunityID: communityA, DayOfWeek: time.Tuesday, TimeUTC: calendar.MustTimeOfDay(7, 15, 0)},
	}}
	ctrl := NewAvailabilityController(discardLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.ListMyAvailableSlots(rr, asUser(httptest.NewRequest(http.MethodGet, "/me/availability/slots", nil), "member-1"))

	require.Equal(t, http.StatusOK, rr.Code)
	var raw struct {
		Data []struct {
			ID        string `json:"id"`
			DayOfWeek int    `json:"day_of_week"`
			TimeUTC   string `json:"time_utc"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw.Data, 1)
	assert.Equal(t, 2, raw.Data[0].DayOfWeek)
	assert.Equal(t, "07:15:00", raw.Data[0].TimeUTC)
}

func TestAvailabilityController_ListCommunitySlots(t *testing.T) {
	svc := &mockAvailabilityService{selections: []*domain.SlotSelection{
		{Slot: &domain.TimeSlot{ID: slotOne, CommunityID: communityA}, Selected: true},
	}}
	ctrl := NewAvailabilityController(discardLogger(), svc)
	req := httptest.NewRequest(http.MethodGet, "/me/communities/"+communityA+"/slots", nil)
	req.SetPathValue("communityID", communityA)
	rr := httptest.NewRecorder()

	ctrl.ListCommunitySlots(rr, asUser(req, "member-1"))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp SlotSelectionListSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].Selected)
	assert.Equal(t, slotOne, resp.Data[0].Slot.ID)
}

func TestAvailabilityController_GetMyWeek(t *testing.T) {
	slot := &domain.TimeSlot{ID: slotOne, CommunityID: communityA, DayOfWeek: time.Monday, TimeUTC: calendar.MustTimeOfDay(2, 0, 0)}
	svc := &mockAvailabilityService{week: domain.LocalWeek{time.Sunday: {{
		Slot: slot, LocalWeekday: time.Sunday, LocalTime: calendar.MustTimeOfDay(18, 0, 0), LocalTimeLabel: "6:00 PM", Selected: true,
	}}}}
	ctrl := NewAvailabilityController(discardLogger(), svc)
	req := httptest.NewRequest(http.MethodGet, "/me/communities/"+communityA+"/week?offset=-480", nil)
	req.SetPathValue("communityID", communityA)
	rr := httptest.NewRecorder()

	ctrl.GetMyWeek(rr, asUser(req, "member-1"))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, -480, svc.offset)
	var resp LocalWeekResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, -480, resp.Data.OffsetMinutes)
	require.Len(t, resp.Data.Days, 1)
	day := resp.Data.Days[0]
	assert.Equal(t, time.Sunday, day.Weekday)
	require.Len(t, day.Slots, 1)
	assert.True(t, day.Slots[0].Selected)
	assert.Equal(t, calendar.MustTimeOfDay(18, 0, 0), day.Slots[0].LocalTime)
	assert.Equal(t, time.Monday, day.Slots[0].Slot.DayOfWeek)
}

func TestAvailabilityController_ToggleSlot(t *testing.T) {
	tests := []struct {
		name       string
		slotID     string
		svc        *mockAvailabilityService
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:       "selected",
			slotID:     slotOne,
			svc:        &mockAvailabilityService{selected: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"slot_id":"` + slotOne + `","selected":true},"error":null}`,
		},
		{
			name:       "unselected",
			slotID:     slotOne,
			svc:        &mockAvailabilityService{selected: false},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"slot_id":"` + slotOne + `","selected":false},"error":null}`,
		},
		{
			name:       "slot gone",
			slotID:     slotOne,
			svc:        &mockAvailabilityService{err: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "bad slot id",
			slotID:     "abc",
			svc:        &mockAvailabilityService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unabsorbed conflict",
			slotID:     slotOne,
			svc:        &mockAvailabilityService{err: domain.ErrConflict},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "unexpected error",
			slotID:     slotOne,
			svc:        &mockAvailabilityService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAvailabilityController(discardLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/me/slots/"+tt.slotID+"/toggle", nil)
			req.SetPathValue("slotID", tt.slotID)
			rr := httptest.NewRecorder()

			ctrl.ToggleSlot(rr, asUser(req, "member-1"))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
				return
			}
			assert.Equal(t, "member-1", tt.svc.userID)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
