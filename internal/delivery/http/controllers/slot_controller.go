package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/delivery/http/helpers"
	"weeklyslots/internal/domain"
)

type SlotController struct {
	Logger  *slog.Logger
	Service domain.SlotRegistryService
}

func NewSlotController(logger *slog.Logger, svc domain.SlotRegistryService) *SlotController {
	return &SlotController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSlotRequest is the request body for POST /communities/{communityID}/slots. Weekday and
// time are in the organizer's local frame, given either as offset_minutes or as an IANA time_zone.
// day_of_week is a number 0-6 or an English day name ("Mon", "monday").
type CreateSlotRequest struct {
	DayOfWeek     json.RawMessage `json:"day_of_week" swaggertype:"string" example:"1"`
	Time          string          `json:"time" example:"18:30"`
	OffsetMinutes *int            `json:"offset_minutes,omitempty" example:"-480"`
	TimeZone      string          `json:"time_zone,omitempty" example:"America/Los_Angeles"`
	Idempotent    bool            `json:"idempotent,omitempty"`

	localDay  time.Weekday
	localTime calendar.TimeOfDay
}

func parseDayOfWeek(raw json.RawMessage) (time.Weekday, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		// not a string, so hand the number over as written
		name = string(raw)
	}
	return calendar.ParseWeekday(name)
}

// Validate implements helpers.Validator.
func (r *CreateSlotRequest) Validate() []string {
	var errs []string
	if len(r.DayOfWeek) == 0 || string(r.DayOfWeek) == "null" {
		errs = append(errs, "day_of_week is required")
	} else if d, err := parseDayOfWeek(r.DayOfWeek); err != nil {
		errs = append(errs, "day_of_week must be 0-6 (0 = Sunday) or a day name")
	} else {
		r.localDay = d
	}
	if strings.TrimSpace(r.Time) == "" {
		errs = append(errs, "time is required")
	} else if t, err := calendar.ParseTimeOfDay(r.Time); err != nil {
		errs = append(errs, "time must be HH:MM or HH:MM:SS")
	} else {
		r.localTime = t
	}
	if r.OffsetMinutes != nil && r.TimeZone != "" {
		errs = append(errs, "pass either offset_minutes or time_zone, not both")
	}
	return errs
}

// SlotSuccessResponse is the success response envelope for a single slot.
type SlotSuccessResponse struct {
	Data  *domain.TimeSlot  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SlotListSuccessResponse is the success response envelope for slot lists.
type SlotListSuccessResponse struct {
	Data  []*domain.TimeSlot `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateSlot godoc
// @Summary Create a weekly time slot
// @Description Converts the organizer's local weekday and time to UTC and stores the slot. With idempotent=true an existing slot at the same UTC anchor is returned with 200 instead of inserting a duplicate.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Param body body controllers.CreateSlotRequest true "Local weekday, time and offset"
// @Success 200 {object} controllers.SlotSuccessResponse "Existing slot (idempotent create)"
// @Success 201 {object} controllers.SlotSuccessResponse "Slot created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /communities/{communityID}/slots [post]
func (c *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	communityID, err := helpers.ParseUUIDPath(r, "communityID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req CreateSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	offset := 0
	switch {
	case req.TimeZone != "":
		offset, err = calendar.ResolveOffset(req.TimeZone, time.Now())
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
	case req.OffsetMinutes != nil:
		offset = *req.OffsetMinutes
	}

	slot, created, err := c.Service.CreateSlot(r.Context(), domain.CreateSlotInput{
		CommunityID:   communityID,
		LocalWeekday:  req.localDay,
		LocalTime:     req.localTime,
		OffsetMinutes: offset,
		Idempotent:    req.Idempotent,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slot)
}

// ListSlots godoc
// @Summary List a community's slots
// @Description Returns the canonical UTC slots of the community ordered by day_of_week, time_utc, id.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Success 200 {object} controllers.SlotListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /communities/{communityID}/slots [get]
func (c *SlotController) ListSlots(w http.ResponseWriter, r *http.Request) {
	communityID, err := helpers.ParseUUIDPath(r, "communityID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	slots, err := c.Service.ListSlots(r.Context(), communityID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if slots == nil {
		slots = []*domain.TimeSlot{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}

// ListSlotsLocal godoc
// @Summary List a community's slots in a local week
// @Description Groups the community's slots by weekday in the viewer's frame. Pass offset (minutes east of UTC) or tz (IANA name); neither means UTC.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Param offset query int false "UTC offset in minutes, -720..840"
// @Param tz query string false "IANA time zone, resolved at the current instant"
// @Success 200 {object} controllers.LocalWeekResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /communities/{communityID}/slots/local [get]
func (c *SlotController) ListSlotsLocal(w http.ResponseWriter, r *http.Request) {
	communityID, err := helpers.ParseUUIDPath(r, "communityID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	offset, err := helpers.ParseViewerOffset(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	week, err := c.Service.ListSlotsLocal(r.Context(), communityID, offset)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newLocalWeekData(week, offset))
}

// DeleteSlot godoc
// @Summary Delete a slot
// @Description Deletes the slot and every availability selection for it. Deleting a slot that does not exist succeeds; a slot owned by another community is reported as not found.
// @Tags slots
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Param slotID path string true "Slot ID (UUID)"
// @Success 204 "Deleted or already absent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /communities/{communityID}/slots/{slotID} [delete]
func (c *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	communityID, err := helpers.ParseUUIDPath(r, "communityID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	slotID, err := helpers.ParseUUIDPath(r, "slotID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	slot, err := c.Service.GetSlot(r.Context(), slotID)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if slot.CommunityID != communityID {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "slot not found in community")
		return
	}

	if err := c.Service.DeleteSlot(r.Context(), slotID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
