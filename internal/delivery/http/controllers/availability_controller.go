package controllers

import (
	"log/slog"
	"net/http"

	"weeklyslots/internal/delivery/http/helpers"
	"weeklyslots/internal/delivery/http/middleware"
	"weeklyslots/internal/domain"
)

// AvailabilityController serves the /me routes. The acting user is always taken from the
// request context, never from the path or body.
type AvailabilityController struct {
	Logger  *slog.Logger
	Service domain.AvailabilityService
}

func NewAvailabilityController(logger *slog.Logger, svc domain.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		Logger:  logger,
		Service: svc,
	}
}

// MyAvailabilityData lists the slot ids the user selected, sorted.
type MyAvailabilityData struct {
	SlotIDs []string `json:"slot_ids"`
}

// MyAvailabilitySuccessResponse is the success response envelope for GET /me/availability.
type MyAvailabilitySuccessResponse struct {
	Data  MyAvailabilityData `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// SlotSelectionListSuccessResponse is the success response envelope for GET /me/communities/{communityID}/slots.
type SlotSelectionListSuccessResponse struct {
	Data  []*domain.SlotSelection `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ToggleSlotData is the authoritative selection state after a toggle.
type ToggleSlotData struct {
	SlotID   string `json:"slot_id"`
	Selected bool   `json:"selected"`
}

// ToggleSlotSuccessResponse is the success response envelope for POST /me/slots/{slotID}/toggle.
type ToggleSlotSuccessResponse struct {
	Data  ToggleSlotData    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListMyAvailability godoc
// @Summary List my selected slot ids
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MyAvailabilitySuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /me/availability [get]
func (c *AvailabilityController) ListMyAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	set, err := c.Service.ListUserAvailability(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MyAvailabilityData{SlotIDs: set.Sorted()})
}

// ListMyAvailableSlots godoc
// @Summary List the slots I am available at
// @Description Returns canonical UTC slots across all communities, ordered by day_of_week, time_utc, id.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SlotListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /me/availability/slots [get]
func (c *AvailabilityController) ListMyAvailableSlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slots, err := c.Service.ListUserAvailableSlots(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if slots == nil {
		slots = []*domain.TimeSlot{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}

// ListCommunitySlots godoc
// @Summary List a community's slots with my selections
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Success 200 {object} controllers.SlotSelectionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /me/communities/{communityID}/slots [get]
func (c *AvailabilityController) ListCommunitySlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	communityID, err := helpers.ParseUUIDPath(r, "communityID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	selections, err := c.Service.ListCommunitySlotsWithAvailability(r.Context(), userID, communityID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if selections == nil {
		selections = []*domain.SlotSelection{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, selections)
}

// GetMyWeek godoc
// @Summary My local week for a community
// @Description Groups the community's slots by weekday in the viewer's frame with my selections. Pass offset or tz; neither means UTC.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param communityID path string true "Community ID (UUID)"
// @Param offset query int false "UTC offset in minutes, -720..840"
// @Param tz query string false "IANA time zone, resolved at the current instant"
// @Success 200 {object} controllers.LocalWeekResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /me/communities/{communityID}/week [get]
func (c *AvailabilityController) GetMyWeek(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
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
	week, err := c.Service.GetLocalWeek(r.Context(), userID, communityID, offset)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newLocalWeekData(week, offset))
}

// ToggleSlot godoc
// @Summary Toggle my availability for a slot
// @Description Flips whether I am available at the slot and returns the new state.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param slotID path string true "Slot ID (UUID)"
// @Success 200 {object} controllers.ToggleSlotSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /me/slots/{slotID}/toggle [post]
func (c *AvailabilityController) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slotID, err := helpers.ParseUUIDPath(r, "slotID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	selected, err := c.Service.ToggleSlot(r.Context(), userID, slotID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ToggleSlotData{SlotID: slotID, Selected: selected})
}
