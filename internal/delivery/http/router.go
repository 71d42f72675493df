package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weeklyslots/internal/delivery/http/controllers"
)

// Middleware wraps a single route handler.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// NewRouter initializes the HTTP router with all application routes. requireAuth guards every
// API route; requireOrganizer additionally guards slot mutations.
func NewRouter(
	slots *controllers.SlotController,
	availability *controllers.AvailabilityController,
	health *controllers.HealthController,
	requireAuth Middleware,
	requireOrganizer Middleware,
) *http.ServeMux {
	mux := http.NewServeMux()
	organizer := func(h http.HandlerFunc) http.HandlerFunc { return requireAuth(requireOrganizer(h)) }

	// Slot registry
	mux.HandleFunc("POST /communities/{communityID}/slots", organizer(slots.CreateSlot))
	mux.HandleFunc("GET /communities/{communityID}/slots", requireAuth(slots.ListSlots))
	mux.HandleFunc("GET /communities/{communityID}/slots/local", requireAuth(slots.ListSlotsLocal))
	mux.HandleFunc("DELETE /communities/{communityID}/slots/{slotID}", organizer(slots.DeleteSlot))

	// Member availability
	mux.HandleFunc("GET /me/availability", requireAuth(availability.ListMyAvailability))
	mux.HandleFunc("GET /me/availability/slots", requireAuth(availability.ListMyAvailableSlots))
	mux.HandleFunc("GET /me/communities/{communityID}/slots", requireAuth(availability.ListCommunitySlots))
	mux.HandleFunc("GET /me/communities/{communityID}/week", requireAuth(availability.GetMyWeek))
	mux.HandleFunc("POST /me/slots/{slotID}/toggle", requireAuth(availability.ToggleSlot))

	mux.HandleFunc("GET /healthz", health.Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
