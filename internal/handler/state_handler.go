package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legajos/internal/domain"
	"legajos/internal/service"
)

// StateHandler handles the persisted presentation state: calendar events
// and theme.
type StateHandler struct {
	appStateService service.AppStateService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(appStateService service.AppStateService) *StateHandler {
	return &StateHandler{appStateService: appStateService}
}

// CalendarEvents handles GET /api/v1/state/calendar
// @Summary      Load the calendar events
// @Tags         state
// @Produce      json
// @Success      200 {object} APIResponse{data=service.CalendarEvents}
// @Router       /state/calendar [get]
func (h *StateHandler) CalendarEvents(c *gin.Context) {
	events, err := h.appStateService.CalendarEvents()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, events)
}

// SaveCalendarEvents handles PUT /api/v1/state/calendar
// @Summary      Replace the calendar events wholesale
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body body service.CalendarEvents true "Events keyed by ISO date"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Router       /state/calendar [put]
func (h *StateHandler) SaveCalendarEvents(c *gin.Context) {
	var events service.CalendarEvents
	if err := c.ShouldBindJSON(&events); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid calendar payload")
		return
	}
	if err := h.appStateService.SaveCalendarEvents(events); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}

// Theme handles GET /api/v1/state/theme
// @Summary      Load the theme
// @Tags         state
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.Theme}
// @Router       /state/theme [get]
func (h *StateHandler) Theme(c *gin.Context) {
	theme, err := h.appStateService.Theme()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, theme)
}

// SaveTheme handles PUT /api/v1/state/theme
// @Summary      Replace the theme wholesale
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body body domain.Theme true "Theme"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Router       /state/theme [put]
func (h *StateHandler) SaveTheme(c *gin.Context) {
	var theme domain.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid theme payload")
		return
	}
	if err := h.appStateService.SaveTheme(&theme); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}
