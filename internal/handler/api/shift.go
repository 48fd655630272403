package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "volunteer-hub/internal/handler/dto/request"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	shiftCommands       commands.ShiftCommands
	coordinatorCommands commands.CoordinatorCommands
	shiftQueries        queries.ShiftQueries
	bookingQueries      queries.BookingQueries
}

func NewShiftHandler(
	shiftCommands commands.ShiftCommands,
	coordinatorCommands commands.CoordinatorCommands,
	shiftQueries queries.ShiftQueries,
	bookingQueries queries.BookingQueries,
) *ShiftHandler {
	return &ShiftHandler{
		shiftCommands:       shiftCommands,
		coordinatorCommands: coordinatorCommands,
		shiftQueries:        shiftQueries,
		bookingQueries:      bookingQueries,
	}
}

// @Summary Get shift details
// @Description Shift with live occupancy, vacancies and coordinator contacts
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} queries.ShiftView
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	view, err := h.shiftQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List shifts for an event
// @Description Optionally filtered by date (YYYY-MM-DD) or role
// @Tags shifts
// @Produce json
// @Param id path string true "Event ID"
// @Param date query string false "Filter by date"
// @Param role_id query string false "Filter by role"
// @Success 200 {array} queries.ShiftView
// @Router /events/{id}/shifts [get]
func (h *ShiftHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if roleParam := c.Query("role_id"); roleParam != "" {
		roleID, err := uuid.Parse(roleParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
			return
		}
		views, err := h.shiftQueries.ListByRole(c.Request.Context(), roleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	if dateParam := c.Query("date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		views, err := h.shiftQueries.ListByDate(c.Request.Context(), eventID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := h.shiftQueries.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary View shift waitlist
// @Tags shifts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} queries.WaitlistView
// @Router /shifts/{id}/waitlist [get]
func (h *ShiftHandler) Waitlist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	entries, err := h.shiftQueries.Waitlist(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary List bookings for a shift
// @Tags shifts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} queries.BookingView
// @Router /shifts/{id}/bookings [get]
func (h *ShiftHandler) Bookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	views, err := h.bookingQueries.ListByShift(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create a shift
// @Tags shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateShiftRequest true "Shift definition"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	var req reqdto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	id, err := h.shiftCommands.CreateShift(c.Request.Context(), commands.CreateShiftInput{
		EventID:        eventID,
		RoleID:         roleID,
		Date:           req.Date,
		TimeWindow:     req.TimeWindow,
		TotalVacancies: req.TotalVacancies,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		case errors.Is(err, commands.ErrRoleEventMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "Role belongs to a different event"})
		case errors.Is(err, commands.ErrInvalidShiftInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Resize a shift
// @Description Change total vacancies. Growing drains the waitlist into freed slots.
// @Tags shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body reqdto.ResizeShiftRequest true "New capacity"
// @Success 200 {object} resdto.IDResponse
// @Failure 409 {object} map[string]string
// @Router /admin/shifts/{id}/resize [post]
func (h *ShiftHandler) Resize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}
	var req reqdto.ResizeShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.shiftCommands.ResizeShift(c.Request.Context(), id, req.TotalVacancies); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrCapacityBelowBooked):
			c.JSON(http.StatusConflict, gin.H{"error": "Capacity below current confirmed bookings"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Reschedule a shift
// @Description Move a shift to a new date or time window and notify affected volunteers
// @Tags shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body reqdto.RescheduleShiftRequest true "New schedule"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Router /admin/shifts/{id}/reschedule [post]
func (h *ShiftHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}
	var req reqdto.RescheduleShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.shiftCommands.RescheduleShift(c.Request.Context(), commands.RescheduleShiftInput{
		ShiftID:    id,
		Date:       req.Date,
		TimeWindow: req.TimeWindow,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrInvalidShiftInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Delete a shift
// @Tags shifts
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /admin/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	if err := h.shiftCommands.DeleteShift(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrShiftHasLiveBookings):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift still has live bookings"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Assign a coordinator
// @Description Assigns the user as coordinator on every shift sharing this shift's slot
// @Tags shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body reqdto.AssignCoordinatorRequest true "User to assign"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/shifts/{id}/coordinators [post]
func (h *ShiftHandler) AssignCoordinator(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}
	var req reqdto.AssignCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.coordinatorCommands.Assign(c.Request.Context(), shiftID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, commands.ErrUserNotOperable):
			c.JSON(http.StatusConflict, gin.H{"error": "User account is not active"})
		case errors.Is(err, commands.ErrAlreadyCoordinator):
			c.JSON(http.StatusConflict, gin.H{"error": "User already coordinates this slot"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: shiftID})
}

// @Summary Remove a coordinator
// @Description Removes the user from every shift sharing this shift's slot
// @Tags shifts
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/shifts/{id}/coordinators/{user_id} [delete]
func (h *ShiftHandler) RemoveCoordinator(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.coordinatorCommands.Remove(c.Request.Context(), shiftID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, commands.ErrNotCoordinator):
			c.JSON(http.StatusConflict, gin.H{"error": "User does not coordinate this slot"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
