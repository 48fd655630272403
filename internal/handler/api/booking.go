package api

import (
	"errors"
	"net/http"

	"volunteer-hub/internal/domain/user"
	reqdto "volunteer-hub/internal/handler/dto/request"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a shift
// @Description Book a shift for the authenticated volunteer. Full shifts join the waitlist.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 202 {object} resdto.CreateBookingResponse "Waitlisted"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), userID, shiftID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, commands.ErrEventNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is not open for bookings"})
		case errors.Is(err, commands.ErrAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{"error": "Already booked or waitlisted for this shift"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	status := http.StatusCreated
	if result.Outcome == commands.OutcomeWaitlisted {
		status = http.StatusAccepted
	}
	c.JSON(status, resdto.CreateBookingResponse{
		BookingID:        result.BookingID,
		Outcome:          string(result.Outcome),
		WaitlistPosition: result.WaitlistPosition,
	})
}

// @Summary List own bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get booking details
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if view.UserID != userID && role == user.RoleVolunteer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this booking"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Request booking cancellation
// @Description Cancels immediately when the shift starts within 24 hours, otherwise queues for coordinator review
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancellation [post]
func (h *BookingHandler) RequestCancellation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	result, err := h.bookingCommands.RequestCancellation(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this booking"})
		case errors.Is(err, commands.ErrBookingNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking cannot be cancelled in its current state"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	status := "cancellation_requested"
	if result.Immediate {
		status = "cancelled"
	}
	c.JSON(http.StatusOK, resdto.CancellationResponse{BookingID: result.BookingID, Status: status})
}

// @Summary Approve a pending booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.bookingCommands.ApproveBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is not pending approval"})
		case errors.Is(err, commands.ErrShiftFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift has no slots left"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Approve a cancellation request
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancellation/approve [post]
func (h *BookingHandler) ApproveCancellation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.bookingCommands.ApproveCancellation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNoCancellationRequested):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking has no pending cancellation request"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Reject a cancellation request
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectCancellationRequest false "Rejection reason"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancellation/reject [post]
func (h *BookingHandler) RejectCancellation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}
	var req reqdto.RejectCancellationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := h.bookingCommands.RejectCancellation(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNoCancellationRequested):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking has no pending cancellation request"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Cancel any booking
// @Description Administrative cancellation, frees the slot and promotes the waitlist
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.AdminCancelRequest false "Cancellation reason"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) AdminCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}
	var req reqdto.AdminCancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := h.bookingCommands.AdminCancelBooking(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Record attendance
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetAttendanceRequest true "Attendance mark"
// @Success 200 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/attendance [post]
func (h *BookingHandler) SetAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}
	var req reqdto.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.bookingCommands.SetAttendance(c.Request.Context(), id, req.Attendance); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrInvalidAttendanceMark):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attendance must be attended or absent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}
