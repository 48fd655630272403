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

type EventHandler struct {
	eventCommands  commands.EventCommands
	roleCommands   commands.RoleCommands
	eventQueries   queries.EventQueries
	bookingQueries queries.BookingQueries
	userQueries    queries.UserQueries
	metricsQueries queries.MetricsQueries
}

func NewEventHandler(
	eventCommands commands.EventCommands,
	roleCommands commands.RoleCommands,
	eventQueries queries.EventQueries,
	bookingQueries queries.BookingQueries,
	userQueries queries.UserQueries,
	metricsQueries queries.MetricsQueries,
) *EventHandler {
	return &EventHandler{
		eventCommands:  eventCommands,
		roleCommands:   roleCommands,
		eventQueries:   eventQueries,
		bookingQueries: bookingQueries,
		userQueries:    userQueries,
		metricsQueries: metricsQueries,
	}
}

// @Summary List events
// @Description Active events for volunteers; staff see every state
// @Tags events
// @Produce json
// @Success 200 {array} queries.EventView
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	staff := ok && role != user.RoleVolunteer

	var (
		views []*queries.EventView
		err   error
	)
	if staff {
		views, err = h.eventQueries.ListAll(c.Request.Context())
	} else {
		views, err = h.eventQueries.ListActive(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get event by ID or slug
// @Tags events
// @Produce json
// @Param id path string true "Event ID or slug"
// @Success 200 {object} queries.EventView
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	param := c.Param("id")

	var (
		view *queries.EventView
		err  error
	)
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		view, err = h.eventQueries.GetByID(c.Request.Context(), id)
	} else {
		view, err = h.eventQueries.GetBySlug(c.Request.Context(), param)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List roles for an event
// @Description Volunteers see visible roles only
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} queries.RoleView
// @Router /events/{id}/roles [get]
func (h *EventHandler) ListRoles(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	visibleOnly := !ok || role == user.RoleVolunteer

	views, err := h.eventQueries.ListRoles(c.Request.Context(), eventID, visibleOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Event occupancy metrics
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} queries.EventMetricsView
// @Failure 404 {object} map[string]string
// @Router /admin/events/{id}/metrics [get]
func (h *EventHandler) Metrics(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	view, err := h.metricsQueries.EventMetrics(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List pending cancellation requests
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} queries.BookingView
// @Router /admin/events/{id}/cancellations [get]
func (h *EventHandler) PendingCancellations(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	views, err := h.bookingQueries.ListPendingCancellations(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List bookings pending approval
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} queries.BookingView
// @Router /admin/events/{id}/approvals [get]
func (h *EventHandler) PendingApprovals(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	views, err := h.bookingQueries.ListPendingApprovals(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List volunteers enrolled in an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} queries.UserProfileView
// @Router /admin/events/{id}/volunteers [get]
func (h *EventHandler) Volunteers(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	views, err := h.userQueries.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create an event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEventRequest true "Event definition"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.eventCommands.CreateEvent(c.Request.Context(), commands.CreateEventInput{
		Name:        req.Name,
		Location:    req.Location,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEventSlug):
			c.JSON(http.StatusConflict, gin.H{"error": "An event with this name already exists"})
		case errors.Is(err, commands.ErrInvalidEventInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update an event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Router /admin/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req reqdto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.eventCommands.UpdateEvent(c.Request.Context(), id, commands.UpdateEventInput{
		Name:        req.Name,
		Location:    req.Location,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		State:       req.State,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, commands.ErrInvalidEventInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Archive an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Router /admin/events/{id}/archive [post]
func (h *EventHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventCommands.ArchiveEvent(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventCommands.DeleteEvent(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, commands.ErrEventHasLiveBooking):
			c.JSON(http.StatusConflict, gin.H{"error": "Event still has bookings"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a role
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateRoleRequest true "Role definition"
// @Success 201 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Router /admin/events/{id}/roles [post]
func (h *EventHandler) CreateRole(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req reqdto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.roleCommands.CreateRole(c.Request.Context(), commands.CreateRoleInput{
		EventID:          eventID,
		Name:             req.Name,
		Description:      req.Description,
		DetailedTasks:    req.DetailedTasks,
		YoutubeURL:       req.YoutubeURL,
		ExperienceLevel:  req.ExperienceLevel,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, commands.ErrInvalidRoleInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update a role
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body reqdto.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Router /admin/roles/{id} [patch]
func (h *EventHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}
	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.roleCommands.UpdateRole(c.Request.Context(), id, commands.UpdateRoleInput{
		Name:             req.Name,
		Description:      req.Description,
		DetailedTasks:    req.DetailedTasks,
		YoutubeURL:       req.YoutubeURL,
		ExperienceLevel:  req.ExperienceLevel,
		RequiresApproval: req.RequiresApproval,
		IsVisible:        req.IsVisible,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		case errors.Is(err, commands.ErrInvalidRoleInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id})
}

// @Summary Delete a role
// @Tags events
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /admin/roles/{id} [delete]
func (h *EventHandler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	if err := h.roleCommands.DeleteRole(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		case errors.Is(err, commands.ErrRoleHasShifts):
			c.JSON(http.StatusConflict, gin.H{"error": "Role still has shifts"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
