//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/handler/api"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/tests/common/httptest"
	commandsmock "volunteer-hub/tests/mock/commands"
	queriesmock "volunteer-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleVolunteer

	// Mock middleware behavior: inject the suite's identity.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	})
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancellation", s.handler.RequestCancellation)
	s.router.POST("/bookings/:id/approve", s.handler.Approve)
	s.router.POST("/bookings/:id/cancellation/reject", s.handler.RejectCancellation)
	s.router.POST("/bookings/:id/attendance", s.handler.SetAttendance)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	shiftID := uuid.New()
	reqBody := map[string]any{"shift_id": shiftID.String()}

	s.Run("success: 201 Created for a confirmed booking", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, shiftID).
			Return(&commands.CreateBookingResult{BookingID: bookingID, Outcome: commands.OutcomeConfirmed}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal("confirmed", response.Outcome)
	})

	s.Run("success: 202 Accepted when waitlisted", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, shiftID).
			Return(&commands.CreateBookingResult{BookingID: uuid.New(), Outcome: commands.OutcomeWaitlisted, WaitlistPosition: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(3, response.WaitlistPosition)
	})

	s.Run("error: 409 Conflict for duplicate bookings", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, shiftID).
			Return(nil, commands.ErrAlreadyBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already booked")
	})

	s.Run("error: 409 Conflict for inactive events", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, shiftID).
			Return(nil, commands.ErrEventNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not open for bookings")
	})

	s.Run("error: 404 Not Found for unknown shifts", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, shiftID).
			Return(nil, commands.ErrShiftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shift not found")
	})

	s.Run("error: 400 Bad Request for a malformed shift ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"shift_id": "not-a-uuid"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: owners see their own booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, UserID: s.userID, Status: "confirmed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 Forbidden when a volunteer reads someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, UserID: uuid.New(), Status: "confirmed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("success: coordinators see any booking", func() {
		s.role = user.RoleCoordinator
		defer func() { s.role = user.RoleVolunteer }()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, UserID: uuid.New(), Status: "confirmed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown bookings", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestRequestCancellation() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancellation"

	s.Run("success: immediate cancellation reports cancelled", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), s.userID, bookingID).
			Return(&commands.CancellationResult{BookingID: bookingID, Immediate: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("success: cutoff-protected cancellation queues for review", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), s.userID, bookingID).
			Return(&commands.CancellationResult{BookingID: bookingID, Immediate: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancellation_requested", response.Status)
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), s.userID, bookingID).
			Return(nil, commands.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not the owner")
	})

	s.Run("error: 409 Conflict when the booking is not confirmed", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), s.userID, bookingID).
			Return(nil, commands.ErrBookingNotConfirmed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be cancelled")
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/approve"

	s.Run("success: 200 OK", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 Conflict when the shift filled meanwhile", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), bookingID).
			Return(commands.ErrShiftFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no slots left")
	})
}

func (s *BookingHandlerTestSuite) TestRejectCancellation() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancellation/reject"

	s.Run("success: passes the reason through", func() {
		s.mockCommands.EXPECT().RejectCancellation(gomock.Any(), bookingID, "shift is critical").
			Return(nil).Times(1)

		body := map[string]any{"reason": "shift is critical"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: the body is optional", func() {
		s.mockCommands.EXPECT().RejectCancellation(gomock.Any(), bookingID, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 Conflict without a pending request", func() {
		s.mockCommands.EXPECT().RejectCancellation(gomock.Any(), bookingID, "").
			Return(commands.ErrNoCancellationRequested).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no pending cancellation")
	})
}

func (s *BookingHandlerTestSuite) TestSetAttendance() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/attendance"

	s.Run("success: records attendance", func() {
		s.mockCommands.EXPECT().SetAttendance(gomock.Any(), bookingID, "attended").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"attendance": "attended"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for unknown marks", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"attendance": "maybe"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
