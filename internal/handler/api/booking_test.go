//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rehearsal-rooms/internal/handler/api"
	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/tests/common/httptest"
	commandsmock "rehearsal-rooms/tests/mock/commands"
	queriesmock "rehearsal-rooms/tests/mock/queries"

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
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("client_id", uuid.New())
		c.Set("client_name", "band")
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.SubmitBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.ChangeStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleView() *queries.BookingView {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:              uuid.New(),
		RoomID:          uuid.New(),
		ClientID:        uuid.New(),
		ClientName:      "band",
		Start:           start,
		End:             start.Add(2 * time.Hour),
		DurationHours:   2,
		Status:          "pending_review",
		TotalPriceCents: 300000,
	}
}

func submitBody(roomID uuid.UUID) map[string]any {
	return map[string]any{
		"roomId": roomID.String(),
		"start":  "2025-03-10T10:00:00Z",
		"end":    "2025-03-10T12:00:00Z",
	}
}

func (s *BookingHandlerTestSuite) TestSubmitBooking() {
	url := "/bookings"
	view := sampleView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBody(view.RoomID), "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending_review", body.Status)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBody(view.RoomID), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"roomId": "nope"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("usecase errors map to status codes", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "invalid range", err: commands.ErrInvalidRange, expectCode: http.StatusBadRequest},
			{name: "room unavailable", err: commands.ErrRoomUnavailable, expectCode: http.StatusNotFound},
			{name: "slot conflict", err: commands.ErrSlotConflict, expectCode: http.StatusConflict},
			{name: "discontinuous selection", err: commands.ErrSelectionDiscontinuous, expectCode: http.StatusUnprocessableEntity},
			{name: "reversed day order", err: commands.ErrReversedDayOrder, expectCode: http.StatusUnprocessableEntity},
			{name: "store failure", err: commands.ErrStoreFailure, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBody(view.RoomID), "token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := sampleView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 on unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestChangeStatus() {
	view := sampleView()
	view.Status = "approved"
	url := "/bookings/" + view.ID.String() + "/status"

	s.Run("success: returns the transitioned booking with sync note", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(&commands.StatusChangeResult{Booking: view, SyncNote: commands.SyncNoteMirrorCreated}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "approved"}, "token")

		var body resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Booking.Status)
		s.Equal(commands.SyncNoteMirrorCreated, body.SyncNote)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "archived"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 on illegal transition", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, commands.ErrInvalidStatus)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "approved"}, "token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 409 when re-approval loses the interval", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, commands.ErrSlotConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "approved"}, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
