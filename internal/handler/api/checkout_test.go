//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/handler/api"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/middleware"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/shared"
	"checkout-engine/tests/common/builder"
	"checkout-engine/tests/common/httptest"
	"checkout-engine/tests/common/testutil"
	commandsmock "checkout-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Actor())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/checkout/lines", s.handler.CheckoutLine)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCheckoutLine
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCheckoutLine() {
	url := "/checkout/lines"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCheckoutRequestDTO()
	priced := b.BuildPriced()

	s.Run("success: returns 201 with the hold and its frozen quote", func() {
		s.mockCommands.EXPECT().CheckoutLine(gomock.Any(), commands.CheckoutLineInput{
			Key:      b.Key(),
			Quantity: b.Quantity,
		}).Return(priced, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.PricedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(priced.Reservation.ID(), body.Reservation.ID)
		s.Equal("held", body.Reservation.Status)
		s.Require().NotNil(body.Reservation.Pricing)
		s.Equal(b.UnitAmount, body.Reservation.Pricing.UnitAmount)
		s.Equal(b.UnitAmount*int64(b.Quantity), body.Quote.ExtendedAmount)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/reservations/" + priced.Reservation.ID().String(),
		})
	})

	s.Run("success: X-Actor reaches the usecase context", func() {
		s.mockCommands.EXPECT().CheckoutLine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ commands.CheckoutLineInput) (*commands.PricedReservation, error) {
				s.Equal("ops@example.com", audit.ActorFrom(ctx))
				return priced, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "ops@example.com")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: a client-supplied instant never reaches the usecase", func() {
		s.mockCommands.EXPECT().CheckoutLine(gomock.Any(), commands.CheckoutLineInput{
			Key:      b.Key(),
			Quantity: b.Quantity,
		}).Return(priced, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("at", "2000-01-01T00:00:00Z"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseCheckout{
			{name: "missing field: variant_id", mutate: testutil.Field("variant_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: location_id", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: quantity", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
			{name: "quantity zero", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
			{name: "quantity negative", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
			{name: "malformed variant_id", mutate: testutil.Field("variant_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "quantity boundary OK (1)", mutate: testutil.Field("quantity", 1), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CheckoutLine(gomock.Any(), gomock.Any()).Return(priced, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{name: "insufficient stock", err: shared.Classify(inventory.ErrInsufficientStock), expectedStatus: http.StatusConflict, expectedCode: "capacity"},
			{name: "unknown variant", err: shared.Classify(catalog.ErrVariantNotFound), expectedStatus: http.StatusNotFound, expectedCode: "not_found"},
			{name: "no price book", err: shared.Classify(pricing.ErrNoPriceBook), expectedStatus: http.StatusUnprocessableEntity, expectedCode: "configuration"},
			{name: "lost update", err: shared.Classify(infra.WrapRepoErr("update", errors.New("stale"), infra.KindConflict)), expectedStatus: http.StatusServiceUnavailable, expectedCode: "concurrency"},
			{name: "unclassified", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedCode: ""},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckoutLine(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Checkout failed")
			})
		}
	})
}
