//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/handler/api"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"
	"checkout-engine/internal/usecase/shared"
	"checkout-engine/tests/common/builder"
	"checkout-engine/tests/common/httptest"
	"checkout-engine/tests/common/testutil"
	commandsmock "checkout-engine/tests/mock/commands"
	queriesmock "checkout-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLedger  *commandsmock.MockLedgerCommands
	mockQueries *queriesmock.MockInventoryQueries
	handler     *api.InventoryHandler
	key         inventory.Key
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockLedger, s.mockQueries)
	s.key = inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}

	s.router.GET("/inventory/variants/:variantId", s.handler.GetAvailability)
	s.router.GET("/inventory/variants/:variantId/locations/:locationId", s.handler.GetRecord)
	s.router.POST("/inventory/shipments", s.handler.RegisterShipment)
	s.router.GET("/inventory/shipments/:id", s.handler.GetShipment)
	s.router.POST("/inventory/shipments/:id/receive", s.handler.ReceiveShipment)
	s.router.POST("/inventory/shipments/:id/cancel", s.handler.CancelShipment)
	s.router.POST("/inventory/adjustments", s.handler.AdjustStock)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) shipment(expected int) *inventory.Shipment {
	sh, err := inventory.NewShipment(s.key, "PO-77", expected, builder.Epoch)
	s.Require().NoError(err)
	return sh
}

// ================================================================================
// TestGetRecord / TestGetAvailability
// ================================================================================

func (s *InventoryHandlerTestSuite) TestGetRecord() {
	url := "/inventory/variants/" + s.key.VariantID.String() + "/locations/" + s.key.LocationID.String()

	s.Run("success: returns the counters", func() {
		rec := inventory.ReconstructRecord(s.key, 10, 3, 4, builder.Epoch)
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), s.key).
			Return(&queries.RecordView{RecordSnapshot: rec.Snapshot(), Version: 4, UpdatedAt: builder.Epoch}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(10, body.OnHand)
		s.Equal(3, body.Reserved)
		s.Equal(7, body.Available)
		s.Equal(int64(4), body.Version)
	})

	s.Run("error: 400 on malformed location id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/inventory/variants/"+s.key.VariantID.String()+"/locations/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid location id")
	})
}

func (s *InventoryHandlerTestSuite) TestGetAvailability() {
	s.Run("success: sums locations", func() {
		view := &queries.AvailabilityView{VariantID: s.key.VariantID, OnHand: 12, Reserved: 2, Available: 10, Locations: []queries.RecordView{}}
		s.mockQueries.EXPECT().Availability(gomock.Any(), s.key.VariantID).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/variants/"+s.key.VariantID.String(), nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(10, body.Available)
	})
}

// ================================================================================
// TestRegisterShipment
// ================================================================================

func (s *InventoryHandlerTestSuite) TestRegisterShipment() {
	url := "/inventory/shipments"
	reqBody := map[string]any{
		"variant_id":   s.key.VariantID.String(),
		"location_id":  s.key.LocationID.String(),
		"reference":    "PO-77",
		"expected_qty": 50,
	}

	s.Run("success: returns 201 with Location", func() {
		sh := s.shipment(50)
		s.mockLedger.EXPECT().RegisterInbound(gomock.Any(), commands.RegisterInboundInput{
			Key:         s.key,
			Reference:   "PO-77",
			ExpectedQty: 50,
		}).Return(sh, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ShipmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal(inventory.ShipmentPending, body.Status)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Location": "/api/inventory/shipments/" + sh.ID().String()})
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("expected_qty", 0),
			testutil.Field("expected_qty", -5),
			testutil.Field("variant_id", nil),
		} {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		}
	})
}

// ================================================================================
// TestReceiveShipment / TestCancelShipment
// ================================================================================

func (s *InventoryHandlerTestSuite) TestReceiveShipment() {
	sh := s.shipment(10)
	url := "/inventory/shipments/" + sh.ID().String() + "/receive"

	s.Run("success: partial receipt", func() {
		s.Require().NoError(sh.Receive(4, builder.Epoch.Add(time.Hour)))
		s.mockLedger.EXPECT().ReceiveInbound(gomock.Any(), commands.ReceiveInboundInput{ShipmentID: sh.ID(), Quantity: 4}).
			Return(sh, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 4}, "")

		var body resdto.ShipmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(inventory.ShipmentPartiallyReceived, body.Status)
		s.Equal(4, body.ReceivedQty)
	})

	s.Run("error: 409 on over-receipt", func() {
		s.mockLedger.EXPECT().ReceiveInbound(gomock.Any(), gomock.Any()).
			Return(nil, shared.Classify(inventory.ErrOverReceipt)).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 100}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "capacity")
	})

	s.Run("error: 404 on unknown shipment", func() {
		id := uuid.New()
		s.mockLedger.EXPECT().ReceiveInbound(gomock.Any(), gomock.Any()).
			Return(nil, shared.Classify(inventory.ErrShipmentNotFound)).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/inventory/shipments/"+id.String()+"/receive", map[string]any{"quantity": 1}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "not_found")
	})
}

func (s *InventoryHandlerTestSuite) TestCancelShipment() {
	sh := s.shipment(10)
	s.Require().NoError(sh.Cancel(builder.Epoch.Add(time.Hour)))

	s.mockLedger.EXPECT().CancelInbound(gomock.Any(), sh.ID(), time.Time{}).Return(sh, nil).Times(1)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/inventory/shipments/"+sh.ID().String()+"/cancel", nil, "")

	var body resdto.ShipmentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal(inventory.ShipmentCancelled, body.Status)
}

// ================================================================================
// TestAdjustStock
// ================================================================================

func (s *InventoryHandlerTestSuite) TestAdjustStock() {
	url := "/inventory/adjustments"
	reqBody := map[string]any{
		"variant_id":  s.key.VariantID.String(),
		"location_id": s.key.LocationID.String(),
		"delta":       -2,
		"note":        "cycle count",
	}

	s.Run("success: negative delta shrinks on hand", func() {
		rec := inventory.ReconstructRecord(s.key, 8, 0, 2, builder.Epoch)
		s.mockLedger.EXPECT().AdjustStock(gomock.Any(), commands.AdjustStockInput{Key: s.key, Delta: -2, Note: "cycle count"}).
			Return(rec, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(8, body.OnHand)
	})

	s.Run("error: 400 on zero delta", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("delta", 0)), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the adjustment would drop below reserved", func() {
		s.mockLedger.EXPECT().AdjustStock(gomock.Any(), gomock.Any()).
			Return(nil, shared.Classify(inventory.ErrBelowReserved)).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "validation")
	})
}
