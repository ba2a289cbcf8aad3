//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/money"
	"checkout-engine/internal/domain/pricing"
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

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockRules   *commandsmock.MockRuleCommands
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
	variantID   uuid.UUID
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRules = commandsmock.NewMockRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockRules, s.mockQueries)
	s.variantID = uuid.New()

	s.router.GET("/pricing/variants/:id/quote", s.handler.Quote)
	s.router.GET("/pricing/variants/:id/rules", s.handler.ActiveRules)
	s.router.PUT("/pricing/price-books/:id", s.handler.PutPriceBook)
	s.router.PUT("/pricing/campaigns/:id", s.handler.PutCampaign)
	s.router.PUT("/pricing/promotions/:id", s.handler.PutPromotion)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *PricingHandlerTestSuite) TestQuote() {
	base := "/pricing/variants/" + s.variantID.String() + "/quote"
	campaign := builder.NewCampaignBuilder()
	quote := &pricing.Quote{
		VariantID:      s.variantID,
		At:             builder.Epoch,
		Quantity:       2,
		Currency:       "USD",
		PriceBookID:    uuid.New(),
		BaseUnitAmount: 10000,
		UnitAmount:     9000,
		ExtendedAmount: 18000,
		AppliedRules: []pricing.AppliedRule{
			{RuleID: campaign.ID, Kind: pricing.KindCampaign, Name: campaign.Name, Priority: 1, Stackable: true, Amount: 1000, PriceAfter: 9000},
		},
		SnapshotVersion: 3,
	}

	s.Run("success: $100 book with a 10% campaign quotes $90", func() {
		at := builder.Epoch.Add(time.Hour)
		s.mockQueries.EXPECT().PriceAsOf(gomock.Any(), s.variantID, at, 2).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?quantity=2&at="+at.Format(time.RFC3339), nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(9000), body.UnitAmount)
		s.Equal(int64(18000), body.ExtendedAmount)
		s.Require().Len(body.AppliedRules, 1)
		s.Equal("campaign", body.AppliedRules[0].Kind)
	})

	s.Run("success: defaults to now and quantity one", func() {
		s.mockQueries.EXPECT().PriceAsOf(gomock.Any(), s.variantID, time.Time{}, 1).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed query", func() {
		for name, url := range map[string]string{
			"bad at":            base + "?at=tomorrow",
			"zero quantity":     base + "?quantity=0",
			"non-numeric qty":   base + "?quantity=two",
			"malformed variant": "/pricing/variants/nope/quote",
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})

	s.Run("error: maps pricing failures", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{name: "no price book", err: shared.Classify(pricing.ErrNoPriceBook), expectedStatus: http.StatusUnprocessableEntity, expectedCode: "configuration"},
			{name: "unknown variant", err: shared.Classify(catalog.ErrVariantNotFound), expectedStatus: http.StatusNotFound, expectedCode: "not_found"},
			{name: "inactive variant", err: shared.Classify(catalog.ErrVariantInactive), expectedStatus: http.StatusConflict, expectedCode: "state"},
			{name: "extended amount overflows", err: shared.Classify(money.ErrAmountOverflow), expectedStatus: http.StatusBadRequest, expectedCode: "validation"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().PriceAsOf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestActiveRules
// ================================================================================

func (s *PricingHandlerTestSuite) TestActiveRules() {
	book := builder.NewPriceBookBuilder(s.variantID, 10000).Document()
	view := &queries.ActiveRulesView{
		VariantID:       s.variantID,
		At:              builder.Epoch,
		SnapshotVersion: 5,
		PriceBook:       &book,
		Discounts:       []pricing.Document{builder.NewCampaignBuilder().Document()},
	}
	s.mockQueries.EXPECT().ActiveRulesAt(gomock.Any(), s.variantID, time.Time{}, 1).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/variants/"+s.variantID.String()+"/rules", nil, "")

	var body resdto.ActiveRulesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(5), body.SnapshotVersion)
	s.Require().NotNil(body.PriceBook)
	s.Equal(book.ID, body.PriceBook.ID)
	s.Len(body.Discounts, 1)
}

// ================================================================================
// TestPutPriceBook
// ================================================================================

func (s *PricingHandlerTestSuite) TestPutPriceBook() {
	b := builder.NewPriceBookBuilder(s.variantID, 10000)
	url := "/pricing/price-books/" + b.ID.String()
	reqBody := b.BuildRequestDTO()

	s.Run("success: 201 on first write", func() {
		s.mockRules.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc pricing.Document) (*commands.UpsertRuleResult, error) {
				s.Equal(b.ID, doc.ID)
				s.Equal(pricing.KindPriceBook, doc.Kind)
				s.Equal(int64(10000), doc.Prices[s.variantID])
				return &commands.UpsertRuleResult{Rule: b.BuildDomain(), Created: true, Version: 1}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Created)
		s.Equal(int64(1), body.Version)
		s.Equal(b.ID, body.Rule.ID)
	})

	s.Run("success: 200 on replace", func() {
		s.mockRules.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).
			Return(&commands.UpsertRuleResult{Rule: b.BuildDomain(), Created: false, Version: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := map[string]func(map[string]any){
			"missing name":       testutil.Field("name", nil),
			"missing valid_from": testutil.Field("valid_from", nil),
			"bad currency":       testutil.Field("currency", "US"),
			"bad variant key":    testutil.Field("prices", map[string]any{"not-a-uuid": 100}),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 422 when the rule is rejected", func() {
		s.mockRules.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).
			Return(nil, shared.Classify(pricing.ErrKindChanged)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "configuration")
	})
}

// ================================================================================
// TestPutCampaign / TestPutPromotion
// ================================================================================

func (s *PricingHandlerTestSuite) TestPutCampaign() {
	b := builder.NewCampaignBuilder()

	s.mockRules.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc pricing.Document) (*commands.UpsertRuleResult, error) {
			s.Equal(pricing.KindCampaign, doc.Kind)
			s.Require().NotNil(doc.Discount)
			s.Require().NotNil(doc.Discount.Percent)
			s.Equal("10", doc.Discount.Percent.String())
			s.Empty(doc.Code)
			return &commands.UpsertRuleResult{Rule: b.BuildDomain(), Created: true, Version: 4}, nil
		}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/campaigns/"+b.ID.String(), b.BuildRequestDTO(), "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	s.Run("error: 400 on unknown discount kind", func() {
		reqBody := testutil.DtoMap(s.T(), b.BuildRequestDTO(), func(m map[string]any) {
			m["discount"] = map[string]any{"kind": "bogo"}
		})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/campaigns/"+b.ID.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on unparseable percent", func() {
		reqBody := testutil.DtoMap(s.T(), b.BuildRequestDTO(), func(m map[string]any) {
			m["discount"] = map[string]any{"kind": "percentage", "percent": "ten"}
		})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/campaigns/"+b.ID.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PricingHandlerTestSuite) TestPutPromotion() {
	b := builder.NewPromotionBuilder().With(func(d *builder.DiscountBuilder) { d.Code = "SPRING5" })

	s.mockRules.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc pricing.Document) (*commands.UpsertRuleResult, error) {
			s.Equal(pricing.KindPromotion, doc.Kind)
			s.Equal("SPRING5", doc.Code)
			return &commands.UpsertRuleResult{Rule: b.BuildDomain(), Created: false, Version: 9}, nil
		}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/promotions/"+b.ID.String(), b.BuildRequestDTO(), "")

	var body resdto.RuleResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(9), body.Version)
}
