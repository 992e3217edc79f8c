package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/handlers"
	"github.com/mkassaw/invoicing_backend/internal/platform/config"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, []domain.Attachment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Invoice), args.Get(1).([]domain.Attachment), args.Error(2)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, map[int64][]domain.Attachment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Get(1).(map[int64][]domain.Attachment), args.Error(2)
}
func (m *MockInvoiceService) SumTotalsBetween(ctx context.Context, req dto.DateRangeRequest) (decimal.Decimal, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockInvoiceService) StatusBreakdown(ctx context.Context) (*domain.StatusBreakdown, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusBreakdown), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterDateValidation(v))
	}

	suite.router = gin.New()
	suite.mockInvoiceService = new(MockInvoiceService)
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Invoice: suite.mockInvoiceService,
	})
}

func (suite *InvoiceHandlerTestSuite) serve(method, url string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func validInvoicePayload() map[string]any {
	return map[string]any{
		"customer_id": 1,
		"currency_id": 1,
		"reference":   "INV-0001",
		"date":        "2026-01-15",
		"items": []map[string]any{
			{"title": "Consulting", "cost": "100", "quantity": 2},
		},
	}
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	suite.mockInvoiceService.On("ListInvoices", mock.Anything).
		Return([]domain.Invoice{{InvoiceID: 1, Reference: "INV-0001"}}, map[int64][]domain.Attachment{}, nil).Once()

	w, env := suite.serve(http.MethodGet, "/invoice", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)
	var invoices []dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &invoices))
	suite.Len(invoices, 1)
	suite.Equal("INV-0001", invoices[0].Reference)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_EmptyIsNotFound() {
	suite.mockInvoiceService.On("ListInvoices", mock.Anything).
		Return([]domain.Invoice{}, map[int64][]domain.Attachment{}, nil).Once()

	w, env := suite.serve(http.MethodGet, "/invoice", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.False(env.Success)
	suite.Equal("no invoices found", env.Message)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NonNumericID() {
	w, env := suite.serve(http.MethodGet, "/invoice/abc", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.False(env.Success)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "GetInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, int64(42)).
		Return(nil, nil, apperrors.NewNotFoundError("invoice not found")).Once()

	w, env := suite.serve(http.MethodGet, "/invoice/42", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("invoice not found", env.Message)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	created := &domain.Invoice{
		InvoiceID:  7,
		Reference:  "INV-0001",
		Total:      decimal.RequireFromString("200"),
		GrandTotal: decimal.RequireFromString("200"),
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.Reference == "INV-0001" && len(req.Items) == 1
	})).Return(created, nil).Once()

	w, env := suite.serve(http.MethodPost, "/invoice", validInvoicePayload())

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)
	suite.Equal("invoice created", env.Message)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(int64(7), resp.InvoiceID)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingItems() {
	payload := validInvoicePayload()
	delete(payload, "items")

	w, env := suite.serve(http.MethodPost, "/invoice", payload)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.False(env.Success)
	suite.Contains(env.Errors, "items")
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_BadDateFormat() {
	payload := validInvoicePayload()
	payload["date"] = "15/01/2026"

	w, env := suite.serve(http.MethodPost, "/invoice", payload)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(env.Errors, "date")
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoice_StrayItemIDIsValidation() {
	suite.mockInvoiceService.On("UpdateInvoice", mock.Anything, int64(5), mock.Anything).
		Return(nil, apperrors.NewAppError(422, "item does not belong to this invoice", apperrors.ErrValidation)).Once()

	w, env := suite.serve(http.MethodPost, "/invoice/5", validInvoicePayload())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("item does not belong to this invoice", env.Message)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestAmountBetween_Success() {
	suite.mockInvoiceService.On("SumTotalsBetween", mock.Anything, dto.DateRangeRequest{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	}).Return(decimal.RequireFromString("1250.50"), nil).Once()

	w, env := suite.serve(http.MethodPost, "/invoice/amount", map[string]any{
		"start_date": "2026-01-01",
		"end_date":   "2026-01-31",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AmountResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.True(resp.Amount.Equal(decimal.RequireFromString("1250.50")))
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestStatusBreakdown_Success() {
	suite.mockInvoiceService.On("StatusBreakdown", mock.Anything).
		Return(&domain.StatusBreakdown{Total: 4, PendingCount: 2, PendingPercentage: 50}, nil).Once()

	w, env := suite.serve(http.MethodGet, "/invoice/status", nil)

	suite.Equal(http.StatusOK, w.Code)
	var breakdown domain.StatusBreakdown
	suite.Require().NoError(json.Unmarshal(env.Data, &breakdown))
	suite.Equal(int64(4), breakdown.Total)
	suite.InDelta(50.0, breakdown.PendingPercentage, 0.001)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Success() {
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, int64(7)).Return(nil).Once()

	w, env := suite.serve(http.MethodDelete, "/invoice/7", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("invoice deleted", env.Message)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
