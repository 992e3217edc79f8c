package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/core/services"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo    *MockPaymentRepository
	mockAttachmentRepo *MockAttachmentRepository
	service            portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAttachmentRepo = new(MockAttachmentRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockAttachmentRepo)
}

func basePaymentRequest() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		CustomerID:    1,
		InvoiceID:     5,
		JournalID:     2,
		Date:          "2026-03-10",
		PaymentType:   "receive",
		PaymentMethod: "bank",
		Amount:        dec("150.00"),
	}
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	req := basePaymentRequest()

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.InvoiceID == 5 && p.Amount.Equal(dec("150.00")) && p.PaymentType == domain.PaymentReceive
	})).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Payment).PaymentID = 9
	})

	created, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), created.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_BadDate() {
	ctx := context.Background()
	req := basePaymentRequest()
	req.Date = "10/03/2026"

	_, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_OverwritesFields() {
	ctx := context.Background()
	paymentID := int64(9)

	persisted := &domain.Payment{PaymentID: paymentID, Amount: dec("10.00")}
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(persisted, nil).Once()

	req := basePaymentRequest()
	req.Amount = dec("175.25")

	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.PaymentID == paymentID && p.Amount.Equal(dec("175.25"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, paymentID, req)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(dec("175.25")))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(44)).
		Return(nil, apperrors.NewNotFoundError("payment not found")).Once()

	_, err := suite.service.UpdatePayment(ctx, int64(44), basePaymentRequest())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_WithAttachments() {
	ctx := context.Background()
	paymentID := int64(9)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).
		Return(&domain.Payment{PaymentID: paymentID}, nil).Once()
	suite.mockAttachmentRepo.On("FindAttachmentsByOwner", ctx, domain.OwnerRef{Kind: domain.OwnerPayment, ID: paymentID}).
		Return([]domain.Attachment{{AttachmentID: 3}, {AttachmentID: 4}}, nil).Once()

	payment, attachments, err := suite.service.GetPaymentByID(ctx, paymentID)

	suite.Require().NoError(err)
	suite.Equal(paymentID, payment.PaymentID)
	suite.Len(attachments, 2)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockAttachmentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_AttachmentsGrouped() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("ListPayments", ctx).
		Return([]domain.Payment{{PaymentID: 1}, {PaymentID: 2}}, nil).Once()
	suite.mockAttachmentRepo.On("FindAttachmentsByOwners", ctx, domain.OwnerPayment, []int64{1, 2}).
		Return(map[int64][]domain.Attachment{2: {{AttachmentID: 7}}}, nil).Once()

	payments, attachments, err := suite.service.ListPayments(ctx)

	suite.Require().NoError(err)
	suite.Len(payments, 2)
	suite.Len(attachments[2], 1)
	suite.Empty(attachments[1])
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockAttachmentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestSumAmountsBetween_Success() {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockPaymentRepo.On("SumAmountsBetween", ctx, start, end).Return(dec("300.75"), nil).Once()

	sum, err := suite.service.SumAmountsBetween(ctx, dto.DateRangeRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"})

	suite.Require().NoError(err)
	suite.True(sum.Equal(dec("300.75")))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestSumAmountsBetween_InvertedRange() {
	ctx := context.Background()

	_, err := suite.service.SumAmountsBetween(ctx, dto.DateRangeRequest{StartDate: "2026-04-01", EndDate: "2026-03-01"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidDates)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SumAmountsBetween", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_RepoError() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(9)).Return(assert.AnError).Once()

	err := suite.service.DeletePayment(ctx, int64(9))

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
