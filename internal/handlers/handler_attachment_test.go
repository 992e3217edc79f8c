package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/handlers"
	"github.com/mkassaw/invoicing_backend/internal/platform/config"
)

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest, upload portssvc.AttachmentUpload) (*domain.Attachment, error) {
	args := m.Called(ctx, req, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AttachmentSvcFacade = (*MockAttachmentService)(nil)

type AttachmentHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockAttachmentService *MockAttachmentService
}

func (suite *AttachmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAttachmentService = new(MockAttachmentService)
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Attachment: suite.mockAttachmentService,
	})
}

// multipartBody builds a multipart form with the given fields and an
// optional file part.
func (suite *AttachmentHandlerTestSuite) multipartBody(fields map[string]string, fileName string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		suite.Require().NoError(writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("file content"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *AttachmentHandlerTestSuite) postAttachment(body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, envelope) {
	req, err := http.NewRequest(http.MethodPost, "/attachment", body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (suite *AttachmentHandlerTestSuite) TestCreateAttachment_Success() {
	path := "in_sales_invoice/5/abc.pdf"
	created := &domain.Attachment{
		AttachmentID: 21,
		Owner:        domain.OwnerRef{Kind: domain.OwnerInvoice, ID: 5},
		FileName:     "receipt.pdf",
		FilePath:     &path,
		Uploaded:     true,
	}
	suite.mockAttachmentService.On("CreateAttachment", mock.Anything,
		mock.MatchedBy(func(req dto.CreateAttachmentRequest) bool {
			return req.TableName == "in_sales_invoice" && req.RowID == 5
		}),
		mock.MatchedBy(func(upload portssvc.AttachmentUpload) bool {
			return upload.FileName == "receipt.pdf" && upload.Size > 0
		}),
	).Return(created, nil).Once()

	body, contentType := suite.multipartBody(map[string]string{
		"table_name": "in_sales_invoice",
		"row_id":     "5",
	}, "receipt.pdf")
	w, env := suite.postAttachment(body, contentType)

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)
	suite.Equal("attachment created", env.Message)
	var resp dto.AttachmentResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(int64(21), resp.AttachmentID)
	suite.mockAttachmentService.AssertExpectations(suite.T())
}

func (suite *AttachmentHandlerTestSuite) TestCreateAttachment_MissingFile() {
	body, contentType := suite.multipartBody(map[string]string{
		"table_name": "in_sales_invoice",
		"row_id":     "5",
	}, "")
	w, env := suite.postAttachment(body, contentType)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(env.Errors, "file")
	suite.mockAttachmentService.AssertNotCalled(suite.T(), "CreateAttachment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttachmentHandlerTestSuite) TestCreateAttachment_BadTableName() {
	body, contentType := suite.multipartBody(map[string]string{
		"table_name": "customer",
		"row_id":     "5",
	}, "receipt.pdf")
	w, env := suite.postAttachment(body, contentType)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(env.Errors, "tablename")
	suite.mockAttachmentService.AssertNotCalled(suite.T(), "CreateAttachment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttachmentHandlerTestSuite) TestCreateAttachment_OwnerMissing() {
	suite.mockAttachmentService.On("CreateAttachment", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(422, "in_payment 77 does not exist", apperrors.ErrValidation)).Once()

	body, contentType := suite.multipartBody(map[string]string{
		"table_name": "in_payment",
		"row_id":     "77",
	}, "receipt.pdf")
	w, env := suite.postAttachment(body, contentType)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("in_payment 77 does not exist", env.Message)
	suite.mockAttachmentService.AssertExpectations(suite.T())
}

func (suite *AttachmentHandlerTestSuite) TestDeleteAttachment_Success() {
	suite.mockAttachmentService.On("DeleteAttachment", mock.Anything, int64(21)).Return(nil).Once()

	req, err := http.NewRequest(http.MethodDelete, "/attachment/21", nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAttachmentService.AssertExpectations(suite.T())
}

func TestAttachmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentHandlerTestSuite))
}
