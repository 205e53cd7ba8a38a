package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"molle-settlement/internal/fee"
	"molle-settlement/internal/handler"
	"molle-settlement/internal/service"
	"molle-settlement/internal/service/mocks"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupFeeTestRouter(svc *mocks.MockFeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewFeeHandler(svc).RegisterRoutes(router)
	return router
}

func TestQuote(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		svc.EXPECT().Quote(mock.Anything, 3, 30, 2).Return(&service.Quote{
			EventID:   3,
			PackageID: 30,
			Quantity:  2,
			PerTicket: fee.Breakdown{TicketPrice: decimal.NewFromInt(123)},
			Total:     fee.Breakdown{TicketPrice: decimal.NewFromInt(246)},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/3/quote?package_id=30&quantity=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(w.Body)
		assert.EqualValues(t, 2, body["quantity"])
	})

	t.Run("DefaultQuantity", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		svc.EXPECT().Quote(mock.Anything, 3, 30, 1).Return(&service.Quote{Quantity: 1}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/3/quote?package_id=30", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - MissingPackage", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/3/quote", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - PackageNotFound", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		svc.EXPECT().Quote(mock.Anything, 3, 99, 1).Return(nil, apperrors.ErrPackageNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/3/quote?package_id=99&quantity=1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPercentages(t *testing.T) {
	svc := mocks.NewMockFeeService(t)
	router := setupFeeTestRouter(svc)

	svc.EXPECT().PlatformDefaults(mock.Anything).Return(fee.Percentages{UserFee: decimal.NewFromInt(5)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", decodeBody(w.Body)["user_fee_percentage"])
}

func TestRefreshFees(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		svc.EXPECT().RefreshDefaults(mock.Anything).Return(fee.Percentages{UserFee: decimal.NewFromInt(4)}, nil).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/admin/fees/refresh", nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - NotAdmin", func(t *testing.T) {
		svc := mocks.NewMockFeeService(t)
		router := setupFeeTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/fees/refresh", nil)
		req.Header.Set("X-User-ID", "5")
		req.Header.Set("X-User-Role", "HOST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
