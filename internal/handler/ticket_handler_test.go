package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"molle-settlement/internal/handler"
	"molle-settlement/internal/model"
	"molle-settlement/internal/service/mocks"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(svc *mocks.MockTicketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewTicketHandler(svc).RegisterRoutes(router)
	return router
}

func TestVerifyTicket(t *testing.T) {
	t.Run("Success - Host", func(t *testing.T) {
		svc := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(svc)

		svc.EXPECT().VerifyByQR(mock.Anything, "MOLLE:10:TKT-1-AB:salt").Return(&model.TicketVerification{
			Ticket:        &model.Ticket{ID: 1},
			ExpectedPrice: decimal.NewFromInt(123),
			PriceMatches:  true,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets/verify?qr=MOLLE:10:TKT-1-AB:salt", nil)
		req.Header.Set("X-User-ID", "5")
		req.Header.Set("X-User-Role", "HOST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(w.Body)["price_matches"])
	})

	t.Run("Failed - BuyerForbidden", func(t *testing.T) {
		svc := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets/verify?qr=x", nil)
		req.Header.Set("X-User-ID", "7")
		req.Header.Set("X-User-Role", "USER")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		svc := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(svc)

		svc.EXPECT().VerifyByQR(mock.Anything, "unknown").Return(nil, apperrors.ErrTicketNotFound).Once()

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/tickets/verify?qr=unknown", nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - MissingQR", func(t *testing.T) {
		svc := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(svc)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/tickets/verify", nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTicketsByOrder(t *testing.T) {
	svc := mocks.NewMockTicketService(t)
	router := setupTicketTestRouter(svc)

	svc.EXPECT().ListByOrderID(mock.Anything, "order_1").Return([]*model.Ticket{{ID: 1}, {ID: 2}}, nil).Once()

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/orders/order_1/tickets", nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterSystemRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(w.Body)["message"])
}
