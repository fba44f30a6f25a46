package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/handlers"
	appErrors "github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	"github.com/stickjunkey/stickjunkey-backend/internal/services/mocks"
	"github.com/stickjunkey/stickjunkey-backend/internal/testutils"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartTest() (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	return mockCartService, cartHandler
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/cart", nil, userID, nil)
		recorder := httptest.NewRecorder()

		cart := &models.CartResponse{Items: []models.CartLineDetail{}, Total: 0, Count: 0}
		mockCartService.On("GetCart", mock.Anything, userID).Return(cart, nil).Once()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/cart", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp response.APIResponse

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "Authentication required")
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Success - With Body", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		body, _ := json.Marshal(models.AddCartItemRequest{Quantity: 2})
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/cart/"+itemID.String(),
			bytes.NewReader(body), userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		detail := &models.CartLineDetail{
			CartLine: models.CartLine{UserID: userID, ItemID: itemID, Quantity: 2},
		}
		mockCartService.On("AddItem", mock.Anything, userID, itemID, mock.MatchedBy(func(r *models.AddCartItemRequest) bool {
			return r.Quantity == 2
		})).Return(detail, nil).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - No Body Defaults Quantity", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/cart/"+itemID.String(),
			nil, userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		detail := &models.CartLineDetail{
			CartLine: models.CartLine{UserID: userID, ItemID: itemID, Quantity: 1},
		}
		mockCartService.On("AddItem", mock.Anything, userID, itemID, mock.MatchedBy(func(r *models.AddCartItemRequest) bool {
			return r.Quantity == 0 // service interprets zero as "default to 1"
		})).Return(detail, nil).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Item ID", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/cart/not-a-uuid",
			nil, uuid.New(), map[string]string{"itemId": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/cart/"+itemID.String(),
			nil, userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		mockCartService.On("AddItem", mock.Anything, userID, itemID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Item not found")).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp response.APIResponse

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		body, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 5})
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/cart/"+itemID.String(),
			bytes.NewReader(body), userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		detail := &models.CartLineDetail{
			CartLine: models.CartLine{UserID: userID, ItemID: itemID, Quantity: 5},
		}
		mockCartService.On("UpdateQuantity", mock.Anything, userID, itemID, mock.MatchedBy(func(r *models.UpdateCartItemRequest) bool {
			return r.Quantity == 5
		})).Return(detail, nil).Once()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Zero Quantity Fails Validation", func(t *testing.T) {
		// Arrange: required,min=1 rejects zero at the boundary
		mockCartService, cartHandler := setupCartTest()
		itemID := uuid.New()
		body, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 0})
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/cart/"+itemID.String(),
			bytes.NewReader(body), uuid.New(), map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Line Not In Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		body, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 2})
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/cart/"+itemID.String(),
			bytes.NewReader(body), userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		mockCartService.On("UpdateQuantity", mock.Anything, userID, itemID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Item not found in cart")).Once()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		userID := uuid.New()
		itemID := uuid.New()
		req := testutils.CreateTestRequestWithContext("DELETE", "/api/v1/cart/"+itemID.String(),
			nil, userID, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		mockCartService.On("RemoveItem", mock.Anything, userID, itemID).Return(nil).Once()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		itemID := uuid.New()
		req := testutils.CreateTestRequestWithoutContext("DELETE", "/api/v1/cart/"+itemID.String(),
			nil, map[string]string{"itemId": itemID.String()})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockCartService.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	})
}
