package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDeleteWishHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(m *MockWishDeleter)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:        "delete existing wish",
			requestBody: `{"id":7}`,
			setupMocks: func(m *MockWishDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"message":"Wish deleted"}`,
		},
		{
			name:        "delete missing wish still succeeds",
			requestBody: `{"id":404}`,
			setupMocks: func(m *MockWishDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(404)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"message":"Wish deleted"}`,
		},
		{
			name:               "missing id",
			requestBody:        `{}`,
			setupMocks:         func(m *MockWishDeleter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request: id is required"}`,
		},
		{
			name:        "storage error",
			requestBody: `{"id":7}`,
			setupMocks: func(m *MockWishDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7)).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"error":"` + assert.AnError.Error() + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDeleter := NewMockWishDeleter(ctrl)
			tt.setupMocks(mockDeleter)

			req := httptest.NewRequest(http.MethodDelete, "/", bytes.NewReader([]byte(tt.requestBody)))
			rr := httptest.NewRecorder()

			NewDeleteWishHandler(mockDeleter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestMethodNotAllowedHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewMethodNotAllowedHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not supported"}`, rr.Body.String())
}

func TestNotFoundHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewNotFoundHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}
