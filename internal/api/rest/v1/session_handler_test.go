//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aes_cipher_service/internal/domain/ciphers"
)

func testSessionInfo() *ciphers.SessionInfo {
	iv, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	return &ciphers.SessionInfo{
		ID:              "session-123",
		Mode:            ciphers.ModeCBC,
		KeySize:         16,
		BlockSize:       16,
		CurrentIV:       iv,
		DateTimeCreated: time.Now(),
	}
}

func TestSessionHandler_Create_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	requestBody := `{"key": "000102030405060708090a0b0c0d0e0f", "mode": "CBC", "iv": "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"}`

	mockSessionService.
		On("Create", mock.Anything, ciphers.ModeCBC, mock.Anything).
		Return(testSessionInfo(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "session-123")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_Create_UnknownMode(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	requestBody := `{"key": "000102030405060708090a0b0c0d0e0f", "mode": "XTS"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid cipher mode")
	mockSessionService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionHandler_Create_OddLengthKey(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	// Passes the hexadecimal tag but cannot be decoded
	requestBody := `{"key": "abc", "mode": "ECB"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid hex encoded key")
}

func TestSessionHandler_Create_ServiceError(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	requestBody := `{"key": "000102030405060708090a0b0c0d0e0f", "mode": "CBC"}`

	mockSessionService.
		On("Create", mock.Anything, ciphers.ModeCBC, mock.Anything).
		Return(nil, ciphers.ErrMissingIV)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error creating session")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_List_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.
		On("List").
		Return([]*ciphers.SessionInfo{testSessionInfo()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sessions", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-123")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_GetByID_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.
		On("GetByID", "session-123").
		Return(testSessionInfo(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sessions/session-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-123")
	assert.Contains(t, w.Body.String(), "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_GetByID_Error(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("GetByID", "session-123").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sessions/session-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_Encrypt_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("GetByID", "session-123").
		Return(testSessionInfo(), nil)
	mockSessionService.On("Encrypt", "session-123", []byte{0xde, 0xad, 0xbe, 0xef}).
		Return([]byte{0x01, 0x02, 0x03, 0x04}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/encrypt", bytes.NewBufferString(`{"data": "deadbeef"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "01020304")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_Encrypt_SessionNotFound(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("GetByID", "session-123").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/encrypt", bytes.NewBufferString(`{"data": "deadbeef"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.Encrypt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSessionService.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything)
}

func TestSessionHandler_Encrypt_CipherError(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("GetByID", "session-123").
		Return(testSessionInfo(), nil)
	mockSessionService.On("Encrypt", "session-123", mock.Anything).
		Return(nil, ciphers.ErrPartialBlockContinuation)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/encrypt", bytes.NewBufferString(`{"data": "deadbeef"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error encrypting data")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_Decrypt_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("GetByID", "session-123").
		Return(testSessionInfo(), nil)
	mockSessionService.On("Decrypt", "session-123", []byte{0x01, 0x02, 0x03, 0x04}).
		Return([]byte{0xde, 0xad, 0xbe, 0xef}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/decrypt", bytes.NewBufferString(`{"data": "01020304"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deadbeef")
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_DeleteByID_Success(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("DeleteByID", "session-123").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/sessions/session-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSessionService.AssertExpectations(t)
}

func TestSessionHandler_DeleteByID_Error(t *testing.T) {
	mockSessionService := new(MockCipherSessionService)
	handler := NewSessionHandler(mockSessionService)

	mockSessionService.On("DeleteByID", "session-123").
		Return(errors.New("delete failed"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/sessions/session-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSessionService.AssertExpectations(t)
}
