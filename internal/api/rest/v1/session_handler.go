package v1

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"aes_cipher_service/internal/domain/ciphers"
)

// SessionHandler defines the interface for handling cipher session operations
type SessionHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// sessionHandler struct holds the session registry
type sessionHandler struct {
	cipherSessionService ciphers.CipherSessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(cipherSessionService ciphers.CipherSessionService) SessionHandler {
	return &sessionHandler{
		cipherSessionService: cipherSessionService,
	}
}

func newSessionResponse(sessionInfo *ciphers.SessionInfo) SessionResponse {
	return SessionResponse{
		ID:              sessionInfo.ID,
		Mode:            string(sessionInfo.Mode),
		KeySize:         sessionInfo.KeySize,
		BlockSize:       sessionInfo.BlockSize,
		CurrentIV:       hex.EncodeToString(sessionInfo.CurrentIV),
		DateTimeCreated: sessionInfo.DateTimeCreated,
	}
}

// Create handles the POST request to open a cipher session
// @Summary Open a cipher session
// @Description Create a cipher session from a hex encoded key, a chaining mode and an optional hex encoded IV.
// @Tags Session
// @Accept json
// @Produce json
// @Param requestBody body CreateSessionRequest true "Cipher Session Parameters"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func (handler *sessionHandler) Create(ctx *gin.Context) {

	var request CreateSessionRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid session data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	key, err := hex.DecodeString(request.Key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid hex encoded key: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	mode, err := ciphers.ParseMode(request.Mode)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cipher mode: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var iv []byte
	if len(request.IV) > 0 {
		iv, err = hex.DecodeString(request.IV)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid hex encoded IV: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	sessionInfo, err := handler.cipherSessionService.Create(key, mode, iv)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating session: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(sessionInfo))
}

// List handles the GET request to list all cipher sessions
// @Summary List cipher sessions
// @Description Fetch info about every open cipher session, oldest first.
// @Tags Session
// @Accept json
// @Produce json
// @Success 200 {array} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions [get]
func (handler *sessionHandler) List(ctx *gin.Context) {
	sessionInfos, err := handler.cipherSessionService.List()
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []SessionResponse{}
	for _, sessionInfo := range sessionInfos {
		listResponse = append(listResponse, newSessionResponse(sessionInfo))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a cipher session by ID
// @Summary Retrieve cipher session info by ID
// @Description Fetch mode, key size and current chain state of a session by ID.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	sessionInfo, err := handler.cipherSessionService.GetByID(sessionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("session with id %s not found", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(sessionInfo))
}

// Encrypt handles the POST request to encrypt data under a session
// @Summary Encrypt data under a cipher session
// @Description Encipher hex encoded plaintext under the session with the given ID, advancing its chain state.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body CipherDataRequest true "Hex Encoded Plaintext"
// @Success 200 {object} CipherDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/encrypt [post]
func (handler *sessionHandler) Encrypt(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	data, ok := handler.bindCipherData(ctx, sessionID)
	if !ok {
		return
	}

	ciphertext, err := handler.cipherSessionService.Encrypt(sessionID, data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error encrypting data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, CipherDataResponse{Data: hex.EncodeToString(ciphertext)})
}

// Decrypt handles the POST request to decrypt data under a session
// @Summary Decrypt data under a cipher session
// @Description Decipher hex encoded ciphertext under the session with the given ID, advancing its chain state.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body CipherDataRequest true "Hex Encoded Ciphertext"
// @Success 200 {object} CipherDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/decrypt [post]
func (handler *sessionHandler) Decrypt(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	data, ok := handler.bindCipherData(ctx, sessionID)
	if !ok {
		return
	}

	plaintext, err := handler.cipherSessionService.Decrypt(sessionID, data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error decrypting data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, CipherDataResponse{Data: hex.EncodeToString(plaintext)})
}

// bindCipherData parses and validates the request body of an encrypt or
// decrypt call and checks that the addressed session exists. It reports
// whether the caller may proceed; on false the response has been written.
func (handler *sessionHandler) bindCipherData(ctx *gin.Context, sessionID string) ([]byte, bool) {
	var request CipherDataRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cipher data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return nil, false
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return nil, false
	}

	data, err := hex.DecodeString(request.Data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid hex encoded data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return nil, false
	}

	if _, err := handler.cipherSessionService.GetByID(sessionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("session with id %s not found", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return nil, false
	}

	return data, true
}

// DeleteByID handles the DELETE request to close a cipher session by ID
// @Summary Close a cipher session by ID
// @Description Remove the cipher session with the given ID from the registry, discarding its chain state.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (handler *sessionHandler) DeleteByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := handler.cipherSessionService.DeleteByID(sessionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting session with id %s", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted session with id %s", sessionID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
