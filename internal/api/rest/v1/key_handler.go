package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/pkg/utils"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	cipherKeyGenerationService keys.CipherKeyGenerationService
	cipherKeyDownloadService   keys.CipherKeyDownloadService
	cipherKeyMetadataService   keys.CipherKeyMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(cipherKeyGenerationService keys.CipherKeyGenerationService, cipherKeyDownloadService keys.CipherKeyDownloadService, cipherKeyMetadataService keys.CipherKeyMetadataService) KeyHandler {
	return &keyHandler{
		cipherKeyGenerationService: cipherKeyGenerationService,
		cipherKeyDownloadService:   cipherKeyDownloadService,
		cipherKeyMetadataService:   cipherKeyMetadataService,
	}
}

func newCipherKeyMetaResponse(cipherKeyMeta *keys.CipherKeyMeta) CipherKeyMetaResponse {
	return CipherKeyMetaResponse{
		ID:              cipherKeyMeta.ID,
		Algorithm:       cipherKeyMeta.Algorithm,
		KeySize:         cipherKeyMeta.KeySize,
		DateTimeCreated: cipherKeyMeta.DateTimeCreated,
	}
}

// GenerateKey handles the POST request to generate and store an AES key
// @Summary Generate an AES key and store it with its metadata
// @Description Generate a random AES key of the requested size in bits (default 256) and persist it together with its metadata.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key Generation Parameters"
// @Success 201 {object} CipherKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {

	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	keySize := request.KeySize
	if keySize == 0 {
		keySize = 256
	}

	cipherKeyMeta, err := handler.cipherKeyGenerationService.Generate(ctx, keySize)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating key: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newCipherKeyMetaResponse(cipherKeyMeta))
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// @Summary List key metadata based on query parameters
// @Description Fetch a list of key metadata based on filters like algorithm and creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param algorithm query string false "Cipher Algorithm"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CipherKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewCipherKeyQuery()

	if keyAlgorithm := ctx.Query("algorithm"); len(keyAlgorithm) > 0 {
		query.Algorithm = keyAlgorithm
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	cipherKeyMetas, err := handler.cipherKeyMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []CipherKeyMetaResponse{}
	for _, cipherKeyMeta := range cipherKeyMetas {
		listResponse = append(listResponse, newCipherKeyMetaResponse(cipherKeyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key metadata by ID
// @Summary Retrieve key metadata by ID
// @Description Fetch the key metadata by ID, including algorithm, key size and creation date.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} CipherKeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	cipherKeyMeta, err := handler.cipherKeyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("key with id %s not found", keyID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newCipherKeyMetaResponse(cipherKeyMeta))
}

// DownloadByID handles GET request to download raw key material by ID
// @Summary Download key material by ID
// @Description Download the raw material of a specific key by ID as a binary file.
// @Tags Key
// @Accept json
// @Produce application/octet-stream
// @Param id path string true "Key ID"
// @Success 200 {file} file "Raw key material"
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	// Existence check first so a missing key yields a 404
	if _, err := handler.cipherKeyMetadataService.GetByID(ctx, keyID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("key with id %s not found", keyID),
		})
		return
	}

	material, err := handler.cipherKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("could not download key with id %s: %v", keyID, err.Error()),
		})
		return
	}

	filename := fmt.Sprintf("%s-symmetric-key.bin", keyID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/octet-stream", material)
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a key by ID
// @Description Delete a specific key and associated metadata by ID.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.cipherKeyMetadataService.DeleteByID(ctx, keyID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting key with id %s", keyID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted key with id %s", keyID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
