package v1

import (
	"github.com/gin-gonic/gin"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cipherSessionService ciphers.CipherSessionService,
	cipherKeyGenerationService keys.CipherKeyGenerationService,
	cipherKeyDownloadService keys.CipherKeyDownloadService,
	cipherKeyMetadataService keys.CipherKeyMetadataService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Sessions Routes
	sessionHandler := NewSessionHandler(cipherSessionService)
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions", sessionHandler.List)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.POST("/sessions/:id/encrypt", sessionHandler.Encrypt)
	v1.POST("/sessions/:id/decrypt", sessionHandler.Decrypt)
	v1.DELETE("/sessions/:id", sessionHandler.DeleteByID)

	// Keys Routes
	keyHandler := NewKeyHandler(cipherKeyGenerationService, cipherKeyDownloadService, cipherKeyMetadataService)
	v1.POST("/keys", keyHandler.GenerateKey)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
}
