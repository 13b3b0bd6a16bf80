package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/infrastructure/cryptography"
	"aes_cipher_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating AES keys via CLI.
type KeyCommandHandler struct {
	aesService ciphers.AESService
	logger     logger.Logger
}

// NewKeyCommandHandler initializes and returns a KeyCommandHandler instance with
// configured logger and AES service.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesService, err := cryptography.NewAESService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	return &KeyCommandHandler{
		aesService: aesService,
		logger:     loggerInstance,
	}, nil
}

// GenerateAESKeyCmd generates an AES key and persists it in a selected directory
func (commandHandler *KeyCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	secretKey, err := commandHandler.aesService.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, secretKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
}

// InitKeyCommands registers key generation commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate an AES key",
		Run:   handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", 16, "AES key size in bytes (16, 24 or 32)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeyCmd)

	return nil
}
