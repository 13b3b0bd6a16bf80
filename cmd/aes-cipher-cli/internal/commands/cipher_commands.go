package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/infrastructure/cryptography"
	"aes_cipher_service/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CipherCommandHandler encapsulates logic for encrypting and decrypting files via CLI.
type CipherCommandHandler struct {
	aesService ciphers.AESService
	logger     logger.Logger
}

// NewCipherCommandHandler initializes and returns a CipherCommandHandler instance with
// configured logger and AES service.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesService, err := cryptography.NewAESService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	return &CipherCommandHandler{
		aesService: aesService,
		logger:     loggerInstance,
	}, nil
}

// encryptBytes enciphers plainText with a fresh session. For chained modes a
// random IV is generated and prepended to the returned ciphertext.
func (commandHandler *CipherCommandHandler) encryptBytes(key []byte, mode ciphers.Mode, plainText []byte) ([]byte, error) {
	var iv []byte
	if mode.RequiresIV() {
		generated, err := cryptography.GenerateIV()
		if err != nil {
			return nil, err
		}
		iv = generated
	}

	session, err := commandHandler.aesService.NewSession(key, mode, iv)
	if err != nil {
		return nil, err
	}

	cipherText, err := session.Encrypt(plainText)
	if err != nil {
		return nil, err
	}

	return append(iv, cipherText...), nil
}

// decryptBytes deciphers data produced by encryptBytes. For chained modes the
// leading block is taken as the IV.
func (commandHandler *CipherCommandHandler) decryptBytes(key []byte, mode ciphers.Mode, data []byte) ([]byte, error) {
	var iv []byte
	if mode.RequiresIV() {
		if len(data) < ciphers.BlockSize {
			return nil, fmt.Errorf("encrypted input of %d bytes is too short to carry an IV", len(data))
		}
		iv = data[:ciphers.BlockSize]
		data = data[ciphers.BlockSize:]
	}

	session, err := commandHandler.aesService.NewSession(key, mode, iv)
	if err != nil {
		return nil, err
	}

	plainText, err := session.Decrypt(data)
	if err != nil {
		return nil, err
	}

	return plainText, nil
}

// EncryptFileCmd encrypts a file using AES in the selected cipher mode
func (commandHandler *CipherCommandHandler) EncryptFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}

	mode, err := ciphers.ParseMode(modeName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := commandHandler.encryptBytes(key, mode, plainText)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, encryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
}

// DecryptFileCmd decrypts a file using AES in the selected cipher mode
func (commandHandler *CipherCommandHandler) DecryptFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}

	mode, err := ciphers.ParseMode(modeName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.decryptBytes(key, mode, encryptedData)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
}

// EncryptFilesCmd encrypts every regular file in a directory concurrently,
// with one session and IV per file
func (commandHandler *CipherCommandHandler) EncryptFilesCmd(cmd *cobra.Command, _ []string) {
	inputDir, err := cmd.Flags().GetString("input-dir")
	if err != nil {
		commandHandler.logger.Error("invalid input-dir flag ", err)
		return
	}
	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		commandHandler.logger.Error("invalid output-dir flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}

	mode, err := ciphers.ParseMode(modeName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var g errgroup.Group
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		count++
		name := entry.Name()
		g.Go(func() error {
			plainText, err := os.ReadFile(filepath.Clean(filepath.Join(inputDir, name)))
			if err != nil {
				return err
			}
			encryptedData, err := commandHandler.encryptBytes(key, mode, plainText)
			if err != nil {
				return fmt.Errorf("failed to encrypt %s: %w", name, err)
			}
			return os.WriteFile(filepath.Join(outputDir, name+".enc"), encryptedData, 0600)
		})
	}

	if err := g.Wait(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted ", count, " files to ", outputDir)
}

// DecryptFilesCmd decrypts every regular file in a directory concurrently
func (commandHandler *CipherCommandHandler) DecryptFilesCmd(cmd *cobra.Command, _ []string) {
	inputDir, err := cmd.Flags().GetString("input-dir")
	if err != nil {
		commandHandler.logger.Error("invalid input-dir flag ", err)
		return
	}
	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		commandHandler.logger.Error("invalid output-dir flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}

	mode, err := ciphers.ParseMode(modeName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var g errgroup.Group
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		count++
		name := entry.Name()
		g.Go(func() error {
			encryptedData, err := os.ReadFile(filepath.Clean(filepath.Join(inputDir, name)))
			if err != nil {
				return err
			}
			decryptedData, err := commandHandler.decryptBytes(key, mode, encryptedData)
			if err != nil {
				return fmt.Errorf("failed to decrypt %s: %w", name, err)
			}
			outputName := strings.TrimSuffix(name, ".enc")
			if outputName == name {
				outputName = name + ".dec"
			}
			return os.WriteFile(filepath.Join(outputDir, outputName), decryptedData, 0600)
		})
	}

	if err := g.Wait(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted ", count, " files to ", outputDir)
}

// InitCipherCommands registers file encryption and decryption commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create cipher command handler %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt-file",
		Short: "Encrypt a file using AES",
		Run:   handler.EncryptFileCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	encryptFileCmd.Flags().StringP("mode", "", "CTR", "Cipher mode (ECB, CBC, CFB or CTR)")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt-file",
		Short: "Decrypt a file using AES",
		Run:   handler.DecryptFileCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	decryptFileCmd.Flags().StringP("mode", "", "CTR", "Cipher mode (ECB, CBC, CFB or CTR)")
	rootCmd.AddCommand(decryptFileCmd)

	var encryptFilesCmd = &cobra.Command{
		Use:   "encrypt-files",
		Short: "Encrypt all files in a directory using AES",
		Run:   handler.EncryptFilesCmd,
	}
	encryptFilesCmd.Flags().StringP("input-dir", "", "", "Directory with files that need to be encrypted")
	encryptFilesCmd.Flags().StringP("output-dir", "", "", "Directory for encrypted output files")
	encryptFilesCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	encryptFilesCmd.Flags().StringP("mode", "", "CTR", "Cipher mode (ECB, CBC, CFB or CTR)")
	rootCmd.AddCommand(encryptFilesCmd)

	var decryptFilesCmd = &cobra.Command{
		Use:   "decrypt-files",
		Short: "Decrypt all files in a directory using AES",
		Run:   handler.DecryptFilesCmd,
	}
	decryptFilesCmd.Flags().StringP("input-dir", "", "", "Directory with encrypted files")
	decryptFilesCmd.Flags().StringP("output-dir", "", "", "Directory for decrypted output files")
	decryptFilesCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	decryptFilesCmd.Flags().StringP("mode", "", "CTR", "Cipher mode (ECB, CBC, CFB or CTR)")
	rootCmd.AddCommand(decryptFilesCmd)

	return nil
}
