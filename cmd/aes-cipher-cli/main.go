// Package main is the entry point for the aes-cipher-cli application.
// It initializes the root command and registers the key generation and file
// cipher sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "aes_cipher_service/cmd/aes-cipher-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "aes-cipher-cli",
		Short: "AES cipher operations CLI tool",
		Long: `aes-cipher-cli is a command-line tool for AES cipher operations.
Supports AES key generation and file encryption/decryption in the ECB, CBC,
CFB and CTR block cipher modes. Chained modes prepend a random IV to the
encrypted output and read it back on decryption.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register key generation commands
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	// Register file cipher commands
	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
