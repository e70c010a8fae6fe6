package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"namestat/internal/errors"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "namestat",
		Short: "Name roster analytics and companion data utilities",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newServeCmd(),
		newSplitLogCmd(),
		newCSVCopyCmd(),
		newHousingCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps application error codes to process exit codes so callers
// can distinguish failure classes
func exitCodeFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return 1
	case errors.CodeFormatError, errors.CodeDecodeError:
		return 2
	case errors.CodePermissionDenied:
		return 3
	case errors.CodeExists:
		return 4
	default:
		return 5
	}
}
