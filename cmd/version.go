package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("FinNova %s\n", AppVersion)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			fmt.Println("GEMINI_API_KEY: not set")
			return
		}
		if len(key) > 8 {
			fmt.Printf("GEMINI_API_KEY: %s...%s (configured)\n", key[:4], key[len(key)-4:])
		} else {
			fmt.Println("GEMINI_API_KEY: configured")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
