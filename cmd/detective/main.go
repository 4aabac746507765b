package main

import (
	"fmt"
	"os"

	"github.com/myrjola/detectivequest/cmd/detective/game"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddGroup(game.Group)
	rootCmd.AddCommand(game.Play)
	rootCmd.AddCommand(game.Map)
	rootCmd.RunE = game.Play.RunE
}

var rootCmd = &cobra.Command{
	Use:           "detective",
	Long:          `Detective Quest: explore the mansion, collect clues and accuse the culprit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
