package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/termin-kalender/internal/app"
	"github.com/klabast/wb-services/termin-kalender/internal/commands"
)

var rootCmd = &cobra.Command{
	Use:   "termin-kalender",
	Short: "Interactive calendar event tracker",
	Long: `A menu-driven terminal tool to add, list, filter, edit, search and
export date-tagged calendar events. Events are held in memory for the
current session; export writes CSV, ICS or JSON files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		store := app.NewStore()
		return commands.Run(store, cfg)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
