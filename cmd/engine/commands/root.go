package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/decaysnake/cmd/engine/commands/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "engine plays decaying-snake games locally or hosts them over http",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(c *cobra.Command, args []string) {
		server.RootCmd.Run(c, args)
	},
}

var (
	apiAddr string
	gameID  string
	verbose bool
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", "http://localhost:3005", "address of the api server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log game events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(server.RootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requireGameID(c *cobra.Command, args []string) error {
	if len(gameID) == 0 {
		return fmt.Errorf("game id is required")
	}
	return nil
}
