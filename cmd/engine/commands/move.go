package commands

import (
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "starts a created game so the workers advance it",
	Args:  requireGameID,
	RunE: func(*cobra.Command, []string) error {
		return startGame(gameID)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [up|down|left|right]...",
	Short: "queues one or more directions for a running game",
	Args: func(c *cobra.Command, args []string) error {
		if err := requireGameID(c, args); err != nil {
			return err
		}
		return cobra.MinimumNArgs(1)(c, args)
	},
	RunE: func(c *cobra.Command, args []string) error {
		for _, d := range args {
			if err := moveGame(gameID, d); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to start")
	moveCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to move")
}
