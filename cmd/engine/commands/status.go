package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the status of a game from the engine",
	Args:  requireGameID,
	RunE: func(*cobra.Command, []string) error {
		st, err := getStatus(gameID)
		if err != nil {
			return err
		}
		if statusBoard && st.LastFrame != nil {
			fmt.Print(st.LastFrame.String())
			return nil
		}
		spew.Dump(st)
		return nil
	},
}

var statusBoard bool

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to get the status of")
	statusCmd.Flags().BoolVarP(&statusBoard, "board", "b", false, "print the latest board instead of the full status")
}
