package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "creates a new game on the engine",
	Args: func(c *cobra.Command, args []string) error {
		if configFile == "" {
			return nil
		}
		data, err := os.ReadFile(configFile) // nolint: gosec
		if err != nil {
			return err
		}
		return json.Unmarshal(data, cr)
	},
	RunE: func(c *cobra.Command, args []string) error {
		if c.Flags().Changed("seed") {
			cr.Seed = &createSeed
		}
		resp, err := createGame(cr)
		if err != nil {
			return err
		}
		if createStart {
			if err := startGame(resp.ID); err != nil {
				return err
			}
		}
		fmt.Printf(`{"id": "%s"}`+"\n", resp.ID)
		return nil
	},
}

var (
	configFile  string
	createSeed  int64
	createStart bool
	cr          = &controller.CreateRequest{}
)

func init() {
	createCmd.Flags().StringVarP(&configFile, "config", "c", "", "json file holding the create request")
	createCmd.Flags().IntVar(&cr.Width, "width", 0, "board width")
	createCmd.Flags().IntVar(&cr.Height, "height", 0, "board height")
	createCmd.Flags().Uint32Var(&cr.StartLength, "length", 0, "starting growth level")
	createCmd.Flags().IntVar(&cr.TurnDelay, "delay", 0, "turn delay in milliseconds")
	createCmd.Flags().Int64Var(&createSeed, "seed", 0, "food placement seed")
	createCmd.Flags().BoolVar(&createStart, "start", false, "start the game right away")
}
