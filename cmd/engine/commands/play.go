package commands

import (
	"io"
	"time"

	"github.com/battlesnakeio/decaysnake/config"
	"github.com/battlesnakeio/decaysnake/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	playWidth  = config.DefaultWidth
	playHeight = config.DefaultHeight
	playLength = uint32(config.DefaultStartLength)
	playDelay  = config.TurnDelay
	playSeed   int64
)

func init() {
	playCmd.Flags().IntVar(&playWidth, "width", playWidth, "board width")
	playCmd.Flags().IntVar(&playHeight, "height", playHeight, "board height")
	playCmd.Flags().Uint32Var(&playLength, "length", playLength, "starting growth level")
	playCmd.Flags().DurationVar(&playDelay, "delay", playDelay, "time between ticks")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "food placement seed, random when unset")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game in the terminal, steer with w/a/s/d or the arrow keys",
	RunE: func(c *cobra.Command, args []string) error {
		// Log output tears the terminal UI, discard it unless verbose.
		logger := log.New()
		logger.Out = io.Discard
		if verbose {
			logger = log.StandardLogger()
		}
		opts := []rules.Option{rules.WithLogger(logger)}
		if c.Flags().Changed("seed") {
			opts = append(opts, rules.WithSource(rules.NewSource(playSeed)))
		}
		game, err := rules.New(playWidth, playHeight, playLength, opts...)
		if err != nil {
			return err
		}
		return playGame(game, playDelay)
	},
}

// inputQueue holds the keys pressed between ticks, one is consumed per tick.
type inputQueue struct {
	pending []rules.Direction
	max     int
}

func (q *inputQueue) push(d rules.Direction) {
	if d == rules.DirectionNone || len(q.pending) >= q.max {
		return
	}
	q.pending = append(q.pending, d)
}

func (q *inputQueue) pop() rules.Direction {
	if len(q.pending) == 0 {
		return rules.DirectionNone
	}
	d := q.pending[0]
	q.pending = q.pending[1:]
	return d
}

func playGame(game *rules.Game, delay time.Duration) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(delay)
	defer cycle.Stop()
	inputs := &inputQueue{max: config.MaxQueuedInputs}

	if err := render(game.Frame()); err != nil {
		return err
	}

	for !game.Done() {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				return nil
			}
			inputs.push(keyDirection(ev))
		case <-cycle.C:
			game.Tick(inputs.pop())
			if err := render(game.Frame()); err != nil {
				return err
			}
		}
	}

	log.WithFields(log.Fields{
		"Turn":   game.Turn(),
		"Level":  game.Level(),
		"Status": game.Status(),
	}).Debug("game finished")
	return waitForExit()
}
