package commands

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/gorilla/websocket"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchDelay = 200 * time.Millisecond

func init() {
	watchCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to watch")
	watchCmd.Flags().DurationVarP(&watchDelay, "delay", "d", watchDelay, "delay between rendered frames")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watches or replays a game on the engine",
	Args:  requireGameID,
	RunE: func(*cobra.Command, []string) error {
		return watchGame()
	},
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, *rules.Frame, bool) {
	if frameIndex+1 >= frames.count() {
		return frameIndex, nil, frames.finished()
	}
	frameIndex++
	return frameIndex, frames.get(frameIndex), false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, *rules.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex, frames.get(frameIndex)
}

func socketURL(addr, id string) string {
	u := url.URL{Scheme: "ws", Host: addr, Path: fmt.Sprintf("/socket/%s", id)}
	switch {
	case strings.HasPrefix(addr, "https://"):
		u.Scheme = "wss"
		u.Host = strings.TrimPrefix(addr, "https://")
	case strings.HasPrefix(addr, "http://"):
		u.Host = strings.TrimPrefix(addr, "http://")
	}
	u.Host = strings.TrimSuffix(u.Host, "/")
	return u.String()
}

func loadFrames(id string) (*frameHolder, error) {
	if _, err := getStatus(id); err != nil {
		return nil, err
	}

	addr := socketURL(apiAddr, id)
	log.WithField("url", addr).Debug("connecting to frame stream")
	c, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial")
	}

	frames := &frameHolder{}
	go func() {
		defer frames.finish()
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Debug("failure to close websocket connection")
			}
		}()

		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.WithError(err).Debug("read")
				}
				return
			}

			switch mt {
			case websocket.TextMessage:
				frame := &rules.Frame{}
				if err = json.Unmarshal(message, frame); err != nil {
					log.WithError(err).Debug("unmarshal frame")
					return
				}
				frames.append(frame)
			default:
				log.WithField("type", mt).Debug("unhandled message type")
			}
		}
	}()

	return frames, nil
}

func watchGame() error {
	frames, err := loadFrames(gameID)
	if err != nil {
		return err
	}

	var currentFrame *rules.Frame
	select {
	case currentFrame = <-frames.initialFrame():
	case <-time.After(5 * time.Second):
		return errors.New("unable to find initial frame for game")
	}

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(watchDelay)
	defer cycle.Stop()
	frameIndex := 0
	paused := false
	done := false

	if err = render(currentFrame); err != nil {
		return err
	}

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
				if err = render(currentFrame); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				var next *rules.Frame
				frameIndex, next, done = moveFrameForwards(frameIndex, frames)
				if next != nil {
					currentFrame = next
					if err = render(currentFrame); err != nil {
						return err
					}
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			var next *rules.Frame
			frameIndex, next, done = moveFrameForwards(frameIndex, frames)
			if next != nil {
				currentFrame = next
				if err = render(currentFrame); err != nil {
					return err
				}
			}
		}
	}

	return waitForExit()
}
