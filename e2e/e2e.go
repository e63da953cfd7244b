package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/battlesnakeio/decaysnake/controller"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) post(path string, body interface{}) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return c.client.Post(fmt.Sprintf("%s%s", c.apiURL, path), "application/json", bytes.NewBuffer(data))
}

func (c *client) beginGame(cr *controller.CreateRequest) (string, error) {
	var gameID string

	{
		resp, err := c.post("/games", cr)
		if err != nil {
			return "", err
		}
		res := &controller.CreateResponse{}
		err = json.NewDecoder(resp.Body).Decode(res)
		if cErr := resp.Body.Close(); cErr != nil {
			return "", cErr
		}
		if err != nil {
			return "", err
		}
		gameID = res.ID
	}

	{
		resp, err := c.client.Post(fmt.Sprintf("%s/games/%s/start", c.apiURL, gameID), "application/json", nil)
		if err != nil {
			return "", err
		}
		err = resp.Body.Close()
		if err != nil {
			return "", err
		}
	}

	return gameID, nil
}

// move queues a direction and returns the response code, 409 once the game
// is over.
func (c *client) move(gameID, direction string) (int, error) {
	resp, err := c.post(fmt.Sprintf("/games/%s/move", gameID), &controller.MoveRequest{Direction: direction})
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, resp.Body.Close()
}

func (c *client) gameStatus(gameID string) (*controller.StatusResponse, *controller.ListGameFramesResponse, error) {
	st := &controller.StatusResponse{}
	frames := &controller.ListGameFramesResponse{}

	{
		resp, err := c.client.Get(fmt.Sprintf("%s/games/%s", c.apiURL, gameID))
		if err != nil {
			return nil, nil, err
		}
		err = json.NewDecoder(resp.Body).Decode(st)
		if err != nil {
			return nil, nil, err
		}
		err = resp.Body.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	{
		resp, err := c.client.Get(fmt.Sprintf("%s/games/%s/frames?limit=1000", c.apiURL, gameID))
		if err != nil {
			return nil, nil, err
		}
		err = json.NewDecoder(resp.Body).Decode(frames)
		if err != nil {
			return nil, nil, err
		}
		err = resp.Body.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	return st, frames, nil
}
