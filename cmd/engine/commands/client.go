package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/pkg/errors"
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}

func createGame(cr *controller.CreateRequest) (*controller.CreateResponse, error) {
	resp := &controller.CreateResponse{}
	err := call("POST", "/games", cr, resp)
	return resp, err
}

func startGame(id string) error {
	return call("POST", fmt.Sprintf("/games/%s/start", id), nil, nil)
}

func moveGame(id, direction string) error {
	return call("POST", fmt.Sprintf("/games/%s/move", id), &controller.MoveRequest{Direction: direction}, nil)
}

func getStatus(id string) (*controller.StatusResponse, error) {
	resp := &controller.StatusResponse{}
	err := call("GET", fmt.Sprintf("/games/%s", id), nil, resp)
	return resp, err
}

func call(method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "unable to marshal request")
		}
	}
	req, err := http.NewRequest(method, apiAddr+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "error while calling %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "unable to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := struct {
			Error string `json:"error"`
		}{}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return errors.Errorf("%s %s: %s", method, path, e.Error)
		}
		return errors.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(data, out), "unable to unmarshal response")
}
