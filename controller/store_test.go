package controller_test

import (
	"testing"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/battlesnakeio/decaysnake/controller/testsuite"
)

func TestInMemStore(t *testing.T) {
	testsuite.Suite(t, controller.InMemStore)
}
