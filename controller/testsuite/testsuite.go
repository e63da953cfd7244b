package testsuite

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/battlesnakeio/decaysnake/rules"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func newSession(key string, status controller.GameStatus) *controller.Session {
	return &controller.Session{ID: key, Width: 7, Height: 7, StartLength: 3, Status: status}
}

func testStoreLock(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Lock random key.
	tok, err := s.Lock(ctx, key, "")
	require.Nil(t, err)
	require.NotEmpty(t, tok)

	// Lock with valid token, no error same token returned.
	tok2, err := s.Lock(ctx, key, tok)
	require.Nil(t, err)
	require.Equal(t, tok, tok2)

	// Lock with another token is refused.
	_, err = s.Lock(ctx, key, "someone-else")
	require.Equal(t, controller.ErrIsLocked, err)

	// Unlock without valid token returns error.
	err = s.Unlock(ctx, key, "")
	require.Error(t, err)

	// Unlock with valid token no error.
	err = s.Unlock(ctx, key, tok)
	require.Nil(t, err)

	// Unlock where lock doesn't exist returns no error.
	err = s.Unlock(ctx, key+"-missing", "")
	require.Nil(t, err)
}

func testStoreLockExpiry(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Negative expiry, will always be expired.
	controller.LockExpiry = -10 * time.Second
	defer func() { controller.LockExpiry = 1 * time.Second }()

	// Lock random key.
	tok, err := s.Lock(ctx, key, "")
	require.Nil(t, err)
	require.NotEmpty(t, tok)

	// Lock (with token) has expired.
	tok2, err := s.Lock(ctx, key, tok)
	require.Nil(t, err)
	require.Equal(t, tok, tok2)

	// Unlock (no token) has expired.
	err = s.Unlock(ctx, key, "")
	require.NoError(t, err)

	// Lock (no token) has expired.
	_, err = s.Lock(ctx, key, "")
	require.Nil(t, err)

	// Unlock (no token) has expired.
	err = s.Unlock(ctx, key, "")
	require.Nil(t, err)
}

func testStoreGameStatus(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Stopped games are not popped.
	err := s.CreateGame(ctx, newSession(key, controller.GameStatusStopped), nil)
	require.Nil(t, err)
	_, err = s.PopGameID(ctx)
	require.Equal(t, controller.ErrNotFound, err)

	// Set game to running.
	err = s.SetGameStatus(ctx, key, controller.GameStatusRunning)
	require.Nil(t, err)

	// Pop game can find it.
	id, err := s.PopGameID(ctx)
	require.Nil(t, err)
	require.Equal(t, key, id)

	// Set game to error.
	err = s.SetGameStatus(ctx, key, controller.GameStatusError)
	require.Nil(t, err)

	// Cannot pop.
	_, err = s.PopGameID(ctx)
	require.NotNil(t, err)

	// Unknown games.
	err = s.SetGameStatus(ctx, key+"-missing", controller.GameStatusRunning)
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreGames(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, newSession(key, controller.GameStatusRunning), nil)
	require.Nil(t, err)
	g, err := s.GetGame(ctx, key)
	require.Nil(t, err)
	require.Equal(t, key, g.ID)

	// Returned sessions are copies.
	g.Status = controller.GameStatusError
	g, err = s.GetGame(ctx, key)
	require.Nil(t, err)
	require.Equal(t, controller.GameStatusRunning, g.Status)

	// NotFound error thrown.
	_, err = s.GetGame(ctx, key+"-missing")
	require.Equal(t, controller.ErrNotFound, err)

	// Pop game can find it.
	id, err := s.PopGameID(ctx)
	require.Nil(t, err)
	require.Equal(t, key, id)

	// Lock test key, cannot pop.
	_, err = s.Lock(ctx, key, "")
	require.Nil(t, err)
	_, err = s.PopGameID(ctx)
	require.NotNil(t, err)
}

func testStoreInputs(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	err := s.CreateGame(ctx, newSession(key, controller.GameStatusRunning), nil)
	require.Nil(t, err)

	// Empty queue yields no direction.
	d, err := s.PopInput(ctx, key)
	require.Nil(t, err)
	require.Equal(t, rules.DirectionNone, d)

	// Inputs come back in order.
	require.Nil(t, s.PushInput(ctx, key, rules.DirectionUp))
	require.Nil(t, s.PushInput(ctx, key, rules.DirectionLeft))
	d, err = s.PopInput(ctx, key)
	require.Nil(t, err)
	require.Equal(t, rules.DirectionUp, d)
	d, err = s.PopInput(ctx, key)
	require.Nil(t, err)
	require.Equal(t, rules.DirectionLeft, d)

	// Finished games refuse input.
	require.Nil(t, s.SetGameStatus(ctx, key, controller.GameStatusComplete))
	require.Equal(t, rules.ErrGameOver, s.PushInput(ctx, key, rules.DirectionDown))

	// Unknown games.
	require.Equal(t, controller.ErrNotFound, s.PushInput(ctx, key+"-missing", rules.DirectionDown))
	_, err = s.PopInput(ctx, key+"-missing")
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreGameFrames(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, newSession(key, controller.GameStatusRunning), nil)
	require.Nil(t, err)

	// Read game frames, too high offset.
	frames, err := s.ListGameFrames(ctx, key, 10, 100)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))

	// Read game frames, 0 offset.
	frames, err = s.ListGameFrames(ctx, key, 10, 0)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))

	// Push game frames.
	for turn := int64(0); turn < 3; turn++ {
		err = s.PushGameFrame(ctx, key, &rules.Frame{Turn: turn})
		require.Nil(t, err)
	}

	// Read the game frames.
	frames, err = s.ListGameFrames(ctx, key, 1, 0)
	require.Nil(t, err)
	require.Equal(t, 1, len(frames))
	require.Equal(t, int64(0), frames[0].Turn)

	// Offset is a turn number.
	frames, err = s.ListGameFrames(ctx, key, 0, 1)
	require.Nil(t, err)
	require.Equal(t, 2, len(frames))
	require.Equal(t, int64(1), frames[0].Turn)

	// Negative offset reads from the end.
	frames, err = s.ListGameFrames(ctx, key, 1, -1)
	require.Nil(t, err)
	require.Equal(t, 1, len(frames))
	require.Equal(t, int64(2), frames[0].Turn)

	// Read game frames that don't exist.
	frames, err = s.ListGameFrames(ctx, key+"-missing", 1, 0)
	require.Equal(t, controller.ErrNotFound, err)
	require.Equal(t, 0, len(frames))
	err = s.PushGameFrame(ctx, key+"-missing", &rules.Frame{})
	require.Equal(t, controller.ErrNotFound, err)

	// Read the game frames, too high offset.
	frames, err = s.ListGameFrames(ctx, key, 10, 100)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, newSession(key, controller.GameStatusRunning), nil)
	require.Nil(t, err)

	var ok uint32 // How many got the lock.
	var wg sync.WaitGroup
	wg.Add(20)

	for i := 0; i < 20; i++ {
		go func() {
			_, errl := s.Lock(ctx, key, "")
			if errl == nil {
				atomic.AddUint32(&ok, 1)
			}
			wg.Done()
		}()
	}

	wg.Wait()

	require.Equal(t, uint32(1), ok)
}

// Suite will execute the store testsuite. newStore is called for every case,
// PopGameID assertions assume the store holds nothing else.
func Suite(t *testing.T, newStore func() controller.Store) {
	run := func(name string, fn func(*testing.T, controller.Store)) {
		t.Run(name, func(t *testing.T) { fn(t, controller.InstrumentStore(newStore())) })
	}
	run("Lock", testStoreLock)
	run("LockExpiry", testStoreLockExpiry)
	run("Games", testStoreGames)
	run("GameStatus", testStoreGameStatus)
	run("Inputs", testStoreInputs)
	run("GameFrames", testStoreGameFrames)
	run("ConcurrentWriters", testStoreConcurrentWriters)
}
