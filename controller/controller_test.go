package controller

import (
	"context"
	"testing"

	"github.com/battlesnakeio/decaysnake/config"
	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func seed(v int64) *int64 { return &v }

func TestController_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())

	resp, err := ctrl.Create(ctx, &CreateRequest{Width: 7, Height: 7, StartLength: 3, Seed: seed(1)})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	st, err := ctrl.Status(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, GameStatusStopped, st.Game.Status)
	require.Equal(t, int64(1), st.Game.Seed)
	require.NotNil(t, st.LastFrame)
	require.Equal(t, int64(0), st.LastFrame.Turn)
	require.Equal(t, rules.Point{Row: 3, Col: 3}, st.LastFrame.Head)
	require.Equal(t, uint32(3), st.LastFrame.Level)
}

func TestController_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())

	resp, err := ctrl.Create(ctx, &CreateRequest{})
	require.NoError(t, err)

	st, err := ctrl.Status(ctx, resp.ID)
	require.NoError(t, err)
	require.True(t, st.Game.Width > 0)
	require.True(t, st.Game.Height > 0)
	require.True(t, st.Game.StartLength > 0)
	require.True(t, st.Game.TurnDelay > 0)
}

func TestController_CreateInvalid(t *testing.T) {
	ctrl := New(InMemStore())

	cases := []*CreateRequest{
		{Width: -3, Height: 7},
		{Width: config.MaxWidth + 1, Height: 7},
		{Width: 7, Height: config.MaxHeight + 1},
		{Width: 1 << 32, Height: 1 << 32},
	}
	for _, req := range cases {
		_, err := ctrl.Create(context.Background(), req)
		require.Error(t, err)
		require.Equal(t, rules.ErrInvalidConfiguration, errors.Cause(err))
	}

	resp, err := ctrl.Create(context.Background(), &CreateRequest{Width: config.MaxWidth, Height: config.MaxHeight})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
}

func TestController_CreateFullBoardIsComplete(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())

	resp, err := ctrl.Create(ctx, &CreateRequest{Width: 1, Height: 1, StartLength: 1})
	require.NoError(t, err)

	st, err := ctrl.Status(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, GameStatusComplete, st.Game.Status)
	require.Equal(t, rules.ErrGameOver, ctrl.Start(ctx, resp.ID))
}

func TestController_StartAndMove(t *testing.T) {
	ctx := context.Background()
	store := InMemStore()
	ctrl := New(store)

	resp, err := ctrl.Create(ctx, &CreateRequest{Width: 7, Height: 7, StartLength: 3})
	require.NoError(t, err)

	require.NoError(t, ctrl.Start(ctx, resp.ID))
	require.NoError(t, ctrl.Start(ctx, resp.ID))
	id, err := store.PopGameID(ctx)
	require.NoError(t, err)
	require.Equal(t, resp.ID, id)

	require.NoError(t, ctrl.Move(ctx, resp.ID, &MoveRequest{Direction: "Left"}))
	require.Equal(t, ErrInvalidDirection, ctrl.Move(ctx, resp.ID, &MoveRequest{Direction: "north"}))
	d, err := store.PopInput(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, rules.DirectionLeft, d)

	require.Equal(t, ErrNotFound, ctrl.Start(ctx, "missing"))
	_, err = ctrl.Status(ctx, "missing")
	require.Equal(t, ErrNotFound, err)
}

func TestController_ListGameFrames(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())

	resp, err := ctrl.Create(ctx, &CreateRequest{Width: 5, Height: 5, StartLength: 2})
	require.NoError(t, err)

	list, err := ctrl.ListGameFrames(ctx, resp.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	require.Len(t, list.Frames, 1)
}
