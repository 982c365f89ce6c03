package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncsvc "github.com/iudanet/gophshop/internal/client/sync"
)

func TestRunSync_Success(t *testing.T) {
	syncer := &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{Attempted: 3, Synced: 2, Retried: 1}, nil
		},
	}

	var lines []string
	cli := &Cli{io: recordingIO(&lines), syncService: syncer}

	require.NoError(t, cli.runSync(context.Background()))

	assert.True(t, outputContains(lines, "Synced:  2"))
	assert.True(t, outputContains(lines, "Retried: 1"))
	assert.Len(t, syncer.DrainCalls(), 1)
}

func TestRunSync_Deferred(t *testing.T) {
	syncer := &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{Deferred: true}, nil
		},
	}

	var lines []string
	cli := &Cli{io: recordingIO(&lines), syncService: syncer}

	require.NoError(t, cli.runSync(context.Background()))
	assert.True(t, outputContains(lines, "deferred"))
}

func TestRunSync_NothingToDo(t *testing.T) {
	var lines []string
	cli := &Cli{io: recordingIO(&lines), syncService: idleSyncer()}

	require.NoError(t, cli.runSync(context.Background()))
	assert.True(t, outputContains(lines, "Nothing to synchronize"))
}

func TestRunSync_Dropped(t *testing.T) {
	syncer := &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{Attempted: 1, Dropped: 1}, nil
		},
	}

	var lines []string
	cli := &Cli{io: recordingIO(&lines), syncService: syncer}

	require.NoError(t, cli.runSync(context.Background()))
	assert.True(t, outputContains(lines, "Dropped: 1"))
}

func TestRunSync_Error(t *testing.T) {
	syncer := &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return nil, errors.New("queue unreadable")
		},
	}

	var lines []string
	cli := &Cli{io: recordingIO(&lines), syncService: syncer}

	err := cli.runSync(context.Background())
	assert.Error(t, err)
}
