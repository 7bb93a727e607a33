package engine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunToCompletion_Unpaced runs to the end without delay.
func TestRunToCompletion_Unpaced(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	steps, err := e.RunToCompletion(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	assert.True(t, e.IsComplete())
	assert.Equal(t, int64(3), e.TotalWeight())
}

// TestRunToCompletion_MaxSteps stops early.
func TestRunToCompletion_MaxSteps(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	steps, err := e.RunToCompletion(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.False(t, e.IsComplete())
}

// TestRunToCompletion_Paced checks that steps are spaced by the interval.
func TestRunToCompletion_Paced(t *testing.T) {
	e := engine.New(engine.WithAlgorithm(prim_kruskal.MethodPrim))
	require.NoError(t, e.Load(triangleText))

	begin := time.Now()
	steps, err := e.RunToCompletion(context.Background(), 20*time.Millisecond, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.GreaterOrEqual(t, time.Since(begin), 30*time.Millisecond)
}

// TestRunToCompletion_Cancel stops cooperatively between steps.
func TestRunToCompletion_Cancel(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	steps, err := e.RunToCompletion(ctx, time.Hour, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
	assert.Empty(t, e.MSTEdges())
}

// TestRunToCompletion_DeadlineBeyondInterval keeps stepping until the deadline
// actually expires, then reports it.
func TestRunToCompletion_DeadlineBeyondInterval(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	begin := time.Now()
	steps, err := e.RunToCompletion(ctx, 300*time.Millisecond, 0)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, steps)
	assert.Error(t, ctx.Err())
	assert.GreaterOrEqual(t, time.Since(begin), 450*time.Millisecond)
	assert.False(t, e.Running())
}

// TestRunToCompletion_DeadlineAfterCompletion finishes normally when the
// deadline leaves room for every step.
func TestRunToCompletion_DeadlineAfterCompletion(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	steps, err := e.RunToCompletion(ctx, 50*time.Millisecond, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	assert.True(t, e.IsComplete())
}

// TestRunToCompletion_ExcludesManualStep checks the one-step-in-flight policy.
func TestRunToCompletion_ExcludesManualStep(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = e.RunToCompletion(ctx, time.Hour, 0)
	}()

	require.Eventually(t, e.Running, time.Second, time.Millisecond)

	_, err := e.Step()
	assert.ErrorIs(t, err, engine.ErrBusy)
	_, err = e.RunToCompletion(context.Background(), 0, 0)
	assert.ErrorIs(t, err, engine.ErrBusy)
	assert.ErrorIs(t, e.Restart(), engine.ErrBusy)
	assert.ErrorIs(t, e.Load(triangleText), engine.ErrBusy)
	assert.ErrorIs(t, e.LastError(), engine.ErrBusy)

	cancel()
	wg.Wait()
	assert.False(t, e.Running())
	_, err = e.Step()
	assert.NoError(t, err)
	assert.Len(t, e.MSTEdges(), 1)
}

// TestClampSpeed checks bounds and rounding.
func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 100, engine.ClampSpeed(10))
	assert.Equal(t, 2000, engine.ClampSpeed(9000))
	assert.Equal(t, 500, engine.ClampSpeed(520))
	assert.Equal(t, 600, engine.ClampSpeed(550))
}
