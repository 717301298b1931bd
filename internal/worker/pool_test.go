package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProcessesEveryItem(t *testing.T) {
	p := &Pool[int]{Concurrency: 4}
	var sum int64

	err := p.Run(context.Background(), []int{1, 2, 3, 4, 5}, func(ctx context.Context, job Job[int]) error {
		atomic.AddInt64(&sum, int64(job.Item))
		return nil
	})

	require.NoError(t, err)
	assert.EqualValues(t, 15, sum)
}

func TestRunReturnsFirstError(t *testing.T) {
	p := &Pool[int]{Concurrency: 2}
	boom := errors.New("boom")

	err := p.Run(context.Background(), []int{1, 2, 3}, func(ctx context.Context, job Job[int]) error {
		if job.Item == 2 {
			return boom
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunCancelsRemainingJobsOnError(t *testing.T) {
	p := &Pool[int]{Concurrency: 1}
	boom := errors.New("boom")
	var processedAfterCancel int32

	err := p.Run(context.Background(), []int{1, 2, 3, 4}, func(ctx context.Context, job Job[int]) error {
		if job.Item == 1 {
			return boom
		}
		if ctx.Err() != nil {
			atomic.AddInt32(&processedAfterCancel, 1)
			return ctx.Err()
		}
		return nil
	})

	require.Error(t, err)
	assert.EqualValues(t, 3, processedAfterCancel)
}

func TestRunWithZeroItemsSucceeds(t *testing.T) {
	p := &Pool[string]{}
	err := p.Run(context.Background(), nil, func(ctx context.Context, job Job[string]) error {
		t.Fatal("should not be called")
		return nil
	})
	require.NoError(t, err)
}
