package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMulticaster struct {
	batches [][]string
	errFor  func(batch []string) error
}

func (m *recordingMulticaster) Multicast(ctx context.Context, to []string, message string) error {
	m.batches = append(m.batches, to)
	if m.errFor != nil {
		return m.errFor(to)
	}
	return nil
}

func lineTargets(n int) []domain.Target {
	targets := make([]domain.Target, n)
	for i := range targets {
		targets[i] = domain.Target{
			Channel: domain.ChannelLine,
			UserID:  fmt.Sprintf("u%d", i),
			Address: fmt.Sprintf("L%d", i),
		}
	}
	return targets
}

func TestLineSender_SingleBatchUnderCap(t *testing.T) {
	api := &recordingMulticaster{}
	s := &LineSender{api: api, sendTimeout: time.Second}

	outcomes := s.Send(context.Background(), lineTargets(3), "hi")

	require.Len(t, api.batches, 1)
	assert.Equal(t, []string{"L0", "L1", "L2"}, api.batches[0])
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.NoError(t, o.Err)
	}
}

func TestLineSender_SplitsAboveCap(t *testing.T) {
	api := &recordingMulticaster{}
	s := &LineSender{api: api, sendTimeout: time.Second}

	outcomes := s.Send(context.Background(), lineTargets(1103), "hi")

	require.Len(t, api.batches, 3)
	assert.Len(t, api.batches[0], 500)
	assert.Len(t, api.batches[1], 500)
	assert.Len(t, api.batches[2], 103)
	assert.Len(t, outcomes, 1103)
}

func TestLineSender_FailedBatchFailsAllItsIDs(t *testing.T) {
	api := &recordingMulticaster{
		errFor: func(batch []string) error {
			// Fail only the second batch.
			if batch[0] == "L500" {
				return errors.New("multicast rejected")
			}
			return nil
		},
	}
	s := &LineSender{api: api, sendTimeout: time.Second}

	outcomes := s.Send(context.Background(), lineTargets(600), "hi")

	require.Len(t, outcomes, 600)
	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	assert.Equal(t, 100, failed)
	// First batch untouched by the second batch's failure.
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[599].Err)
}
