// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-engine/internal/batch"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() batch.Result {
	return batch.Result{
		Processed: []batch.FileResult{
			{Input: "original/a.txt", Output: "stripped/a.txt"},
		},
		Failed: []batch.Failure{
			{File: "original/b.txt", Error: "permission denied"},
		},
	}
}

func TestRecordRunAndListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.RecordRun(ctx, "original", "stripped", sampleResult())
	require.NoError(t, err)
	assert.Positive(t, runID)

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.ID)
	assert.Equal(t, "original", run.InputDir)
	assert.Equal(t, "stripped", run.OutputDir)
	assert.Equal(t, 1, run.Processed)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 0, run.Skipped)
	assert.False(t, run.StartedAt.IsZero())
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		id, err := s.RecordRun(ctx, "original", "stripped", batch.Result{})
		require.NoError(t, err)
		last = id
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, last, runs[0].ID)
	assert.Greater(t, runs[0].ID, runs[1].ID)
}

func TestRunFiles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.RecordRun(ctx, "original", "stripped", sampleResult())
	require.NoError(t, err)

	files, err := s.RunFiles(ctx, runID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "original/a.txt", files[0].File)
	assert.Equal(t, "stripped/a.txt", files[0].Output)
	assert.Equal(t, StatusStripped, files[0].Status)
	assert.Empty(t, files[0].Error)

	assert.Equal(t, "original/b.txt", files[1].File)
	assert.Equal(t, StatusFailed, files[1].Status)
	assert.Equal(t, "permission denied", files[1].Error)
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{HistoryDir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = s.RecordRun(context.Background(), "original", "stripped", sampleResult())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(cfg)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordRun(ctx, "original", "stripped", sampleResult())
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, "yaml"))
		assert.Contains(t, buf.String(), "input_dir: original")
		assert.Contains(t, buf.String(), "status: failed")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, "json"))

		var out struct {
			Runs  []Run         `json:"runs"`
			Files []FileOutcome `json:"files"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Len(t, out.Runs, 1)
		assert.Len(t, out.Files, 2)
	})

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := s.Export(ctx, &buf, "toml")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "unsupported format"))
	})
}
