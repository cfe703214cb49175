package implementation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"noc-monitor/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataSource(t *testing.T) (*FileSystemDataSource, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	ds, err := NewFileSystemDataSource(dir)
	require.NoError(t, err)
	return ds, dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func newEntry(level entity.LogSeverity, message string) *entity.LogEntry {
	return entity.NewLogEntry(entity.LogEntryOptions{Level: level, Message: message, Origin: "test"})
}

func TestEnsureStorageCreatesFiles(t *testing.T) {
	_, dir := newTestDataSource(t)

	for _, name := range []string{AllLogsFile, MediumLogsFile, HighLogsFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Zero(t, info.Size())
	}
}

func TestEnsureStorageKeepsExistingContent(t *testing.T) {
	ds, dir := newTestDataSource(t)
	ctx := context.Background()

	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "down")))
	before := readFile(t, filepath.Join(dir, HighLogsFile))

	require.NoError(t, ds.EnsureStorage())
	_, err := NewFileSystemDataSource(dir)
	require.NoError(t, err)

	assert.Equal(t, before, readFile(t, filepath.Join(dir, HighLogsFile)))
}

func TestSaveLogRoutesBySeverity(t *testing.T) {
	tests := []struct {
		level       entity.LogSeverity
		wantAll     int
		wantMedium  int
		wantHigh    int
		totalCopies int
	}{
		{level: entity.LogSeverityLow, wantAll: 1, totalCopies: 1},
		{level: entity.LogSeverityMedium, wantAll: 1, wantMedium: 1, totalCopies: 2},
		{level: entity.LogSeverityHigh, wantAll: 1, wantHigh: 1, totalCopies: 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			ds, dir := newTestDataSource(t)
			marker := "marker-" + string(tt.level)

			require.NoError(t, ds.SaveLog(context.Background(), newEntry(tt.level, marker)))

			all := strings.Count(readFile(t, filepath.Join(dir, AllLogsFile)), marker)
			medium := strings.Count(readFile(t, filepath.Join(dir, MediumLogsFile)), marker)
			high := strings.Count(readFile(t, filepath.Join(dir, HighLogsFile)), marker)

			assert.Equal(t, tt.wantAll, all)
			assert.Equal(t, tt.wantMedium, medium)
			assert.Equal(t, tt.wantHigh, high)
			assert.Equal(t, tt.totalCopies, all+medium+high)
		})
	}
}

func TestSaveLogWriteFormat(t *testing.T) {
	ds, dir := newTestDataSource(t)
	entry := newEntry(entity.LogSeverityLow, "ok")

	require.NoError(t, ds.SaveLog(context.Background(), entry))

	line, err := entry.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, line+" \n", readFile(t, filepath.Join(dir, AllLogsFile)))
}

func TestGetLogsFiltersBySeverity(t *testing.T) {
	ds, _ := newTestDataSource(t)
	ctx := context.Background()

	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityLow, "one")))
	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityMedium, "two")))
	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "three")))
	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "four")))

	all, err := ds.GetLogs(ctx, entity.LogSeverityLow)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"one", "two", "three", "four"}, messages(all))

	medium, err := ds.GetLogs(ctx, entity.LogSeverityMedium)
	require.NoError(t, err)
	require.Len(t, medium, 1)
	assert.Equal(t, entity.LogSeverityMedium, medium[0].Level)

	high, err := ds.GetLogs(ctx, entity.LogSeverityHigh)
	require.NoError(t, err)
	require.Len(t, high, 2)
	for _, l := range high {
		assert.Equal(t, entity.LogSeverityHigh, l.Level)
	}
}

func TestGetLogsEmptyFile(t *testing.T) {
	ds, _ := newTestDataSource(t)

	logs, err := ds.GetLogs(context.Background(), entity.LogSeverityHigh)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestGetLogsUnknownSeverityDoesNoIO(t *testing.T) {
	ds, dir := newTestDataSource(t)
	require.NoError(t, os.RemoveAll(dir))

	_, err := ds.GetLogs(context.Background(), entity.LogSeverity("critical"))
	assert.ErrorIs(t, err, entity.ErrUnknownSeverity)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGetLogsSkipsBlankLines(t *testing.T) {
	ds, dir := newTestDataSource(t)
	ctx := context.Background()
	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "down")))

	f, err := os.OpenFile(filepath.Join(dir, HighLogsFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("\n   \n\t\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	logs, err := ds.GetLogs(ctx, entity.LogSeverityHigh)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestGetLogsFailsOnCorruptLine(t *testing.T) {
	ds, dir := newTestDataSource(t)
	ctx := context.Background()
	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityMedium, "slow")))

	f, err := os.OpenFile(filepath.Join(dir, MediumLogsFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{not json} \n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ds.GetLogs(ctx, entity.LogSeverityMedium)
	assert.ErrorIs(t, err, entity.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFilesOrder(t *testing.T) {
	ds, dir := newTestDataSource(t)

	assert.Equal(t, []string{
		filepath.Join(dir, AllLogsFile),
		filepath.Join(dir, HighLogsFile),
		filepath.Join(dir, MediumLogsFile),
	}, ds.Files())
}

func messages(logs []*entity.LogEntry) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Message)
	}
	return out
}

func TestSaveLogRejectsUnreadableEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry *entity.LogEntry
	}{
		{name: "empty message", entry: entity.NewLogEntry(entity.LogEntryOptions{Level: entity.LogSeverityHigh, Origin: "x"})},
		{name: "empty origin", entry: entity.NewLogEntry(entity.LogEntryOptions{Level: entity.LogSeverityHigh, Message: "down"})},
		{name: "unknown level", entry: entity.NewLogEntry(entity.LogEntryOptions{Level: "critical", Message: "down", Origin: "x"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, dir := newTestDataSource(t)
			ctx := context.Background()
			require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "first")))

			err := ds.SaveLog(ctx, tt.entry)
			assert.ErrorIs(t, err, entity.ErrMalformedRecord)

			high, err := ds.GetLogs(ctx, entity.LogSeverityHigh)
			require.NoError(t, err)
			assert.Equal(t, []string{"first"}, messages(high))

			all, err := ds.GetLogs(ctx, entity.LogSeverityLow)
			require.NoError(t, err)
			assert.Len(t, all, 1)
			assert.Empty(t, readFile(t, filepath.Join(dir, MediumLogsFile)))
		})
	}
}

func TestSaveLogIgnoresCancelledContext(t *testing.T) {
	ds, _ := newTestDataSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, ds.SaveLog(ctx, newEntry(entity.LogSeverityHigh, "down")))

	high, err := ds.GetLogs(context.Background(), entity.LogSeverityHigh)
	require.NoError(t, err)
	assert.Len(t, high, 1)
}
