package service

import (
	"context"
	"path/filepath"
	"testing"

	dsImpl "noc-monitor/internal/datasource/implementation"
	"noc-monitor/internal/entity"
	"noc-monitor/internal/repository/contract"
	repoImpl "noc-monitor/internal/repository/implementation"

	"github.com/stretchr/testify/require"
)

func newFileRepository(t *testing.T) (contract.LogRepository, *dsImpl.FileSystemDataSource) {
	t.Helper()
	ds, err := dsImpl.NewFileSystemDataSource(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)
	return repoImpl.NewLogRepository(ds), ds
}

func readLogs(t *testing.T, repo contract.LogRepository, severity entity.LogSeverity) []*entity.LogEntry {
	t.Helper()
	logs, err := repo.GetLogs(context.Background(), severity)
	require.NoError(t, err)
	return logs
}
