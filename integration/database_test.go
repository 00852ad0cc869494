//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestSprintlensWithMySQL tests the sprintlens CLI with a MySQL archive backend.
func TestSprintlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "sprintlens",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/sprintlens?parseTime=true", host, port.Port())
	runArchiveWorkflow(t, "mysql", connStr)
}

// TestSprintlensWithPostgres tests the sprintlens CLI with a PostgreSQL archive backend.
func TestSprintlensWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runArchiveWorkflow(t, "postgresql", connStr)
}

// runArchiveWorkflow drives the import/chart/status/clear cycle against
// the given archive backend.
func runArchiveWorkflow(t *testing.T, backend, connStr string) {
	t.Helper()

	_ = os.Setenv("SPRINTLENS_ARCHIVE_BACKEND", backend)
	_ = os.Setenv("SPRINTLENS_ARCHIVE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("SPRINTLENS_ARCHIVE_BACKEND") }()
	defer func() { _ = os.Unsetenv("SPRINTLENS_ARCHIVE_DB_CONNECT") }()

	exportPath := writeSprintExport(t)

	output, err := runSprintlensCommand(t, "archive", "clear")
	require.NoError(t, err)

	output, err = runSprintlensCommand(t, "archive", "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 sprints")

	output, err = runSprintlensCommand(t, "chart", "sprint-snapshot",
		"--from-archive", "--today", "2024-03-05")
	require.NoError(t, err)
	assert.Contains(t, output, "2024-03-14")

	output, err = runSprintlensCommand(t, "archive", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Archived sprints: 2")

	_, err = runSprintlensCommand(t, "archive", "clear")
	require.NoError(t, err)
}
