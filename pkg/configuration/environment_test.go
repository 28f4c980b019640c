package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tmp := t.TempDir()
	envFile := filepath.Join(tmp, ".env.local")
	require.NoError(t, os.WriteFile(envFile, []byte("TRUST_CONSOLE_TEST_ENV=ok\n"), 0o644))

	t.Cleanup(func() { _ = os.Unsetenv("TRUST_CONSOLE_TEST_ENV") })

	n, err := LoadEnv([]string{filepath.Join(tmp, ".env"), envFile})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "ok", os.Getenv("TRUST_CONSOLE_TEST_ENV"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	n, err := LoadEnv([]string{filepath.Join(tmp, ".env")})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestImportOptionsValidate(t *testing.T) {
	t.Parallel()

	valid := ImportOptions{BatchSize: 50, BatchPause: 25 * time.Millisecond}
	require.NoError(t, valid.Validate())

	require.Error(t, (&ImportOptions{BatchSize: 0}).Validate())
	require.Error(t, (&ImportOptions{BatchSize: 10, BatchPause: -time.Second}).Validate())
}
