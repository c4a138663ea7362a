package infra

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/config"
)

func isolateAWSEnv(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestLoadConfig(t *testing.T) {
	isolateAWSEnv(t)

	t.Run("region and endpoint", func(t *testing.T) {
		awsCfg, err := LoadConfig(t.Context(), &config.Config{
			Region:      "eu-west-1",
			EndpointURL: "http://localhost:4566",
		})
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", awsCfg.Region)
		assert.Equal(t, "http://localhost:4566", lo.FromPtr(awsCfg.BaseEndpoint))
	})

	t.Run("defaults", func(t *testing.T) {
		awsCfg, err := LoadConfig(t.Context(), &config.Config{})
		require.NoError(t, err)
		assert.Nil(t, awsCfg.BaseEndpoint)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := LoadConfig(t.Context(), &config.Config{Profile: "no-such-profile"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load AWS config")
	})
}

func TestNewSecretClient(t *testing.T) {
	isolateAWSEnv(t)

	client, err := NewSecretClient(t.Context(), &config.Config{Region: "us-east-1"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, loadOptions(&config.Config{}))
	assert.Len(t, loadOptions(&config.Config{Region: "us-east-1", Profile: "dev"}), 2)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(&config.Config{LogLevel: "info"}, &buf)
	logger.Debug("hidden")
	logger.Info("shown", slog.String("operation", "GetSecretValue"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "operation=GetSecretValue")
}
