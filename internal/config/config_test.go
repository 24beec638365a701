package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
temporal:
  host_port: "temporal:7233"
  namespace: "pharma"
  transfer_task_queue: "test-queue"
ledger:
  deployer_address: "0x00000000000000000000000000000000000000a1"
  confirmation_timeout: "10s"
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-1"
    - "key-2"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "pharma", cfg.Temporal.Namespace)
				assert.Equal(t, "test-queue", cfg.Temporal.TransferTaskQueue)
				assert.Equal(t, "0x00000000000000000000000000000000000000a1", cfg.Ledger.DeployerAddress)
				assert.Equal(t, "10s", cfg.Ledger.ConfirmationTimeout.String())
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ledger:
  deployer_address: "0x00000000000000000000000000000000000000a1"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "CUSTODY_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "transfer-approval", cfg.Temporal.TransferTaskQueue)
				assert.Equal(t, "30s", cfg.Ledger.ConfirmationTimeout.String())
				assert.Equal(t, "250ms", cfg.Ledger.PollInterval.String())
			},
		},
		{
			name: "missing deployer address",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadEventBridgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventBridgeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-bridge"
  ack_wait: "15s"
  max_deliver: 5
worker:
  pool_size: 8
  queue_size: 256
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, "15s", cfg.NATS.AckWait.String())
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.Equal(t, "CUSTODY_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, "30s", cfg.NATS.AckWait.String())
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, 20, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 2048, cfg.Worker.WorkerQueueSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEventBridgeConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "pharma",
		Password: "secret",
		DBName:   "pharma_ledger",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=pharma password=secret dbname=pharma_ledger sslmode=disable",
		cfg.DSN())
}
