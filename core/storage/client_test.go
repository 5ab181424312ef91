package storage_test

import (
	"testing"
	"time"

	"apo-analyzer/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"PlainEndpoint", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "apo-logs"}},
		{"HTTPScheme", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"HTTPSScheme", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"}},
		{"CustomTimeout", storage.Config{Endpoint: "localhost:9000", TimeoutSeconds: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClient_BadEndpoint(t *testing.T) {
	_, err := storage.NewClient(storage.Config{Endpoint: "localhost:9000/path"})
	assert.ErrorContains(t, err, "failed to create minio client")
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 30*time.Second, storage.Config{TimeoutSeconds: -1}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}
