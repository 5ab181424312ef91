package storage_test

import (
	"context"
	"errors"
	"testing"

	"apo-analyzer/core/storage"
	"apo-analyzer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "apo-logs").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "apo-logs", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "apo-logs").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "apo-logs", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "apo-logs", "us-east-1"))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "apo-logs").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(context.Background(), client, "apo-logs", "")
		assert.ErrorContains(t, err, "denied")
	})
}
