package remnant

import (
	"testing"

	"apo-analyzer/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "apo-logs", zap.NewNop(), nil, Options{})

	assert.Equal(t, "remnant", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.Equal(t, "uploads", feature.Service().prefix)

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
