package remnant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	svc, _ := newTestService(t, nil)
	a, err := svc.Analyze(context.Background(), []byte(sampleLog))
	require.NoError(t, err)

	out := Render(BuildReport(a, svc.Sites(), ViewAll))

	assert.Contains(t, out, "Abnormal")
	assert.Contains(t, out, "Jasmine (30.10.10.6)")
	assert.Contains(t, out, "REMNANT")
	assert.Contains(t, out, "SNI-POI (30.10.50.6)")
	assert.Contains(t, out, "CLEAN")
	assert.Contains(t, out, "0x00000099 0x00000001")
	assert.Contains(t, out, "Jasmine → SNI-POI: 1")
}

func TestRender_Empty(t *testing.T) {
	out := Render(BuildReport(&Analysis{}, nil, ViewAll))
	assert.Contains(t, out, StatusNoData)
	assert.NotContains(t, out, "Remnants per link")
}
