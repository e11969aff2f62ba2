package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.TracerProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_EnabledExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{Enabled: true, ServiceName: "item-api-test", Writer: &buf})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, span := p.TracerProvider().Tracer("test").Start(context.Background(), "test-span")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "test-span")
	assert.Contains(t, buf.String(), "item-api-test")
}
