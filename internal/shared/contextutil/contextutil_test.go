package contextutil_test

import (
	"context"
	"testing"

	"go-staffhub/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestEmployeeID(t *testing.T) {
	ctx := contextutil.WithEmployeeID(context.Background(), "emp-1")
	assert.Equal(t, "emp-1", contextutil.GetEmployeeID(ctx))
	assert.Equal(t, "", contextutil.GetEmployeeID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	t.Run("Returns Request Scoped Logger", func(t *testing.T) {
		core, recorded := observer.New(zap.InfoLevel)
		scoped := zap.New(core)

		ctx := contextutil.WithLogger(context.Background(), scoped)
		logger := contextutil.GetLogger(ctx, zap.NewNop())
		logger.Info("scoped entry")

		assert.Equal(t, 1, recorded.Len())
	})

	t.Run("Falls Back To Default Logger", func(t *testing.T) {
		fallback := zap.NewNop()
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("Never Returns Nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
		assert.NotNil(t, contextutil.GetLogger(nil, nil))
	})
}
