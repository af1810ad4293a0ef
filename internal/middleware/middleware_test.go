package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/auth"
)

type ping struct{}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	token, err := jwtManager.Generate("alice")
	require.NoError(t, err)

	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetUserID(ctx)
		return connect.NewResponse(&ping{}), nil
	}
	handler := RequireAuth(jwtManager)(next)

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantUser string
	}{
		{name: "valid token", header: "Bearer " + token, wantUser: "alice"},
		{name: "lowercase scheme", header: "bearer " + token, wantUser: "alice"},
		{name: "missing header", header: "", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + token, wantCode: connect.CodeUnauthenticated},
		{name: "no token", header: "Bearer", wantCode: connect.CodeUnauthenticated},
		{name: "bad token", header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := handler(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				assert.Empty(t, seen)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, seen)
		})
	}
}

func TestTimeoutInterceptor(t *testing.T) {
	var deadline time.Time
	var ok bool
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		deadline, ok = ctx.Deadline()
		return nil, nil
	}

	_, _ = TimeoutInterceptor(time.Second)(next)(context.Background(), connect.NewRequest(&ping{}))
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)

	_, _ = TimeoutInterceptor(0)(next)(context.Background(), connect.NewRequest(&ping{}))
	assert.False(t, ok)
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fail := func(code connect.Code) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return nil, connect.NewError(code, errors.New("boom"))
		}
	}

	ctx := WithUserID(context.Background(), "carol")
	_, err := LoggingInterceptor(logger)(fail(connect.CodeNotFound))(ctx, connect.NewRequest(&ping{}))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "user_id=carol")
	assert.Contains(t, buf.String(), "code=not_found")

	buf.Reset()
	_, err = LoggingInterceptor(logger)(fail(connect.CodeInternal))(ctx, connect.NewRequest(&ping{}))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
}
