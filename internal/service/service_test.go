package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

const testSecret = "service-test-secret-0123456789"

type testClients struct {
	ledger protoconnect.LedgerServiceClient
	groups protoconnect.GroupServiceClient
	// anon carries no credentials.
	anon protoconnect.GroupServiceClient
}

// bearer returns a client interceptor that authenticates every call with token.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// setupTestServer serves both services over a SQLite store on a temp dir,
// behind the same interceptor chain as the server binary. Clients act as "Alice"
// and are built with opts.
func setupTestServer(t *testing.T, opts ...connect.ClientOption) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	engine := ledger.New(store)

	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(nil),
		middleware.TimeoutInterceptor(5*time.Second),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewLedgerServiceHandler(NewLedgerService(engine), interceptors))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(engine), interceptors))
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	token, err := jwtManager.Generate("Alice")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	withToken := append([]connect.ClientOption{connect.WithInterceptors(bearer(token))}, opts...)

	return testClients{
		ledger: protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL, withToken...),
		groups: protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL, withToken...),
		anon:   protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL, opts...),
	}
}

func createTestGroup(t *testing.T, c testClients, members ...string) *pb.Group {
	t.Helper()
	resp, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:    "Roommates",
		Members: members,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code: expected %v, got %v (%v)", want, got, err)
	}
}
