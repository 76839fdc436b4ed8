package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-note-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer_NothingConfigured(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}

	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		srv.Shutdown(context.Background())
		srv.(*server).gRPCServer.gRPCNetListener.Close()
	})

	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestNewServer_GRPCListenFails(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	assert.Error(t, err)
}

func TestHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	srv := newHTTPServer(slow, config.Server{RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	rec := httptest.NewRecorder()

	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRunServer_GRPCHealthAndShutdown(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	grpcHandler.SetServing(true)

	srv, err := NewServer(&handler.Handlers{GRPC: grpcHandler}, config.Server{
		GRPCAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	addr := srv.(*server).gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer callCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}
