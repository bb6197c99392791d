package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"strings"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	envTLSKey    = "INSPECTOR_TLS_KEY"
	envTLSCert   = "INSPECTOR_TLS_CERT"
	envCATLSCert = "INSPECTOR_CA_TLS_CERT"
)

// GRPCServer encapsulates the transport configuration, gRPC server instance and listener.
type GRPCServer struct {
	lis    net.Listener
	s      *grpc.Server
	health *health.Server
}

// NewGRPCServer listens on addr and serves the app. With the TLS environment
// variables set it requires client certificates (mTLS); without them it only
// accepts a loopback address.
func NewGRPCServer(addr string, a *app.App) (*GRPCServer, error) {
	creds, err := transportCredentials(addr)
	if err != nil {
		return nil, err
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	return newGRPCServer(lis, creds, a), nil
}

func newGRPCServer(lis net.Listener, creds credentials.TransportCredentials, a *app.App) *GRPCServer {
	s := grpc.NewServer(
		grpc.Creds(creds),
		grpc.ChainUnaryInterceptor(recoverUnary, logUnary),
		grpc.ChainStreamInterceptor(recoverStream),
	)
	apiv1.RegisterInspectorServiceServer(s, NewInspectorServiceServer(a))

	hs := health.NewServer()
	hs.SetServingStatus(apiv1.InspectorService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return &GRPCServer{lis: lis, s: s, health: hs}
}

func transportCredentials(addr string) (credentials.TransportCredentials, error) {
	keyPEM := os.Getenv(envTLSKey)
	certPEM := os.Getenv(envTLSCert)
	caPEM := os.Getenv(envCATLSCert)

	if keyPEM == "" && certPEM == "" && caPEM == "" {
		if !isLoopback(addr) {
			return nil, fmt.Errorf("refusing to serve %s without TLS; set %s, %s, %s or use a loopback address", addr, envTLSKey, envTLSCert, envCATLSCert)
		}
		return insecure.NewCredentials(), nil
	}
	if keyPEM == "" || certPEM == "" || caPEM == "" {
		return nil, fmt.Errorf("incomplete TLS environment; require %s, %s, %s", envTLSKey, envTLSCert, envCATLSCert)
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to load server key pair: %w", err)
	}

	caPool := x509.NewCertPool()
	if ok := caPool.AppendCertsFromPEM([]byte(caPEM)); !ok {
		return nil, fmt.Errorf("failed to append CA certificate to pool")
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ClientCAs:    caPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}), nil
}

func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Serve starts serving gRPC on the configured listener.
func (g *GRPCServer) Serve() error {
	return g.s.Serve(g.lis)
}

// Addr returns the network address the server is bound to.
func (g *GRPCServer) Addr() net.Addr { return g.lis.Addr() }

// Stop marks the service as not serving and stops gracefully.
func (g *GRPCServer) Stop() {
	g.health.Shutdown()
	g.s.GracefulStop()
}
