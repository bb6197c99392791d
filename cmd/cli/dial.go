package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/daemonconfig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// dialAddress is set by the --address flag.
var dialAddress string

func dial(ctx context.Context) (*grpc.ClientConn, error) {
	addr := strings.TrimSpace(dialAddress)
	if addr == "" {
		addr = strings.TrimSpace(os.Getenv(daemonconfig.EnvAddress))
	}
	if addr == "" {
		addr = daemonconfig.DefaultAddress
	}

	creds, err := clientCredentials()
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// connect dials the daemon and wraps the connection in a service client.
func connect(ctx context.Context) (apiv1.InspectorServiceClient, func(), error) {
	conn, err := dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return apiv1.NewInspectorServiceClient(conn), func() { _ = conn.Close() }, nil
}

func clientCredentials() (credentials.TransportCredentials, error) {
	keyPEM := os.Getenv("INSPECTOR_TLS_KEY")
	certPEM := os.Getenv("INSPECTOR_TLS_CERT")
	caPEM := os.Getenv("INSPECTOR_CA_TLS_CERT")
	if strings.TrimSpace(keyPEM) == "" && strings.TrimSpace(certPEM) == "" && strings.TrimSpace(caPEM) == "" {
		return insecure.NewCredentials(), nil
	}
	if strings.TrimSpace(keyPEM) == "" || strings.TrimSpace(certPEM) == "" || strings.TrimSpace(caPEM) == "" {
		return nil, fmt.Errorf("incomplete TLS environment; require INSPECTOR_TLS_KEY, INSPECTOR_TLS_CERT, INSPECTOR_CA_TLS_CERT")
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TLS cert/key from env: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(caPEM)) {
		return nil, fmt.Errorf("failed to parse CA cert from env")
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}), nil
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}

// friendlyError unwraps gRPC status errors into their message.
func friendlyError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.Unavailable {
		return fmt.Errorf("daemon unavailable: %s", st.Message())
	}
	return fmt.Errorf("%s", st.Message())
}
