// Package v1 holds the inspector.v1 wire API shared by the daemon and the CLI.
package v1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative api/v1/inspector.proto
