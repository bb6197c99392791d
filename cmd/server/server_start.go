package main

import (
	"context"
	"strings"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *InspectorServiceServer) Start(ctx context.Context, request *apiv1.StartRequest) (*apiv1.StartResponse, error) {
	var (
		res app.StartResult
		err error
	)
	if id := strings.TrimSpace(request.GetProfileId()); id != "" {
		if !lib.IsID(id) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid profile id: %q", id)
		}
		logger.Printf("Starting profile %s", id)
		res, err = s.app.StartProfile(id)
	} else {
		logger.Printf("Starting inspector: command=%q dir=%q", request.GetCommand(), request.GetWorkingDirectory())
		res, err = s.app.Start(lib.LaunchSpec{
			Command:          request.GetCommand(),
			WorkingDirectory: request.GetWorkingDirectory(),
			Env:              request.GetEnv(),
		})
	}
	if err != nil {
		return nil, toStatusError("starting inspector", err)
	}
	logger.Printf("Started session %s on ports %d/%d", res.SessionID, res.ClientPort, res.ServerPort)

	return &apiv1.StartResponse{
		SessionId:  res.SessionID,
		ClientPort: uint32(res.ClientPort),
		ServerPort: uint32(res.ServerPort),
		ClientUrl:  res.ClientURL,
	}, nil
}
