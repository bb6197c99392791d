package main

import (
	"context"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
)

func (s *InspectorServiceServer) Stop(ctx context.Context, request *apiv1.StopRequest) (*apiv1.StopResponse, error) {
	if err := s.app.Stop(); err != nil {
		return nil, toStatusError("stopping inspector", err)
	}
	return &apiv1.StopResponse{}, nil
}
