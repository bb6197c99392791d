package main

import (
	"context"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *InspectorServiceServer) Status(ctx context.Context, request *apiv1.StatusRequest) (*apiv1.StatusResponse, error) {
	st, err := s.app.Status()
	if err != nil {
		return nil, toStatusError("getting status", err)
	}
	if !st.Running {
		return &apiv1.StatusResponse{}, nil
	}
	return &apiv1.StatusResponse{
		Running:    true,
		Ready:      st.Ready,
		Url:        st.URL,
		ClientUrl:  st.ClientURL,
		SessionId:  st.SessionID,
		ProfileId:  st.ProfileID,
		ClientPort: uint32(st.Ports.ClientPort),
		ServerPort: uint32(st.Ports.ServerPort),
		Pid:        int32(st.PID),
		StartTime:  timestamppb.New(st.StartedAt),
	}, nil
}
