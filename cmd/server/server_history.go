package main

import (
	"context"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
)

const defaultHistoryLimit = 20

func (s *InspectorServiceServer) History(ctx context.Context, request *apiv1.HistoryRequest) (*apiv1.HistoryResponse, error) {
	limit := int(request.GetLimit())
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	sessions, err := s.app.History(ctx, limit)
	if err != nil {
		return nil, toStatusError("listing history", err)
	}
	resp := &apiv1.HistoryResponse{Sessions: make([]*apiv1.Session, 0, len(sessions))}
	for _, sess := range sessions {
		resp.Sessions = append(resp.Sessions, toAPISession(sess))
	}
	return resp, nil
}
