package main

import (
	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"google.golang.org/grpc"
)

// Events replays the retained events and, when asked to follow, keeps
// streaming until the client goes away or the daemon shuts down.
func (s *InspectorServiceServer) Events(request *apiv1.EventsRequest, streaming grpc.ServerStreamingServer[apiv1.Event]) error {
	if !request.GetFollow() {
		for _, e := range s.app.Events() {
			if err := streaming.Send(toAPIEvent(e)); err != nil {
				return err
			}
		}
		return nil
	}

	ctx := streaming.Context()
	events := s.app.Subscribe(eventBuffer, ctx.Done())
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err := streaming.Send(toAPIEvent(e)); err != nil {
				return err
			}
		}
	}
}
