package main

import (
	"io"
	"log"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
)

var logger = log.New(io.Discard, "server: ", log.LstdFlags)

// eventBuffer is the per-stream channel capacity for Events.
const eventBuffer = 256

type InspectorServiceServer struct {
	apiv1.UnimplementedInspectorServiceServer
	app *app.App
}

func NewInspectorServiceServer(a *app.App) *InspectorServiceServer {
	return &InspectorServiceServer{app: a}
}
