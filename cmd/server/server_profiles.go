package main

import (
	"context"
	"strings"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *InspectorServiceServer) ListProfiles(ctx context.Context, request *apiv1.ListProfilesRequest) (*apiv1.ListProfilesResponse, error) {
	profiles := s.app.Profiles()
	resp := &apiv1.ListProfilesResponse{Profiles: make([]*apiv1.Profile, 0, len(profiles))}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, toAPIProfile(p))
	}
	return resp, nil
}

func (s *InspectorServiceServer) SaveProfile(ctx context.Context, request *apiv1.SaveProfileRequest) (*apiv1.SaveProfileResponse, error) {
	name := strings.TrimSpace(request.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "profile name is required")
	}
	p, err := s.app.SaveProfile(name, request.GetCommand(), request.GetWorkingDirectory(), request.GetEnv())
	if err != nil {
		return nil, toStatusError("saving profile", err)
	}
	return &apiv1.SaveProfileResponse{Profile: toAPIProfile(p)}, nil
}

func (s *InspectorServiceServer) DeleteProfile(ctx context.Context, request *apiv1.DeleteProfileRequest) (*apiv1.DeleteProfileResponse, error) {
	if err := s.app.DeleteProfile(request.GetId()); err != nil {
		return nil, toStatusError("deleting profile", err)
	}
	return &apiv1.DeleteProfileResponse{}, nil
}

func (s *InspectorServiceServer) GetSettings(ctx context.Context, request *apiv1.GetSettingsRequest) (*apiv1.Settings, error) {
	return s.settings(), nil
}

func (s *InspectorServiceServer) UpdateSettings(ctx context.Context, request *apiv1.UpdateSettingsRequest) (*apiv1.Settings, error) {
	in := request.GetSettings()
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "settings are required")
	}
	theme := in.GetTheme()
	if theme == "" {
		theme = config.DefaultSettings().Theme
	}
	if err := s.app.UpdateSettings(config.Settings{Theme: theme, AutoStart: in.GetAutoStart()}); err != nil {
		return nil, toStatusError("saving settings", err)
	}
	// The message replaces the settings as a whole, so an absent map clears the defaults.
	if err := s.app.SetDefaultEnv(in.GetDefaultEnvVars()); err != nil {
		return nil, toStatusError("saving default environment", err)
	}
	return s.settings(), nil
}

func (s *InspectorServiceServer) settings() *apiv1.Settings {
	st := s.app.Settings()
	return &apiv1.Settings{
		Theme:          st.Theme,
		AutoStart:      st.AutoStart,
		DefaultEnvVars: s.app.DefaultEnv(),
	}
}
