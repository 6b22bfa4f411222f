package services

import (
	"context"
	"log/slog"
	"strings"

	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/repository"
)

type ProfileService struct {
	store       *repository.Store
	maxProfiles int
	log         *slog.Logger
}

func NewProfileService(store *repository.Store, maxProfiles int) *ProfileService {
	return &ProfileService{store: store, maxProfiles: maxProfiles, log: logger.With("component", "profiles")}
}

// ProfileInput is the data an owner submits for a new profile.
type ProfileInput struct {
	DisplayName string
	Handle      string
	Platform    string
	Status      string
}

// Create validates input, enforces the per-owner limit and stores the profile.
func (s *ProfileService) Create(ctx context.Context, ownerID string, in ProfileInput) (*models.MonitoredProfile, error) {
	name := strings.TrimSpace(in.DisplayName)
	handle := strings.TrimPrefix(strings.TrimSpace(in.Handle), "@")
	platform := models.Platform(strings.ToLower(strings.TrimSpace(in.Platform)))
	status := models.ProfileStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if status == "" {
		status = models.ProfileActive
	}

	switch {
	case name == "":
		return nil, invalid("display_name", "must not be empty")
	case handle == "" || strings.ContainsAny(handle, " \t\n/"):
		return nil, invalid("handle", "must be a single word without spaces or slashes")
	case !platform.Valid():
		return nil, invalid("platform", "must be linkedin or twitter")
	case !status.Valid():
		return nil, invalid("status", "must be active, paused or inactive")
	}

	n, err := s.store.CountProfiles(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if s.maxProfiles > 0 && n >= s.maxProfiles {
		return nil, ErrLimitReached
	}
	exists, err := s.store.ProfileExists(ctx, ownerID, platform, handle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateProfile
	}

	p := &models.MonitoredProfile{OwnerID: ownerID, DisplayName: name, Handle: handle, Platform: platform, Status: status}
	if err := s.store.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	recordActivity(ctx, s.store, s.log, &models.ActivityEntry{
		OwnerID:  ownerID,
		Action:   models.ActionProfileAdded,
		Platform: platform,
		Target:   "@" + handle,
		Details:  name,
		Status:   models.ActivitySuccess,
	})
	return p, nil
}

func (s *ProfileService) List(ctx context.Context, ownerID string, f repository.ProfileFilter) ([]models.MonitoredProfile, error) {
	if f.Platform != "" && !f.Platform.Valid() {
		return nil, invalid("platform", "must be linkedin or twitter")
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("status", "must be active, paused or inactive")
	}
	profiles, err := s.store.ListProfiles(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.MonitoredProfile{}
	}
	return profiles, nil
}

// UpdateStatus changes whether a profile takes part in runs.
func (s *ProfileService) UpdateStatus(ctx context.Context, ownerID, id, status string) (*models.MonitoredProfile, error) {
	st := models.ProfileStatus(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, invalid("status", "must be active, paused or inactive")
	}
	if err := s.store.UpdateProfileStatus(ctx, ownerID, id, st); err != nil {
		return nil, err
	}
	return s.store.GetProfile(ctx, ownerID, id)
}

// Delete removes the profile and its drafts.
func (s *ProfileService) Delete(ctx context.Context, ownerID, id string) error {
	p, err := s.store.GetProfile(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProfile(ctx, ownerID, id); err != nil {
		return err
	}
	recordActivity(ctx, s.store, s.log, &models.ActivityEntry{
		OwnerID:  ownerID,
		Action:   models.ActionProfileRemoved,
		Platform: p.Platform,
		Target:   "@" + p.Handle,
		Details:  p.DisplayName,
		Status:   models.ActivitySuccess,
	})
	return nil
}
