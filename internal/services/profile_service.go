package services

import (
	"time"

	"github.com/mtorelli/linknest/internal/models"
)

type ProfileService interface {
	Get(sess *models.SessionState) models.UserProfile
	// Update replaces the profile and re-scores recommendations, since the
	// profile is a scoring input.
	Update(sess *models.SessionState, p models.UserProfile) models.UserProfile
}

type profileService struct {
	recs RecommendationService
}

func NewProfileService(recs RecommendationService) ProfileService {
	return &profileService{recs: recs}
}

func (s *profileService) Get(sess *models.SessionState) models.UserProfile {
	return sess.Profile
}

func (s *profileService) Update(sess *models.SessionState, p models.UserProfile) models.UserProfile {
	sess.Profile = p
	sess.UpdatedAt = time.Now().UTC()
	s.recs.Refresh(sess)
	return sess.Profile
}
