package services

import (
	"strings"
	"time"

	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/scoring"
	"github.com/mtorelli/linknest/internal/utils"
)

type RecommendationService interface {
	// Refresh re-scores every contact and replaces the session's
	// recommendation set wholesale.
	Refresh(sess *models.SessionState) []models.ScoredRecommendation
	SetGoal(sess *models.SessionState, goal, customGoal string) error
	Top(sess *models.SessionState, count int) []models.ScoredRecommendation
	Browse(sess *models.SessionState, query string, page, pageSize int) scoring.Page
}

type recommendationService struct {
	scorer *scoring.Scorer
}

func NewRecommendationService(scorer *scoring.Scorer) RecommendationService {
	return &recommendationService{scorer: scorer}
}

func (s *recommendationService) Refresh(sess *models.SessionState) []models.ScoredRecommendation {
	scored := s.scorer.ScoreAll(sess.Contacts, sess.Profile, sess.Goal, sess.CustomGoal)
	sess.Recommendations = scoring.Rank(scored)
	sess.UpdatedAt = time.Now().UTC()
	return sess.Recommendations
}

func (s *recommendationService) SetGoal(sess *models.SessionState, goal, customGoal string) error {
	const op = "RecommendationService.SetGoal"

	if !models.ValidGoal(goal) {
		return utils.E(utils.CodeInvalidArgument, op, "unknown networking goal: "+goal, nil)
	}
	sess.Goal = goal
	sess.CustomGoal = strings.TrimSpace(customGoal)
	s.Refresh(sess)
	return nil
}

func (s *recommendationService) Top(sess *models.SessionState, count int) []models.ScoredRecommendation {
	if sess.Recommendations == nil {
		s.Refresh(sess)
	}
	if count <= 0 {
		count = scoring.DefaultPageSize
	}
	if count > len(sess.Recommendations) {
		count = len(sess.Recommendations)
	}
	return sess.Recommendations[:count]
}

// Browse filters then paginates the full scored set. A filter that leaves the
// requested page out of range resets to the first page; an unfiltered
// out-of-range page clamps to the last one.
func (s *recommendationService) Browse(sess *models.SessionState, query string, page, pageSize int) scoring.Page {
	if sess.Recommendations == nil {
		s.Refresh(sess)
	}
	if pageSize <= 0 {
		pageSize = scoring.DefaultPageSize
	}

	filtered := scoring.Filter(sess.Recommendations, query)
	if strings.TrimSpace(query) != "" {
		totalPages := (len(filtered) + pageSize - 1) / pageSize
		if page > totalPages-1 {
			page = 0
		}
	}
	return scoring.Paginate(filtered, page, pageSize)
}
