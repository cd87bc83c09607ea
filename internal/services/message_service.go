package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mtorelli/linknest/internal/messaging"
	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/providers/llm"
	"github.com/mtorelli/linknest/internal/utils"
)

// DraftResult is a generated message plus how it was produced, so the client
// can tell an AI draft from the local template fallback.
type DraftResult struct {
	Message string `json:"message"`
	Source  string `json:"source"` // ai|template
}

type MessageService interface {
	Generate(ctx context.Context, sess *models.SessionState, contactID, messageType, topic string) (*DraftResult, error)
	Analyze(ctx context.Context, sess *models.SessionState, contactID, message string) (*models.MessageAnalysis, error)
	Improve(ctx context.Context, sess *models.SessionState, contactID, message string) (string, error)
	Starters(sess *models.SessionState, contactID string) ([]string, error)
}

type messageService struct {
	provider llm.Provider // nil when no credentials are configured
	drafter  *messaging.Drafter
	log      *logrus.Logger
}

func NewMessageService(provider llm.Provider, drafter *messaging.Drafter, log *logrus.Logger) MessageService {
	return &messageService{provider: provider, drafter: drafter, log: log}
}

func (s *messageService) Generate(ctx context.Context, sess *models.SessionState, contactID, messageType, topic string) (*DraftResult, error) {
	const op = "MessageService.Generate"

	c, ok := sess.FindContact(contactID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "contact not found", nil)
	}
	if messageType == "" {
		messageType = models.MessageColdOutreach
	}
	if !messaging.ValidMessageType(messageType) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown message type: "+messageType, nil)
	}

	if s.provider == nil {
		return &DraftResult{Message: s.drafter.Draft(*c, sess.Profile, messageType, topic), Source: "template"}, nil
	}

	text, err := s.provider.Complete(ctx, messaging.GenerateSystemPrompt,
		messaging.GeneratePrompt(*c, sess.Profile, messageType, sess.Goal, topic))
	if err != nil || strings.TrimSpace(text) == "" {
		s.log.WithError(err).Warn("message generation fell back to template")
		return &DraftResult{Message: s.drafter.Draft(*c, sess.Profile, messageType, topic), Source: "template"}, nil
	}
	return &DraftResult{Message: strings.TrimSpace(text), Source: "ai"}, nil
}

func (s *messageService) Analyze(ctx context.Context, sess *models.SessionState, contactID, message string) (*models.MessageAnalysis, error) {
	const op = "MessageService.Analyze"

	c, ok := sess.FindContact(contactID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "contact not found", nil)
	}
	if strings.TrimSpace(message) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	if s.provider == nil {
		return messaging.NoProviderAnalysis(), nil
	}

	text, err := s.provider.Complete(ctx, messaging.AnalyzeSystemPrompt,
		messaging.AnalyzePrompt(*c, sess.Goal, message))
	if err != nil {
		s.log.WithError(err).Warn("message analysis service call failed")
		return messaging.ServiceErrorAnalysis(), nil
	}

	analysis, err := messaging.ExtractAnalysis(text)
	if err != nil {
		if errors.Is(err, messaging.ErrNoJSON) {
			return messaging.NoJSONAnalysis(), nil
		}
		s.log.WithError(err).Warn("message analysis response did not decode")
		return messaging.InvalidJSONAnalysis(), nil
	}
	return analysis, nil
}

func (s *messageService) Improve(ctx context.Context, sess *models.SessionState, contactID, message string) (string, error) {
	const op = "MessageService.Improve"

	c, ok := sess.FindContact(contactID)
	if !ok {
		return "", utils.E(utils.CodeNotFound, op, "contact not found", nil)
	}
	if strings.TrimSpace(message) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	// Without a provider the message comes back unchanged.
	if s.provider == nil {
		return message, nil
	}

	text, err := s.provider.Complete(ctx, messaging.ImproveSystemPrompt,
		messaging.ImprovePrompt(*c, sess.Profile, sess.Goal, message))
	if err != nil || strings.TrimSpace(text) == "" {
		s.log.WithError(err).Warn("message improvement fell back to original")
		return message, nil
	}
	return strings.TrimSpace(text), nil
}

func (s *messageService) Starters(sess *models.SessionState, contactID string) ([]string, error) {
	const op = "MessageService.Starters"

	c, ok := sess.FindContact(contactID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "contact not found", nil)
	}
	return s.drafter.Starters(*c, sess.Profile), nil
}
