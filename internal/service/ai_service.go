package service

import (
	"context"
	"fmt"
	"strings"

	"carevo/internal/ai"
	"carevo/internal/model"
	"carevo/internal/repository"
)

const defaultChatContextTurns = 10

const quizPromptTemplate = `You are a career counselor for students. A student has completed a career aptitude quiz. Analyze the answers below and suggest suitable career paths with a short reasoning for each.

Quiz answers:
%s`

const chatPromptPreamble = `You are a supportive mental-health companion for students. Be empathetic, keep replies short, and never give medical advice. Suggest professional help when the conversation indicates distress.

Conversation so far:`

// AIService forwards quiz answers and chat messages to the AI provider.
// Quiz analysis is stateless; chat keeps per-user history in the store.
type AIService interface {
	AnalyzeQuiz(ctx context.Context, promptText string) (string, error)
	MentalHealthChat(ctx context.Context, email, message string) (string, error)
}

type aiService struct {
	provider     ai.Provider
	users        repository.UserRepository
	chats        repository.ChatRepository
	contextTurns int
}

// NewAIService builds an AIService. contextTurns bounds how many recent
// turns a chat prompt includes; <= 0 selects the default.
func NewAIService(provider ai.Provider, users repository.UserRepository, chats repository.ChatRepository, contextTurns int) AIService {
	if contextTurns <= 0 {
		contextTurns = defaultChatContextTurns
	}
	return &aiService{
		provider:     provider,
		users:        users,
		chats:        chats,
		contextTurns: contextTurns,
	}
}

// AnalyzeQuiz wraps the quiz answers in a fixed instruction template and
// returns the provider's completion. No state is kept.
func (s *aiService) AnalyzeQuiz(ctx context.Context, promptText string) (string, error) {
	return s.provider.Complete(ctx, fmt.Sprintf(quizPromptTemplate, promptText))
}

// MentalHealthChat appends the user turn, asks the provider for a reply
// over a bounded window of recent turns, and appends the assistant turn.
// The user turn is recorded before the provider call so a provider failure
// never drops the student's message.
func (s *aiService) MentalHealthChat(ctx context.Context, email, message string) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	userTurn := &model.ChatMessage{
		UserID: user.ID,
		Role:   model.RoleUser,
		Text:   message,
	}
	if err := s.chats.Append(ctx, userTurn); err != nil {
		return "", err
	}

	history, err := s.chats.Recent(ctx, user.ID, s.contextTurns)
	if err != nil {
		return "", err
	}

	reply, err := s.provider.Complete(ctx, buildChatPrompt(history))
	if err != nil {
		return "", err
	}

	assistantTurn := &model.ChatMessage{
		UserID: user.ID,
		Role:   model.RoleAssistant,
		Text:   reply,
	}
	if err := s.chats.Append(ctx, assistantTurn); err != nil {
		return "", err
	}

	return reply, nil
}

// buildChatPrompt renders the recent window as a transcript. The last
// student line is the message awaiting a reply.
func buildChatPrompt(history []model.ChatMessage) string {
	var b strings.Builder
	b.WriteString(chatPromptPreamble)
	for _, turn := range history {
		b.WriteString("\n")
		if turn.Role == model.RoleAssistant {
			b.WriteString("Counselor: ")
		} else {
			b.WriteString("Student: ")
		}
		b.WriteString(turn.Text)
	}
	b.WriteString("\nCounselor:")
	return b.String()
}
