package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aura/pkg/utils"
)

type ChatServiceInterface interface {
	// Reply answers an authenticated user in the requested language.
	Reply(ctx context.Context, message, language string) (string, error)
	// Assist is the short public assistant answer.
	Assist(ctx context.Context, message string) (string, error)
}

type chatService struct {
	gen utils.GenerativeClient
	rt  Runtime
}

func NewChatService(gen utils.GenerativeClient, rt Runtime) ChatServiceInterface {
	return &chatService{gen: gen, rt: rt}
}

func (s *chatService) Reply(ctx context.Context, message, language string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", utils.NewValidationError("message", "message is required")
	}
	if strings.TrimSpace(language) == "" {
		language = defaultChatLanguage
	}

	prompt := fmt.Sprintf("You are a mental health support chatbot. Respond to the following message in %s:\n"+
		"User's message: %q\n\n"+
		"Provide a supportive and empathetic response, offering guidance or resources if appropriate.", language, message)

	return s.generate(ctx, "chat", prompt), nil
}

func (s *chatService) Assist(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", utils.NewValidationError("message", "message is required")
	}

	prompt := fmt.Sprintf("You are a supportive AI assistant for a mental health application.\n"+
		"Respond to the following message with empathy and care:\n"+
		"User's message: %q\n\n"+
		"Provide a supportive and helpful response, offering guidance or resources if appropriate. "+
		"Keep the response concise, around 2-3 sentences.", message)

	return s.generate(ctx, "ai-chat", prompt), nil
}

func (s *chatService) generate(ctx context.Context, route, prompt string) string {
	ctx, cancel := s.rt.withAITimeout(ctx)
	defer cancel()

	reply, err := s.gen.Generate(ctx, prompt, utils.GenerationOptions{})
	if err != nil || strings.TrimSpace(reply) == "" {
		s.rt.logger().Warn("chat reply unavailable, using fallback", zap.String("route", route), zap.Error(err))
		return fallbackChatReply
	}
	return strings.TrimSpace(reply)
}
