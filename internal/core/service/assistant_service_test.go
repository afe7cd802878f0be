package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Stub generator
// ---------------------------------------------------------------------------

type stubGenerator struct {
	reply       string
	err         error
	gotMessages []domain.Message
}

func (g *stubGenerator) Generate(_ context.Context, messages []domain.Message) (string, error) {
	g.gotMessages = messages
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

func TestAssistantService_Chat_SingleMessageShape(t *testing.T) {
	gen := &stubGenerator{reply: "Hello! How can I help?"}
	svc := NewAssistantService(gen, discardLogger)

	reply, err := svc.Chat(context.Background(), ports.ChatInput{
		Message: "Do you have any widgets?",
		History: []domain.Message{{Role: domain.RoleAssistant, Content: "Welcome to SmartShop."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Hello! How can I help?" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if len(gen.gotMessages) != 3 {
		t.Fatalf("expected 3 messages (system + history + user), got %d", len(gen.gotMessages))
	}
	if gen.gotMessages[0].Role != domain.RoleSystem {
		t.Fatalf("expected leading system message, got role %q", gen.gotMessages[0].Role)
	}
	if !strings.Contains(gen.gotMessages[0].Content, "SmartShop AI") {
		t.Fatalf("system prompt missing assistant persona: %q", gen.gotMessages[0].Content)
	}
	last := gen.gotMessages[len(gen.gotMessages)-1]
	if last.Role != domain.RoleUser || last.Content != "Do you have any widgets?" {
		t.Fatalf("expected user turn last, got %+v", last)
	}
}

func TestAssistantService_Chat_MessageListShape(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	svc := NewAssistantService(gen, discardLogger)

	_, err := svc.Chat(context.Background(), ports.ChatInput{
		Messages: []domain.Message{
			{Role: domain.RoleUser, Content: "hi"},
			{Role: domain.RoleAssistant, Content: "hello"},
			{Role: domain.RoleUser, Content: "recommend a gift"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.gotMessages) != 4 {
		t.Fatalf("expected system prompt prepended to 3 messages, got %d", len(gen.gotMessages))
	}
	if gen.gotMessages[1].Content != "hi" || gen.gotMessages[3].Content != "recommend a gift" {
		t.Fatalf("message order not preserved: %+v", gen.gotMessages)
	}
}

func TestAssistantService_Chat_KeepsCallerSystemPrompt(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	svc := NewAssistantService(gen, discardLogger)

	_, err := svc.Chat(context.Background(), ports.ChatInput{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "You are a pirate."},
			{Role: domain.RoleUser, Content: "hi"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.gotMessages) != 2 {
		t.Fatalf("expected no extra system prompt, got %d messages", len(gen.gotMessages))
	}
	if gen.gotMessages[0].Content != "You are a pirate." {
		t.Fatalf("caller system prompt replaced: %q", gen.gotMessages[0].Content)
	}
}

func TestAssistantService_Chat_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrGenerationFailed}
	svc := NewAssistantService(gen, discardLogger)

	_, err := svc.Chat(context.Background(), ports.ChatInput{Message: "hi"})
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Recommend
// ---------------------------------------------------------------------------

func TestAssistantService_Recommend_ParsesJSONArray(t *testing.T) {
	gen := &stubGenerator{reply: `["Cordless Drill", "Tool Belt", "Work Gloves"]`}
	svc := NewAssistantService(gen, discardLogger)

	got, err := svc.Recommend(context.Background(), ports.Preferences{
		Categories: []string{"Tools"},
		MaxPrice:   50,
	}, []ports.Purchase{{ProductName: "Hammer", Category: "Tools", Price: 12.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Cordless Drill", "Tool Belt", "Work Gloves"}
	if len(got) != len(want) {
		t.Fatalf("expected %d recommendations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAssistantService_Recommend_PromptContainsInputs(t *testing.T) {
	gen := &stubGenerator{reply: `[]`}
	svc := NewAssistantService(gen, discardLogger)

	_, err := svc.Recommend(context.Background(), ports.Preferences{
		Categories: []string{"Toys"},
	}, []ports.Purchase{{ProductName: "Teddy"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.gotMessages) != 1 {
		t.Fatalf("expected a single prompt message, got %d", len(gen.gotMessages))
	}
	prompt := gen.gotMessages[0].Content
	for _, fragment := range []string{"Toys", "Teddy", "JSON array"} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, prompt)
		}
	}
}

func TestAssistantService_Recommend_UnparseableReply(t *testing.T) {
	gen := &stubGenerator{reply: "sorry, I can't help"}
	svc := NewAssistantService(gen, discardLogger)

	got, err := svc.Recommend(context.Background(), ports.Preferences{}, nil)
	if err != nil {
		t.Fatalf("a malformed model reply must not fail the request, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestAssistantService_Recommend_NonArrayReply(t *testing.T) {
	gen := &stubGenerator{reply: `{"recommendations": ["A"]}`}
	svc := NewAssistantService(gen, discardLogger)

	got, err := svc.Recommend(context.Background(), ports.Preferences{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list for non-array reply, got %v", got)
	}
}

func TestAssistantService_Recommend_SkipsNonStringElements(t *testing.T) {
	gen := &stubGenerator{reply: `["Drill", 42, {"name":"x"}, "Gloves"]`}
	svc := NewAssistantService(gen, discardLogger)

	got, err := svc.Recommend(context.Background(), ports.Preferences{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "Drill" || got[1] != "Gloves" {
		t.Fatalf("expected string elements only, got %v", got)
	}
}

func TestAssistantService_Recommend_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrGenerationFailed}
	svc := NewAssistantService(gen, discardLogger)

	_, err := svc.Recommend(context.Background(), ports.Preferences{}, nil)
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}
