package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"sync"
	"text/template"

	"github.com/ems-lab/cpgnav/pkg/agent/tool/guide"
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/chat_system.md
var chatSystemPromptTmpl string

var chatSystemPrompt = template.Must(template.New("chat_system").Parse(chatSystemPromptTmpl))

// chatPromptData holds all data for the chat system prompt template
type chatPromptData struct {
	DocumentTitle string
	DocumentID    string
	Version       string
	SourceURL     string
	EntryCount    int
	Categories    []model.CategoryCount
	Features      []model.AppFeature
}

// ChatUseCase drives the conversational front-end. The agent holds the
// conversation history, so one ChatUseCase corresponds to one dialogue.
type ChatUseCase struct {
	store     *taxonomy.Store
	repo      interfaces.Repository
	llmClient gollem.LLMClient

	mu    sync.Mutex
	agent *gollem.Agent
}

func NewChatUseCase(store *taxonomy.Store, repo interfaces.Repository, llmClient gollem.LLMClient) *ChatUseCase {
	return &ChatUseCase{
		store:     store,
		repo:      repo,
		llmClient: llmClient,
	}
}

// Enabled reports whether the conversational front-end can be used
func (uc *ChatUseCase) Enabled() bool {
	return uc.llmClient != nil
}

// Chat sends one user message to the agent and returns its final text
// response. The agent decides which guide tools to call; tool progress is
// reported through the update callback carried in ctx, if any.
func (uc *ChatUseCase) Chat(ctx context.Context, message string) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.llmClient == nil {
		return "", ErrChatNotConfigured
	}

	if uc.agent == nil {
		systemPrompt, err := uc.buildSystemPrompt()
		if err != nil {
			return "", err
		}

		uc.agent = gollem.New(uc.llmClient,
			gollem.WithSystemPrompt(systemPrompt),
			gollem.WithTools(guide.New(uc.store, uc.repo)...),
		)
	}

	resp, err := uc.agent.Execute(ctx, gollem.Text(message))
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute chat agent")
	}

	return strings.Join(resp.Texts, "\n"), nil
}

func (uc *ChatUseCase) buildSystemPrompt() (string, error) {
	data := chatPromptData{
		DocumentTitle: uc.store.Title(),
		DocumentID:    uc.store.DocumentID().String(),
		Version:       uc.store.Version(),
		SourceURL:     uc.store.SourceURL(),
		EntryCount:    uc.store.Len(),
		Categories:    uc.store.Categories(),
		Features:      model.AppFeatures(),
	}

	var buf bytes.Buffer
	if err := chatSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute chat system prompt template")
	}

	return buf.String(), nil
}
