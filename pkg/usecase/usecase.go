package usecase

import (
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/gollem"
)

type UseCases struct {
	repo      interfaces.Repository
	store     *taxonomy.Store
	llmClient gollem.LLMClient

	Guide   *GuideUseCase
	Session *SessionUseCase
	Chat    *ChatUseCase
}

type Option func(*UseCases)

// WithLLMClient enables the conversational front-end. Without it, only the
// direct lookup surfaces (HTTP API, lookup command) are available.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func New(repo interfaces.Repository, store *taxonomy.Store, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		store: store,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Guide = NewGuideUseCase(store, repo)
	uc.Session = NewSessionUseCase(store, repo)
	uc.Chat = NewChatUseCase(store, repo, uc.llmClient)

	return uc
}
