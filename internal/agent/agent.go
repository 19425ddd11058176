package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/tools"

	"github.com/pedropiresdev/c2s-challenge/internal/common/config"
)

// Agent is the dealership assistant: a one-shot ReAct agent over Gemini with
// the inventory search tool bound. The reasoning loop belongs to the library;
// this type only owns the wiring.
type Agent struct {
	executor *agents.Executor
}

// New builds the agent. The Gemini API key comes from GOOGLE_API_KEY.
func New(ctx context.Context, cfg config.AgentConfig) (*Agent, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not set")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	searchTool := NewSearchTool(NewClient(cfg.APIBaseURL), cfg.MaxResults)

	oneShot := agents.NewOneShotAgent(llm,
		[]tools.Tool{searchTool},
		agents.WithMaxIterations(5),
	)
	executor := agents.NewExecutor(oneShot, []tools.Tool{searchTool})
	return &Agent{executor: &executor}, nil
}

// Ask runs one question through the agent and returns the final answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	if a == nil || a.executor == nil {
		return "", fmt.Errorf("agent not initialized")
	}
	return chains.Run(ctx, a.executor, question)
}
