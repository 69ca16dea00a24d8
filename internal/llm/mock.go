package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response Response
	Err      error
	Prompts  []string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (Response, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.Response, m.Err
}
