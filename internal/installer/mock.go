package installer

import (
	"context"
	"strings"
)

// Call records one MockRunner invocation.
type Call struct {
	Dir     string
	Command string
}

// MockRunner implements Runner for testing.
type MockRunner struct {
	Calls []Call

	// Errors maps a space-joined command to the error it returns.
	Errors map[string]error
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Errors: make(map[string]error),
	}
}

func (m *MockRunner) Run(ctx context.Context, dir string, argv []string) error {
	command := strings.Join(argv, " ")
	m.Calls = append(m.Calls, Call{Dir: dir, Command: command})

	if err := ctx.Err(); err != nil {
		return err
	}

	return m.Errors[command]
}

// Commands returns the recorded commands in call order.
func (m *MockRunner) Commands() []string {
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		out = append(out, c.Command)
	}
	return out
}
