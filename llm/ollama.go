package llm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandContext is exec.CommandContext, indirected so tests can substitute
// a fake binary invocation.
var commandContext = exec.CommandContext

const defaultOllamaModel = "phi3"

// OllamaGateway runs a local model through the ollama CLI. The prompt goes
// in on stdin and the completion comes back on stdout. Each attempt gets
// its own timeout; a killed or failed process is reported as an error so
// the retry wrapper can try again.
type OllamaGateway struct {
	model   string
	timeout time.Duration
}

func newOllama(model string, timeout time.Duration) *OllamaGateway {
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaGateway{model: model, timeout: timeout}
}

func (g *OllamaGateway) ask(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := commandContext(ctx, "ollama", "run", g.model)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("ollama run timed out after %s", g.timeout)
		}
		return "", fmt.Errorf("ollama run: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("ollama returned empty output")
	}
	return out, nil
}
