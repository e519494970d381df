package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/teranos/xmatrix/ai"
	"github.com/teranos/xmatrix/errors"
)

const parserSystemPrompt = `You parse MISMO xpath lookup queries into JSON with two fields:
- lookup_type: "by_unique_id" | "by_reference_id" | "by_xpath"
- value: the search value

Examples:
"Get xpath for ID MC000001.00001" -> {"lookup_type": "by_unique_id", "value": "MC000001.00001"}
"Show all instances of MC000001" -> {"lookup_type": "by_reference_id", "value": "MC000001"}
"Find ID for MESSAGE/DEAL_SETS/DEAL_SET" -> {"lookup_type": "by_xpath", "value": "MESSAGE/DEAL_SETS/DEAL_SET"}

Return only JSON.`

// Parser converts free-text queries into Intents through an ai.Client
type Parser struct {
	client ai.Client
	logger *zap.SugaredLogger
}

// NewParser creates an intent parser on the given model client
func NewParser(client ai.Client, logger *zap.SugaredLogger) *Parser {
	return &Parser{
		client: client,
		logger: logger,
	}
}

// Parse sends the free-text query to the model and validates the structured
// payload it returns. Malformed or non-conforming model output is an
// ErrParseFailure, never a panic. The model call itself is made once; a
// failure surfaces directly with no retry.
func (p *Parser) Parse(ctx context.Context, query string) (*Intent, error) {
	resp, err := p.client.Chat(ctx, ai.ChatRequest{
		SystemPrompt: parserSystemPrompt,
		UserPrompt:   fmt.Sprintf("Query: %s", query),
	})
	if err != nil {
		return nil, errors.Wrap(err, "intent model call failed")
	}

	if p.logger != nil {
		p.logger.Debugw("Model output received",
			"output", resp.Content,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	payload := ExtractPayload(resp.Content)
	if payload == "" {
		return nil, errors.Wrap(errors.ErrParseFailure, "no JSON payload in model output")
	}

	var intent Intent
	if err := json.Unmarshal([]byte(payload), &intent); err != nil {
		return nil, errors.Wrapf(errors.ErrParseFailure, "malformed payload: %v", err)
	}

	// Unknown-but-present kinds pass through: the router reports those as
	// ErrUnknownLookupKind so the two failure modes stay distinguishable.
	if intent.Kind == "" {
		return nil, errors.Wrap(errors.ErrParseFailure, "payload missing lookup_type")
	}
	if intent.Value == "" {
		return nil, errors.Wrap(errors.ErrParseFailure, "payload missing value")
	}

	return &intent, nil
}
