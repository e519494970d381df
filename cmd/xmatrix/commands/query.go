package commands

import (
	"context"

	"github.com/teranos/xmatrix/ai/anthropic"
	"github.com/teranos/xmatrix/config"
	"github.com/teranos/xmatrix/display"
	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/intent"
	"github.com/teranos/xmatrix/logger"
	"github.com/teranos/xmatrix/matrix"
)

// RunQuery resolves a free-text query against the record store: parse the
// query into a lookup intent, route it to the matching store lookup, and
// render what came back. An empty result set is a normal outcome, not an
// error.
func RunQuery(ctx context.Context, query string, jsonOutput bool) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	client := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.Anthropic.APIKey,
		Model:       cfg.Anthropic.Model,
		Temperature: cfg.Anthropic.Temperature,
		MaxTokens:   cfg.Anthropic.MaxTokens,
	})
	if !client.IsConfigured() {
		err := errors.New("Anthropic API key not configured")
		return errors.WithHint(err, "set ANTHROPIC_API_KEY or anthropic.api_key in config")
	}

	database, err := openExistingDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	store := matrix.NewStore(database, logger.Named("store"))
	parser := intent.NewParser(client, logger.Named("intent"))

	in, err := parser.Parse(ctx, query)
	if err != nil {
		return err
	}

	logger.Debugw("Query parsed", "kind", in.Kind, "value", in.Value)

	result, err := matrix.Route(ctx, store, in)
	if err != nil {
		return err
	}

	if jsonOutput {
		return display.OutputJSON(result)
	}
	display.PrintResult(result)
	return nil
}
