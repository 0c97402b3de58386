package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"agrow/config"
	"agrow/pkg/ai"
)

func modelsCommand(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "models", Short: "Inspect the configured Gemini account"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List models available to the API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gemini(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			names, err := g.ListModels(cmd.Context())
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return err
		},
	}

	probe := &cobra.Command{
		Use:   "probe [model...]",
		Short: "Send a trivial prompt to each model until one answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gemini(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			results := g.Probe(cmd.Context(), args)
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", r.Model, r.Err)
					continue
				}
				fmt.Fprintf(out, "OK   %s: %s\n", r.Model, r.Reply)
			}
			if len(results) == 0 || results[len(results)-1].Err != nil {
				return fmt.Errorf("no model answered")
			}
			return nil
		},
	}

	cmd.AddCommand(list, probe)
	return cmd
}

func gemini(ctx context.Context, cfg config.AppConfig) (*ai.Gemini, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return ai.NewGemini(ctx, ai.GeminiOptions{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL})
}
