package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docpilot/docsearch/internal/config"
	"github.com/docpilot/docsearch/internal/corpus"
	"github.com/docpilot/docsearch/internal/domain/search/request"
	searchuc "github.com/docpilot/docsearch/internal/usecase/search"
)

var queryCmd = &cobra.Command{
	Use:   "query <terms...>",
	Short: "Search the corpus once and print the ranked results",
	Long: `Query runs one search against the local corpus, without going through the
HTTP server. The corpus root comes from the environment config, or from
--root. The same engine backs both surfaces, so results are identical.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		root, _ := cmd.Flags().GetString("root")
		asJSON, _ := cmd.Flags().GetBool("json")
		return runQuery(cmd.Context(), strings.Join(args, " "), category, root, asJSON)
	},
}

func init() {
	queryCmd.Flags().String("category", "", "exact-match category filter")
	queryCmd.Flags().String("root", "", "corpus root directory (overrides config)")
	queryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(ctx context.Context, query, category, root string, asJSON bool) error {
	cfg, err := queryConfig(root)
	if err != nil {
		return err
	}

	req, err := request.New(query, category)
	if err != nil {
		return err
	}

	repo := corpus.New(cfg.Corpus.Root, zap.NewNop()).
		WithExtension(cfg.Corpus.Extension).
		WithWorkers(cfg.Corpus.Workers)
	svc := searchuc.New(repo).
		WithLimits(cfg.Search.MaxResults, cfg.Search.SnippetLength)

	results, err := svc.Search(ctx, &req)
	if err != nil {
		return err
	}

	if asJSON {
		type item struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Snippet     string `json:"snippet,omitempty"`
			Category    string `json:"category"`
			ContentType string `json:"content_type"`
			Score       int    `json:"score"`
		}
		items := make([]item, len(results))
		for i := range results {
			r := &results[i]
			items[i] = item{
				Title:       r.Title(),
				URL:         r.URL(),
				Snippet:     r.Snippet(),
				Category:    r.Category(),
				ContentType: string(r.ContentType()),
				Score:       r.Score(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}

	for i := range results {
		r := &results[i]
		fmt.Printf("%2d. %s (%d) [%s / %s]\n", i+1, r.Title(), r.Score(), r.Category(), r.ContentType())
		fmt.Printf("    %s\n", r.URL())
		if r.Snippet() != "" {
			fmt.Printf("    %s\n", r.Snippet())
		}
	}
	return nil
}

// queryConfig resolves the corpus settings for a one-shot query. --root
// skips the config file entirely so the command works outside a deployment.
func queryConfig(root string) (config.Config, error) {
	if root != "" {
		cfg := config.Config{Corpus: config.CorpusConfig{Root: root}}
		cfg.ApplyDefaults()
		return cfg, nil
	}

	cfg, err := config.Load(config.GetEnv())
	if err != nil {
		return config.Config{}, fmt.Errorf("load config (or pass --root): %w", err)
	}
	return cfg, nil
}
