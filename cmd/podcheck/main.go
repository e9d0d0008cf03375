// ABOUTME: Command line feed checker for local files and remote feeds
// ABOUTME: Prints findings and the readiness score, or JSON with --json

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"podcheck-api/core/domain"
	"podcheck-api/core/feed"
	"podcheck-api/core/interfaces"
	"podcheck-api/core/resolve"
	"podcheck-api/core/validate"
	"podcheck-api/infrastructure/cache/memory"
	"podcheck-api/infrastructure/http/relay"
	stdhttp "podcheck-api/infrastructure/http/standard"
	logruslogger "podcheck-api/infrastructure/logger/logrus"
	"podcheck-api/infrastructure/podcastindex"
	"podcheck-api/pkg/config"
	"podcheck-api/pkg/utils/duration"
)

func main() {
	app := &cli.App{
		Name:  "podcheck",
		Usage: "validate podcast RSS feeds against the Podcast Namespace",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "validate a feed from a URL or local file",
				ArgsUsage: "<url-or-file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "resolve",
						Usage: "resolve remote items referenced by value time splits",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit the full result as JSON",
					},
				},
				Action: runCheck,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

// checkResult is the JSON shape emitted with --json
type checkResult struct {
	Title    string                      `json:"title"`
	Stats    domain.Stats                `json:"stats"`
	Findings []domain.Finding            `json:"findings"`
	Summary  map[string]int              `json:"summary"`
	Report   validate.Report             `json:"report"`
	Remote   []domain.ResolvedRemoteItem `json:"remoteItems,omitempty"`
}

func runCheck(c *cli.Context) error {
	target := c.Args().First()
	if target == "" {
		return cli.Exit("usage: podcheck check <url-or-file>", 1)
	}

	ctx := c.Context
	deps, directory := buildDependencies()
	feedService := feed.NewService(deps)

	parsed, err := loadFeed(ctx, feedService, target)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result := checkResult{
		Title:    parsed.Channel.Title,
		Stats:    feed.Stats(parsed),
		Findings: validate.Validate(parsed),
		Report:   validate.BuildReport(parsed),
	}
	result.Summary = domain.CountBySeverity(result.Findings)

	unresolved := 0
	if c.Bool("resolve") {
		resolver := resolve.NewResolver(deps, directory)
		result.Remote = resolver.ResolveAll(ctx, parsed)
		for _, item := range result.Remote {
			if item.ArtworkURL == "" && item.Value == nil {
				unresolved++
			}
		}
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	} else {
		printResult(result)
	}

	if unresolved > 0 {
		return cli.Exit(fmt.Sprintf("%d remote item(s) could not be resolved", unresolved), 2)
	}
	return nil
}

func buildDependencies() (interfaces.Dependencies, interfaces.Directory) {
	cfg, _ := config.LoadFromEnv()
	logger := logruslogger.New(os.Getenv("LOG_LEVEL"), false)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)
	chainClient := stdhttp.NewStandardHTTPClientWithRetries(
		time.Duration(cfg.Fetch.Timeout)*time.Second, 1)

	transports := []relay.Transport{relay.DirectTransport()}
	for i, template := range cfg.Fetch.RelayURLs {
		transports = append(transports, relay.RelayTransport(fmt.Sprintf("relay-%d", i+1), template))
	}

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: httpClient,
		Fetcher:    relay.NewChain(transports, chainClient, logger),
		Logger:     logger,
	}
	directory := podcastindex.NewClient(
		cfg.PodcastIndex.APIKey, cfg.PodcastIndex.APISecret, httpClient, logger)
	return deps, directory
}

// loadFeed reads a local file when the target exists on disk, otherwise
// fetches it as a URL.
func loadFeed(ctx context.Context, service *feed.Service, target string) (*domain.Feed, error) {
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		body, err := os.ReadFile(target)
		if err != nil {
			return nil, err
		}
		return service.Parse(body)
	}
	return service.Fetch(ctx, target)
}

func printResult(result checkResult) {
	fmt.Printf("%s\n", result.Title)
	fmt.Printf("  episodes: %d  live items: %d  total duration: %s\n\n",
		result.Stats.EpisodeCount,
		result.Stats.LiveItemCount,
		duration.Format(result.Stats.TotalDurationSeconds))

	for _, f := range sortedFindings(result.Findings) {
		fmt.Printf("  [%s] %s: %s\n", strings.ToUpper(f.Type), f.Title, f.Message)
	}

	fmt.Printf("\n  errors: %d  warnings: %d  info: %d\n",
		result.Summary[domain.SeverityError],
		result.Summary[domain.SeverityWarning],
		result.Summary[domain.SeverityInfo])
	fmt.Printf("  readiness score: %d/100 (%s)\n", result.Report.Score, result.Report.Status)

	for _, item := range result.Remote {
		status := "resolved"
		if item.ArtworkURL == "" && item.Value == nil {
			status = "unresolved"
		}
		fmt.Printf("  remote %s/%s: %s\n", item.FeedGuid, item.ItemGuid, status)
	}
}

// sortedFindings orders findings errors first, then warnings, then the
// rest, keeping the engine's order within each severity.
func sortedFindings(findings []domain.Finding) []domain.Finding {
	rank := map[string]int{
		domain.SeverityError:   0,
		domain.SeverityWarning: 1,
		domain.SeverityInfo:    2,
		domain.SeveritySuccess: 3,
	}
	out := make([]domain.Finding, len(findings))
	copy(out, findings)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Type] < rank[out[j].Type]
	})
	return out
}
