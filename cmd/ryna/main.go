// Copyright 2025 Ryna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rynalabs/ryna"
	"github.com/rynalabs/ryna/ai"
	"github.com/rynalabs/ryna/catalog"
	"github.com/rynalabs/ryna/core"
	"github.com/rynalabs/ryna/dialog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ryna",
		Usage: "Conversational property search assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Start an interactive conversation",
				Action: chatCommand,
				Flags:  append(catalogFlags(), aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Run a single search query and print ranked results",
				Action:    searchCommand,
				ArgsUsage: "<query>",
				Flags:     catalogFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to a self-contained catalog JSON file",
		},
		&cli.StringFlag{
			Name:  "basics",
			Usage: "Path to the basics feed (id, title, location, price)",
		},
		&cli.StringFlag{
			Name:  "characteristics",
			Usage: "Path to the characteristics feed (bedrooms, amenities, description)",
		},
		&cli.StringFlag{
			Name:  "images",
			Usage: "Path to the images feed",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "ai",
			Usage: "Enable the conversational backend for enriched replies",
		},
		&cli.StringFlag{
			Name:    "ai-host",
			Usage:   "Conversational backend host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"RYNA_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "ai-model",
			Usage:   "Conversational model name",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"RYNA_AI_MODEL"},
		},
		&cli.StringFlag{
			Name:    "ai-token",
			Usage:   "API token for the conversational backend",
			EnvVars: []string{"RYNA_AI_TOKEN"},
		},
	}
}

// loadCatalog builds the provider from either the single-file or the
// three-part feed flags.
func loadCatalog(c *cli.Context) (catalog.Provider, error) {
	loader := catalog.NewLoader()

	if path := c.String("catalog"); path != "" {
		properties, err := loader.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return catalog.NewStatic(properties), nil
	}

	basics := c.String("basics")
	characteristics := c.String("characteristics")
	images := c.String("images")
	if basics == "" || characteristics == "" || images == "" {
		return nil, fmt.Errorf("either --catalog or all of --basics/--characteristics/--images are required")
	}
	properties, err := loader.LoadMerged(basics, characteristics, images)
	if err != nil {
		return nil, err
	}
	return catalog.NewStatic(properties), nil
}

func buildAssistant(c *cli.Context, sink func(string)) (*ryna.Assistant, error) {
	provider, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}

	opts := []ryna.AssistantOption{}
	if c.Bool("ai") {
		config := ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithModel(c.String("ai-model")),
			ai.WithToken(c.String("ai-token")),
		)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, ryna.WithAIConfig(config))
		if sink != nil {
			opts = append(opts, ryna.WithReplySink(sink))
		}
	}

	return ryna.NewAssistant(provider, opts...)
}

func chatCommand(c *cli.Context) error {
	sink := func(reply string) {
		fmt.Printf("\nryna (ai): %s\nyou: ", reply)
	}

	assistant, err := buildAssistant(c, sink)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	session := core.NewGuidedSession()

	fmt.Println("Type a query, \"guided\" for step-by-step search, or \"quit\" to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("you: ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(text) {
		case "":
			fmt.Print("you: ")
			continue
		case "quit", "exit":
			return nil
		case "guided":
			turn, err := assistant.StartGuided(session)
			if err != nil {
				return err
			}
			printTurn(turn)
			fmt.Print("you: ")
			continue
		}

		turn, err := assistant.Handle(ctx, session, text)
		if err != nil {
			return err
		}
		printTurn(turn)
		fmt.Print("you: ")
	}

	return scanner.Err()
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	assistant, err := buildAssistant(c, nil)
	if err != nil {
		return err
	}
	defer assistant.Close()

	results, criteria := assistant.Search(query)
	slog.Debug("search finished", "criteria", fmt.Sprintf("%+v", criteria), "results", len(results))

	if len(results) == 0 {
		fmt.Println("No matching properties.")
		return nil
	}

	for i, r := range results {
		p := r.Property
		fmt.Printf("%2d. [%3d] %s in %s, %s\n", i+1, r.Score, p.Title, p.Location, dialog.FormatPrice(p.Price))
	}
	return nil
}

func printTurn(turn dialog.Turn) {
	for _, msg := range turn.Messages {
		if msg.Property != nil {
			fmt.Printf("ryna:   - %s\n", msg.Text)
			continue
		}
		fmt.Printf("ryna: %s\n", msg.Text)
		if len(msg.Suggestions) > 0 {
			fmt.Printf("      (try: %s)\n", strings.Join(msg.Suggestions, " / "))
		}
	}
}

func setup(c *cli.Context) error {
	// A missing .env file is fine; environment variables may be set externally.
	_ = godotenv.Load()

	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
