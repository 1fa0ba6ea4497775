// README: Local REPL for exercising the dialogue engine without HTTP.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"skyquote/internal/ai"
	"skyquote/internal/logger"
	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/dialogue"
	"skyquote/internal/modules/extract"
	"skyquote/internal/modules/pricing"
	"skyquote/internal/modules/session"
)

func main() {
	log := logger.NewNop()
	ctx := context.Background()

	cat := catalog.NewSeeded()
	rules := extract.NewRuleExtractor(cat)

	var model ai.IntentExtractor
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := ai.NewGeminiExtractor(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gemini unavailable, rule-based only: %v\n", err)
		} else {
			defer gemini.Close()
			model = gemini
			fmt.Printf("model-assisted extraction: %s\n", gemini.ModelName())
		}
	}
	extractor := extract.NewFallbackExtractor(model, rules, 3*time.Second, log)

	svc := dialogue.NewService(
		extractor,
		session.NewMemoryStore(session.DefaultHistorySize),
		session.NewTracker(cat),
		pricing.NewEngine(cat),
		log,
		nil,
	)

	fmt.Println("skyquote chat demo: describe your trip (ctrl-d to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		reply := svc.Chat(ctx, "demo", scanner.Text())
		fmt.Println(reply.Text)
	}
}
