// Command analyze runs the batch corpus analysis pass: descriptive statistics
// plus data-quality anomaly flags. The corpus comes from a saved JSON dump
// ({items, total}) or, with -fetch, live from the messages endpoint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/analysis"
	"github.com/karthikyeluripati/aurora-chatbot/internal/config"
	"github.com/karthikyeluripati/aurora-chatbot/internal/corpus"
	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

func main() {
	file := flag.String("file", "all_messages.json", "path to a saved {items, total} JSON dump")
	fetch := flag.Bool("fetch", false, "fetch the corpus live instead of reading -file")
	flag.Parse()

	var (
		msgs  models.Corpus
		total int
		err   error
	)
	if *fetch {
		msgs, total, err = fetchCorpus()
	} else {
		msgs, total, err = loadDump(*file)
	}
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	if len(msgs) == 0 {
		log.Fatal("FATAL: corpus is empty, nothing to analyze")
	}

	report := analysis.Analyze(msgs, total, time.Now())
	report.WriteText(os.Stdout)
}

func loadDump(path string) (models.Corpus, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	var page models.MessagesPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	return page.Items, page.Total, nil
}

func fetchCorpus() (models.Corpus, int, error) {
	// Analysis needs no LLM credentials; only the source URL matters here.
	sourceURL := config.DefaultMessagesAPIURL
	if url := os.Getenv("MESSAGES_API_URL"); url != "" {
		sourceURL = url
	}

	client := corpus.NewClient(sourceURL, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	msgs, err := client.FetchAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return msgs, len(msgs), nil
}
