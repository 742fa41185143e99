// Seed appends sample task events to the event log. Run from project root: go run ./scripts/seed
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"taskledger/internal/config"
	"taskledger/internal/eventlog"
	"taskledger/internal/models"

	"github.com/google/uuid"
)

func main() {
	loadEnvFile(".env")

	total := flag.Int("n", 25, "number of tasks to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config load failed:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store := eventlog.New(cfg.LogFile)
	if err := store.Ensure(); err != nil {
		fmt.Fprintln(os.Stderr, "Event log unavailable:", err)
		os.Exit(1)
	}

	start := time.Now()
	var deleted []string
	for i := 1; i <= *total; i++ {
		task := models.Task{
			ID:   uuid.New().String(),
			Name: fmt.Sprintf("Task %d", i),
		}
		switch {
		case i%5 == 0:
			task.Priority = true
		case i%2 == 0:
			due := time.Now().AddDate(0, 0, i)
			task.Date = due.Format("2006-01-02")
			task.Time = due.Format("15:04")
		}
		if i%3 == 0 {
			task.Description = fmt.Sprintf("Description for task %d", i)
		}
		if err := store.Append(ctx, models.NewCreateEvent(task)); err != nil {
			fmt.Fprintln(os.Stderr, "Append failed:", err)
			os.Exit(1)
		}
		// a few deletions so the replayed set exercises delete semantics
		if i%7 == 0 {
			deleted = append(deleted, task.ID)
		}
		fmt.Printf("\rAppended %d / %d", i, *total)
	}
	for _, id := range deleted {
		if err := store.Append(ctx, models.NewDeleteEvent(id)); err != nil {
			fmt.Fprintln(os.Stderr, "Append failed:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("\nDone: %d creates, %d deletes in %v (%s)\n", *total, len(deleted), time.Since(start), cfg.LogFile)
}

func loadEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		if strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`) {
			val = strings.Trim(val, `"`)
		} else if strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") {
			val = strings.Trim(val, "'")
		}
		if key != "" && os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}
