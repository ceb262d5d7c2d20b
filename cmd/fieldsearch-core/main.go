package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/veldt-labs/fieldsearch-core/internal/adapters/driven/jsonfile"
	"github.com/veldt-labs/fieldsearch-core/internal/adapters/driven/memory"
	"github.com/veldt-labs/fieldsearch-core/internal/adapters/driven/postgres"
	redisadapter "github.com/veldt-labs/fieldsearch-core/internal/adapters/driven/redis"
	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driving"
	"github.com/veldt-labs/fieldsearch-core/internal/core/services"
	"github.com/veldt-labs/fieldsearch-core/internal/refresher"
)

var version = "dev"

func main() {
	log.Printf("fieldsearch-core %s starting", version)

	// Configuration from environment
	scopeID := getEnv("SCOPE_ID", "default-org")
	recordsFile := getEnv("RECORDS_FILE", "records.json")
	databaseURL := getEnv("DATABASE_URL", "")
	redisURL := getEnv("REDIS_URL", "")
	refreshSec := getEnvInt("REFRESH_INTERVAL_SEC", 0)

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	// ===== Record store =====
	recordStore := jsonfile.NewRecordStore(recordsFile)

	// ===== Filter store (PostgreSQL > Redis > memory) =====
	var filterStore driven.FilterStore
	switch {
	case databaseURL != "":
		log.Println("Connecting to PostgreSQL...")
		db, err := postgres.Connect(ctx, postgres.DefaultConfig(databaseURL))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		filterStore = postgres.NewFilterStore(db)
		log.Println("Using PostgreSQL filter store")

	case redisURL != "":
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		filterStore = redisadapter.NewFilterStore(redisClient)
		log.Println("Using Redis filter store")

	default:
		filterStore = memory.NewFilterStore()
		log.Println("Using in-memory filter store")
	}

	// Services (core business logic)
	searchService := services.NewSearchService(recordStore, slog.Default())
	filterService := services.NewFilterService(filterStore, scopeID, slog.Default())

	if err := searchService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	if err := filterService.Initialize(ctx); err != nil {
		log.Printf("Warning: saved filters unavailable: %v", err)
	}

	// Optional background refresh
	if refreshSec > 0 {
		r := refresher.New(refresher.Config{
			Engine:   searchService,
			Logger:   slog.Default(),
			Interval: time.Duration(refreshSec) * time.Second,
		})
		r.Start(ctx)
		defer r.Stop()
	}

	// One-shot query from arguments, otherwise interactive loop
	if len(os.Args) > 1 {
		runQuery(ctx, searchService, strings.Join(os.Args[1:], " "))
		return
	}
	runInteractive(ctx, searchService)
}

// runQuery executes a single search and prints the results.
func runQuery(ctx context.Context, svc driving.SearchService, query string) {
	opts := domain.DefaultSearchOptions()
	opts.Query = query

	results, err := svc.Search(ctx, opts)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	printResults(results)
}

// runInteractive reads queries from stdin until EOF or shutdown.
// Lines starting with "?" ask for suggestions instead of results.
func runInteractive(ctx context.Context, svc driving.SearchService) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Enter a query (prefix with ? for suggestions, Ctrl-D to exit):")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if partial, ok := strings.CutPrefix(line, "?"); ok {
			suggestions, err := svc.Suggest(ctx, strings.TrimSpace(partial))
			if err != nil {
				log.Printf("Suggest failed: %v", err)
				continue
			}
			for _, sg := range suggestions {
				fmt.Printf("  %s\n", sg)
			}
			continue
		}

		opts := domain.DefaultSearchOptions()
		opts.Query = line
		results, err := svc.Search(ctx, opts)
		if err != nil {
			log.Printf("Search failed: %v", err)
			continue
		}
		printResults(results)
	}
}

func printResults(results []domain.SearchResult) {
	if len(results) == 0 {
		fmt.Println("No matches.")
		return
	}
	for _, r := range results {
		fmt.Printf("%-28s %-24s %6.1f  %s\n", r.SectionName, r.FieldName, r.MatchScore, r.Context)
	}
	fmt.Printf("%d result(s)\n", len(results))
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
