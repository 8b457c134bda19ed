// Command lexidexd runs the lexidex phrase-search server: it scans a
// document root, serves phrase queries over a line-oriented TCP
// protocol, and incrementally indexes new files discovered under the
// root while it runs.
package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arcbeam-labs/lexidex/internal/adapters/driven/fsdoc"
	"github.com/arcbeam-labs/lexidex/internal/adapters/driven/store"
	"github.com/arcbeam-labs/lexidex/internal/adapters/driving/tcp"
	"github.com/arcbeam-labs/lexidex/internal/clientpool"
	"github.com/arcbeam-labs/lexidex/internal/config"
	"github.com/arcbeam-labs/lexidex/internal/core/services"
	"github.com/arcbeam-labs/lexidex/internal/watcher"
)

func main() {
	cfg := config.Load()
	logger := slog.Default()

	loader := fsdoc.New(logger)
	docs, err := loader.Scan(cfg.DataDir)
	if err != nil {
		log.Fatalf("lexidex: failed to scan data dir %q: %v", cfg.DataDir, err)
	}

	postingStore := store.New()
	indexer := services.NewIndexer(services.IndexerConfig{
		Store:         postingStore,
		WorkerThreads: cfg.WorkerThreads,
		Logger:        logger,
	})
	queryEngine := services.NewQueryEngine(postingStore)
	session := services.NewSession(indexer, queryEngine)

	log.Printf("lexidex: indexing %d document(s) from %s", len(docs), cfg.DataDir)
	indexer.Enqueue(docs)

	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		seen[doc.Path] = struct{}{}
	}

	fileWatcher := watcher.New(
		cfg.DataDir,
		seen,
		time.Duration(cfg.RefreshIntervalS)*time.Second,
		func(paths []string) {
			log.Printf("lexidex: watcher found %d new file(s)", len(paths))
			indexer.Enqueue(loader.Load(paths))
		},
		logger,
	)
	fileWatcher.Start()
	defer fileWatcher.Stop()

	handle := tcp.SessionHandler(session, logger)
	pool := clientpool.New(cfg.ClientThreads, handle, logger)
	defer pool.Shutdown()

	notifier := clientpool.NewNotifier(pool, time.Duration(cfg.NotifyIntervalS)*time.Second)
	notifier.Start()
	defer notifier.Stop()

	server := tcp.NewServer(tcp.Config{Host: cfg.Host, Port: cfg.Port}, pool)
	if err := server.Start(); err != nil {
		log.Fatalf("lexidex: %v", err)
	}
	go server.Serve()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("lexidex: shutdown signal received, stopping...")
	if err := server.Shutdown(); err != nil {
		log.Printf("lexidex: error closing listener: %v", err)
	}
	log.Println("lexidex: stopped")
}
