// Copyright 2025 James Ross
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jamesross/textdedup/internal/config"
	"github.com/jamesross/textdedup/internal/dedup"
	"github.com/jamesross/textdedup/internal/obs"
)

var version = "dev"

func main() {
	var configPath string
	var mode string
	var inputPath string
	var outputPath string
	var showVersion bool
	var printConfig bool

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&configPath, "config", "config/config.yaml", "Path to YAML config")
	fs.StringVar(&mode, "mode", "exact", "Dedup engine to run: exact|fuzzy")
	fs.StringVar(&inputPath, "input", "", "Path to newline-delimited JSON input; reads stdin if empty")
	fs.StringVar(&outputPath, "output", "", "Path to write kept records as newline-delimited JSON; writes stdout if empty; a .zst suffix compresses with zstd")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&printConfig, "print-config", false, "Print the effective configuration as YAML and exit")
	_ = fs.Parse(os.Args[1:])

	if showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if printConfig {
		out, err := cfg.Dump()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	logger, err := obs.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := obs.StartHTTPServer(cfg)
	defer func() {
		_ = srv.Shutdown(context.Background())
	}()

	_, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			logger.Fatal("failed to open input", obs.Err(err))
		}
		defer f.Close()
		in = f
	}

	src, err := loadRecords(in, cfg.Column)
	if err != nil {
		logger.Fatal("failed to load records", obs.Err(err))
	}

	sink := dedup.NewInMemorySink()

	var report dedup.RunReport
	switch mode {
	case "exact":
		report = dedup.RunExact(cfg, src, sink, logger)
	case "fuzzy":
		report = dedup.RunFuzzy(cfg, src, sink, logger)
	default:
		logger.Fatal("unknown mode", obs.String("mode", mode))
	}

	if strings.HasSuffix(outputPath, ".zst") {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.Fatal("failed to create output", obs.Err(err))
		}
		defer f.Close()
		cw, err := dedup.NewCompressedRecordWriter(f)
		if err != nil {
			logger.Fatal("failed to init compressed writer", obs.Err(err))
		}
		if err := writeKeptCompressed(cw, src, sink, cfg.Column); err != nil {
			logger.Fatal("failed to write output", obs.Err(err))
		}
		if err := cw.Close(); err != nil {
			logger.Fatal("failed to close compressed output", obs.Err(err))
		}
	} else {
		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				logger.Fatal("failed to create output", obs.Err(err))
			}
			defer f.Close()
			out = f
		}
		if err := writeKept(out, src, sink, cfg.Column); err != nil {
			logger.Fatal("failed to write output", obs.Err(err))
		}
	}

	for _, stage := range report.Stages {
		logger.Info("stage timing", obs.String("stage", stage.Name), obs.Duration("duration", stage.Duration))
	}
	logger.Info("run complete",
		obs.String("engine", report.Engine),
		obs.Int("total", report.Total),
		obs.Int("kept", report.Kept),
		obs.Int("dropped", report.Dropped),
		obs.Int("clusters", report.Clusters))
}

func loadRecords(r *os.File, column string) (*dedup.InMemorySource, error) {
	var contents []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, dedup.NewInputError(len(contents), "malformed input line: %v", err)
		}
		text, ok := row[column].(string)
		if !ok {
			return nil, dedup.NewInputError(len(contents), "record missing string column %q", column)
		}
		contents = append(contents, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &dedup.InMemorySource{Contents: contents}, nil
}

func writeKept(w *os.File, src *dedup.InMemorySource, sink *dedup.InMemorySink, column string) error {
	enc := json.NewEncoder(w)
	for _, idx := range sink.Kept {
		rec := src.Record(idx)
		if err := enc.Encode(map[string]any{column: rec.Content}); err != nil {
			return err
		}
	}
	return nil
}

func writeKeptCompressed(cw *dedup.CompressedRecordWriter, src *dedup.InMemorySource, sink *dedup.InMemorySink, column string) error {
	for _, idx := range sink.Kept {
		rec := src.Record(idx)
		if err := cw.WriteRecord(column, rec.Content); err != nil {
			return err
		}
	}
	return nil
}
