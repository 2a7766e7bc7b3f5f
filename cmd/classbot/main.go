package main

import (
	"context"
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/dtongg03/Base-RAG/internal/answer"
	answerollama "github.com/dtongg03/Base-RAG/internal/answer/ollama"
	answeropenai "github.com/dtongg03/Base-RAG/internal/answer/openai"
	"github.com/dtongg03/Base-RAG/internal/chunker"
	"github.com/dtongg03/Base-RAG/internal/config"
	"github.com/dtongg03/Base-RAG/internal/domain"
	embedopenai "github.com/dtongg03/Base-RAG/internal/embedding/openai"
	"github.com/dtongg03/Base-RAG/internal/embedding/tfidf"
	"github.com/dtongg03/Base-RAG/internal/segment"
	"github.com/dtongg03/Base-RAG/internal/service"
	"github.com/dtongg03/Base-RAG/internal/summarizer"
	"github.com/dtongg03/Base-RAG/internal/tui"
	"github.com/dtongg03/Base-RAG/internal/vectorstore/memory"
	"github.com/dtongg03/Base-RAG/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, dataDir string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/classbot/config.yaml if not provided)")
	flag.StringVar(&dataDir, "data", "", "Directory to ingest (overrides config data_dir)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	splitter, err := segment.NewSplitter()
	if err != nil {
		log.Fatalf("sentence splitter init failed: %v", err)
	}

	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "tfidf", "":
		emb = tfidf.NewEmbedder()
	case "openai":
		client, err := embedopenai.NewClient(embedopenai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
			BatchSize: cfg.Embedder.OpenAI.BatchSize,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var store domain.VectorStore
	switch cfg.VectorStore.Type {
	case "memory", "":
		store = memory.NewStore()
	case "qdrant":
		qs, err := qdrant.NewStore(qdrant.Config{
			Host:       cfg.VectorStore.Qdrant.Host,
			Port:       cfg.VectorStore.Qdrant.Port,
			APIKeyEnv:  cfg.VectorStore.Qdrant.APIKeyEnv,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("qdrant init failed: %v", err)
		}
		store = qs
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore.Type)
	}
	defer store.Close()

	var gen domain.Generator
	switch cfg.LLM.Type {
	case "ollama", "":
		gen = answerollama.NewClient(answerollama.Config{
			BaseURL:   cfg.LLM.Ollama.BaseURL,
			APIKeyEnv: cfg.LLM.Ollama.APIKeyEnv,
			Model:     cfg.LLM.Ollama.Model,
			Timeout:   time.Duration(cfg.LLM.Ollama.TimeoutSecs) * time.Second,
		})
	case "openai":
		client, err := answeropenai.NewClient(answeropenai.Config{
			BaseURL:   cfg.LLM.OpenAI.BaseURL,
			APIKeyEnv: cfg.LLM.OpenAI.APIKeyEnv,
			Model:     cfg.LLM.OpenAI.Model,
			Timeout:   time.Duration(cfg.LLM.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai llm init failed: %v", err)
		}
		gen = client
	default:
		log.Fatalf("unknown llm backend: %s", cfg.LLM.Type)
	}

	pipeline := service.NewPipeline(service.Options{
		Builder:    chunker.NewBuilder(splitter),
		Embedder:   emb,
		Store:      store,
		Answerer:   answer.New(gen),
		Summarizer: summarizer.NewFrequencySummarizer(splitter),
		TopK:       cfg.Retriever.TopK,
	})

	report, err := pipeline.Ingest(context.Background(), dataDir)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
	for _, f := range report.Failures {
		log.Printf("skipped: %v", f)
	}
	log.Printf("ingested %d documents, %d chunks from %s", report.Documents, report.Chunks, dataDir)

	m := tui.New(pipeline, report.Summary)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
