package bootstrap

import (
	"log"
	"time"

	"property-assistant-be/internal/config"
	"property-assistant-be/internal/controller"
	"property-assistant-be/internal/pkg/logger"
	"property-assistant-be/internal/repository/memory"
	"property-assistant-be/internal/repository/unitofwork"
	"property-assistant-be/internal/service"
	"property-assistant-be/internal/websocket"
	"property-assistant-be/pkg/catalog"
	"property-assistant-be/pkg/embedding"
	"property-assistant-be/pkg/llm/factory"
	"property-assistant-be/pkg/rag"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DirectoryController controller.IDirectoryController

	// WebSocket chat
	ChatHandler *websocket.ChatHandler

	// Exposed for in-process clients like cmd/simulation
	ConversationService service.IConversationService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Catalogs
	// Missing or broken catalog files degrade to empty catalogs. The chat
	// still runs; searches just come back with no results.
	properties, err := catalog.LoadProperties(cfg.Catalog.PropertiesPath)
	if err != nil {
		sysLogger.Warn("bootstrap", "no rental properties loaded", map[string]interface{}{
			"path":  cfg.Catalog.PropertiesPath,
			"error": err.Error(),
		})
	}
	providers, err := catalog.LoadProviders(cfg.Catalog.ProvidersPath)
	if err != nil {
		sysLogger.Warn("bootstrap", "no service providers loaded", map[string]interface{}{
			"path":  cfg.Catalog.ProvidersPath,
			"error": err.Error(),
		})
	}

	matcher := catalog.NewRentalMatcher(properties)
	providerDirectory := catalog.NewProviderDirectory(providers)

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)

	llmTimeout := time.Duration(cfg.Ai.GenerateTimeoutS) * time.Second
	llmProvider, err := factory.NewLLMProvider(
		"ollama",
		cfg.Ai.GenerationModel,
		cfg.Ai.OllamaBaseURL,
		llmTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.GenerationModel)

	retriever := rag.NewRetriever(embeddingProvider)
	if err := retriever.LoadDir(cfg.Catalog.RagDocsDir); err != nil {
		sysLogger.Warn("bootstrap", "no knowledge base loaded", map[string]interface{}{
			"dir":   cfg.Catalog.RagDocsDir,
			"error": err.Error(),
		})
	}

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	conversationService := service.NewConversationService(
		uowFactory,
		sessionRepo,
		matcher,
		providerDirectory,
		retriever,
		llmProvider,
		llmTimeout,
		sysLogger,
	)
	directoryService := service.NewDirectoryService(uowFactory)

	// 6. Controllers & Handlers
	directoryController := controller.NewDirectoryController(directoryService)
	chatHandler := websocket.NewChatHandler(conversationService, sysLogger)

	return &Container{
		DirectoryController: directoryController,
		ChatHandler:         chatHandler,
		ConversationService: conversationService,
		Logger:              sysLogger,
	}
}
