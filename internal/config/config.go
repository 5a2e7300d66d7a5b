package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	StaticDir          string
}

type DatabaseConfig struct {
	Connection string
}

type CatalogConfig struct {
	PropertiesPath string
	ProvidersPath  string
	RagDocsDir     string
}

type AIConfig struct {
	OllamaBaseURL    string
	GenerationModel  string
	EmbeddingModel   string
	GenerateTimeoutS int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			StaticDir:          getEnv("STATIC_DIR", "./web"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Catalog: CatalogConfig{
			PropertiesPath: getEnv("PROPERTIES_PATH", "data/properties.json"),
			ProvidersPath:  getEnv("PROVIDERS_PATH", "data/service_providers.json"),
			RagDocsDir:     getEnv("RAG_DOCS_DIR", "data/rag_docs"),
		},
		Ai: AIConfig{
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GenerationModel:  getEnv("OLLAMA_MODEL", "qwen2.5:1.5b"),
			EmbeddingModel:   getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GenerateTimeoutS: getEnvAsInt("OLLAMA_GENERATE_TIMEOUT_SECONDS", 120),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
