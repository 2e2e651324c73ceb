package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "folio",
			Version:     "dev",
			Environment: "development",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			HTTP: HTTPConfig{
				ReadTimeout:     30 * time.Second,
				WriteTimeout:    60 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: 30 * time.Second,
				RequestTimeout:  45 * time.Second,
				MaxHeaderBytes:  1 << 20, // 1MB
			},
			CORS: CORSConfig{
				Enabled: true,
				AllowedOrigins: []string{
					"http://localhost:5173",
					"http://localhost:3000",
					"http://localhost:5174",
					"https://tunji-paul-portfolio.vercel.app",
				},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
				AllowCredentials: true,
				MaxAge:           600,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Storage: StorageConfig{
			Type: "sqlite",
			Badger: BadgerConfig{
				Path:             "./data/badger",
				SyncWrites:       true,
				ValueLogFileSize: 64 << 20, // 64MB
			},
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "folio",
			},
			SQLite: SQLiteConfig{
				Path: "./data/folio.db",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
			Port:    9091,
		},
		Tracing: TracingConfig{
			Enabled:    false,
			Exporter:   "otlpgrpc",
			Endpoint:   "localhost:4317",
			Insecure:   true,
			Timeout:    10 * time.Second,
			Sampler:    "parentbased_ratio",
			SampleRate: 0.1,
		},
		Owner: OwnerConfig{
			Name:      "Tunji Paul",
			Email:     "tunjipaul007@gmail.com",
			GitHub:    "https://github.com/tunjipaul",
			Portfolio: "https://tunji-paul-portfolio.vercel.app",
			LinkedIn:  "https://www.linkedin.com/in/paul-ogor-gmnse-9103601b1",
		},
		Auth: AuthConfig{
			JWTSecret:  "your-secret-key-change-this-in-production",
			TokenTTL:   24 * time.Hour,
			LoginRate:  10,
			LoginBurst: 5,
		},
		Chat: ChatConfig{
			RateLimit:        10,
			RateWindow:       time.Minute,
			CacheExpiry:      24 * time.Hour,
			MaxMemoryLength:  5,
			MaxMessageLength: 500,
			InferenceTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Temperature: 0.7,
			MaxTokens:   300,
			OpenAI: OpenAIConfig{
				BaseURL: "https://api.groq.com/openai/v1",
				Model:   "llama-3.3-70b-versatile",
			},
			Gemini: GeminiConfig{
				Model: "gemini-2.0-flash",
			},
		},
		Documents: DocumentsConfig{
			Dir:     "./data/documents",
			MaxSize: 10 << 20, // 10MB
		},
		Notify: NotifyConfig{
			Provider: "none",
			BaseURL:  "https://api.resend.com",
			From:     "Portfolio <onboarding@resend.dev>",
			Timeout:  10 * time.Second,
		},
		WebSocket: WebSocketConfig{
			Enabled:        true,
			MaxConnections: 20,
			PingInterval:   30 * time.Second,
		},
	}
}
