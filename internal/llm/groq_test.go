package llm

import "testing"

func TestNewGroqProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-3.1-8b-instant",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.1-8b-instant" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama-3.1-8b-instant")
		}
	})

	t.Run("friendly model alias", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-8b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.1-8b-instant" {
			t.Errorf("model = %q, want resolved alias", p.ModelID())
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewGroqProvider(GroqConfig{Model: "llama-8b"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"groq with key", Config{Provider: "groq", Groq: GroqConfig{APIKey: "k"}}, false},
		{"groq without key", Config{Provider: "groq"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "grok9000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "groq" {
		t.Errorf("default provider = %q, want groq", cfg.Provider)
	}
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("default groq model = %q", cfg.Groq.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STUDYBUDDY_LLM_PROVIDER", "openai")
	t.Setenv("STUDYBUDDY_OPENAI_API_KEY", "sk-test")
	t.Setenv("STUDYBUDDY_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_PrefersGroq(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-1")
	t.Setenv("OPENAI_API_KEY", "sk-1")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider)
	}
	if cfg.Groq.APIKey != "gsk-1" {
		t.Errorf("api key = %q", cfg.Groq.APIKey)
	}
}
