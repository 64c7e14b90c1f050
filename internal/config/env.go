package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/devbush/aai-transcribe/internal/domain"
)

// Credential environment variables per provider
const (
	AssemblyAIKeyEnv = "AAI_API_KEY"
	OpenAIKeyEnv     = "OPENAI_API_KEY"
)

// LoadEnv loads the given .env files in order. Missing files are skipped
// and variables already present in the environment are never overridden.
// It returns the files that were loaded.
func LoadEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("error loading %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// LoadDefaultEnv loads ./.env then ~/.aai-transcribe/.env
func LoadDefaultEnv() ([]string, error) {
	return LoadEnv(".env", EnvPath())
}

// CredentialEnv returns the environment variable holding the API key for
// a provider
func CredentialEnv(provider string) (string, error) {
	switch provider {
	case ProviderAssemblyAI:
		return AssemblyAIKeyEnv, nil
	case ProviderOpenAI:
		return OpenAIKeyEnv, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}
}

// Credential reads the API key for a provider from the environment
func Credential(provider string) (string, error) {
	name, err := CredentialEnv(provider)
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(os.Getenv(name))
	if key == "" {
		return "", fmt.Errorf("%w: %s environment variable not set", domain.ErrMissingCredential, name)
	}
	return key, nil
}
