package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- ValidateModelProvider ----------

func TestValidateModelProvider_EmptyModelAlwaysOK(t *testing.T) {
	for _, p := range Providers {
		assert.NoError(t, ValidateModelProvider(p, ""), "provider %s", p)
	}
}

func TestValidateModelProvider_Accepted(t *testing.T) {
	tests := []struct {
		provider string
		model    string
	}{
		{OpenAI, "gpt-3.5-turbo-0125"},
		{OpenAI, "o3-mini"},
		{HuggingFace, "mistralai/Mistral-7B-Instruct-v0.3"},
		{Ollama, "mistral"},
		{Ollama, "llama3.1:8b"},
		{Gemini, "gemini-2.0-flash"},
		{Gemini, "models/gemini-1.5-pro"},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.model, func(t *testing.T) {
			assert.NoError(t, ValidateModelProvider(tt.provider, tt.model))
		})
	}
}

func TestValidateModelProvider_Rejected(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		contains string
	}{
		{Gemini, "gpt-4o", "not a gemini model"},
		{HuggingFace, "mistral", "owner/name"},
		{Ollama, "gpt-4o", "openai"},
		{OpenAI, "gemini-2.0-flash", "gemini"},
		{Ollama, "gemini-pro", "gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.model, func(t *testing.T) {
			err := ValidateModelProvider(tt.provider, tt.model)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// ---------- IsProvider / IsGenerator ----------

func TestIsProvider(t *testing.T) {
	assert.True(t, IsProvider("openai"))
	assert.True(t, IsProvider("huggingface"))
	assert.True(t, IsProvider("ollama"))
	assert.True(t, IsProvider("gemini"))
	assert.False(t, IsProvider("claude"))
	assert.False(t, IsProvider(""))
}

func TestIsGenerator(t *testing.T) {
	assert.True(t, IsGenerator("dockerfile"))
	assert.True(t, IsGenerator("compose"))
	assert.True(t, IsGenerator("info"))
	assert.False(t, IsGenerator("status"))
}
