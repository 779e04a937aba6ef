package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/quorumhq/quorum/internal/adapters/driven/config/file"
)

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "quorum version")
}

func TestBuildEmbeddingUnknownProvider(t *testing.T) {
	_, err := buildEmbedding(configfile.ProviderConfig{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestBuildLLMUnknownProvider(t *testing.T) {
	_, err := buildLLM(configfile.ProviderConfig{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestBuildEmbeddingDefaultsToOllama(t *testing.T) {
	svc, err := buildEmbedding(configfile.ProviderConfig{})
	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, "nomic-embed-text", svc.ModelName())
}

func TestBuildLLMOpenAIRequiresKey(t *testing.T) {
	_, err := buildLLM(configfile.ProviderConfig{Provider: "openai"})
	assert.Error(t, err)
}
