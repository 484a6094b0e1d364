package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "0123456789abcdef",
			expected: "0123...cdef",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDescribeKey(t *testing.T) {
	assert.Equal(t, "(not set)", describeKey(""))
	assert.Equal(t, "abcd...wxyz", describeKey("abcdefghijklmnopqrstuvwxyz"))
}

func withStdin(t *testing.T, input string) {
	t.Helper()
	orig := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = orig })
}

func TestReadPassword_FallsBackToLine(t *testing.T) {
	withStdin(t, "  secret-key  \nignored\n")

	assert.Equal(t, "secret-key", readPassword())
}

func TestSettingsShow(t *testing.T) {
	mock := newMockSettingsService()
	mock.settings.Weather.APIKey = "weather-key-123456"
	withServices(t, nil, nil, mock)

	out, err := executeCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "File: /tmp/wxnews/config.toml")
	assert.Contains(t, out, "[Weather]")
	assert.Contains(t, out, "API Key: weat...3456")
	assert.Contains(t, out, "[News]")
	assert.Contains(t, out, "Country: us")
	assert.Contains(t, out, "API Key: (not set)")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "Timeout: 10s")
	assert.Contains(t, out, "wxnews settings set-key news")
	assert.NotContains(t, out, "weather-key-123456")
}

func TestSettingsShow_IsDefault(t *testing.T) {
	withServices(t, nil, nil, newMockSettingsService())

	out, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsShow_GetError(t *testing.T) {
	mock := newMockSettingsService()
	mock.getErr = errors.New("disk on fire")
	withServices(t, nil, nil, mock)

	_, err := executeCommand(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get settings")
}

func TestSettingsShow_NotConfigured(t *testing.T) {
	withServices(t, nil, nil, nil)

	_, err := executeCommand(t, "settings", "show")

	assert.EqualError(t, err, "settings service not configured")
}

func TestSettingsSetKey(t *testing.T) {
	mock := newMockSettingsService()
	withServices(t, nil, nil, mock)
	withStdin(t, "news-key-abcdef123\n")

	out, err := executeCommand(t, "settings", "set-key", "news")

	require.NoError(t, err)
	assert.Equal(t, "news-key-abcdef123", mock.apiKeys[domain.FetchSourceNews])
	assert.Contains(t, out, "news API key saved (news...f123)")
}

func TestSettingsSetKey_UnknownProvider(t *testing.T) {
	withServices(t, nil, nil, newMockSettingsService())
	withStdin(t, "key\n")

	_, err := executeCommand(t, "settings", "set-key", "sports")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestSettingsSetKey_EmptyInput(t *testing.T) {
	mock := newMockSettingsService()
	withServices(t, nil, nil, mock)
	withStdin(t, "\n")

	_, err := executeCommand(t, "settings", "set-key", "weather")

	assert.EqualError(t, err, "API key is required")
	assert.Empty(t, mock.apiKeys)
}

func TestSettingsSet(t *testing.T) {
	mock := newMockSettingsService()
	withServices(t, nil, nil, mock)

	out, err := executeCommand(t, "settings", "set", "news.country", "gb")

	require.NoError(t, err)
	assert.Equal(t, "gb", mock.setValues["news.country"])
	assert.Contains(t, out, "news.country updated")
}

func TestSettingsSet_ServiceError(t *testing.T) {
	mock := newMockSettingsService()
	mock.setErr = domain.ErrInvalidInput
	withServices(t, nil, nil, mock)

	_, err := executeCommand(t, "settings", "set", "news.country", "usa")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	withServices(t, nil, nil, newMockSettingsService())

	_, err := executeCommand(t, "settings", "set", "news.country")

	assert.Error(t, err)
}
