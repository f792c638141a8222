package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteCommand_RunE(t *testing.T) {
	t.Run("fallback when the service fails", func(t *testing.T) {
		setupConfigFile(t)

		var out bytes.Buffer
		cmd := newQuoteCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "\"Words are a lens to focus one's mind.\" - Ayn Rand\n", out.String())
	})

	t.Run("quote from the service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content":"Stay hungry.","author":"Stewart Brand"}`))
		}))
		t.Cleanup(server.Close)

		cfgPath := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("quote:\n  base_url: %s\n", server.URL)), 0644))
		setConfigFile(t, cfgPath)

		var out bytes.Buffer
		cmd := newQuoteCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "\"Stay hungry.\" - Stewart Brand\n", out.String())
	})

	t.Run("config error", func(t *testing.T) {
		setConfigFile(t, setupBrokenConfigFile(t))

		cmd := newQuoteCommand()
		cmd.SetArgs([]string{})
		err := cmd.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})
}
