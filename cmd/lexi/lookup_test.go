package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexi/internal/testutil"
)

func TestNewLookupCommand(t *testing.T) {
	cmd := newLookupCommand()

	assert.Equal(t, "lookup <word>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("pdf"))
	markdownFlag := cmd.Flags().Lookup("markdown")
	require.NotNil(t, markdownFlag)
	assert.Equal(t, "false", markdownFlag.DefValue)
}

func TestNewLookupCommand_RunE(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantOutput   []string
		wantHistory  []string
		wantNoLists  bool
		wantNotShown string
	}{
		{
			name: "found word is shown and recorded",
			args: []string{"Hello"},
			wantOutput: []string{
				`Looking up "Hello"...`,
				"hello  ☆\n/həˈloʊ/\n\nnoun\n  1. A greeting.\n     Example: \"She gave a cheerful hello.\"\n  2. An utterance of hello.\n",
			},
			wantHistory: []string{"hello"},
		},
		{
			name:        "unknown word shows the error panel",
			args:        []string{"xyzzyqq"},
			wantOutput:  []string{"Oops!\nWord not found. Please try another word.\n"},
			wantNoLists: true,
		},
		{
			name: "markdown output",
			args: []string{"hello", "--markdown"},
			wantOutput: []string{
				"# hello ☆\n",
				"## noun\n",
			},
			wantHistory:  []string{"hello"},
			wantNotShown: "Looking up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageDir := setupConfigFile(t)

			var out bytes.Buffer
			cmd := newLookupCommand()
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			if tt.wantNotShown != "" {
				assert.NotContains(t, out.String(), tt.wantNotShown)
			}
			if tt.wantNoLists {
				assert.NoDirExists(t, storageDir)
				return
			}
			assert.Equal(t, tt.wantHistory, testutil.ReadWordList(t, storageDir, "dictionaryHistory"))
		})
	}
}

func TestNewLookupCommand_RunE_pdf(t *testing.T) {
	setupConfigFile(t)
	pdfPath := filepath.Join(t.TempDir(), "xyzzyqq.pdf")

	var out bytes.Buffer
	cmd := newLookupCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"xyzzyqq", "--pdf", pdfPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "PDF written to "+pdfPath)
	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestNewLookupCommand_RunE_argsError(t *testing.T) {
	cmd := newLookupCommand()
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestNewLookupCommand_RunE_configError(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newLookupCommand()
	cmd.SetArgs([]string{"hello"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
