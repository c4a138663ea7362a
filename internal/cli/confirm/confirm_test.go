package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/cli/confirm"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	m.Run()
}

func TestPrompter_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		skip    bool
		want    bool
		wantErr bool
	}{
		{name: "skip", skip: true, want: true},
		{name: "y", input: "y\n", want: true},
		{name: "yes in capitals", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "blank answer", input: "\n", want: false},
		{name: "answer without newline", input: "y", want: true},
		{name: "closed input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer

			p := &confirm.Prompter{Stdin: strings.NewReader(tt.input), Stderr: &stderr}

			got, err := p.Confirm("Rotate db-creds?", tt.skip)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.skip {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), "? Rotate db-creds? [y/N]: ")
			}
		})
	}
}

func TestPrompter_Target(t *testing.T) {
	t.Parallel()

	t.Run("with identity", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer

		p := &confirm.Prompter{
			Stdin:     strings.NewReader("y\n"),
			Stderr:    &stderr,
			AccountID: "123456789012",
			Region:    "ap-northeast-1",
			Profile:   "prod",
		}

		ok, err := p.ConfirmDelete("db-creds", false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, stderr.String(), "Target: 123456789012 / ap-northeast-1 (prod)")
		assert.Contains(t, stderr.String(), "! This will delete: db-creds")
	})

	t.Run("without identity", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer

		p := &confirm.Prompter{Stdin: strings.NewReader("n\n"), Stderr: &stderr}

		ok, err := p.ConfirmDelete("db-creds", false)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NotContains(t, stderr.String(), "Target:")
	})
}
