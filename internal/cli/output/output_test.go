package output_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/cli/output"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	m.Run()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, output.FormatJSON, output.ParseFormat("json"))
	assert.Equal(t, output.FormatJSON, output.ParseFormat("JSON"))
	assert.Equal(t, output.FormatText, output.ParseFormat(""))
	assert.Equal(t, output.FormatText, output.ParseFormat("yaml"))
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	out := output.New(&buf)
	out.Field("Name", "db-creds")
	out.FieldIf("Description", "")
	out.FieldIf("KmsKeyId", "alias/app")
	out.Separator()
	out.Value("line1\n\nline2")

	assert.Equal(t, "Name: db-creds\nKmsKeyId: alias/app\n\n  line1\n\n  line2\n", buf.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, output.JSON(&buf, map[string]string{"name": "db-creds"}))
	assert.Equal(t, "{\n  \"name\": \"db-creds\"\n}\n", buf.String())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	output.Warning(&buf, "comparing %s with itself", "v1")
	output.Hint(&buf, "use %s", "db-creds~")
	output.Error(&buf, "boom")
	output.Success(&buf, "Created secret %s", "db-creds")

	assert.Equal(t,
		"Warning: comparing v1 with itself\nHint: use db-creds~\nError: boom\n✓ Created secret db-creds\n",
		buf.String())
}

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("equal", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, output.Diff("a", "b", "same\n", "same\n"))
	})

	t.Run("changed", func(t *testing.T) {
		t.Parallel()

		diff := output.Diff("db-creds#v1", "db-creds#v2", "user=a\npass=x\n", "user=a\npass=y\n")
		assert.Contains(t, diff, "--- db-creds#v1")
		assert.Contains(t, diff, "+++ db-creds#v2")
		assert.Contains(t, diff, "-pass=x")
		assert.Contains(t, diff, "+pass=y")
		assert.Contains(t, diff, " user=a")
	})

	t.Run("raw matches colorless", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			output.DiffRaw("a", "b", "1\n", "2\n"),
			output.Diff("a", "b", "1\n", "2\n"))
	})
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "> a\n\n> b", output.Indent("a\n\nb", "> "))
	assert.Empty(t, output.Indent("", "> "))
}

func TestStages(t *testing.T) {
	t.Parallel()

	assert.Empty(t, output.Stages(nil))
	assert.Equal(t, "[AWSCURRENT custom]", output.Stages([]string{"AWSCURRENT", "custom"}))
}
