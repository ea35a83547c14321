package usecase

import (
	"bytes"
	"testing"

	"github.com/3-lines-studio/sitegen/internal/adapters/cli"
)

const exampleSite = `{
  "projectName": "demo",
  "components": [{ "name": "Hero Banner", "preset": "hero" }],
  "pages": [
    { "route": "", "title": "Welcome", "sections": [{ "component": "Hero Banner", "props": { "headline": "Hi" } }] }
  ]
}`

type testOutput struct {
	*cli.Output
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestOutput(t *testing.T) testOutput {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return testOutput{
		Output: cli.NewOutputTo(&stdout, &stderr),
		stdout: &stdout,
		stderr: &stderr,
	}
}
