package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heatdot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	s, err := Defaults()
	require.NoError(t, err)

	assert.Equal(t, "assets/graph.dot", s.Paths.Graph)
	assert.Equal(t, "assets/dynamic.log", s.Paths.Log)
	assert.Equal(t, "assets/colored_graph.dot", s.Paths.Output)
	assert.Empty(t, s.Report.Summary)
	assert.Empty(t, s.Report.Metrics)
}

func TestLoad_Embedded(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	want, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, want, s)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
paths:
  log: traces/run1.log.zst
report:
  metrics: /var/lib/node_exporter/heatdot.prom
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "assets/graph.dot", s.Paths.Graph)
	assert.Equal(t, "traces/run1.log.zst", s.Paths.Log)
	assert.Equal(t, "assets/colored_graph.dot", s.Paths.Output)
	assert.Equal(t, "/var/lib/node_exporter/heatdot.prom", s.Report.Metrics)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "paths: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_OutputOverwritesInput(t *testing.T) {
	_, err := Load(writeConfig(t, `
paths:
  graph: g.dot
  output: g.dot
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Output")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		paths   PathSettings
		wantErr bool
	}{
		{"complete", PathSettings{Graph: "a.dot", Log: "a.log", Output: "b.dot"}, false},
		{"missing graph", PathSettings{Log: "a.log", Output: "b.dot"}, true},
		{"missing log", PathSettings{Graph: "a.dot", Output: "b.dot"}, true},
		{"missing output", PathSettings{Graph: "a.dot", Log: "a.log"}, true},
		{"output is log", PathSettings{Graph: "a.dot", Log: "a.log", Output: "a.log"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := (&Settings{Paths: tc.paths}).Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_OutputOverwritesInputUnderAnotherSpelling(t *testing.T) {
	_, err := Load(writeConfig(t, `
paths:
  log: ./traces/../assets/dynamic.log
  output: assets/dynamic.log
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Output")
}

func TestNormalize(t *testing.T) {
	s := &Settings{
		Paths:  PathSettings{Graph: "./assets/graph.dot", Log: "assets//dynamic.log", Output: "out/../colored.dot"},
		Report: ReportSettings{Metrics: "./heatdot.prom"},
	}
	s.Normalize()

	assert.Equal(t, "assets/graph.dot", s.Paths.Graph)
	assert.Equal(t, "assets/dynamic.log", s.Paths.Log)
	assert.Equal(t, "colored.dot", s.Paths.Output)
	assert.Equal(t, "heatdot.prom", s.Report.Metrics)
	assert.Empty(t, s.Report.Summary)
}
