package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedServer serves the pipeline fixtures as the two TfL feeds.
func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for route, file := range map[string]string{
		"/stations-facilities.xml":  "stations-facilities.xml",
		"/step-free-tube-guide.xml": "step-free-tube-guide.xml",
	} {
		data, err := os.ReadFile(filepath.Join("..", "..", "pipeline", "testdata", file))
		require.NoError(t, err)
		mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write(data)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, dir, serverURL string) string {
	t.Helper()
	content := fmt.Sprintf(`feeds:
  facilities:
    url: %[1]s/stations-facilities.xml
  step_free:
    url: %[1]s/step-free-tube-guide.xml
output:
  xml: %[2]s
  rdf: %[3]s
log_level: error
`, serverURL, filepath.Join(dir, "final.xml"), filepath.Join(dir, "final.rdf"))
	path := filepath.Join(dir, "stationgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stationgraph version "+Version)
}

func TestRootCommand_FullRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, feedServer(t).URL)
	metrics := filepath.Join(dir, "run.prom")

	out, err := execute(t, "--config", cfgPath, "--metrics-file", metrics)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Generated files:",
		"- " + filepath.Join(dir, "final.xml"),
		"- " + filepath.Join(dir, "StationFacilitiesNOH.xml"),
		"- " + filepath.Join(dir, "StepFreeTubeNNone.xml"),
		"- " + filepath.Join(dir, "final.rdf"),
		"- " + metrics,
	}, "\n") + "\n"
	assert.Equal(t, want, out)

	rdf, err := os.ReadFile(filepath.Join(dir, "final.rdf"))
	require.NoError(t, err)
	assert.Contains(t, string(rdf), "rdf:RDF")
	assert.Contains(t, string(rdf), `rdf:about="http://tfl.gov.uk/tfl#Oxford_Circus"`)
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, feedServer(t).URL)
	turtle := filepath.Join(dir, "stations.ttl")

	out, err := execute(t, "--config", cfgPath, "--no-store-partial-files", "--rdf-format", "turtle", "--out-rdf", turtle)
	require.NoError(t, err)
	assert.NotContains(t, out, "StationFacilitiesNOH.xml")
	assert.Contains(t, out, "- "+turtle)

	data, err := os.ReadFile(turtle)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@prefix tfl:")
}

func TestStageCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, feedServer(t).URL)

	out, err := execute(t, "xml", "--config", cfgPath, "--out-xml", filepath.Join(dir, "merged.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "- "+filepath.Join(dir, "merged.xml"))
	assert.NotContains(t, out, "final.rdf")

	// The rdf stage reads the merged file, so the feeds can be unreachable.
	offline := writeConfig(t, t.TempDir(), "http://127.0.0.1:1")
	graph := filepath.Join(dir, "graph.nt")
	out, err = execute(t, "rdf", "--config", offline, "--in-xml", filepath.Join(dir, "merged.xml"), "--out-rdf", graph, "--rdf-format", "ntriples")
	require.NoError(t, err)
	assert.Equal(t, "Generated files:\n- "+graph+"\n", out)
	assert.FileExists(t, graph)
}

func TestRootCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, feedServer(t).URL)

	t.Run("unknown rdf format", func(t *testing.T) {
		_, err := execute(t, "--config", cfgPath, "--rdf-format", "jsonld")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rdf_format")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("unreachable feed", func(t *testing.T) {
		offline := writeConfig(t, t.TempDir(), "http://127.0.0.1:1")
		_, err := execute(t, "--config", offline)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch facilities feed")
	})
}
