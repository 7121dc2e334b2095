package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, sample{Name: "TCS", Count: 4}))

	assert.Equal(t, "{\n  \"name\": \"TCS\",\n  \"count\": 4\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteLine(&out, sample{Name: "a"}))
	require.NoError(t, WriteLine(&out, sample{Name: "b"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestMarshalError(t *testing.T) {
	var got Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("boom", map[string]any{"index": 3})), &got))
	assert.Equal(t, "boom", got.Message)
	assert.EqualValues(t, 3, got.Data["index"])
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x","count":2}`), 0o644))

	fr := &FileReader[sample]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "x", Count: 2}, got)
}

func TestFileReader_Stdin(t *testing.T) {
	fr := &FileReader[sample]{stdin: strings.NewReader(`{"name":"piped"}`)}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "piped", got.Name)
}

func TestFileReader_InvalidJSON(t *testing.T) {
	fr := &FileReader[sample]{stdin: strings.NewReader(`{`)}
	_, err := fr.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode JSON")
}

func TestFileReader_MissingFile(t *testing.T) {
	fr := &FileReader[sample]{fileFlagValue: filepath.Join(t.TempDir(), "missing.json")}
	_, err := fr.ReadBytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open file")
}
