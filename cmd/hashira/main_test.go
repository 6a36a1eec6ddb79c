package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vinayak2k03/Hashira/pkg/secret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineDocument = `{
	"keys": {"n": 3, "k": 2},
	"1": {"base": "10", "value": "4"},
	"2": {"base": "10", "value": "7"},
	"3": {"base": "10", "value": "12"}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Recover(t *testing.T) {
	path := writeFile(t, t.TempDir(), "line.json", lineDocument)

	var out, errOut bytes.Buffer
	code := run([]string{path}, &out, &errOut)
	require.Equalf(t, 0, code, "stderr: %s", errOut.String())
	assert.Equal(t, "1\n", out.String())

	out.Reset()
	code = run([]string{"recover", path}, &out, &errOut)
	require.Equal(t, 0, code)
	assert.Equal(t, "1\n", out.String())
}

func TestRun_RecoverSeveral(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", lineDocument)
	b := writeFile(t, dir, "b.json", `{"keys":{"k":1},"1":{"base":"16","value":"ff"}}`)

	var out, errOut bytes.Buffer
	code := run([]string{"-workers", "2", a, b}, &out, &errOut)
	require.Equalf(t, 0, code, "stderr: %s", errOut.String())
	assert.Equal(t, a+": 1\n"+b+": 255\n", out.String())
}

func TestRun_RecoverJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "line.json", lineDocument)

	var out, errOut bytes.Buffer
	code := run([]string{"-format", "json", path}, &out, &errOut)
	require.Equal(t, 0, code)

	var r jsonResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "1", r.Secret)
	assert.Equal(t, 2, r.Threshold)
	assert.Equal(t, path, r.File)
	assert.Len(t, r.Digest, 64)
}

func TestRun_RecoverCBOR(t *testing.T) {
	path := writeFile(t, t.TempDir(), "line.json", lineDocument)

	var out, errOut bytes.Buffer
	code := run([]string{"-format", "cbor", path}, &out, &errOut)
	require.Equal(t, 0, code)

	data, err := hex.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	var r secret.Result
	require.NoError(t, r.UnmarshalBinary(data))
	assert.Equal(t, "1", r.String())
}

func TestRun_RecoverFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", lineDocument)
	bad := writeFile(t, dir, "bad.json", `{"keys":{"k":1},"1":{"base":"10","value":"4a"}}`)

	var out, errOut bytes.Buffer
	code := run([]string{good, bad, filepath.Join(dir, "missing.json")}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Equal(t, good+": 1\n", out.String())
	assert.Contains(t, errOut.String(), "bad.json")
	assert.Contains(t, errOut.String(), "missing.json")
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run([]string{"-format", "xml", "x.json"}, &out, &errOut))
	assert.Equal(t, 0, run([]string{"help"}, &out, &errOut))
	assert.Contains(t, out.String(), "Usage:")
	assert.Equal(t, 2, run([]string{"split", "-k", "2"}, &out, &errOut))
}

func TestRun_SplitThenRecover(t *testing.T) {
	const s = "31415926535897932384626433832795028841971"

	var out, errOut bytes.Buffer
	code := run([]string{"split", "-secret", s, "-k", "4", "-n", "6", "-base", "7", "-bits", "64"}, &out, &errOut)
	require.Equalf(t, 0, code, "stderr: %s", errOut.String())

	path := writeFile(t, t.TempDir(), "dealt.json", out.String())
	out.Reset()
	code = run([]string{path}, &out, &errOut)
	require.Equalf(t, 0, code, "stderr: %s", errOut.String())
	assert.Equal(t, s+"\n", out.String())
}
