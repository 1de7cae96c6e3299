package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSourceSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runSource(`gorun(1 + 2);`, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunSourceParseErrorExits65(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runSource(`let x = ;`, &out, &errOut)
	assert.Equal(t, 65, code)
	assert.Contains(t, errOut.String(), "ParseError")
}

func TestRunSourceLexErrorExits65(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runSource("let x = @;", &out, &errOut)
	assert.Equal(t, 65, code)
	assert.Contains(t, errOut.String(), "LexError")
}

func TestRunSourceRuntimeErrorExits70(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runSource(`gorun(1/0);`, &out, &errOut)
	assert.Equal(t, 70, code)
	assert.Contains(t, errOut.String(), "Division by zero")
}

func TestTokensSource(t *testing.T) {
	var out, errOut bytes.Buffer
	code := tokensSource(`let x = 1;`, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "let")
	assert.Contains(t, out.String(), "IDENTIFIER")
	assert.Empty(t, errOut.String())
}

func TestASTSource(t *testing.T) {
	var out, errOut bytes.Buffer
	code := astSource(`let x = 1;`, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "VarDecl(x)")
	assert.Contains(t, out.String(), "Literal(1)")
}

func TestReadSourceFileRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.txt")
	require.NoError(t, os.WriteFile(path, []byte(`gorun(1);`), 0o644))

	_, err := readSourceFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a .ks file")
}

func TestReadSourceFileAcceptsKsExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.ks")
	require.NoError(t, os.WriteFile(path, []byte(`gorun(1);`), 0o644))

	source, err := readSourceFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gorun(1);", source)
}
