package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/components/iserver"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/ijson"
	"github.com/cute-angelia/go-xrand/syntax/isource"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIntCmd(t *testing.T) {
	out, err := run(t, "int", "7", "7")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, err = run(t, "-o", "json", "int", "1", "6")
	require.NoError(t, err)
	var v iserver.IntResponse
	require.NoError(t, ijson.Decode([]byte(out), &v))
	assert.GreaterOrEqual(t, v.Value, 1)
	assert.LessOrEqual(t, v.Value, 6)

	_, err = run(t, "int", "6", "1")
	assert.ErrorIs(t, err, irandom.ErrInvalidRange)

	out, err = run(t, "int", "010", "010")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	_, err = run(t, "int", "x", "1")
	assert.Error(t, err)
	_, err = run(t, "int", "0x10", "20")
	assert.Error(t, err)
}

func TestStringCmdSeeded(t *testing.T) {
	args := []string{"--seed", "fixture", "string", "-n", "20", "-a", "num", "-a", "abc_upper"}
	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	s := strings.TrimSpace(first)
	assert.Regexp(t, `^[0-9A-Z]{20}$`, s)
	assert.Regexp(t, `[0-9]`, s)
	assert.Regexp(t, `[A-Z]`, s)
}

func TestUniqueCmd(t *testing.T) {
	out, err := run(t, "unique", "--count", "3", "-n", "1", "-a", "xyz", "--exclude", "q")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y", "z"}, strings.Fields(out))

	_, err = run(t, "unique", "--count", "4", "-n", "1", "-a", "xyz")
	assert.ErrorIs(t, err, irandom.ErrExhausted)
}

func TestMintCmdInvalidNamespace(t *testing.T) {
	_, err := run(t, "mint", "bad ns", "-n", "4")
	assert.ErrorIs(t, err, iregistry.ErrNamespace)
}

func TestLettersCmd(t *testing.T) {
	out, err := run(t, "letters")
	require.NoError(t, err)
	assert.Contains(t, out, "hex\t0123456789abcdef\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(irandom.Letters()))
}

func TestUnknownOutput(t *testing.T) {
	_, err := run(t, "-o", "xml", "int", "1", "2")
	assert.Error(t, err)
}

func TestRemoteMode(t *testing.T) {
	reg := iregistry.New(iregistry.NewMemoryStore(0))
	srv := iserver.New(reg, func() isource.Source { return isource.Crypto() },
		iserver.WithCacheTTL(0), iserver.WithRequestLog(false))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	out, err := run(t, "--server", ts.URL, "mint", "remote", "--count", "2", "-n", "5", "-a", "hex")
	require.NoError(t, err)
	minted := strings.Fields(out)
	require.Len(t, minted, 2)
	for _, v := range minted {
		assert.Regexp(t, `^[0-9a-f]{5}$`, v)
	}

	out, err = run(t, "--server", ts.URL, "-o", "json", "count", "remote")
	require.NoError(t, err)
	assert.JSONEq(t, `{"namespace":"remote","count":2}`, out)

	_, err = run(t, "--server", ts.URL, "int", "5", "2")
	assert.ErrorIs(t, err, irandom.ErrInvalidRange)
}

func TestUUIDCmdSeeded(t *testing.T) {
	out, err := run(t, "--seed", "s1", "uuid", "--count", "3")
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, id)
	}

	again, err := run(t, "--seed", "s1", "uuid", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestOrderIDCmd(t *testing.T) {
	out, err := run(t, "orderid", "--count", "5")
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.Len(t, ids, 5)
	for _, id := range ids {
		assert.Regexp(t, `^[0-9]{20}$`, id)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "-o", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"go_version"`)
}
