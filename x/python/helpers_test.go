package python_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/parser"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
	_ "github.com/CodMac/go-treesitter-uml-generator/x/python"
	"github.com/stretchr/testify/require"
)

func getTestFilePath(name string) string {
	return filepath.Join("testdata", name)
}

func parseFixture(t *testing.T, name string) *syntax.Module {
	t.Helper()

	p, err := parser.NewParser(model.LangPython)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	mod, err := p.ParseFile(context.Background(), getTestFilePath(name))
	require.NoError(t, err)
	require.NotNil(t, mod)
	return mod
}

func parseSource(t *testing.T, src string) *syntax.Module {
	t.Helper()

	p, err := parser.NewParser(model.LangPython)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	mod, err := p.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return mod
}
