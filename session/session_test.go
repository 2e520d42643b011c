package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodMac/go-treesitter-uml-generator/logging"
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/CodMac/go-treesitter-uml-generator/session"
	_ "github.com/CodMac/go-treesitter-uml-generator/x/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner 记录收到的请求，不做任何处理
type recordingRunner struct {
	requests []processor.Request
}

func (r *recordingRunner) Run(_ context.Context, req processor.Request) processor.Result {
	r.requests = append(r.requests, req)
	return processor.Result{Source: req.Source}
}

func diagramsOf(reqs []processor.Request) []processor.Diagram {
	var out []processor.Diagram
	for _, r := range reqs {
		out = append(out, r.Diagrams)
	}
	return out
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  session.Command
	}{
		{"1", session.CmdClass},
		{"2", session.CmdSequence},
		{"3", session.CmdBoth},
		{"4", session.CmdExit},
		{" class ", session.CmdClass},
		{"Sequence", session.CmdSequence},
		{"both", session.CmdBoth},
		{"EXIT", session.CmdExit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := session.ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "0", "5", "classes", "1 2"} {
		_, err := session.ParseCommand(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCommand_Diagrams(t *testing.T) {
	assert.Equal(t, processor.ClassDiagram, session.CmdClass.Diagrams())
	assert.Equal(t, processor.SequenceDiagram, session.CmdSequence.Diagrams())
	assert.Equal(t, processor.BothDiagrams, session.CmdBoth.Diagrams())
	assert.Equal(t, processor.Diagram(0), session.CmdExit.Diagrams())
	assert.Equal(t, "both", session.CmdBoth.String())
}

func TestSession_DispatchesUntilExit(t *testing.T) {
	runner := &recordingRunner{}
	s := session.New(runner, "dog.py", "class_diagram.txt", logging.Discard())

	results, err := s.Run(context.Background(), session.NewSliceSource("1", "2", "3", "4", "1"))
	require.NoError(t, err)

	assert.Len(t, results, 3)
	assert.Equal(t, []processor.Diagram{
		processor.ClassDiagram,
		processor.SequenceDiagram,
		processor.BothDiagrams,
	}, diagramsOf(runner.requests))
	assert.Equal(t, session.Exiting, s.State())

	for _, req := range runner.requests {
		assert.Equal(t, "dog.py", req.Source)
		assert.Equal(t, "class_diagram.txt", req.ClassOut)
	}
}

func TestSession_InvalidChoicesIgnored(t *testing.T) {
	runner := &recordingRunner{}
	s := session.New(runner, "dog.py", "out.txt", logging.Discard())

	results, err := s.Run(context.Background(), session.NewSliceSource("9", "", "hello", "2"))
	require.NoError(t, err)

	assert.Len(t, results, 1)
	assert.Equal(t, []processor.Diagram{processor.SequenceDiagram}, diagramsOf(runner.requests))
	// 输入耗尽也会进入 exiting
	assert.Equal(t, session.Exiting, s.State())
}

func TestSession_ImmediateExit(t *testing.T) {
	runner := &recordingRunner{}
	s := session.New(runner, "dog.py", "out.txt", logging.Discard())

	results, err := s.Run(context.Background(), session.NewSliceSource("exit"))
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, runner.requests)
}

func TestSession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := session.New(&recordingRunner{}, "dog.py", "out.txt", logging.Discard())
	_, err := s.Run(ctx, session.NewSliceSource("1"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReaderSource_PrintsMenu(t *testing.T) {
	var prompt bytes.Buffer
	src := session.NewReaderSource(strings.NewReader("3\n"), &prompt)

	line, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3", line)
	assert.Contains(t, prompt.String(), "--- UML Diagram Generator ---")
	assert.Contains(t, prompt.String(), "4. Exit")
	assert.True(t, strings.HasSuffix(prompt.String(), "Enter your choice: "))

	_, err = src.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestSession_WithPipeline(t *testing.T) {
	dir := t.TempDir()
	classOut := filepath.Join(dir, "class_diagram.txt")
	source := filepath.Join("..", "x", "python", "testdata", "dog.py")

	pipeline := processor.NewPipeline(model.LangPython, logging.Discard())
	s := session.New(pipeline, source, classOut, logging.Discard())

	results, err := s.Run(context.Background(), session.NewReaderSource(strings.NewReader("2\n4\n"), nil))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.NoFileExists(t, classOut)
	data, err := os.ReadFile(filepath.Join(dir, "class_diagram_sequence.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "buddy -> eat: call")
}
