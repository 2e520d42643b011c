package processor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-uml-generator/logging"
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/processor"
	_ "github.com/CodMac/go-treesitter-uml-generator/x/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("..", "x", "python", "testdata", name)
}

func newPipeline() *processor.Pipeline {
	return processor.NewPipeline(model.LangPython, logging.Discard())
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestPipeline_Both(t *testing.T) {
	dir := t.TempDir()
	classOut := filepath.Join(dir, "class_diagram.txt")

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   fixture("dog.py"),
		ClassOut: classOut,
		Diagrams: processor.BothDiagrams,
	})
	require.NoError(t, res.Err)
	require.Len(t, res.Outcomes, 2)

	assert.Equal(t, processor.ClassDiagram, res.Outcomes[0].Diagram)
	assert.Equal(t, classOut, res.Outcomes[0].Path)
	assert.True(t, res.Outcomes[0].Written())

	seqOut := filepath.Join(dir, "class_diagram_sequence.txt")
	assert.Equal(t, processor.SequenceDiagram, res.Outcomes[1].Diagram)
	assert.Equal(t, seqOut, res.Outcomes[1].Path)
	assert.True(t, res.Outcomes[1].Written())

	classText, err := os.ReadFile(classOut)
	require.NoError(t, err)
	assert.Equal(t, "@startuml\nclass Dog {\n  - breed\n  + __init__()\n  + eat()\n  + bark()\n}\n@enduml\n", string(classText))

	seqText, err := os.ReadFile(seqOut)
	require.NoError(t, err)
	assert.Equal(t, "@startuml\nactivate main\nbuddy -> eat: call\nbuddy -> bark: call\ndeactivate main\n@enduml\n", string(seqText))
}

func TestPipeline_ClassOnlyWritesOneFile(t *testing.T) {
	dir := t.TempDir()
	classOut := filepath.Join(dir, "out.txt")

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   fixture("dog.py"),
		ClassOut: classOut,
		Diagrams: processor.ClassDiagram,
	})
	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Written())

	_, err := os.Stat(filepath.Join(dir, "out_sequence.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestPipeline_EmptyModelSkipsEmission(t *testing.T) {
	dir := t.TempDir()
	classOut := filepath.Join(dir, "class_diagram.txt")

	// parking.py 有类但没有任何 a.b() 形式的语句
	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   fixture("parking.py"),
		ClassOut: classOut,
		Diagrams: processor.BothDiagrams,
	})
	require.NoError(t, res.Err)
	require.Len(t, res.Outcomes, 2)

	assert.True(t, res.Outcomes[0].Written())
	assert.ErrorIs(t, res.Outcomes[1].Err, model.ErrEmptyModel)
	assert.Empty(t, res.Sequences)

	_, err := os.Stat(filepath.Join(dir, "class_diagram_sequence.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestPipeline_EmptySourceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "empty.py", "")
	classOut := filepath.Join(dir, "class_diagram.txt")

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   src,
		ClassOut: classOut,
		Diagrams: processor.BothDiagrams,
	})
	require.NoError(t, res.Err)
	for _, o := range res.Outcomes {
		assert.ErrorIs(t, o.Err, model.ErrEmptyModel)
	}
	_, err := os.Stat(classOut)
	assert.True(t, os.IsNotExist(err))
}

func TestPipeline_MissingInput(t *testing.T) {
	dir := t.TempDir()

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   filepath.Join(dir, "missing.py"),
		ClassOut: filepath.Join(dir, "class_diagram.txt"),
		Diagrams: processor.BothDiagrams,
	})
	assert.ErrorIs(t, res.Err, model.ErrInputNotFound)
	assert.Empty(t, res.Classes)
	assert.Empty(t, res.Sequences)
	for _, o := range res.Outcomes {
		assert.False(t, o.Written())
		assert.ErrorIs(t, o.Err, model.ErrInputNotFound)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipeline_ParseFailure(t *testing.T) {
	dir := t.TempDir()

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   fixture("syntax_error.py"),
		ClassOut: filepath.Join(dir, "class_diagram.txt"),
		Diagrams: processor.ClassDiagram,
	})
	assert.ErrorIs(t, res.Err, model.ErrParseFailure)
	require.Len(t, res.Outcomes, 1)
	assert.False(t, res.Outcomes[0].Written())
}

func TestPipeline_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// 输出目录不存在，写入失败但类模型仍然返回
	classOut := filepath.Join(dir, "no", "such", "dir", "class_diagram.txt")

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:   fixture("dog.py"),
		ClassOut: classOut,
		Diagrams: processor.ClassDiagram,
	})
	require.NoError(t, res.Err)
	require.Len(t, res.Classes, 1)
	require.Len(t, res.Outcomes, 1)
	assert.ErrorIs(t, res.Outcomes[0].Err, model.ErrOutputWrite)
}

func TestPipeline_ExplicitSequencePath(t *testing.T) {
	dir := t.TempDir()
	seqOut := filepath.Join(dir, "seq.puml")

	res := newPipeline().Run(context.Background(), processor.Request{
		Source:      fixture("dog.py"),
		ClassOut:    filepath.Join(dir, "class.txt"),
		SequenceOut: seqOut,
		Diagrams:    processor.SequenceDiagram,
	})
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, seqOut, res.Outcomes[0].Path)
	assert.FileExists(t, seqOut)
}

func TestPipeline_Extract(t *testing.T) {
	classes, sequences, err := newPipeline().Extract(context.Background(), fixture("dog.py"))
	require.NoError(t, err)

	require.Len(t, classes, 1)
	assert.Equal(t, "Dog", classes[0].Name)
	require.Len(t, sequences, 1)
	assert.Equal(t, "main", sequences[0].Method)
}

func TestDiagram_String(t *testing.T) {
	assert.Equal(t, "class", processor.ClassDiagram.String())
	assert.Equal(t, "sequence", processor.SequenceDiagram.String())
	assert.Equal(t, "both", processor.BothDiagrams.String())
	assert.Equal(t, "Diagram(8)", processor.Diagram(8).String())
}
