package python_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/x/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonExtractor_Dog(t *testing.T) {
	sequences := python.NewPythonExtractor().ExtractInteractions(parseFixture(t, "dog.py"))

	expected := []model.MethodInteractionModel{
		{Method: "main", Interactions: []model.Interaction{
			{Caller: "buddy", Callee: "eat"},
			{Caller: "buddy", Callee: "bark"},
		}},
	}
	assert.Equal(t, expected, sequences)
}

func TestPythonExtractor_StatementShapes(t *testing.T) {
	sequences := python.NewPythonExtractor().ExtractInteractions(parseFixture(t, "edge_cases.py"))

	require.Len(t, sequences, 1)
	assert.Equal(t, "run", sequences[0].Method)
	assert.Equal(t, []model.Interaction{
		{Caller: "service", Callee: "start"},
		{Caller: "other", Callee: "call"},
	}, sequences[0].Interactions)
}

func TestPythonExtractor_AssignmentBetweenCalls(t *testing.T) {
	src := "def f():\n    obj.method(1)\n    x = 5\n    other.call()\n"
	sequences := python.NewPythonExtractor().ExtractInteractions(parseSource(t, src))

	require.Len(t, sequences, 1)
	assert.Equal(t, []model.Interaction{
		{Caller: "obj", Callee: "method"},
		{Caller: "other", Callee: "call"},
	}, sequences[0].Interactions)
}

func TestPythonExtractor_MethodsAndNestedFunctions(t *testing.T) {
	src := `
class Svc:
    def go(self):
        self.ping()

    async def fetch(self):
        db.get()

def outer():
    def inner():
        db.commit()
    api.open()
`
	sequences := python.NewPythonExtractor().ExtractInteractions(parseSource(t, src))

	var methods []string
	for _, s := range sequences {
		methods = append(methods, s.Method)
	}
	assert.Equal(t, []string{"outer", "go", "inner"}, methods)
	assert.Equal(t, []model.Interaction{{Caller: "self", Callee: "ping"}}, sequences[1].Interactions)
}

func TestPythonExtractor_AsyncFunctionsSkipped(t *testing.T) {
	src := `
async def handler():
    db.get()

    def callback():
        bus.emit()
`
	sequences := python.NewPythonExtractor().ExtractInteractions(parseSource(t, src))

	// 只有 async 函数内部的普通函数被提取
	require.Len(t, sequences, 1)
	assert.Equal(t, "callback", sequences[0].Method)
	assert.Equal(t, []model.Interaction{{Caller: "bus", Callee: "emit"}}, sequences[0].Interactions)
}

func TestPythonExtractor_ParenthesizedReceiver(t *testing.T) {
	src := "def f():\n    (obj).m()\n    (obj.n)()\n    (a.b())\n"
	sequences := python.NewPythonExtractor().ExtractInteractions(parseSource(t, src))

	require.Len(t, sequences, 1)
	assert.Equal(t, []model.Interaction{
		{Caller: "obj", Callee: "m"},
		{Caller: "obj", Callee: "n"},
		{Caller: "a", Callee: "b"},
	}, sequences[0].Interactions)
}

func TestPythonExtractor_NoQualifyingCalls(t *testing.T) {
	sequences := python.NewPythonExtractor().ExtractInteractions(parseFixture(t, "parking.py"))
	assert.NotNil(t, sequences)
	assert.Empty(t, sequences)
}

func TestPythonExtractor_EmptySource(t *testing.T) {
	sequences := python.NewPythonExtractor().ExtractInteractions(parseFixture(t, "empty.py"))
	assert.Empty(t, sequences)
}
