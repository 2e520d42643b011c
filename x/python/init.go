package python

import (
	"github.com/CodMac/go-treesitter-uml-generator/collector"
	"github.com/CodMac/go-treesitter-uml-generator/extractor"
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

func init() {
	// 注册 Tree-sitter Python 语言对象
	parser.RegisterLanguage(model.LangPython, sitter.NewLanguage(tree_sitter_python.Language()))
	// 注册语法树转换
	parser.RegisterLowerer(model.LangPython, Lower)
	// 注册 Collector
	collector.RegisterCollector(model.LangPython, NewPythonCollector())
	// 注册 Extractor
	extractor.RegisterExtractor(model.LangPython, func() extractor.Extractor { return NewPythonExtractor() })
}
