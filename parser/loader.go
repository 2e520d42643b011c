package parser

import (
	"fmt"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Lowerer 把 Tree-sitter 的具体语法树转换为 syntax 包中的节点集合。
// 语法树虽无错误节点、但目标语言不接受的构造应返回 model.ErrParseFailure。
type Lowerer func(root *sitter.Node, source []byte) (*syntax.Module, error)

// langMap 存储语言标识到 Tree-sitter 语言对象的映射
var langMap = make(map[model.Language]*sitter.Language)

var lowererMap = make(map[model.Language]Lowerer)

// RegisterLanguage 用于注册 Tree-sitter 语言库
func RegisterLanguage(lang model.Language, tsLang *sitter.Language) {
	langMap[lang] = tsLang
}

// GetLanguage 获取已注册的 Tree-sitter 语言对象
func GetLanguage(lang model.Language) (*sitter.Language, error) {
	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}

	return tsLang, nil
}

// RegisterLowerer 注册一个语言与其对应的 Lowerer
func RegisterLowerer(lang model.Language, lowerer Lowerer) {
	lowererMap[lang] = lowerer
}

// GetLowerer 获取已注册的 Lowerer
func GetLowerer(lang model.Language) (Lowerer, error) {
	lowerer, ok := lowererMap[lang]
	if !ok {
		return nil, fmt.Errorf("no lowerer registered for language: %s", lang)
	}

	return lowerer, nil
}
