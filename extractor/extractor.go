package extractor

import (
	"fmt"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
)

// Extractor 提取函数体内的直接调用关系。
type Extractor interface {
	// ExtractInteractions 按遍历顺序返回至少含有一个调用的函数。
	ExtractInteractions(mod *syntax.Module) []model.MethodInteractionModel
}

// LanguageExtractorFactory 是一个工厂函数类型，用于创建特定语言的 Extractor 实例。
type LanguageExtractorFactory func() Extractor

var extractorFactories = make(map[model.Language]LanguageExtractorFactory)

// RegisterExtractor 注册一个语言与其对应的 Extractor 工厂函数。
func RegisterExtractor(lang model.Language, factory LanguageExtractorFactory) {
	extractorFactories[lang] = factory
}

// GetExtractor 根据语言类型获取对应的 Extractor 实例。
func GetExtractor(lang model.Language) (Extractor, error) {
	factory, ok := extractorFactories[lang]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for language: %s", lang)
	}
	return factory(), nil
}
