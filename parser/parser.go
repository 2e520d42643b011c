package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser 定义了所有语言解析器的通用能力
type Parser interface {
	// ParseFile 读取文件内容并解析，返回 syntax 树的根节点。
	ParseFile(ctx context.Context, filePath string) (*syntax.Module, error)
	// Parse 解析内存中的源码
	Parse(ctx context.Context, source []byte) (*syntax.Module, error)
}

// TreeSitterParser 是 Parser 接口的具体实现。
// 内部的 Tree-sitter 解析器不是并发安全的，每个 goroutine 应持有自己的实例。
type TreeSitterParser struct {
	Language model.Language // 当前解析器针对的语言
	tsParser *sitter.Parser
	lower    Lowerer
}

// NewParser 创建一个新的 TreeSitterParser 实例
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := GetLanguage(lang)
	if err != nil {
		return nil, err
	}
	lower, err := GetLowerer(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, fmt.Errorf("failed to set language %s: %w", lang, err)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
		lower:    lower,
	}, nil
}

// ParseFile 实现了 Parser 接口
func (p *TreeSitterParser) ParseFile(ctx context.Context, filePath string) (*syntax.Module, error) {
	// 1. 读取文件内容
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s: %v", model.ErrInputNotFound, filePath, err)
		}
		return nil, fmt.Errorf("%w: failed to read file %s: %v", model.ErrInputNotFound, filePath, err)
	}

	// 2. 解析文件内容
	mod, err := p.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return mod, nil
}

// Parse 实现了 Parser 接口。源码含有语法错误时返回 model.ErrParseFailure。
func (p *TreeSitterParser) Parse(ctx context.Context, source []byte) (*syntax.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree := p.tsParser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: tree-sitter returned no tree", model.ErrParseFailure)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		pos := firstErrorPosition(root)
		return nil, fmt.Errorf("%w: syntax error near line %d, column %d", model.ErrParseFailure, pos.Row+1, pos.Column+1)
	}

	return p.lower(root, source)
}

// Close 释放 Tree-sitter 内部资源
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
	}
}

// firstErrorPosition 找到第一个 ERROR 或 MISSING 节点的位置，用于错误报告
func firstErrorPosition(node *sitter.Node) sitter.Point {
	if node.IsError() || node.IsMissing() {
		return node.StartPosition()
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.HasError() {
			return firstErrorPosition(child)
		}
	}
	return node.StartPosition()
}
