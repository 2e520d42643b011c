package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// CommandSource 提供用户输入的原始命令。
// 输入耗尽时返回 io.EOF。
type CommandSource interface {
	Next(ctx context.Context) (string, error)
}

// SliceSource 按顺序返回预先给定的命令，用于测试与命令行参数
type SliceSource struct {
	items []string
	pos   int
}

func NewSliceSource(items ...string) *SliceSource {
	return &SliceSource{items: items}
}

func (s *SliceSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.items) {
		return "", io.EOF
	}
	item := s.items[s.pos]
	s.pos++
	return item, nil
}

const menu = `
--- UML Diagram Generator ---
1. Generate Class Diagram
2. Generate Sequence Diagram
3. Generate Both
4. Exit
Enter your choice: `

// ReaderSource 在每次读取前打印菜单，然后读取一行输入
type ReaderSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewReaderSource 从 r 读取命令；prompt 为 nil 时不打印菜单
func NewReaderSource(r io.Reader, prompt io.Writer) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r), prompt: prompt}
}

func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.prompt != nil {
		fmt.Fprint(s.prompt, menu)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
