package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/CodMac/go-treesitter-uml-generator/collector"
	"github.com/CodMac/go-treesitter-uml-generator/extractor"
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/output"
	"github.com/CodMac/go-treesitter-uml-generator/parser"
)

// Diagram 标识要生成的图，可以按位组合
type Diagram int

const (
	ClassDiagram Diagram = 1 << iota
	SequenceDiagram

	BothDiagrams = ClassDiagram | SequenceDiagram
)

func (d Diagram) String() string {
	switch d {
	case ClassDiagram:
		return "class"
	case SequenceDiagram:
		return "sequence"
	case BothDiagrams:
		return "both"
	default:
		return fmt.Sprintf("Diagram(%d)", int(d))
	}
}

// Request 描述一次单文件处理
type Request struct {
	Source      string  // Python 源文件路径
	ClassOut    string  // 类图输出路径
	SequenceOut string  // 时序图输出路径，为空时由 ClassOut 推导
	Diagrams    Diagram // 需要生成的图
}

// Outcome 是一种图的处理结果。Err 为 nil 表示文件已写出。
type Outcome struct {
	Diagram Diagram
	Path    string
	Err     error
}

// Written 报告图文本是否已写入 Path
func (o Outcome) Written() bool { return o.Err == nil }

// Result 汇总了一个源文件的处理结果
type Result struct {
	Source    string
	Classes   []model.ClassModel
	Sequences []model.MethodInteractionModel
	Err       error // 读取或解析失败
	Outcomes  []Outcome
}

// Pipeline 负责单个文件的 解析 → 提取 → 渲染 → 写出。
// 所有失败都被记录并转换为结果值，Run 不会返回 error。
type Pipeline struct {
	Language model.Language
	Logger   *slog.Logger
}

// NewPipeline 创建 Pipeline 实例
func NewPipeline(lang model.Language, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Language: lang,
		Logger:   logger.With("component", "pipeline"),
	}
}

// Extract 解析源文件并返回两类模型。失败时返回空列表与包装后的错误。
func (p *Pipeline) Extract(ctx context.Context, source string) ([]model.ClassModel, []model.MethodInteractionModel, error) {
	col, err := collector.GetCollector(p.Language)
	if err != nil {
		return nil, nil, err
	}
	ext, err := extractor.GetExtractor(p.Language)
	if err != nil {
		return nil, nil, err
	}

	// 每次运行持有自己的 parser，用完即释放
	ps, err := parser.NewParser(p.Language)
	if err != nil {
		return nil, nil, err
	}
	defer ps.Close()

	mod, err := ps.ParseFile(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	return col.CollectClasses(mod), ext.ExtractInteractions(mod), nil
}

// Run 执行一次完整的单文件处理
func (p *Pipeline) Run(ctx context.Context, req Request) Result {
	log := p.Logger.With("source", req.Source)
	res := Result{Source: req.Source}

	classes, sequences, err := p.Extract(ctx, req.Source)
	if err != nil {
		p.reportExtractError(log, err)
		res.Err = err
		res.Classes = []model.ClassModel{}
		res.Sequences = []model.MethodInteractionModel{}
	} else {
		res.Classes, res.Sequences = classes, sequences
	}

	classOut := req.ClassOut
	sequenceOut := req.SequenceOut
	if sequenceOut == "" {
		sequenceOut = output.SequencePath(classOut)
	}

	if req.Diagrams&ClassDiagram != 0 {
		res.Outcomes = append(res.Outcomes, p.emit(log, ClassDiagram, classOut, res.Err, len(res.Classes), func() string {
			return output.ClassDiagram(res.Classes)
		}))
	}
	if req.Diagrams&SequenceDiagram != 0 {
		res.Outcomes = append(res.Outcomes, p.emit(log, SequenceDiagram, sequenceOut, res.Err, len(res.Sequences), func() string {
			return output.SequenceDiagram(res.Sequences)
		}))
	}

	return res
}

// emit 渲染并写出一种图；模型为空时跳过，不产生空文档
func (p *Pipeline) emit(log *slog.Logger, d Diagram, path string, extractErr error, count int, render func() string) Outcome {
	out := Outcome{Diagram: d, Path: path}

	if extractErr != nil {
		out.Err = extractErr
		return out
	}

	if count == 0 {
		switch d {
		case ClassDiagram:
			log.Warn("No classes found in the source file.")
		default:
			log.Warn("No sequence interactions found in the source file.")
		}
		out.Err = fmt.Errorf("%w: no %s diagram content", model.ErrEmptyModel, d)
		return out
	}

	if err := output.WriteDiagram(path, render()); err != nil {
		log.Error("Error saving UML", "diagram", d.String(), "output", path, "error", err)
		out.Err = err
		return out
	}

	log.Info("UML diagram saved", "diagram", d.String(), "output", path, "entries", count)
	return out
}

func (p *Pipeline) reportExtractError(log *slog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInputNotFound):
		log.Error("File not found", "error", err)
	case errors.Is(err, model.ErrParseFailure):
		log.Error("Error parsing file", "error", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("Processing cancelled", "error", err)
	default:
		log.Error("Extraction failed", "error", err)
	}
}
