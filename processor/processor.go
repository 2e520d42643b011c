package processor

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"golang.org/x/sync/errgroup"
)

// FileProcessor 负责并发处理文件列表。每个文件是一次独立的 Pipeline 运行，互不共享状态。
type FileProcessor struct {
	Language model.Language
	Workers  int // 并发协程数量
	Logger   *slog.Logger
}

// NewFileProcessor 创建 FileProcessor 实例
func NewFileProcessor(lang model.Language, workers int, logger *slog.Logger) *FileProcessor {
	if workers <= 0 {
		workers = 4 // 默认并发数
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
		Logger:   logger,
	}
}

// BatchRequest 描述一次目录批量处理
type BatchRequest struct {
	Root     string   // 源码根目录，用于计算输出的相对路径
	Files    []string // 需要处理的文件
	OutDir   string   // 输出目录
	Diagrams Diagram
}

// ProcessFiles 并发处理所有文件，结果顺序与输入一致。
// 单个文件的失败体现在其 Result 中；只有 ctx 被取消时才返回 error。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, req BatchRequest) ([]Result, error) {
	if len(req.Files) == 0 {
		return nil, nil
	}

	fp.Logger.Info("Starting analysis", "files", len(req.Files), "language", fp.Language, "workers", fp.Workers)

	collisions := fp.claimOutputs(req)

	results := make([]Result, len(req.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)

	for i, path := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			classOut, sequenceOut := OutputPaths(req.Root, path, req.OutDir)
			if err := os.MkdirAll(filepath.Dir(classOut), 0o755); err != nil {
				fp.Logger.Error("Cannot create output directory", "source", path, "error", err)
				results[i] = failedResult(path, classOut, sequenceOut, req.Diagrams, fmt.Errorf("%w: %v", model.ErrOutputWrite, err))
				return nil
			}

			// 输出路径被占用的图不生成，模型仍然提取
			var blocked Diagram
			for _, o := range collisions[i] {
				blocked |= o.Diagram
			}

			pipeline := NewPipeline(fp.Language, fp.Logger)
			res := pipeline.Run(gctx, Request{
				Source:      path,
				ClassOut:    classOut,
				SequenceOut: sequenceOut,
				Diagrams:    req.Diagrams &^ blocked,
			})
			res.Outcomes = append(res.Outcomes, collisions[i]...)
			slices.SortStableFunc(res.Outcomes, func(a, b Outcome) int {
				return cmp.Compare(a.Diagram, b.Diagram)
			})
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	written := 0
	for _, r := range results {
		for _, o := range r.Outcomes {
			if o.Written() {
				written++
			}
		}
	}
	fp.Logger.Info("Analysis complete", "files", len(req.Files), "diagrams_written", written)

	return results, nil
}

// claimOutputs 按输入顺序为每个文件登记输出路径。
// 例如 dog.py 的时序图与 dog_sequence.py 的类图都是 dog_sequence.txt；
// 先出现的文件保留该路径，后出现的文件对应的图以 ErrOutputWrite 结果返回。
func (fp *FileProcessor) claimOutputs(req BatchRequest) map[int][]Outcome {
	owners := make(map[string]string)
	collisions := make(map[int][]Outcome)

	for i, path := range req.Files {
		classOut, sequenceOut := OutputPaths(req.Root, path, req.OutDir)
		for _, target := range []Outcome{
			{Diagram: ClassDiagram, Path: classOut},
			{Diagram: SequenceDiagram, Path: sequenceOut},
		} {
			if req.Diagrams&target.Diagram == 0 {
				continue
			}
			key := filepath.Clean(target.Path)
			owner, taken := owners[key]
			if !taken {
				owners[key] = path
				continue
			}
			fp.Logger.Error("Error saving UML", "source", path, "diagram", target.Diagram.String(),
				"output", target.Path, "conflicts_with", owner)
			target.Err = fmt.Errorf("%w: %s is also the output of %s", model.ErrOutputWrite, target.Path, owner)
			collisions[i] = append(collisions[i], target)
		}
	}
	return collisions
}

// OutputPaths 计算批量模式下某个源文件的输出路径，保留相对 root 的目录结构：
// <root>/pkg/dog.py -> <outDir>/pkg/dog.txt 与 <outDir>/pkg/dog_sequence.txt
func OutputPaths(root, source, outDir string) (classOut, sequenceOut string) {
	rel, err := filepath.Rel(root, source)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(source)
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))

	return filepath.Join(outDir, stem+".txt"), filepath.Join(outDir, stem+"_sequence.txt")
}

func failedResult(source, classOut, sequenceOut string, diagrams Diagram, err error) Result {
	res := Result{
		Source:    source,
		Classes:   []model.ClassModel{},
		Sequences: []model.MethodInteractionModel{},
	}
	if diagrams&ClassDiagram != 0 {
		res.Outcomes = append(res.Outcomes, Outcome{Diagram: ClassDiagram, Path: classOut, Err: err})
	}
	if diagrams&SequenceDiagram != 0 {
		res.Outcomes = append(res.Outcomes, Outcome{Diagram: SequenceDiagram, Path: sequenceOut, Err: err})
	}
	return res
}
