// Package session 实现菜单驱动的交互：反复读取命令，生成所选的图，直到退出。
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/CodMac/go-treesitter-uml-generator/processor"
)

// Runner 执行一次单文件处理，processor.Pipeline 满足该接口
type Runner interface {
	Run(ctx context.Context, req processor.Request) processor.Result
}

// Session 绑定一个源文件与输出路径，每条命令都重新解析源文件
type Session struct {
	Runner   Runner
	Source   string
	ClassOut string
	Logger   *slog.Logger

	state State
}

func New(runner Runner, source, classOut string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Runner:   runner,
		Source:   source,
		ClassOut: classOut,
		Logger:   logger.With("component", "session"),
		state:    AwaitingChoice,
	}
}

// State 返回当前状态
func (s *Session) State() State { return s.state }

// Run 驱动状态机直到收到 exit、输入耗尽或 ctx 被取消，返回每条生成命令的结果。
// 无效输入会被报告并忽略。
func (s *Session) Run(ctx context.Context, src CommandSource) ([]processor.Result, error) {
	var results []processor.Result

	for s.state != Exiting {
		raw, err := src.Next(ctx)
		if err != nil {
			s.transition(Exiting)
			if errors.Is(err, io.EOF) {
				return results, nil
			}
			return results, err
		}

		cmd, err := ParseCommand(raw)
		if err != nil {
			s.Logger.Warn("Invalid choice. Please try again.", "input", raw)
			continue
		}

		s.transition(next(cmd))
		if cmd == CmdExit {
			s.Logger.Info("Exiting the UML Diagram Generator.")
			break
		}

		results = append(results, s.Runner.Run(ctx, processor.Request{
			Source:   s.Source,
			ClassOut: s.ClassOut,
			Diagrams: cmd.Diagrams(),
		}))
		s.transition(AwaitingChoice)
	}

	return results, nil
}

func (s *Session) transition(to State) {
	s.Logger.Debug("Session transition", "from", s.state.String(), "to", to.String())
	s.state = to
}
