package model

import "errors"

// 处理过程中可能报告的失败类型。它们只作为结果值返回和记录，不会中断进程。
var (
	ErrInputNotFound = errors.New("input not found")
	ErrParseFailure  = errors.New("parse failure")
	ErrEmptyModel    = errors.New("empty model")
	ErrOutputWrite   = errors.New("output write failure")
)
