package output

import (
	"encoding/json"
	"io"

	"github.com/CodMac/go-treesitter-uml-generator/model"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// ExportModels 把一个文件的类模型与调用模型逐行写出，返回写出的记录数
func ExportModels(w io.Writer, path string, classes []model.ClassModel, sequences []model.MethodInteractionModel) (int, error) {
	writer := NewJSONLWriter(w)
	count := 0

	// 1. 类
	for i := range classes {
		if err := writer.Write(&model.Element{Kind: model.Class, Path: path, Class: &classes[i]}); err != nil {
			return count, err
		}
		count++
	}

	// 2. 调用序列
	for i := range sequences {
		if err := writer.Write(&model.Element{Kind: model.Method, Path: path, Sequence: &sequences[i]}); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
