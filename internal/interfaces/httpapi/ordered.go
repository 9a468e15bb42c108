package httpapi

import (
	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

type orderedField struct {
	Key   string
	Value any
}

// orderedObject is a JSON object that keeps its keys in insertion order.
type orderedObject []orderedField

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, field := range o {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		key, err := sonic.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(key)
		_ = buf.WriteByte(':')

		value, err := sonic.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(value)
	}
	_ = buf.WriteByte('}')

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}
