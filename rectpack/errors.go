package rectpack

import "errors"

var (
	// ErrInvalidSize 表示包装区域的宽或高不是正数。
	ErrInvalidSize = errors.New("rectpack: width and height must be greater than 0")

	// ErrUnknownSort 表示无法识别的排序方式名称。
	ErrUnknownSort = errors.New("rectpack: unknown sort method")
)
