package rectpack

import (
	"fmt"
	"math"
)

// DefaultSize 定义了包装区域的默认宽高，基于现代 GPU 的最大纹理尺寸。
// 如果不是用来创建纹理图集，这个值只是一个合理的起点。
const DefaultSize = 4096

// Packer 使用 MaxRects 算法（最佳短边适应）把矩形放入一个固定大小的区域。
//
// Packer 维护一组空闲矩形，它们覆盖区域中尚未被占用的部分，彼此之间允许重叠。
// 每次放置后，所有与新矩形重叠的空闲矩形都会被切分，随后移除被其他空闲矩形
// 完全包含的冗余项。已放置的矩形不会被移动，也不能移除。
//
// Packer 不是并发安全的，多个 goroutine 共享同一实例时需要由调用方加锁。
type Packer struct {
	width  int
	height int

	// freeRects 覆盖区域中所有未被占用的部分
	freeRects []Rect

	usedArea int
	bounds   Size
}

// NewPacker 创建一个宽高为 width x height 的包装器，
// 初始时整个区域是一个空闲矩形。
//
// 宽度或高度小于等于 0 时返回 ErrInvalidSize。
func NewPacker(width, height int) (*Packer, error) {
	p := &Packer{}
	if err := p.Reset(width, height); err != nil {
		return nil, err
	}
	return p, nil
}

// NewDefaultPacker 创建 DefaultSize x DefaultSize 的包装器。
func NewDefaultPacker() *Packer {
	p, _ := NewPacker(DefaultSize, DefaultSize)
	return p
}

// Width 返回包装区域的宽度。
func (p *Packer) Width() int {
	return p.width
}

// Height 返回包装区域的高度。
func (p *Packer) Height() int {
	return p.height
}

// Clear 清空所有已放置的矩形，保留当前尺寸。
func (p *Packer) Clear() {
	p.freeRects = append(p.freeRects[:0], NewRect(0, 0, p.width, p.height))
	p.usedArea = 0
	p.bounds = Size{}
}

// Reset 把包装区域改为 width x height 并清空所有已放置的矩形。
// 参数无效时返回 ErrInvalidSize，包装器保持原状。
func (p *Packer) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w (given %vx%v)", ErrInvalidSize, width, height)
	}
	p.width = width
	p.height = height
	p.Clear()
	return nil
}

// Insert 尝试放置一个 width x height 的矩形。
//
// 成功时返回放置后的矩形和 true。没有足够大的空闲矩形时返回 false，
// 此时包装器状态不变，之后仍可放入更小的矩形。宽或高不是正数时同样返回 false。
func (p *Packer) Insert(width, height int) (Rect, bool) {
	return p.InsertSize(NewSize(width, height))
}

// InsertSize 与 Insert 相同，但会把 size.ID 带到返回的矩形上。
func (p *Packer) InsertSize(size Size) (Rect, bool) {
	if size.Width <= 0 || size.Height <= 0 {
		return Rect{}, false
	}
	node, ok := p.findPosition(size.Width, size.Height)
	if !ok {
		return Rect{}, false
	}
	node.ID = size.ID
	p.placeRect(node)
	return node, true
}

// InsertAll 按给定顺序逐个放置尺寸，返回放置成功的矩形和无法放置的尺寸。
// 排序由调用方决定，参见 SortSizes。
func (p *Packer) InsertAll(sizes ...Size) (packed []Rect, unpacked []Size) {
	packed = make([]Rect, 0, len(sizes))
	for _, size := range sizes {
		if rect, ok := p.InsertSize(size); ok {
			packed = append(packed, rect)
		} else {
			unpacked = append(unpacked, size)
		}
	}
	return packed, unpacked
}

// FreeRects 返回当前空闲矩形列表的副本。
func (p *Packer) FreeRects() []Rect {
	return append([]Rect(nil), p.freeRects...)
}

// UsedArea 返回已放置矩形的总面积。
func (p *Packer) UsedArea() int {
	return p.usedArea
}

// Occupancy 返回空间利用率，值在 0.0（空）到 1.0（填满）之间。
func (p *Packer) Occupancy() float64 {
	return float64(p.usedArea) / float64(p.width*p.height)
}

// Bounds 返回包含所有已放置矩形所需的最小尺寸。
func (p *Packer) Bounds() Size {
	return p.bounds
}

// findPosition 在空闲矩形中寻找短边剩余最小的位置，短边相同时比较长边。
// 完全相同的得分保留先遇到的候选。
func (p *Packer) findPosition(width, height int) (Rect, bool) {
	var bestNode Rect
	bestShortSideFit := math.MaxInt
	bestLongSideFit := math.MaxInt
	found := false

	for _, freeRect := range p.freeRects {
		if freeRect.Width < width || freeRect.Height < height {
			continue
		}
		shortSideFit, longSideFit := scoreBestShortSide(width, height, freeRect)
		if shortSideFit < bestShortSideFit || (shortSideFit == bestShortSideFit && longSideFit < bestLongSideFit) {
			bestNode = NewRect(freeRect.X, freeRect.Y, width, height)
			bestShortSideFit = shortSideFit
			bestLongSideFit = longSideFit
			found = true
		}
	}
	return bestNode, found
}

func scoreBestShortSide(width, height int, freeRect Rect) (shortSideFit, longSideFit int) {
	leftoverHoriz := abs(freeRect.Width - width)
	leftoverVert := abs(freeRect.Height - height)
	return min(leftoverHoriz, leftoverVert), max(leftoverHoriz, leftoverVert)
}

// placeRect 从空闲列表中挖掉 node 占用的区域并清理冗余。
func (p *Packer) placeRect(node Rect) {
	p.freeRects = splitFreeList(p.freeRects, node)
	p.freeRects = pruneFreeList(p.freeRects)
	p.usedArea += node.Area()
	p.bounds.Width = max(p.bounds.Width, node.Right())
	p.bounds.Height = max(p.bounds.Height, node.Bottom())
}
