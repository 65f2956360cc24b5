package rectpack

import "fmt"

// Point 描述二维空间中的一个位置。
type Point struct {
	// X 是水平 x 轴上的位置。
	X int `json:"x"`
	// Y 是垂直 y 轴上的位置。
	Y int `json:"y"`
}

// NewPoint 初始化一个具有指定坐标的点。
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq 判断两个点是否相同。
func (p Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Size 描述实体在二维空间中的尺寸。
type Size struct {
	// Width 是水平 x 轴上的尺寸。
	Width int `json:"width"`
	// Height 是垂直 y 轴上的尺寸。
	Height int `json:"height"`
	// ID 是调用方定义的标识符，打包时原样带到结果矩形上。
	ID int `json:"-"`
}

// NewSize 创建指定宽高的尺寸。
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// NewSizeID 创建带有标识符的尺寸。
func NewSizeID(id, width, height int) Size {
	return Size{ID: id, Width: width, Height: height}
}

// Eq 判断两个尺寸的宽高是否相同，忽略 ID。
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

func (sz Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Area 返回面积（宽 * 高）。
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter 返回周长。
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide 返回较长边。
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide 返回较短边。
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Ratio 返回宽高比。
func (sz Size) Ratio() float64 {
	return float64(sz.Width) / float64(sz.Height)
}

// Rect 描述二维空间中的一个左上角位置和尺寸。
type Rect struct {
	Point
	Size
}

// NewRect 用左上角坐标和宽高初始化矩形。
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectLTRB 用左/上/右/下边界初始化矩形。
func NewRectLTRB(l, t, r, b int) Rect {
	return NewRect(l, t, r-l, b-t)
}

// Eq 比较位置和尺寸是否相等，忽略 ID。
func (r Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Right 返回右边缘的 x 坐标（不包含）。
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom 返回下边缘的 y 坐标（不包含）。
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains 判断 rect 是否完全位于接收者之内，边缘重合也算包含。
func (r Rect) Contains(rect Rect) bool {
	return r.X <= rect.X &&
		rect.Right() <= r.Right() &&
		r.Y <= rect.Y &&
		rect.Bottom() <= r.Bottom()
}

// ContainsPoint 判断坐标是否落在接收者内部。
func (r Rect) ContainsPoint(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// IsEmpty 判断宽或高是否小于 1。
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects 判断两个矩形是否有面积重叠，仅边缘相接不算相交。
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.Right() &&
		r.X < rect.Right() &&
		rect.Y < r.Bottom() &&
		r.Y < rect.Bottom()
}

// Intersect 返回两个矩形的重叠区域，没有重叠时返回空矩形。
func (r Rect) Intersect(rect Rect) (result Rect) {
	x1 := max(r.X, rect.X)
	x2 := min(r.Right(), rect.Right())
	y1 := max(r.Y, rect.Y)
	y2 := min(r.Bottom(), rect.Bottom())
	if x2 > x1 && y2 > y1 {
		result = NewRectLTRB(x1, y1, x2, y2)
	}
	return
}

// Union 返回同时包含两个矩形的最小矩形。
func (r Rect) Union(rect Rect) Rect {
	return NewRectLTRB(
		min(r.X, rect.X),
		min(r.Y, rect.Y),
		max(r.Right(), rect.Right()),
		max(r.Bottom(), rect.Bottom()),
	)
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}
