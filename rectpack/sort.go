package rectpack

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortFunc 定义尺寸比较函数的原型
// 返回值:
//
//	-1: a 排在 b 之前
//	 0: 顺序不变
//	 1: a 排在 b 之后
type SortFunc func(a, b Size) int

// SortArea 按面积降序排序(从大到小)
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter 按周长降序排序(从大到小)
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortDiff 按宽高差降序排序(从大到小)
func SortDiff(a, b Size) int {
	return cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height))
}

// SortMinSide 按最短边降序排序(从大到小)
func SortMinSide(a, b Size) int {
	return cmp.Compare(b.MinSide(), a.MinSide())
}

// SortMaxSide 按最长边降序排序(从大到小)
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortRatio 按宽高比降序排序(从大到小)
func SortRatio(a, b Size) int {
	return cmp.Compare(b.Ratio(), a.Ratio())
}

// SortSizes 原地排序 sizes。compare 为 nil 时保持输入顺序，
// reverse 为 true 时反转结果。排序是稳定的，相等的尺寸保持原有先后。
func SortSizes(sizes []Size, compare SortFunc, reverse bool) {
	switch {
	case compare != nil && reverse:
		slices.SortStableFunc(sizes, func(a, b Size) int { return compare(b, a) })
	case compare != nil:
		slices.SortStableFunc(sizes, compare)
	case reverse:
		slices.Reverse(sizes)
	}
}

// ResolveSort 根据名称返回排序函数，"none" 或空字符串返回 nil（不排序）。
func ResolveSort(name string) (SortFunc, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "diff":
		return SortDiff, nil
	case "minside":
		return SortMinSide, nil
	case "maxside":
		return SortMaxSide, nil
	case "ratio":
		return SortRatio, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSort, name)
}
