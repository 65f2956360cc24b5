package rectpack

import "slices"

// splitFreeList 用 usedNode 切分所有与之重叠的空闲矩形。
// 不重叠的保持原样，重叠的被替换为剩余部分的碎片，碎片追加在末尾。
func splitFreeList(freeRects []Rect, usedNode Rect) []Rect {
	var fragments []Rect
	kept := freeRects[:0]
	for _, freeNode := range freeRects {
		if !freeNode.Intersects(usedNode) {
			kept = append(kept, freeNode)
			continue
		}
		fragments = splitFreeNode(fragments, freeNode, usedNode)
	}
	return append(kept, fragments...)
}

// splitFreeNode 把 freeNode 中未被 usedNode 覆盖的部分追加到 dst。
// 上下碎片保留原宽度，左右碎片保留原高度，所以碎片之间会重叠，交给 pruneFreeList 处理。
func splitFreeNode(dst []Rect, freeNode, usedNode Rect) []Rect {
	// 上方
	if usedNode.Y > freeNode.Y && usedNode.Y < freeNode.Bottom() {
		newNode := freeNode
		newNode.Height = usedNode.Y - freeNode.Y
		dst = append(dst, newNode)
	}
	// 下方
	if usedNode.Bottom() < freeNode.Bottom() {
		newNode := freeNode
		newNode.Y = usedNode.Bottom()
		newNode.Height = freeNode.Bottom() - usedNode.Bottom()
		dst = append(dst, newNode)
	}
	// 左侧
	if usedNode.X > freeNode.X && usedNode.X < freeNode.Right() {
		newNode := freeNode
		newNode.Width = usedNode.X - freeNode.X
		dst = append(dst, newNode)
	}
	// 右侧
	if usedNode.Right() < freeNode.Right() {
		newNode := freeNode
		newNode.X = usedNode.Right()
		newNode.Width = freeNode.Right() - usedNode.Right()
		dst = append(dst, newNode)
	}
	return dst
}

// pruneFreeList 移除被其他空闲矩形完全包含的空闲矩形。
// 完全相同的矩形只保留一个。
func pruneFreeList(freeRects []Rect) []Rect {
	for i := 0; i < len(freeRects); i++ {
		for j := i + 1; j < len(freeRects); j++ {
			if freeRects[j].Contains(freeRects[i]) {
				freeRects = slices.Delete(freeRects, i, i+1)
				i--
				break
			}
			if freeRects[i].Contains(freeRects[j]) {
				freeRects = slices.Delete(freeRects, j, j+1)
				j--
			}
		}
	}
	return freeRects
}
