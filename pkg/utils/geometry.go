// Package utils 提供游戏开发中常用的工具函数
//
// geometry.go 提供二维向量与轴对齐矩形的基础运算。
//
// # 坐标约定
//
//   - 原点在游戏区域左上角，Y 轴向下
//   - 实体位置 (X, Y) 表示碰撞盒中心
//   - 碰撞盒为轴对齐矩形（AABB），由中心和宽高描述
package utils

import "math"

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize 将向量归一化为单位向量
// 零向量返回 (0, 0)
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// Direction 计算从 (fromX, fromY) 指向 (toX, toY) 的单位方向
//
// 两点重合时距离按 1 处理，返回零向量而不是 NaN。
//
// 返回:
//   - ux, uy: 单位方向
//   - angle: 方向角（弧度，atan2）
func Direction(fromX, fromY, toX, toY float64) (ux, uy, angle float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx / dist, dy / dist, math.Atan2(dy, dx)
}

// FromAngle 返回指定角度与速率对应的速度分量
func FromAngle(angle, speed float64) (float64, float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Clamp 将值限制在 [min, max] 区间
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y float64 // 左上角
	W, H float64 // 宽高
}

// RectFromCenter 由中心点和宽高构造矩形
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right 右边界
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 下边界
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center 中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects 判断两个矩形是否重叠
// 仅边缘接触不算重叠
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsPoint 判断点是否在矩形内（左闭右开）
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampInside 将矩形平移到 bounds 内部
// 矩形比 bounds 大时与 bounds 左上角对齐
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}
