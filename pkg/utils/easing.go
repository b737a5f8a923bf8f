package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制淡入和弹出动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FadeProgress 计算淡入进度
//
// 参数:
//   - elapsed: 已经过的秒数
//   - duration: 淡入总时长（秒），<= 0 时直接返回 1
//   - ease: 缓动函数，nil 时按线性处理
//
// 返回:
//   - float64: [0, 1] 区间的透明度系数
func FadeProgress(elapsed, duration float64, ease func(float64) float64) float64 {
	if duration <= 0 {
		return 1
	}
	t := Clamp(elapsed/duration, 0, 1)
	if ease == nil {
		return t
	}
	return ease(t)
}

// ComboScale 连击弹出的缩放系数
// progress 从 1 递减到 0，刚弹出时最大
func ComboScale(progress float64) float64 {
	return Lerp(1.0, 1.6, Clamp(progress, 0, 1))
}
