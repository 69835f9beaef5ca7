package ui

import (
	"math"
	"testing"
)

func newTestSlider() *Slider {
	return &Slider{
		X: 100, Y: 50, W: 200, H: 8,
		Min: 0, Max: 180, Step: 0.5,
		Value: 90,
	}
}

// TestSliderValueAt 测试指针位置到值的映射
func TestSliderValueAt(t *testing.T) {
	s := newTestSlider()

	tests := []struct {
		name     string
		px       float64
		expected float64
	}{
		{"最左端", 100, 0},
		{"最右端", 300, 180},
		{"中点", 200, 90},
		{"左侧越界截断", 0, 0},
		{"右侧越界截断", 999, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.valueAt(tt.px); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("valueAt(%v) = %v, 期望 %v", tt.px, got, tt.expected)
			}
		})
	}
}

// TestSliderQuantization 值按 0.5 步长量化
func TestSliderQuantization(t *testing.T) {
	s := newTestSlider()
	for px := 100.0; px <= 300.0; px += 3.7 {
		v := s.valueAt(px)
		steps := v / 0.5
		if math.Abs(steps-math.Round(steps)) > 1e-9 {
			t.Fatalf("valueAt(%v) = %v 不是 0.5 的整数倍", px, v)
		}
	}
}

// TestSliderSetValueCallback 值变化触发回调，值不变时不触发
func TestSliderSetValueCallback(t *testing.T) {
	s := newTestSlider()
	var calls int
	var last float64
	s.OnChange = func(v float64) {
		calls++
		last = v
	}

	s.setValue(45)
	if calls != 1 || last != 45 {
		t.Errorf("回调未触发: calls=%d last=%v", calls, last)
	}

	s.setValue(45)
	if calls != 1 {
		t.Errorf("值不变不应重复触发回调: calls=%d", calls)
	}

	// 越界值被截断
	s.setValue(500)
	if s.Value != 180 {
		t.Errorf("越界值应截断到 Max: %v", s.Value)
	}
}

// TestSliderNudge 键盘微调按步长移动
func TestSliderNudge(t *testing.T) {
	s := newTestSlider()
	s.Nudge(1)
	if s.Value != 90.5 {
		t.Errorf("Nudge(+1) 后 Value = %v, 期望 90.5", s.Value)
	}
	s.Nudge(-1)
	s.Nudge(-1)
	if s.Value != 89.5 {
		t.Errorf("两次 Nudge(-1) 后 Value = %v, 期望 89.5", s.Value)
	}

	// 在边界处不越界
	s.Value = 180
	s.Nudge(1)
	if s.Value != 180 {
		t.Errorf("边界处 Nudge 不应越界: %v", s.Value)
	}
}
