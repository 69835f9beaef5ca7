package sky

import (
	"math"
	"testing"
)

// TestObserver 观察者位于水平中心、地平线高度
func TestObserver(t *testing.T) {
	g := DefaultGeometry()
	x, y := g.Observer(800, 600)
	if x != 400 {
		t.Errorf("观察者 X = %v, 期望 400", x)
	}
	if math.Abs(y-600*g.HorizonRatio) > epsilon {
		t.Errorf("观察者 Y = %v, 期望 %v", y, 600*g.HorizonRatio)
	}
}

// TestOrbitRadius 轨道半径适配视口，弧线不会超出画面
func TestOrbitRadius(t *testing.T) {
	g := DefaultGeometry()

	tests := []struct {
		name          string
		width, height float64
		expected      float64
	}{
		{"宽屏受高度限制", 1600, 400, 0.75 * 400},
		{"竖屏受宽度限制", 400, 1200, 0.45 * 400},
		{"常规窗口", 800, 600, 0.45 * 800}, // min(360, 450)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.OrbitRadius(tt.width, tt.height); math.Abs(got-tt.expected) > epsilon {
				t.Errorf("OrbitRadius(%v, %v) = %v, 期望 %v", tt.width, tt.height, got, tt.expected)
			}
		})
	}
}

// TestSunPosition 测试太阳的弧线坐标
func TestSunPosition(t *testing.T) {
	g := DefaultGeometry()
	w, h := 800.0, 600.0
	cx, cy := g.Observer(w, h)
	r := g.OrbitRadius(w, h)

	t.Run("正午在天顶正上方", func(t *testing.T) {
		x, y := g.SunPosition(90, w, h)
		if math.Abs(x-cx) > 1e-6 {
			t.Errorf("正午太阳 X = %v, 期望 %v", x, cx)
		}
		if math.Abs(y-(cy-r)) > 1e-6 {
			t.Errorf("正午太阳 Y = %v, 期望 %v", y, cy-r)
		}
	})

	t.Run("日出在左侧地平线", func(t *testing.T) {
		x, y := g.SunPosition(0, w, h)
		if math.Abs(x-(cx-r)) > 1e-6 || math.Abs(y-cy) > 1e-6 {
			t.Errorf("日出太阳 = (%v, %v), 期望 (%v, %v)", x, y, cx-r, cy)
		}
	})

	t.Run("日落在右侧地平线", func(t *testing.T) {
		x, y := g.SunPosition(180, w, h)
		if math.Abs(x-(cx+r)) > 1e-6 || math.Abs(y-cy) > 1e-6 {
			t.Errorf("日落太阳 = (%v, %v), 期望 (%v, %v)", x, y, cx+r, cy)
		}
	})

	// 场景D：画面放大 2 倍，太阳到中心的像素偏移也放大 2 倍
	t.Run("缩放比例一致", func(t *testing.T) {
		for _, angle := range []float64{0, 30, 90, 145, 180} {
			x1, y1 := g.SunPosition(angle, w, h)
			x2, y2 := g.SunPosition(angle, 2*w, 2*h)
			cx2, cy2 := g.Observer(2*w, 2*h)
			if math.Abs((x2-cx2)-2*(x1-cx)) > 1e-6 {
				t.Errorf("角度 %v: 2倍画面 X 偏移 = %v, 期望 %v", angle, x2-cx2, 2*(x1-cx))
			}
			if math.Abs((y2-cy2)-2*(y1-cy)) > 1e-6 {
				t.Errorf("角度 %v: 2倍画面 Y 偏移 = %v, 期望 %v", angle, y2-cy2, 2*(y1-cy))
			}
		}
	})

	// 太阳始终不低于地平线（角度在 [0,180] 内）
	t.Run("弧线在地平线以上", func(t *testing.T) {
		for a := 0.0; a <= 180.0; a += 1 {
			_, y := g.SunPosition(a, w, h)
			if y > cy+1e-6 {
				t.Fatalf("角度 %v 时太阳低于地平线: y=%v > %v", a, y, cy)
			}
		}
	})
}
