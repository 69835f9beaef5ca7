package render

import (
	"math"
	"testing"
)

// TestBarRectsLayout 柱子均匀分布且不超出绘图区
func TestBarRectsLayout(t *testing.T) {
	plotX, plotY, plotW, plotH := 10.0, 20.0, 300.0, 150.0
	intensities := []float64{100, 44.8, 23}

	rects := BarRects(plotX, plotY, plotW, plotH, intensities)
	if len(rects) != 3 {
		t.Fatalf("返回 %d 根柱子, 期望 3", len(rects))
	}

	// 第一根从绘图区左缘开始，最后一根在右缘结束
	if math.Abs(rects[0].X-plotX) > 1e-9 {
		t.Errorf("第一根柱子 X = %v, 期望 %v", rects[0].X, plotX)
	}
	if right := rects[2].X + rects[2].W; math.Abs(right-(plotX+plotW)) > 1e-6 {
		t.Errorf("最后一根柱子右缘 = %v, 期望 %v", right, plotX+plotW)
	}

	// 等宽、等间距
	gap01 := rects[1].X - (rects[0].X + rects[0].W)
	gap12 := rects[2].X - (rects[1].X + rects[1].W)
	if math.Abs(gap01-gap12) > 1e-9 {
		t.Errorf("柱间距不一致: %v vs %v", gap01, gap12)
	}
	if math.Abs(rects[0].W-rects[1].W) > 1e-9 {
		t.Errorf("柱宽不一致: %v vs %v", rects[0].W, rects[1].W)
	}
}

// TestBarRectsHeights 柱高与强度成正比，柱底对齐坐标轴
func TestBarRectsHeights(t *testing.T) {
	plotY, plotH := 0.0, 200.0
	intensities := []float64{100, 50, 25}
	rects := BarRects(0, plotY, 300, plotH, intensities)

	if math.Abs(rects[0].H-plotH) > 1e-9 {
		t.Errorf("满刻度柱高 = %v, 期望 %v", rects[0].H, plotH)
	}
	if math.Abs(rects[1].H-plotH/2) > 1e-9 {
		t.Errorf("50%% 柱高 = %v, 期望 %v", rects[1].H, plotH/2)
	}

	for i, r := range rects {
		if bottom := r.Y + r.H; math.Abs(bottom-(plotY+plotH)) > 1e-9 {
			t.Errorf("第 %d 根柱底 = %v, 期望对齐 %v", i, bottom, plotY+plotH)
		}
	}
}

// TestBarRectsDegenerate 空输入和非法区域返回 nil
func TestBarRectsDegenerate(t *testing.T) {
	if got := BarRects(0, 0, 100, 100, nil); got != nil {
		t.Errorf("空强度表应返回 nil: %v", got)
	}
	if got := BarRects(0, 0, 0, 100, []float64{1}); got != nil {
		t.Errorf("零宽绘图区应返回 nil: %v", got)
	}
	// 负强度按 0 处理
	rects := BarRects(0, 0, 100, 100, []float64{-5})
	if len(rects) != 1 || rects[0].H != 0 {
		t.Errorf("负强度柱高应为 0: %+v", rects)
	}
}
