// Package utils 提供通用工具：字体加载、输入状态、文本换行
package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce      sync.Once
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	fontInitErr   error
)

// initFontSources 解析内嵌的 Go 字体（只执行一次）
func initFontSources() {
	regularSource, fontInitErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if fontInitErr != nil {
		fontInitErr = fmt.Errorf("failed to parse goregular: %w", fontInitErr)
		return
	}
	boldSource, fontInitErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if fontInitErr != nil {
		fontInitErr = fmt.Errorf("failed to parse gobold: %w", fontInitErr)
	}
}

// LoadFont 返回指定字号的常规字体
func LoadFont(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(initFontSources)
	if fontInitErr != nil {
		return nil, fontInitErr
	}
	return &text.GoTextFace{Source: regularSource, Size: size}, nil
}

// LoadBoldFont 返回指定字号的粗体字体
func LoadBoldFont(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(initFontSources)
	if fontInitErr != nil {
		return nil, fontInitErr
	}
	return &text.GoTextFace{Source: boldSource, Size: size}, nil
}
