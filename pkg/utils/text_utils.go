package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度换行
//
// 优先在空格处断行；单个词超过最大宽度时按字符强制断行。
// font 为 nil 或 maxWidth <= 0 时原样返回。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// 单词本身超宽时按字符切分
		for measureTextWidth(word, font) > maxWidth {
			cut := len(word)
			for cut > 1 && measureTextWidth(word[:cut], font) > maxWidth {
				cut--
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// measureTextWidth 测量单行文本的像素宽度
func measureTextWidth(s string, font *text.GoTextFace) float64 {
	w, _ := text.Measure(s, font, 0)
	return w
}
