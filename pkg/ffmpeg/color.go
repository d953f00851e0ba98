package ffmpeg

import (
	"fmt"
	"strings"
)

// ToASSColor 把RGB十六进制颜色转成libass期望的 &H[AA]BBGGRR& 形式
// 输入为 #RRGGBB 或 #RRGGBBAA（#可省略），仅做字节序重排，不改数值
func ToASSColor(hexColor string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(h) != 6 && len(h) != 8 {
		return "", fmt.Errorf("invalid hex color %q: expect 6 or 8 hex digits", hexColor)
	}
	for _, c := range h {
		if !isHexDigit(c) {
			return "", fmt.Errorf("invalid hex color %q: non-hex character %q", hexColor, c)
		}
	}
	h = strings.ToUpper(h)
	r, g, b := h[0:2], h[2:4], h[4:6]
	if len(h) == 8 {
		alpha := h[6:8]
		return fmt.Sprintf("&H%s%s%s%s&", alpha, b, g, r), nil
	}
	return fmt.Sprintf("&H%s%s%s&", b, g, r), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
