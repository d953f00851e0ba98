package subtitle

import (
	"fmt"
	"math"
)

// FormatTime 把秒数格式化为SRT时间戳 HH:MM:SS,mmm
// 先四舍五入到整毫秒再拆分字段，避免float64表示误差把 3661.001 这类
// 值格式化成低一毫秒
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMs := int64(math.Round(seconds * 1000))
	hours := totalMs / 3600000
	minutes := totalMs % 3600000 / 60000
	secs := totalMs % 60000 / 1000
	millis := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
