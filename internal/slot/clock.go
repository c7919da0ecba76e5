package slot

import (
	"fmt"
	"regexp"
	"time"
)

// MinutesPerDay 一天的分钟数，时刻取值范围为 [0, MinutesPerDay)
const MinutesPerDay = 24 * 60

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsClock 判断 s 是否为合法的 24 小时制 "HH:MM"
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ToMinutes 将 "HH:MM" 转换为距午夜的分钟数。
// 调用方需保证 t 已通过 IsClock 校验。
func ToMinutes(t string) int {
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}

// ToClock 将距午夜的分钟数转换为零填充的 "HH:MM"，仅对 [0, 1440) 有定义。
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Weekday 返回日历日期 "YYYY-MM-DD" 对应的星期（0=周日 … 6=周六）。
// 日期按无时区的公历日期处理，不依赖本地时钟。
func Weekday(date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

// ParseDate 校验并解析 "YYYY-MM-DD"，不存在的日期（如 2024-02-30）视为非法
func ParseDate(date string) (time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
