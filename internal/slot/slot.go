// Package slot 负责可预约时段的纯计算：时刻换算、按周可用时间窗口生成时段网格、
// 扣除已有预约，以及 slotId 的生成与解析。本包不访问存储。
package slot

import "errors"

var (
	ErrInvalidDate     = errors.New("日期格式无效")
	ErrInvalidSlotID   = errors.New("slotId 格式无效")
	ErrInvalidSlotTime = errors.New("slotId 时间无效")
)

// Window 一个可用时间窗口，Start/End 为 "HH:MM"，Start < End
type Window struct {
	Start string
	End   string
}

// Interval 半开区间 [Start, End)，单位为距午夜分钟数
type Interval struct {
	Start int
	End   int
}

// Overlaps 半开区间相交判定：a.Start < b.End && a.End > b.Start
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Slot 一个可预约时段
type Slot struct {
	SlotID    string `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Generate 按窗口顺序生成 date 当天的空闲时段。
//
// 每个窗口从起点开始以 duration 为步长切分，只保留完整落在窗口内、
// 且不与任何 booked 区间相交的时段。窗口之间不做全局重排：
// 同一天的窗口在写入时已保证互不重叠，两种顺序在实际数据上一致。
func Generate(serviceID, date string, duration int, windows []Window, booked []Interval) []Slot {
	slots := make([]Slot, 0)
	if duration <= 0 {
		return slots
	}

	for _, w := range windows {
		end := ToMinutes(w.End)
		for cursor := ToMinutes(w.Start); cursor+duration <= end; cursor += duration {
			candidate := Interval{Start: cursor, End: cursor + duration}
			if overlapsAny(candidate, booked) {
				continue
			}
			start := ToClock(candidate.Start)
			slots = append(slots, Slot{
				SlotID:    FormatID(serviceID, date, start),
				StartTime: start,
				EndTime:   ToClock(candidate.End),
			})
		}
	}
	return slots
}

func overlapsAny(candidate Interval, booked []Interval) bool {
	for _, b := range booked {
		if b.Overlaps(candidate) {
			return true
		}
	}
	return false
}
