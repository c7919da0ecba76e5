package slot

import (
	"regexp"
	"strings"
	"time"
)

const idSeparator = "_"

var slotTimePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ID 解析后的 slotId：{serviceId}_{YYYY-MM-DD}_{HH:MM}
type ID struct {
	ServiceID string
	Date      string
	StartTime string
}

// FormatID 生成 slotId
func FormatID(serviceID, date, startTime string) string {
	return serviceID + idSeparator + date + idSeparator + startTime
}

// String 还原为 slotId
func (id ID) String() string {
	return FormatID(id.ServiceID, id.Date, id.StartTime)
}

// StartMinute 起始时刻的分钟数
func (id ID) StartMinute() int {
	return ToMinutes(id.StartTime)
}

// StartAt 在 loc 时区下的起始时间点
func (id ID) StartAt(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", id.Date+" "+id.StartTime, loc)
	return t
}

// ParseID 解析 slotId。
// 字段数不为 3 返回 ErrInvalidSlotID；
// 时刻不符合 HH:MM、或与日期组合后不是合法日期时间，返回 ErrInvalidSlotTime。
func ParseID(raw string) (ID, error) {
	parts := strings.Split(raw, idSeparator)
	if len(parts) != 3 {
		return ID{}, ErrInvalidSlotID
	}
	serviceID, date, startTime := parts[0], parts[1], parts[2]

	if !slotTimePattern.MatchString(startTime) || !datePattern.MatchString(date) {
		return ID{}, ErrInvalidSlotTime
	}
	if _, err := time.Parse("2006-01-02 15:04", date+" "+startTime); err != nil {
		return ID{}, ErrInvalidSlotTime
	}

	return ID{ServiceID: serviceID, Date: date, StartTime: startTime}, nil
}
