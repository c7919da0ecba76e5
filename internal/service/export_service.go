package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// calendarProductID iCalendar PRODID
const calendarProductID = "-//slotbook//appointments//CN"

// ExportService 导出业务接口
//
// 设计说明：
//   - 提供者日程导出为 Excel (.xlsx)，每条预约一行
//   - 用户预约导出为 iCalendar (.ics)，每条预约一个 VEVENT
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportProviderSchedule 导出提供者某日日程为 Excel
	ExportProviderSchedule(ctx context.Context, date, callerID, role string) (*bytes.Buffer, string, error)
	// ExportMyCalendar 导出调用者的预约为 iCalendar
	ExportMyCalendar(ctx context.Context, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	appointments AppointmentService
	schedule     ScheduleService
	loc          *time.Location
	now          func() time.Time
	logger       *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(appointments AppointmentService, schedule ScheduleService, loc *time.Location, logger *zap.Logger) ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &exportService{
		appointments: appointments,
		schedule:     schedule,
		loc:          loc,
		now:          time.Now,
		logger:       logger,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportProviderSchedule — 导出提供者日程为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "日程"
//   - 第 1 行标题，第 2 行表头：服务 | 时间 | 客户 | 状态
//   - 数据行按服务分组，组内按开始时间升序；无预约的服务输出一行 "-"
func (s *exportService) ExportProviderSchedule(ctx context.Context, date, callerID, role string) (*bytes.Buffer, string, error) {
	sched, err := s.schedule.ProviderSchedule(ctx, date, callerID, role)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "日程"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s 日程", sched.Date))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	for i, title := range []string{"服务", "时间", "客户", "状态"} {
		f.SetCellValue(sheetName, cell(colName(i), row), title)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)

	// 数据行
	row = 3
	for _, svc := range sched.Services {
		if len(svc.Appointments) == 0 {
			f.SetCellValue(sheetName, cell("A", row), svc.ServiceName)
			f.SetCellValue(sheetName, cell("B", row), "-")
			row++
			continue
		}
		for _, a := range svc.Appointments {
			f.SetCellValue(sheetName, cell("A", row), svc.ServiceName)
			f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", a.StartTime, a.EndTime))
			f.SetCellValue(sheetName, cell("C", row), a.UserName)
			f.SetCellValue(sheetName, cell("D", row), a.Status)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", sched.Date)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportMyCalendar — 导出用户预约为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// UID 为预约 ID，DTSTART/DTEND 由预约的日期与时刻按 loc 时区换算
func (s *exportService) ExportMyCalendar(ctx context.Context, callerID string) (*bytes.Buffer, string, error) {
	appts, err := s.appointments.ListMine(ctx, callerID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	stamp := s.now().UTC()
	for _, a := range appts {
		start, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.StartTime, s.loc)
		if err != nil {
			s.logger.Warn("跳过时间无效的预约", zap.String("appointment_id", a.ID), zap.Error(err))
			continue
		}
		end, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.EndTime, s.loc)
		if err != nil {
			s.logger.Warn("跳过时间无效的预约", zap.String("appointment_id", a.ID), zap.Error(err))
			continue
		}

		event := cal.AddEvent(a.ID)
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(a.Service.Name)
		event.SetDescription(fmt.Sprintf("%s · %s", a.Service.Type, a.SlotID))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "appointments.ics", nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
