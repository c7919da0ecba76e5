package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService(loc *time.Location) (ExportService, *mockRepos) {
	repo, mocks := newMockRepository()
	logger := zap.NewNop()
	svc := NewExportService(NewAppointmentService(repo, logger), NewScheduleService(repo, logger), loc, logger)
	svc.(*exportService).now = func() time.Time { return fixedNow }
	return svc, mocks
}

// ── ExportProviderSchedule 测试 ──

func TestExportService_ExportProviderSchedule(t *testing.T) {
	svc, mocks := setupTestExportService(time.UTC)
	provider, checkup := mocks.seedProviderService(30)
	customer := seedCustomer(mocks)
	seedBookings(mocks, checkup, customer,
		[3]string{"2024-06-03", "09:00", "09:30"},
		[3]string{"2024-06-03", "09:30", "10:00"},
	)

	buf, filename, err := svc.ExportProviderSchedule(context.Background(), "2024-06-03", provider.UserID, model.RoleServiceProvider)
	if err != nil {
		t.Fatalf("ExportProviderSchedule 应成功: %v", err)
	}
	if filename != "schedule_2024-06-03.xlsx" {
		t.Errorf("期望文件名 schedule_2024-06-03.xlsx，实际 %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件不是合法 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("日程")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 标题 + 表头 + 2 条预约
	if len(rows) != 4 {
		t.Fatalf("期望 4 行，实际 %d: %v", len(rows), rows)
	}
	if rows[2][1] != "09:00-09:30" || rows[2][2] != "Asha" || rows[2][3] != "BOOKED" {
		t.Errorf("首条预约行不符: %v", rows[2])
	}
}

func TestExportService_ExportProviderSchedule_Forbidden(t *testing.T) {
	svc, _ := setupTestExportService(time.UTC)

	_, _, err := svc.ExportProviderSchedule(context.Background(), "2024-06-03", "customer-1", model.RoleUser)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("期望 ErrForbidden，实际: %v", err)
	}
}

// ── ExportMyCalendar 测试 ──

func TestExportService_ExportMyCalendar(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Skipf("缺少时区数据: %v", err)
	}
	svc, mocks := setupTestExportService(shanghai)
	_, checkup := mocks.seedProviderService(30)
	customer := seedCustomer(mocks)
	seedBookings(mocks, checkup, customer, [3]string{"2024-06-03", "09:00", "09:30"})

	buf, filename, err := svc.ExportMyCalendar(context.Background(), customer.UserID)
	if err != nil {
		t.Fatalf("ExportMyCalendar 应成功: %v", err)
	}
	if filename != "appointments.ics" {
		t.Errorf("期望文件名 appointments.ics，实际 %s", filename)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("生成的日历无法解析: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("期望 1 个 VEVENT，实际 %d", len(events))
	}

	evt := events[0]
	if evt.Id() != mocks.appointments.appts[0].AppointmentID {
		t.Errorf("期望 UID 为预约 ID，实际 %s", evt.Id())
	}
	start, err := evt.GetStartAt()
	if err != nil {
		t.Fatalf("读取 DTSTART 失败: %v", err)
	}
	// 上海 09:00 = UTC 01:00
	want := time.Date(2024, 6, 3, 1, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("期望 DTSTART=%v，实际 %v", want, start)
	}
	if summary := evt.GetProperty(ics.ComponentPropertySummary); summary == nil || summary.Value != "General Checkup" {
		t.Errorf("期望 SUMMARY=General Checkup，实际 %+v", summary)
	}
}

func TestExportService_ExportMyCalendar_Empty(t *testing.T) {
	svc, _ := setupTestExportService(time.UTC)

	buf, _, err := svc.ExportMyCalendar(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ExportMyCalendar 应成功: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") {
		t.Error("空日历也应输出 VCALENDAR")
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("无预约时不应输出 VEVENT")
	}
}
