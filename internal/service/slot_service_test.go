package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
)

// ── 测试辅助 ──

func setupTestSlotService() (SlotService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewSlotService(repo, NewAvailabilityService(repo, zap.NewNop()), zap.NewNop()), mocks
}

func addWindow(m *mockRepos, serviceID string, day, start, end int) {
	_ = m.availability.Create(context.Background(), &model.Availability{
		ServiceID:   serviceID,
		DayOfWeek:   day,
		StartTime:   slot.ToClock(start),
		EndTime:     slot.ToClock(end),
		StartMinute: start,
		EndMinute:   end,
	})
}

// ── Generate 测试 ──

func TestSlotService_Generate_MondayWindow(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)
	addWindow(mocks, service.ServiceID, 1, 540, 600) // 周一 09:00-10:00

	resp, err := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if len(resp.Slots) != 2 {
		t.Fatalf("期望 2 个时段，实际 %d", len(resp.Slots))
	}
	if resp.Slots[0].SlotID != service.ServiceID+"_2024-06-03_09:00" ||
		resp.Slots[1].SlotID != service.ServiceID+"_2024-06-03_09:30" {
		t.Errorf("slotId 不符: %+v", resp.Slots)
	}
	if resp.Slots[1].EndTime != "10:00" {
		t.Errorf("期望最后一个时段结束于 10:00，实际 %s", resp.Slots[1].EndTime)
	}
}

func TestSlotService_Generate_ExcludesBooked(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)
	addWindow(mocks, service.ServiceID, 1, 540, 600)
	_ = mocks.appointments.Create(context.Background(), &model.Appointment{
		SlotID: service.ServiceID + "_2024-06-03_09:00", ServiceID: service.ServiceID, UserID: "customer",
		Date: "2024-06-03", StartTime: "09:00", EndTime: "09:30", Status: model.AppointmentStatusBooked,
	})

	resp, err := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if len(resp.Slots) != 1 || resp.Slots[0].StartTime != "09:30" {
		t.Errorf("期望仅剩 09:30 时段，实际 %+v", resp.Slots)
	}
}

func TestSlotService_Generate_OtherDateNotAffected(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)
	addWindow(mocks, service.ServiceID, 1, 540, 600)
	// 下一个周一的预约不影响本周一
	_ = mocks.appointments.Create(context.Background(), &model.Appointment{
		SlotID: service.ServiceID + "_2024-06-10_09:00", ServiceID: service.ServiceID, UserID: "customer",
		Date: "2024-06-10", StartTime: "09:00", EndTime: "09:30", Status: model.AppointmentStatusBooked,
	})

	resp, _ := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	if len(resp.Slots) != 2 {
		t.Errorf("期望 2 个时段，实际 %d", len(resp.Slots))
	}
}

func TestSlotService_Generate_NoWindows(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)
	addWindow(mocks, service.ServiceID, 1, 540, 600)

	// 2024-06-04 为周二
	resp, err := svc.Generate(context.Background(), service.ServiceID, "2024-06-04")
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if resp.Slots == nil || len(resp.Slots) != 0 {
		t.Errorf("期望空的非 nil 列表，实际 %#v", resp.Slots)
	}
}

func TestSlotService_Generate_WindowOrderPreserved(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(60)
	addWindow(mocks, service.ServiceID, 1, 840, 900) // 14:00-15:00 先写入
	addWindow(mocks, service.ServiceID, 1, 540, 600) // 09:00-10:00 后写入

	resp, _ := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	if len(resp.Slots) != 2 || resp.Slots[0].StartTime != "14:00" || resp.Slots[1].StartTime != "09:00" {
		t.Errorf("期望保持窗口写入顺序，实际 %+v", resp.Slots)
	}
}

func TestSlotService_Generate_Idempotent(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)
	addWindow(mocks, service.ServiceID, 1, 540, 720)

	first, _ := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	second, _ := svc.Generate(context.Background(), service.ServiceID, "2024-06-03")
	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("两次结果长度不同: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Errorf("第 %d 个时段不同: %+v vs %+v", i, first.Slots[i], second.Slots[i])
		}
	}
}

func TestSlotService_Generate_Errors(t *testing.T) {
	svc, mocks := setupTestSlotService()
	_, service := mocks.seedProviderService(30)

	_, err := svc.Generate(context.Background(), "nonexistent", "2024-06-03")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("期望 ErrServiceNotFound，实际: %v", err)
	}

	for _, date := range []string{"", "2024-6-3", "2024-02-30", "not-a-date"} {
		_, err := svc.Generate(context.Background(), service.ServiceID, date)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("date=%q 期望 ErrInvalidDate，实际: %v", date, err)
		}
	}
}

// stubWindowSource 记录 WindowsFor 的调用参数
type stubWindowSource struct {
	AvailabilityService
	windows   []slot.Window
	err       error
	gotID     string
	gotDay    int
	callCount int
}

func (s *stubWindowSource) WindowsFor(_ context.Context, serviceID string, dayOfWeek int) ([]slot.Window, error) {
	s.callCount++
	s.gotID, s.gotDay = serviceID, dayOfWeek
	return s.windows, s.err
}

func TestSlotService_Generate_ReadsWindowsFor(t *testing.T) {
	repo, mocks := newMockRepository()
	_, service := mocks.seedProviderService(30)
	source := &stubWindowSource{windows: []slot.Window{{Start: "11:00", End: "12:00"}}}
	svc := NewSlotService(repo, source, zap.NewNop())

	// 2024-06-05 为周三
	resp, err := svc.Generate(context.Background(), service.ServiceID, "2024-06-05")
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if source.callCount != 1 || source.gotID != service.ServiceID || source.gotDay != 3 {
		t.Errorf("期望以 (%s, 3) 调用一次，实际 %d 次 (%s, %d)", service.ServiceID, source.callCount, source.gotID, source.gotDay)
	}
	if len(resp.Slots) != 2 || resp.Slots[0].StartTime != "11:00" {
		t.Errorf("期望 11:00 起的 2 个时段，实际 %+v", resp.Slots)
	}
}

func TestSlotService_Generate_WindowSourceError(t *testing.T) {
	repo, mocks := newMockRepository()
	_, service := mocks.seedProviderService(30)
	boom := errors.New("db down")
	svc := NewSlotService(repo, &stubWindowSource{err: boom}, zap.NewNop())

	if _, err := svc.Generate(context.Background(), service.ServiceID, "2024-06-03"); !errors.Is(err, boom) {
		t.Errorf("期望透传窗口查询错误，实际: %v", err)
	}
}

func TestSlotService_Generate_NonUUIDServiceID_SQLite(t *testing.T) {
	repo := repository.NewRepository(openServiceTestDB(t))
	log := zap.NewNop()
	svc := NewSlotService(repo, NewAvailabilityService(repo, log), log)

	for _, id := range []string{"abc", "svc-1", ""} {
		if _, err := svc.Generate(context.Background(), id, "2024-06-03"); !errors.Is(err, ErrServiceNotFound) {
			t.Errorf("serviceId=%q 期望 ErrServiceNotFound，实际: %v", id, err)
		}
	}
}
