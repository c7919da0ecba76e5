package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

// ── Mock ServiceRepository ──

type mockServiceRepo struct {
	services map[string]*model.Service
	order    []string
	users    *mockUserRepo
	err      error
}

func newMockServiceRepo(users *mockUserRepo) *mockServiceRepo {
	return &mockServiceRepo{services: make(map[string]*model.Service), users: users}
}

func (m *mockServiceRepo) Create(_ context.Context, svc *model.Service) error {
	if m.err != nil {
		return m.err
	}
	if svc.ServiceID == "" {
		svc.ServiceID = mockServiceID(len(m.services) + 1)
	}
	m.services[svc.ServiceID] = svc
	m.order = append(m.order, svc.ServiceID)
	return nil
}

// mockServiceID 生成确定的 UUID 形式服务 ID，第 n 个服务即 ...-00000000000n
func mockServiceID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func (m *mockServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Service, error) {
	return m.GetByID(ctx, id)
}

func (m *mockServiceRepo) List(_ context.Context, serviceType string) ([]model.Service, error) {
	var result []model.Service
	for _, id := range m.order {
		s := *m.services[id]
		if serviceType != "" && string(s.Type) != serviceType {
			continue
		}
		if u, ok := m.users.users[s.ProviderID]; ok {
			s.Provider = u
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockServiceRepo) ListByProvider(_ context.Context, providerID string) ([]model.Service, error) {
	var result []model.Service
	for _, id := range m.order {
		if s := m.services[id]; s.ProviderID == providerID {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	windows   []model.Availability
	createErr error
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{}
}

func (m *mockAvailabilityRepo) Create(_ context.Context, window *model.Availability) error {
	if m.createErr != nil {
		return m.createErr
	}
	if window.AvailabilityID == "" {
		window.AvailabilityID = fmt.Sprintf("avail-%d", len(m.windows)+1)
	}
	m.windows = append(m.windows, *window)
	return nil
}

func (m *mockAvailabilityRepo) ListByServiceAndDay(_ context.Context, serviceID string, dayOfWeek int) ([]model.Availability, error) {
	var result []model.Availability
	for _, w := range m.windows {
		if w.ServiceID == serviceID && w.DayOfWeek == dayOfWeek {
			result = append(result, w)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) ListByService(_ context.Context, serviceID string) ([]model.Availability, error) {
	var result []model.Availability
	for _, w := range m.windows {
		if w.ServiceID == serviceID {
			result = append(result, w)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].StartMinute < result[j].StartMinute
	})
	return result, nil
}

func (m *mockAvailabilityRepo) FindOverlapping(_ context.Context, serviceID string, dayOfWeek, startMinute, endMinute int) (*model.Availability, error) {
	for i := range m.windows {
		w := &m.windows[i]
		if w.ServiceID == serviceID && w.DayOfWeek == dayOfWeek && w.StartMinute < endMinute && w.EndMinute > startMinute {
			return w, nil
		}
	}
	return nil, nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appts     []model.Appointment
	services  *mockServiceRepo
	users     *mockUserRepo
	createErr error
}

func newMockAppointmentRepo(services *mockServiceRepo, users *mockUserRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{services: services, users: users}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if appt.AppointmentID == "" {
		appt.AppointmentID = fmt.Sprintf("appt-%d", len(m.appts)+1)
	}
	m.appts = append(m.appts, *appt)
	return nil
}

func (m *mockAppointmentRepo) ExistsBySlotID(_ context.Context, slotID string) (bool, error) {
	for _, a := range m.appts {
		if a.SlotID == slotID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAppointmentRepo) ListByServiceAndDate(_ context.Context, serviceID, date string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.ServiceID == serviceID && a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByServicesAndDate(_ context.Context, serviceIDs []string, date string) ([]model.Appointment, error) {
	wanted := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = true
	}
	var result []model.Appointment
	for _, a := range m.appts {
		if wanted[a.ServiceID] && a.Date == date {
			a.User = m.users.users[a.UserID]
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *mockAppointmentRepo) ListByUser(_ context.Context, userID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.UserID == userID {
			a.Service = m.services.services[a.ServiceID]
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

// ── Mock Transactor ──

// mockTransactor 直接在同一组 mock 上执行 fn，不模拟回滚
type mockTransactor struct {
	repo  *repository.Repository
	calls int
}

func (m *mockTransactor) Transaction(_ context.Context, fn func(txRepo *repository.Repository) error) error {
	m.calls++
	return fn(m.repo)
}

// ── 组装 ──

type mockRepos struct {
	users        *mockUserRepo
	services     *mockServiceRepo
	availability *mockAvailabilityRepo
	appointments *mockAppointmentRepo
	tx           *mockTransactor
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	services := newMockServiceRepo(users)
	m := &mockRepos{
		users:        users,
		services:     services,
		availability: newMockAvailabilityRepo(),
		appointments: newMockAppointmentRepo(services, users),
		tx:           &mockTransactor{},
	}
	repo := &repository.Repository{
		User:         m.users,
		Service:      m.services,
		Availability: m.availability,
		Appointment:  m.appointments,
		Tx:           m.tx,
	}
	m.tx.repo = repo
	return repo, m
}

// seedProviderService 创建一个提供者及其名下的服务
func (m *mockRepos) seedProviderService(duration int) (*model.User, *model.Service) {
	provider := &model.User{Name: "Dr. Rao", Email: "rao@example.com", Role: model.RoleServiceProvider}
	_ = m.users.Create(context.Background(), provider)
	svc := &model.Service{
		Name:            "General Checkup",
		Type:            model.ServiceTypeMedical,
		DurationMinutes: duration,
		ProviderID:      provider.UserID,
	}
	_ = m.services.Create(context.Background(), svc)
	return provider, svc
}
