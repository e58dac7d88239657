package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// authContext builds a context carrying the identity the auth middleware
// would have attached.
func authContext(userID uuid.UUID, role entity.Role) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "test-token-id")
	return ctx
}

type mockUserRepository struct {
	createFn        func(ctx context.Context, user *entity.User) error
	findByEmailFn   func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findPaginatedFn func(ctx context.Context, filter repository.UserFilter) ([]entity.User, int64, error)
	updateFn        func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindPaginated(ctx context.Context, filter repository.UserFilter) ([]entity.User, int64, error) {
	if m.findPaginatedFn != nil {
		return m.findPaginatedFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockPatientRepository struct {
	createFn           func(ctx context.Context, patient *entity.Patient) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	findByNationalIDFn func(ctx context.Context, nationalID string) (*entity.Patient, error)
	findPaginatedFn    func(ctx context.Context, filter repository.PatientFilter) ([]entity.Patient, int64, error)
	updateFn           func(ctx context.Context, patient *entity.Patient) error
	deleteFn           func(ctx context.Context, patient *entity.Patient) error
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.createFn != nil {
		return m.createFn(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Patient, error) {
	if m.findByNationalIDFn != nil {
		return m.findByNationalIDFn(ctx, nationalID)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindPaginated(ctx context.Context, filter repository.PatientFilter) ([]entity.Patient, int64, error) {
	if m.findPaginatedFn != nil {
		return m.findPaginatedFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, patient *entity.Patient) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, patient)
	}
	return nil
}

type mockAppointmentRepository struct {
	createFn        func(ctx context.Context, appointment *entity.Appointment) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findPaginatedFn func(ctx context.Context, filter repository.AppointmentFilter) ([]entity.Appointment, int64, error)
	updateFn        func(ctx context.Context, appointment *entity.Appointment) error
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindPaginated(ctx context.Context, filter repository.AppointmentFilter) ([]entity.Appointment, int64, error) {
	if m.findPaginatedFn != nil {
		return m.findPaginatedFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, appointment)
	}
	return nil
}

type mockAuditLogRepository struct {
	createFn   func(ctx context.Context, log *entity.AuditLog) error
	findAllFn  func(ctx context.Context) ([]entity.AuditLog, error)
	findByIDFn func(ctx context.Context, id int64) (*entity.AuditLog, error)
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if m.createFn != nil {
		return m.createFn(ctx, log)
	}
	return nil
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

// mockTokenStore keeps issued token ids in memory so revocation can be
// asserted without Redis.
type mockTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{tokens: make(map[string]bool)}
}

func (m *mockTokenStore) key(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s:%s:%s", tokenType, userID, tokenID)
}

func (m *mockTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[m.key(userID, tokenID, tokenType)] = true
	return nil
}

func (m *mockTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[m.key(userID, tokenID, tokenType)], nil
}

func (m *mockTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, m.key(userID, tokenID, tokenType))
	return nil
}

func (m *mockTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.tokens {
		delete(m.tokens, key)
	}
	return nil
}

func (m *mockTokenStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

// mockAuditService records the actions it was asked to log.
type mockAuditService struct {
	mu      sync.Mutex
	actions []string
}

func (m *mockAuditService) record(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
}

func (m *mockAuditService) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.actions...)
}

func (m *mockAuditService) Log(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) error {
	m.record(action)
	return nil
}

func (m *mockAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	m.record(action)
	return nil
}

func (m *mockAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	m.record(action)
	return nil
}

func (m *mockAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	m.record(action)
	return nil
}
