package services

import (
	"context"
	"errors"
	"sync/atomic"

	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"

	"github.com/google/uuid"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repositories.MedicalRecordRepositoryContract = (*MockMedicalRecordRepository)(nil)
	_ repositories.PatientRepositoryContract       = (*MockPatientRepository)(nil)
	_ repositories.UserRepositoryContract          = (*MockUserRepository)(nil)
)

// MockMedicalRecordRepository is a mock implementation of
// MedicalRecordRepositoryContract.
type MockMedicalRecordRepository struct {
	CreateFunc          func(ctx context.Context, record *entities.MedicalRecord) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*entities.MedicalRecord, error)
	FindByPatientIDFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.MedicalRecord, error)

	CreateFuncCallCount int32
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *entities.MedicalRecord) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockMedicalRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MedicalRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entities.MedicalRecord, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, errors.New("FindByPatientIDFunc not implemented in mock")
}

// MockPatientRepository is a mock implementation of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc  func(ctx context.Context, patient *entities.Patient) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	ListAllFunc func(ctx context.Context) ([]*entities.Patient, error)

	CreateFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

// MockUserRepository is a mock implementation of UserRepositoryContract.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entities.User) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entities.User, error)

	CreateFuncCallCount int32
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}
