package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockMessageRepo is a mock implementation of repo.MessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepo) List(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func validMessage() MessageInput {
	return MessageInput{
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   "Hello",
		Body:      "Nice portfolio!",
		IPAddress: "1.2.3.4",
	}
}

func TestCreateMessage(t *testing.T) {
	repo := new(MockMessageRepo)
	rec := &recorderStub{}
	svc := NewMessageService(repo, rec)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

	m, err := svc.Create(context.Background(), validMessage())
	assert.NoError(t, err)
	assert.Equal(t, "1.2.3.4", m.IPAddress)
	assert.Contains(t, rec.recorded(), "New Message")
}

func TestCreateMessageValidation(t *testing.T) {
	svc := NewMessageService(new(MockMessageRepo), &recorderStub{})
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*MessageInput)
		message string
	}{
		{"missing name", func(in *MessageInput) { in.Name = "" }, "Name is required"},
		{"long name", func(in *MessageInput) { in.Name = strings.Repeat("a", 51) }, "Name must be 50 characters or fewer"},
		{"bad email", func(in *MessageInput) { in.Email = "not-an-email" }, "Please provide a valid email"},
		{"missing subject", func(in *MessageInput) { in.Subject = "" }, "Subject is required"},
		{"missing body", func(in *MessageInput) { in.Body = "" }, "Message is required"},
		{"long body", func(in *MessageInput) { in.Body = strings.Repeat("a", 1001) }, "Message must be 1000 characters or fewer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validMessage()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestDeleteMessageNotFound(t *testing.T) {
	repo := new(MockMessageRepo)
	svc := NewMessageService(repo, &recorderStub{})

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "Message not found")
}
