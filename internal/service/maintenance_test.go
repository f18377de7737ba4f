package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"familiaconnect/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMaintenanceService_CleanupOldEvents(t *testing.T) {
	tests := []struct {
		name          string
		removed       int64
		mockError     error
		expectedError bool
	}{
		{
			name:    "successful cleanup",
			removed: 4,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockEventRepository)
			mockRepo.On("CleanOldEvents", 365).Return(tt.removed, tt.mockError)

			service := NewMaintenanceService(mockRepo, 365, testutil.NewTestLogger())

			removed, err := service.CleanupOldEvents()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Zero(t, removed)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.removed, removed)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMaintenanceService_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockRepo := new(testutil.MockEventRepository)
	ran := make(chan struct{}, 1)
	mockRepo.On("CleanOldEvents", 30).Return(int64(0), nil).Run(func(mock.Arguments) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	service := NewMaintenanceService(mockRepo, 30, testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not run at startup")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	mockRepo.AssertNumberOfCalls(t, "CleanOldEvents", 1)
}
