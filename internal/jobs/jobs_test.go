package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/jobs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpireHandler struct{ mock.Mock }

func (m *MockExpireHandler) Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockPublishHandler struct{ mock.Mock }

func (m *MockPublishHandler) Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_ExpireUnpaidOrdersJob_RunPassesConfiguredTTL(t *testing.T) {
	// Arrange
	handler := &MockExpireHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpireUnpaidOrdersCommand) bool {
		return cmd.TTL() == 15*time.Minute
	})).Return(3, nil).Once()
	job := jobs.NewExpireUnpaidOrdersJob(handler, 15*time.Minute, discardLogger())

	// Act
	job.Run(context.Background())

	// Assert
	handler.AssertExpectations(t)
}

func Test_ExpireUnpaidOrdersJob_RunSwallowsHandlerError(t *testing.T) {
	handler := &MockExpireHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()
	job := jobs.NewExpireUnpaidOrdersJob(handler, time.Minute, discardLogger())

	assert.NotPanics(t, func() { job.Run(context.Background()) })
	handler.AssertExpectations(t)
}

func Test_ExpireUnpaidOrdersJob_StartRejectsNonPositiveTTL(t *testing.T) {
	job := jobs.NewExpireUnpaidOrdersJob(&MockExpireHandler{}, 0, discardLogger())

	err := job.Start()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func Test_OutboxRelayJob_RunDrainsUntilShortBatch(t *testing.T) {
	// Arrange
	handler := &MockPublishHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(2, nil).Twice()
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Once()
	job := jobs.NewOutboxRelayJob(handler, 2, discardLogger())

	// Act
	job.Run(context.Background())

	// Assert
	handler.AssertExpectations(t)
	handler.AssertNumberOfCalls(t, "Handle", 3)
}

func Test_OutboxRelayJob_RunStopsOnError(t *testing.T) {
	handler := &MockPublishHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("broker down")).Once()
	job := jobs.NewOutboxRelayJob(handler, 10, discardLogger())

	job.Run(context.Background())

	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func Test_OutboxRelayJob_RunStopsOnEmptyOutbox(t *testing.T) {
	handler := &MockPublishHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PublishOutboxCommand) bool {
		return cmd.BatchSize() == 50
	})).Return(0, nil).Once()
	job := jobs.NewOutboxRelayJob(handler, 50, discardLogger())

	job.Run(context.Background())

	handler.AssertExpectations(t)
}

func Test_OutboxRelayJob_StartRejectsInvalidBatchSize(t *testing.T) {
	job := jobs.NewOutboxRelayJob(&MockPublishHandler{}, 0, discardLogger())

	err := job.Start()

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func Test_JobManager_StartAllFailsAndStopsStartedJobs(t *testing.T) {
	// Arrange
	publish := &MockPublishHandler{}
	publish.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	manager := jobs.NewJobManager(&MockExpireHandler{}, 0, publish, 10, discardLogger())

	// Act
	err := manager.StartAll()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start expire unpaid orders job")
}

func Test_JobManager_StartAllAndStopAll(t *testing.T) {
	publish := &MockPublishHandler{}
	publish.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	expire := &MockExpireHandler{}
	expire.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	manager := jobs.NewJobManager(expire, time.Minute, publish, 10, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
