package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpireUnpaidOrdersCommand(t *testing.T) {
	cmd, err := commands.NewExpireUnpaidOrdersCommand(15 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cmd.TTL())

	_, err = commands.NewExpireUnpaidOrdersCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(30 * time.Minute)
	first := newStoredOrder(t, order.AwaitingPayment)
	second := newStoredOrder(t, order.AwaitingPayment)

	cancelled := mock.MatchedBy(func(o *order.Order) bool { return o.Status() == order.Cancelled })
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllAwaitingPaymentSince", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", ctx, cancelled).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireUnpaidOrdersCommandHandler(factory, order.NewPatchTransitionChain())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.AwaitingPayment, first.DomainEvents()[0].From)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_UsesCutoff(t *testing.T) {
	ctx := t.Context()
	ttl := 30 * time.Minute
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(ttl)
	started := time.Now()

	beforeCutoff := mock.MatchedBy(func(before time.Time) bool {
		return !before.After(started.Add(-ttl).Add(time.Minute)) && before.Before(time.Now())
	})
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllAwaitingPaymentSince", ctx, beforeCutoff).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireUnpaidOrdersCommandHandler(factory, order.NewPatchTransitionChain())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, count)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_StopsOnRejection(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(time.Minute)
	// A row that changed to PAID between the query and the update.
	paid := newStoredOrder(t, order.Paid)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllAwaitingPaymentSince", ctx, mock.Anything).Return([]*order.Order{paid}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireUnpaidOrdersCommandHandler(factory, order.NewPatchTransitionChain())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrPaymentAlreadySettled)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(time.Minute)
	queryErr := errors.New("query error")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllAwaitingPaymentSince", ctx, mock.Anything).Return(nil, queryErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireUnpaidOrdersCommandHandler(factory, order.NewPatchTransitionChain())
	_, err := h.Handle(ctx, cmd)

	assert.Same(t, queryErr, err)
}
