package commands_test

import (
	"testing"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "X-Burger", "", "snack", "18.9")
	require.NoError(t, err)
	assert.Equal(t, product.Snack, cmd.Category())
	assert.Equal(t, "18.90", cmd.Price().String())

	_, err = commands.NewCreateProductCommand(kernel.NewUUID(), "X-Burger", "", "pizza", "-1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "amount")
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateProductCommand(kernel.NewUUID(), "Fries", "crispy", "side", "9.50")

		repo := new(MockProductRepository)
		uow := new(MockProductUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateProductCommandHandler(factory)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Fries", created.Name())
		assert.Equal(t, product.Side, created.Category())
		uow.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateProductCommand(kernel.NewUUID(), "Fries", "", "side", "9.50")

		repo := new(MockProductRepository)
		uow := new(MockProductUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("name", "Fries")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateProductCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("blank name never opens a transaction", func(t *testing.T) {
		cmd, _ := commands.NewCreateProductCommand(kernel.NewUUID(), "  ", "", "side", "9.50")
		factory := new(MockProductUoWFactory)

		h := commands.NewCreateProductCommandHandler(factory)
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	t.Run("changes price only", func(t *testing.T) {
		ctx := t.Context()
		current := newStoredProduct(t, "X-Burger", "18.90")
		cmd, _ := commands.NewUpdateProductCommand(current.ID(), patch.New(patch.Replace("/price", "21.00")))

		repriced := mock.MatchedBy(func(p *product.Product) bool {
			return p.Price().String() == "21.00" && p.Name() == "X-Burger"
		})
		repo := new(MockProductRepository)
		uow := new(MockProductUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
			repo.On("Update", ctx, repriced).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateProductCommandHandler(factory, product.NewPatcher())
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "21.00", updated.Price().String())
		assert.Equal(t, "18.90", current.Price().String())
		uow.AssertExpectations(t)
	})

	t.Run("patch error", func(t *testing.T) {
		ctx := t.Context()
		current := newStoredProduct(t, "X-Burger", "18.90")
		cmd, _ := commands.NewUpdateProductCommand(current.ID(), patch.New(patch.Replace("/id", kernel.NewUUID().String())))

		repo := new(MockProductRepository)
		uow := new(MockProductUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateProductCommandHandler(factory, product.NewPatcher())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, patch.ErrPathIsNotAllowed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
