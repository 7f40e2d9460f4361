package product_test

import (
	"testing"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestCategoryFromString(t *testing.T) {
	for _, category := range product.Categories() {
		parsed, err := product.CategoryFromString(category.String())
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	parsed, err := product.CategoryFromString("DRINK")
	require.NoError(t, err)
	assert.Equal(t, product.Drink, parsed)

	_, err = product.CategoryFromString("inexistente")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, product.UnknownCategory.Validate())
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "X-Burger", "bun, patty, cheese", product.Snack, mustMoney(t, "18.9"))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "X-Burger", p.Name())
		assert.Equal(t, product.Snack, p.Category())
		assert.Equal(t, "18.90", p.Price().String())
	})

	t.Run("should join field errors", func(t *testing.T) {
		p, err := product.NewProduct(kernel.UUID{}, " ", "", product.UnknownCategory, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "category is invalid")
	})
}

func TestProduct_PatchAndRevise(t *testing.T) {
	current, err := product.NewProduct(kernel.NewUUID(), "Fries", "", product.Side, mustMoney(t, "9.50"))
	require.NoError(t, err)
	patcher := product.NewPatcher()

	t.Run("should change price and category", func(t *testing.T) {
		candidate, err := patcher.Apply(current.Snapshot(), patch.New(
			patch.Replace("/price", "11.00"),
			patch.Replace("/category", "snack"),
		))
		require.NoError(t, err)

		revised, err := current.Revise(candidate)

		require.NoError(t, err)
		assert.Equal(t, "11.00", revised.Price().String())
		assert.Equal(t, product.Snack, revised.Category())
		assert.Equal(t, "Fries", revised.Name())
		assert.Equal(t, "9.50", current.Price().String())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := patcher.Apply(current.Snapshot(), patch.New(patch.Replace("/price", "-1.00")))

		require.ErrorIs(t, err, patch.ErrDocumentIsIncompatible)
	})

	t.Run("should reject null price and category", func(t *testing.T) {
		for _, path := range []string{"/price", "/category", "/name"} {
			candidate, err := patcher.Apply(current.Snapshot(), patch.New(patch.Replace(path, nil)))

			require.ErrorIs(t, err, patch.ErrValueIsNull, path)
			assert.Equal(t, current.Snapshot(), candidate)
		}
		assert.Equal(t, "9.50", current.Price().String())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := patcher.Apply(current.Snapshot(), patch.New(patch.Replace("/category", "pizza")))

		require.ErrorIs(t, err, patch.ErrPatchIsInvalid)
	})

	t.Run("should reject add on a replace-only path", func(t *testing.T) {
		_, err := patcher.Apply(current.Snapshot(), patch.New(patch.Add("/name", "Chips")))

		require.ErrorIs(t, err, patch.ErrPathIsNotAllowed)
	})
}
