package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
)

func TestCatalogRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewCatalogRepository()

	apple, err := r.CreateBrand(ctx, &model.Brand{Name: "Apple"})
	require.NoError(t, err)
	_, err = r.CreateBrand(ctx, &model.Brand{Name: "apple"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	_, err = r.CreateModel(ctx, &model.DeviceModel{BrandID: uuid.New(), Name: "X"})
	assert.ErrorIs(t, err, model.ErrBrandNotFound)

	_, err = r.CreateModel(ctx, &model.DeviceModel{BrandID: apple, Name: "iPhone 12"})
	require.NoError(t, err)
	_, err = r.CreateModel(ctx, &model.DeviceModel{BrandID: apple, Name: "IPHONE 12"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
	_, err = r.CreateModel(ctx, &model.DeviceModel{BrandID: apple, Name: "iPhone 13"})
	require.NoError(t, err)

	b, err := r.BrandByID(ctx, apple)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.ModelCount)

	brands, err := r.Brands(ctx, "APP")
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, int64(2), brands[0].ModelCount)

	models, err := r.Models(ctx, &apple)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "iPhone 12", models[0].Name)

	_, err = r.ModelByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrModelNotFound)
	_, err = r.BrandByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrBrandNotFound)
}

func TestSettingsRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewSettingsRepository()

	s, err := r.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, s.Name)

	require.NoError(t, r.Update(ctx, &model.WorkshopSettings{Name: "FixIt"}))

	s, err = r.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FixIt", s.Name)
	assert.False(t, s.UpdatedAt.IsZero())
}
