package part

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/service/mocks"
)

type deps struct {
	repo    *mocks.MockPartRepository
	ledger  *mocks.MockRestocker
	catalog *mocks.MockCatalogReader
}

func newService(t *testing.T) (*service, deps) {
	d := deps{
		repo:    mocks.NewMockPartRepository(t),
		ledger:  mocks.NewMockRestocker(t),
		catalog: mocks.NewMockCatalogReader(t),
	}

	return NewPartService(d.repo, d.ledger, d.catalog, time.Second, time.Second), d
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	brandID, modelID := uuid.New(), uuid.New()
	device := &model.DeviceModel{ID: modelID, BrandID: brandID, Name: gofakeit.Word()}

	valid := func() model.CreatePartParams {
		return model.CreatePartParams{
			Name:          "  " + gofakeit.ProductName() + " ",
			Category:      "Display",
			BrandID:       brandID,
			ModelID:       modelID,
			Quantity:      5,
			PurchasePrice: decimal.NewFromInt(20),
			SellingPrice:  decimal.NewFromInt(30),
		}
	}
	negative := int64(-1)
	custom := int64(2)

	type testCase struct {
		name   string
		params func() model.CreatePartParams
		setup  func(d deps)
		assert func(t *testing.T, p *model.SparePart, err error)
	}

	tests := []testCase{
		{
			name: "validation error: empty name",
			params: func() model.CreatePartParams {
				p := valid()
				p.Name = " "
				return p
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, p)
			},
		},
		{
			name: "validation error: negative quantity",
			params: func() model.CreatePartParams {
				p := valid()
				p.Quantity = -1
				return p
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: zero purchase price",
			params: func() model.CreatePartParams {
				p := valid()
				p.PurchasePrice = decimal.Zero
				return p
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: selling below purchase",
			params: func() model.CreatePartParams {
				p := valid()
				p.SellingPrice = decimal.NewFromInt(15)
				return p
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: negative threshold",
			params: func() model.CreatePartParams {
				p := valid()
				p.LowStockThreshold = &negative
				return p
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:   "not found: unknown model",
			params: valid,
			setup: func(d deps) {
				d.catalog.On("ModelByID", mock.Anything, modelID).
					Return((*model.DeviceModel)(nil), model.ErrModelNotFound).Once()
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrModelNotFound)
			},
		},
		{
			name: "validation error: model of another brand",
			params: func() model.CreatePartParams {
				p := valid()
				p.BrandID = uuid.New()
				return p
			},
			setup: func(d deps) {
				d.catalog.On("ModelByID", mock.Anything, modelID).Return(device, nil).Once()
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:   "success: default threshold and trimmed name",
			params: valid,
			setup: func(d deps) {
				d.catalog.On("ModelByID", mock.Anything, modelID).Return(device, nil).Once()
				d.repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.SparePart) bool {
					return p.LowStockThreshold == model.DefaultLowStockThreshold && p.Quantity == 5
				})).Return(uuid.New(), nil).Once()
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, p.ID)
				assert.Equal(t, model.DefaultLowStockThreshold, p.LowStockThreshold)
				assert.Equal(t, strings.TrimSpace(p.Name), p.Name)
			},
		},
		{
			name: "success: custom threshold",
			params: func() model.CreatePartParams {
				p := valid()
				p.LowStockThreshold = &custom
				return p
			},
			setup: func(d deps) {
				d.catalog.On("ModelByID", mock.Anything, modelID).Return(device, nil).Once()
				d.repo.On("Create", mock.Anything, mock.Anything).Return(uuid.New(), nil).Once()
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(2), p.LowStockThreshold)
			},
		},
		{
			name:   "repository error",
			params: valid,
			setup: func(d deps) {
				d.catalog.On("ModelByID", mock.Anything, modelID).Return(device, nil).Once()
				d.repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, model.ErrModelNotFound).Once()
			},
			assert: func(t *testing.T, p *model.SparePart, err error) {
				assert.ErrorIs(t, err, model.ErrModelNotFound)
				assert.Nil(t, p)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, d := newService(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			p, err := svc.Create(context.Background(), tt.params())
			tt.assert(t, p, err)
		})
	}
}

func TestServiceReceive(t *testing.T) {
	t.Parallel()

	t.Run("validation error: zero quantity", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t)
		_, err := svc.Receive(context.Background(), uuid.New(), 0, "")
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("books a purchase movement", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		id := uuid.New()
		d.ledger.On("Restock", mock.Anything, id, int64(10), model.StockRef{
			Type: model.MovementPurchaseIn,
			Note: "invoice 7",
		}).Return(&model.StockChange{PartID: id, Quantity: 10, Previous: 1, Current: 11}, nil).Once()

		change, err := svc.Receive(context.Background(), id, 10, " invoice 7 ")
		require.NoError(t, err)
		assert.Equal(t, int64(11), change.Current)
	})

	t.Run("unknown part", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		d.ledger.On("Restock", mock.Anything, mock.Anything, int64(1), mock.Anything).
			Return((*model.StockChange)(nil), model.ErrPartNotFound).Once()

		_, err := svc.Receive(context.Background(), uuid.New(), 1, "")
		assert.ErrorIs(t, err, model.ErrPartNotFound)
	})
}

func TestServiceQueries(t *testing.T) {
	t.Parallel()

	t.Run("low stock filters by threshold", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		want := []model.SparePart{{ID: uuid.New(), Quantity: 1, LowStockThreshold: 5}}
		d.repo.On("List", mock.Anything, model.PartsFilter{LowStockOnly: true}).Return(want, nil).Once()

		got, err := svc.LowStock(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("part not found", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		id := uuid.New()
		d.repo.On("PartByID", mock.Anything, id).Return((*model.SparePart)(nil), model.ErrPartNotFound).Once()

		_, err := svc.Part(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrPartNotFound)
	})

	t.Run("movements of unknown part", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		id := uuid.New()
		d.repo.On("PartByID", mock.Anything, id).Return((*model.SparePart)(nil), model.ErrPartNotFound).Once()

		_, err := svc.Movements(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrPartNotFound)
	})

	t.Run("movements", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		id := uuid.New()
		want := []model.StockMovement{{PartID: id, Type: model.MovementInitial, Delta: 3, QuantityAfter: 3}}
		d.repo.On("PartByID", mock.Anything, id).Return(&model.SparePart{ID: id}, nil).Once()
		d.repo.On("Movements", mock.Anything, id).Return(want, nil).Once()

		got, err := svc.Movements(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("delete error is wrapped", func(t *testing.T) {
		t.Parallel()

		svc, d := newService(t)
		id := uuid.New()
		d.repo.On("Delete", mock.Anything, id).Return(errors.New("db down")).Once()

		err := svc.Delete(context.Background(), id)
		assert.ErrorContains(t, err, "part.service.Delete")
	})
}
