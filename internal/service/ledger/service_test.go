package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/repository/memory"
	"github.com/you-humble/repair-workshop/internal/service/mocks"
)

const testTimeout = 2 * time.Second

func newPart(quantity, threshold int64) *model.SparePart {
	return &model.SparePart{
		ID:                uuid.New(),
		Name:              gofakeit.ProductName(),
		BrandID:           uuid.New(),
		ModelID:           uuid.New(),
		Quantity:          quantity,
		PurchasePrice:     decimal.NewFromInt(20),
		SellingPrice:      decimal.NewFromInt(30),
		LowStockThreshold: threshold,
	}
}

func TestServiceReserveAndConsume(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockStockRepository
		alerts     *mocks.MockLowStockSender
	}

	repairID := uuid.New()
	ref := model.StockRef{Type: model.MovementRepairOut, RepairID: &repairID}

	type testCase struct {
		name     string
		part     *model.SparePart
		quantity int64
		setup    func(d deps, p *model.SparePart)
		assert   func(t *testing.T, res *model.Consumption, err error, p *model.SparePart)
	}

	tests := []testCase{
		{
			name:     "validation error: zero quantity",
			part:     newPart(5, 2),
			quantity: 0,
			setup:    func(d deps, p *model.SparePart) {},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:     "validation error: negative quantity",
			part:     newPart(5, 2),
			quantity: -3,
			setup:    func(d deps, p *model.SparePart) {},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:     "not found: part does not exist",
			part:     newPart(5, 2),
			quantity: 1,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return((*model.SparePart)(nil), model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:     "insufficient stock: requested more than available",
			part:     newPart(2, 1),
			quantity: 3,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInsufficientStock)
				assert.Nil(t, res)

				var stockErr *model.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, p.ID, stockErr.PartID)
				assert.Equal(t, int64(3), stockErr.Requested)
				assert.Equal(t, int64(2), stockErr.Available)
			},
		},
		{
			name:     "conflict: stored quantity changed underneath",
			part:     newPart(5, 1),
			quantity: 1,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.Anything).
					Return(model.ErrStockConflict).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrStockConflict)
				assert.Nil(t, res)
			},
		},
		{
			name:     "success: exact remaining quantity takes stock to zero and alerts",
			part:     newPart(3, 2),
			quantity: 3,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(upd model.QuantityUpdate) bool {
						return upd.PartID == p.ID &&
							upd.From == 3 &&
							upd.To == 0 &&
							upd.Movement.Type == model.MovementRepairOut &&
							upd.Movement.Delta == -3 &&
							upd.Movement.QuantityAfter == 0 &&
							upd.Movement.RepairID != nil && *upd.Movement.RepairID == repairID
					})).
					Return(nil).
					Once()
				d.alerts.
					On("SendLowStock", mock.Anything, mock.MatchedBy(func(a model.LowStockAlert) bool {
						return a.PartID == p.ID && a.Quantity == 0 && a.Threshold == 2
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, int64(3), res.Previous)
				assert.Equal(t, int64(0), res.Current)
				assert.Equal(t, p.SellingPrice, res.Part.SellingPrice)
			},
		},
		{
			name:     "success: staying above threshold sends no alert",
			part:     newPart(10, 2),
			quantity: 4,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.NoError(t, err)
				assert.Equal(t, int64(6), res.Current)
			},
		},
		{
			name:     "success: already below threshold sends no second alert",
			part:     newPart(2, 5),
			quantity: 1,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), res.Current)
			},
		},
		{
			name:     "success: failed alert does not fail the consumption",
			part:     newPart(6, 5),
			quantity: 1,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				d.alerts.
					On("SendLowStock", mock.Anything, mock.Anything).
					Return(errors.New("broker down")).
					Once()
			},
			assert: func(t *testing.T, res *model.Consumption, err error, p *model.SparePart) {
				require.NoError(t, err)
				assert.Equal(t, int64(5), res.Current)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockStockRepository(t),
				alerts:     mocks.NewMockLowStockSender(t),
			}
			tt.setup(d, tt.part)

			svc := NewLedgerService(d.repository, d.alerts, time.Second, time.Second)

			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			res, err := svc.ReserveAndConsume(ctx, tt.part.ID, tt.quantity, ref)
			tt.assert(t, res, err, tt.part)
			assert.Equal(t, 0, svc.locks.size())
		})
	}
}

func TestServiceRestock(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockStockRepository
	}

	type testCase struct {
		name     string
		part     *model.SparePart
		quantity int64
		ref      model.StockRef
		setup    func(d deps, p *model.SparePart)
		assert   func(t *testing.T, res *model.StockChange, err error)
	}

	tests := []testCase{
		{
			name:     "validation error: zero quantity",
			part:     newPart(1, 0),
			quantity: 0,
			setup:    func(d deps, p *model.SparePart) {},
			assert: func(t *testing.T, res *model.StockChange, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:     "not found: deleted part",
			part:     newPart(1, 0),
			quantity: 2,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return((*model.SparePart)(nil), model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.StockChange, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:     "success: default movement type is repair return",
			part:     newPart(1, 0),
			quantity: 2,
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(upd model.QuantityUpdate) bool {
						return upd.From == 1 && upd.To == 3 &&
							upd.Movement.Type == model.MovementRepairReturn &&
							upd.Movement.Delta == 2
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.StockChange, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), res.Previous)
				assert.Equal(t, int64(3), res.Current)
			},
		},
		{
			name:     "success: purchase intake keeps its movement type and note",
			part:     newPart(0, 0),
			quantity: 10,
			ref:      model.StockRef{Type: model.MovementPurchaseIn, Note: "supplier invoice 42"},
			setup: func(d deps, p *model.SparePart) {
				d.repository.
					On("PartByID", mock.Anything, p.ID).
					Return(p, nil).
					Once()
				d.repository.
					On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(upd model.QuantityUpdate) bool {
						return upd.To == 10 &&
							upd.Movement.Type == model.MovementPurchaseIn &&
							upd.Movement.Note == "supplier invoice 42" &&
							upd.Movement.RepairID == nil
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.StockChange, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(10), res.Current)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockStockRepository(t)}
			tt.setup(d, tt.part)

			svc := NewLedgerService(d.repository, nil, time.Second, time.Second)

			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			res, err := svc.Restock(ctx, tt.part.ID, tt.quantity, tt.ref)
			tt.assert(t, res, err)
		})
	}
}

type countingSender struct {
	sent atomic.Int64
}

func (s *countingSender) SendLowStock(context.Context, model.LowStockAlert) error {
	s.sent.Add(1)
	return nil
}

func TestServiceConcurrentConsumeNeverOversells(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPartRepository()

	p := newPart(20, 5)
	p.ID = uuid.Nil
	partID, err := repo.Create(ctx, p)
	require.NoError(t, err)

	alerts := &countingSender{}
	svc := NewLedgerService(repo, alerts, time.Second, time.Second)

	const workers = 50

	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int64
		insufficient atomic.Int64
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.ReserveAndConsume(ctx, partID, 1, model.StockRef{})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, model.ErrInsufficientStock):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), succeeded.Load())
	assert.Equal(t, int64(workers-20), insufficient.Load())
	assert.Equal(t, int64(1), alerts.sent.Load())

	got, err := repo.PartByID(ctx, partID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Quantity)

	movements, err := repo.Movements(ctx, partID)
	require.NoError(t, err)
	assert.Len(t, movements, 21)

	assert.Equal(t, 0, svc.locks.size())
}

func TestServiceConsumeThenRestockRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPartRepository()

	p := newPart(7, 2)
	p.ID = uuid.Nil
	partID, err := repo.Create(ctx, p)
	require.NoError(t, err)

	svc := NewLedgerService(repo, nil, time.Second, time.Second)

	c, err := svc.ReserveAndConsume(ctx, partID, 4, model.StockRef{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Current)

	r, err := svc.Restock(ctx, partID, 4, model.StockRef{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.Current)

	got, err := repo.PartByID(ctx, partID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Quantity)
}

type blockingSender struct {
	entered chan struct{}
	release chan struct{}
}

func (s *blockingSender) SendLowStock(ctx context.Context, _ model.LowStockAlert) error {
	close(s.entered)
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}

func TestServiceSlowAlertDoesNotHoldPartLock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPartRepository()

	p := newPart(6, 5)
	p.ID = uuid.Nil
	partID, err := repo.Create(ctx, p)
	require.NoError(t, err)

	sender := &blockingSender{entered: make(chan struct{}), release: make(chan struct{})}
	defer close(sender.release)

	svc := NewLedgerService(repo, sender, time.Second, time.Second)

	consumed := make(chan error, 1)
	go func() {
		_, err := svc.ReserveAndConsume(ctx, partID, 2, model.StockRef{})
		consumed <- err
	}()

	select {
	case <-sender.entered:
	case <-time.After(testTimeout):
		t.Fatal("low stock alert was not sent")
	}

	restocked := make(chan error, 1)
	go func() {
		_, err := svc.Restock(ctx, partID, 1, model.StockRef{})
		restocked <- err
	}()

	select {
	case err := <-restocked:
		require.NoError(t, err)
	case <-time.After(testTimeout):
		t.Fatal("restock waited for the alert sender")
	}

	got, err := repo.PartByID(ctx, partID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Quantity)

	sender.release <- struct{}{}
	require.NoError(t, <-consumed)
}
