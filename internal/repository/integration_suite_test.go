//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/repository/cache"
	catalogrepo "github.com/you-humble/repair-workshop/internal/repository/catalog"
	partrepo "github.com/you-humble/repair-workshop/internal/repository/part"
	repairrepo "github.com/you-humble/repair-workshop/internal/repository/repair"
	settingsrepo "github.com/you-humble/repair-workshop/internal/repository/settings"
	"github.com/you-humble/repair-workshop/internal/service/ledger"
	"github.com/you-humble/repair-workshop/internal/service/repair"
	"github.com/you-humble/repair-workshop/platform/db/migrator"
	"github.com/you-humble/repair-workshop/platform/logger"
	"github.com/you-humble/repair-workshop/platform/testcontainers/path"
	pgtc "github.com/you-humble/repair-workshop/platform/testcontainers/postgres"
	redistc "github.com/you-humble/repair-workshop/platform/testcontainers/redis"
)

const dbTimeout = 2 * time.Second

var (
	ctx context.Context

	pgC    *pgtc.Container
	redisC *redistc.Container
	pool   *pgxpool.Pool

	catalogRepo interface {
		CreateBrand(ctx context.Context, b *model.Brand) (uuid.UUID, error)
		BrandByID(ctx context.Context, id uuid.UUID) (*model.Brand, error)
		CreateModel(ctx context.Context, m *model.DeviceModel) (uuid.UUID, error)
		ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error)
	}
	partRepo interface {
		Create(ctx context.Context, p *model.SparePart) (uuid.UUID, error)
		PartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
		UpdateQuantity(ctx context.Context, upd model.QuantityUpdate) error
		List(ctx context.Context, filter model.PartsFilter) ([]model.SparePart, error)
		Delete(ctx context.Context, id uuid.UUID) error
		Movements(ctx context.Context, partID uuid.UUID) ([]model.StockMovement, error)
	}
	settingsRepo interface {
		Settings(ctx context.Context) (*model.WorkshopSettings, error)
		Update(ctx context.Context, s *model.WorkshopSettings) error
	}
	repairSvc interface {
		Create(ctx context.Context, params model.CreateRepairParams) (*model.Repair, error)
		ChangeStatus(ctx context.Context, id uuid.UUID, requested model.RepairStatus) (*model.Repair, error)
		Delete(ctx context.Context, id uuid.UUID) (*model.DeleteRepairResult, error)
		RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error)
		List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error)
		Summary(ctx context.Context) (*model.RepairSummary, error)
	}
	summaryCache interface {
		Summary(ctx context.Context) (*model.RepairSummary, error)
		SetSummary(ctx context.Context, s *model.RepairSummary) error
		Invalidate(ctx context.Context) error
	}
	ledgerSvc interface {
		ReserveAndConsume(ctx context.Context, partID uuid.UUID, quantity int64, ref model.StockRef) (*model.Consumption, error)
	}
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Repair Workshop Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = pgtc.NewContainer(ctx, pgtc.WithLogger(logger.L()))
	Expect(err).NotTo(HaveOccurred())
	pool = pgC.Pool()

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), path.MigrationsDir())
	Expect(m.Up()).To(Succeed())
	defer m.Close()

	By("starting redis container")
	redisC, err = redistc.NewContainer(ctx, logger.L())
	Expect(err).NotTo(HaveOccurred())

	By("wiring repositories and services")
	catalog := catalogrepo.NewCatalogRepository(pool)
	parts := partrepo.NewPartRepository(pool)
	repairs := repairrepo.NewRepairRepository(pool)
	summaries := cache.NewSummaryCache(redisC.Client(), time.Minute)
	stock := ledger.NewLedgerService(parts, nil, dbTimeout, dbTimeout)

	catalogRepo = catalog
	partRepo = parts
	settingsRepo = settingsrepo.NewSettingsRepository(pool)
	summaryCache = summaries
	ledgerSvc = stock
	repairSvc = repair.NewRepairService(repairs, stock, catalog, nil, summaries, dbTimeout, dbTimeout)
})

var _ = AfterSuite(func() {
	if redisC != nil {
		_ = redisC.Terminate(ctx)
	}
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning tables")
	_, err := pool.Exec(ctx, "TRUNCATE TABLE repair_parts, repairs, stock_movements, spare_parts, device_models, brands CASCADE")
	Expect(err).NotTo(HaveOccurred())
	Expect(summaryCache.Invalidate(ctx)).To(Succeed())
})

func seedDevice() (uuid.UUID, uuid.UUID) {
	brandID, err := catalogRepo.CreateBrand(ctx, &model.Brand{Name: "Samsung"})
	Expect(err).NotTo(HaveOccurred())

	modelID, err := catalogRepo.CreateModel(ctx, &model.DeviceModel{BrandID: brandID, Name: "Galaxy S21"})
	Expect(err).NotTo(HaveOccurred())

	return brandID, modelID
}

func seedPart(brandID, modelID uuid.UUID, name string, qty int64) uuid.UUID {
	id, err := partRepo.Create(ctx, &model.SparePart{
		Name:              name,
		BrandID:           brandID,
		ModelID:           modelID,
		Quantity:          qty,
		PurchasePrice:     decimal.NewFromInt(20),
		SellingPrice:      decimal.NewFromInt(30),
		LowStockThreshold: 1,
	})
	Expect(err).NotTo(HaveOccurred())

	return id
}

func quantityOf(id uuid.UUID) int64 {
	p, err := partRepo.PartByID(ctx, id)
	Expect(err).NotTo(HaveOccurred())
	return p.Quantity
}

var _ = Describe("Catalog repository", func() {
	It("rejects case-insensitive duplicate brands", func() {
		_, err := catalogRepo.CreateBrand(ctx, &model.Brand{Name: "Apple"})
		Expect(err).NotTo(HaveOccurred())

		_, err = catalogRepo.CreateBrand(ctx, &model.Brand{Name: "APPLE"})
		Expect(err).To(MatchError(model.ErrAlreadyExists))
	})

	It("maps a missing brand on model creation", func() {
		_, err := catalogRepo.CreateModel(ctx, &model.DeviceModel{BrandID: uuid.New(), Name: "X"})
		Expect(err).To(MatchError(model.ErrBrandNotFound))
	})

	It("counts models of a brand", func() {
		brandID, _ := seedDevice()

		b, err := catalogRepo.BrandByID(ctx, brandID)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.ModelCount).To(Equal(int64(1)))
	})
})

var _ = Describe("Part repository", func() {
	It("journals the opening stock", func() {
		brandID, modelID := seedDevice()
		id := seedPart(brandID, modelID, "Screen", 4)

		movements, err := partRepo.Movements(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(movements).To(HaveLen(1))
		Expect(movements[0].Type).To(Equal(model.MovementInitial))
		Expect(movements[0].QuantityAfter).To(Equal(int64(4)))
	})

	It("applies the quantity only when it is unchanged", func() {
		brandID, modelID := seedDevice()
		id := seedPart(brandID, modelID, "Screen", 4)

		err := partRepo.UpdateQuantity(ctx, model.QuantityUpdate{
			PartID: id, From: 3, To: 1,
			Movement: model.StockMovement{ID: uuid.New(), PartID: id, Type: model.MovementRepairOut, Delta: -2, QuantityAfter: 1},
		})
		Expect(err).To(MatchError(model.ErrStockConflict))
		Expect(quantityOf(id)).To(Equal(int64(4)))

		err = partRepo.UpdateQuantity(ctx, model.QuantityUpdate{
			PartID: id, From: 4, To: 1,
			Movement: model.StockMovement{ID: uuid.New(), PartID: id, Type: model.MovementRepairOut, Delta: -3, QuantityAfter: 1},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(quantityOf(id)).To(Equal(int64(1)))

		err = partRepo.UpdateQuantity(ctx, model.QuantityUpdate{PartID: uuid.New(), From: 0, To: 1})
		Expect(err).To(MatchError(model.ErrPartNotFound))
	})

	It("lists low stock parts including the threshold itself", func() {
		brandID, modelID := seedDevice()
		seedPart(brandID, modelID, "Screen", 1)
		seedPart(brandID, modelID, "Battery", 9)

		parts, err := partRepo.List(ctx, model.PartsFilter{LowStockOnly: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(parts).To(HaveLen(1))
		Expect(parts[0].Name).To(Equal("Screen"))
		Expect(parts[0].SellingPrice.Equal(decimal.NewFromInt(30))).To(BeTrue())
	})
})

var _ = Describe("Ledger on postgres", func() {
	It("never oversells under concurrent consumption", func() {
		brandID, modelID := seedDevice()
		id := seedPart(brandID, modelID, "Screen", 10)

		var (
			wg sync.WaitGroup
			mu sync.Mutex
			ok int
		)
		for range 25 {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				if _, err := ledgerSvc.ReserveAndConsume(ctx, id, 1, model.StockRef{}); err == nil {
					mu.Lock()
					ok++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		Expect(ok).To(Equal(10))
		Expect(quantityOf(id)).To(Equal(int64(0)))
	})
})

var _ = Describe("Repair lifecycle", func() {
	It("creates, advances and deletes a repair", func() {
		brandID, modelID := seedDevice()
		screen := seedPart(brandID, modelID, "Screen", 5)

		By("creating the repair")
		rep, err := repairSvc.Create(ctx, model.CreateRepairParams{
			CustomerName: "John Smith",
			BrandID:      brandID,
			ModelID:      modelID,
			LaborCost:    decimal.NewFromInt(50),
			Parts:        []model.PartRequest{{PartID: screen, Quantity: 3}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.TotalCost.Equal(decimal.NewFromInt(140))).To(BeTrue())
		Expect(quantityOf(screen)).To(Equal(int64(2)))

		By("reading it back with names and usages")
		got, err := repairSvc.RepairByID(ctx, rep.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.BrandName).To(Equal("Samsung"))
		Expect(got.Parts).To(HaveLen(1))
		Expect(got.Parts[0].PriceAtTime.Equal(decimal.NewFromInt(30))).To(BeTrue())

		By("searching by model name")
		found, err := repairSvc.List(ctx, model.RepairFilter{Search: "galaxy"})
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(HaveLen(1))

		By("rejecting a second create without stock")
		_, err = repairSvc.Create(ctx, model.CreateRepairParams{
			CustomerName: "Jane Roe",
			BrandID:      brandID,
			ModelID:      modelID,
			Parts:        []model.PartRequest{{PartID: screen, Quantity: 3}},
		})
		Expect(err).To(MatchError(model.ErrInsufficientStock))
		Expect(quantityOf(screen)).To(Equal(int64(2)))

		By("walking the status forward")
		_, err = repairSvc.ChangeStatus(ctx, rep.ID, model.StatusCompleted)
		Expect(err).To(MatchError(model.ErrIllegalTransition))
		_, err = repairSvc.ChangeStatus(ctx, rep.ID, model.StatusInProgress)
		Expect(err).NotTo(HaveOccurred())
		done, err := repairSvc.ChangeStatus(ctx, rep.ID, model.StatusCompleted)
		Expect(err).NotTo(HaveOccurred())
		Expect(done.CompletedAt).NotTo(BeNil())

		By("summarizing through the cache")
		s, err := repairSvc.Summary(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Total).To(Equal(int64(1)))
		Expect(s.Revenue.Equal(decimal.NewFromInt(140))).To(BeTrue())
		Expect(s.Profit.Equal(decimal.NewFromInt(30))).To(BeTrue())

		cached, err := summaryCache.Summary(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cached.Total).To(Equal(int64(1)))

		By("deleting it returns stock")
		res, err := repairSvc.Delete(ctx, rep.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Warnings).To(BeEmpty())
		Expect(quantityOf(screen)).To(Equal(int64(5)))

		_, err = summaryCache.Summary(ctx)
		Expect(err).To(MatchError(model.ErrCacheMiss))
	})

	It("warns about usages of deleted parts", func() {
		brandID, modelID := seedDevice()
		glass := seedPart(brandID, modelID, "Glass", 2)

		rep, err := repairSvc.Create(ctx, model.CreateRepairParams{
			CustomerName: "Ann Lee",
			BrandID:      brandID,
			ModelID:      modelID,
			Parts:        []model.PartRequest{{PartID: glass, Quantity: 1}},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(partRepo.Delete(ctx, glass)).To(Succeed())

		got, err := repairSvc.RepairByID(ctx, rep.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Parts).To(HaveLen(1))

		res, err := repairSvc.Delete(ctx, rep.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Warnings).To(HaveLen(1))
		Expect(res.Warnings[0].PartID).To(Equal(glass))
	})
})

var _ = Describe("Settings repository", func() {
	It("upserts the single settings row", func() {
		Expect(settingsRepo.Update(ctx, &model.WorkshopSettings{Name: "FixIt", Phone: "555"})).To(Succeed())
		Expect(settingsRepo.Update(ctx, &model.WorkshopSettings{Name: "FixIt Pro"})).To(Succeed())

		s, err := settingsRepo.Settings(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name).To(Equal("FixIt Pro"))
		Expect(s.Phone).To(BeEmpty())
	})
})
