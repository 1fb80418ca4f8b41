package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/db/pgerr"
)

const (
	repairsTable = "repairs"
	usagesTable  = "repair_parts"
)

var repairColumns = []string{
	"r.id", "r.customer_name", "r.customer_phone", "r.brand_id", "r.model_id",
	"coalesce(b.name, '')", "coalesce(m.name, '')", "r.issue_type", "r.description", "r.status",
	"r.labor_cost", "r.parts_cost", "r.total_cost", "r.profit",
	"r.created_at", "r.updated_at", "r.completed_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewRepairRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the repair and all its part usages in one transaction.
func (r *repository) Create(ctx context.Context, rep *model.Repair) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}

	q := r.sb.
		Insert(repairsTable).
		Columns("id", "customer_name", "customer_phone", "brand_id", "model_id", "issue_type", "description",
			"status", "labor_cost", "parts_cost", "total_cost", "profit", "completed_at").
		Values(rep.ID, rep.CustomerName, rep.CustomerPhone, rep.BrandID, rep.ModelID, rep.IssueType, rep.Description,
			string(rep.Status), rep.LaborCost, rep.PartsCost, rep.TotalCost, rep.Profit, rep.CompletedAt).
		Suffix("RETURNING created_at, updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&rep.CreatedAt, &rep.UpdatedAt); err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return uuid.Nil, model.ErrAlreadyExists
		case pgerr.IsForeignKeyViolation(err):
			return uuid.Nil, model.ErrModelNotFound
		}
		return uuid.Nil, err
	}

	if len(rep.Parts) > 0 {
		ins := r.sb.
			Insert(usagesTable).
			Columns("id", "repair_id", "part_id", "part_name", "quantity", "price_at_time", "purchase_price_at_time")
		for i := range rep.Parts {
			u := &rep.Parts[i]
			if u.ID == uuid.Nil {
				u.ID = uuid.New()
			}
			u.RepairID = rep.ID
			ins = ins.Values(u.ID, u.RepairID, u.PartID, u.PartName, u.Quantity, u.PriceAtTime, u.PurchasePriceAtTime)
		}

		sqlStr, args, err := ins.ToSql()
		if err != nil {
			return uuid.Nil, err
		}
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	return rep.ID, nil
}

func (r *repository) RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error) {
	sqlStr, args, err := r.selectRepairs().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	rep, err := scanRepair(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRepairNotFound
		}
		return nil, err
	}

	usages, err := r.usages(ctx, []uuid.UUID{rep.ID})
	if err != nil {
		return nil, err
	}
	rep.Parts = usages[rep.ID]

	return rep, nil
}

// UpdateStatus is a compare-and-swap on the stored status.
func (r *repository) UpdateStatus(ctx context.Context, change model.StatusChange) error {
	q := r.sb.
		Update(repairsTable).
		Set("status", string(change.To)).
		Set("completed_at", change.CompletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": change.RepairID, "status": string(change.From)})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.status(ctx, change.RepairID); err != nil {
		return err
	}

	return model.ErrIllegalTransition
}

// Delete removes the repair; its usages go with it by cascade.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.Delete(repairsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrRepairNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error) {
	q := r.selectRepairs().OrderBy("r.created_at DESC")

	if filter.Status != nil {
		q = q.Where(sq.Eq{"r.status": string(*filter.Status)})
	}
	if filter.BrandID != nil {
		q = q.Where(sq.Eq{"r.brand_id": *filter.BrandID})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where(sq.Or{
			sq.ILike{"r.customer_name": like},
			sq.ILike{"r.customer_phone": like},
			sq.ILike{"b.name": like},
			sq.ILike{"m.name": like},
		})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repairs := make([]model.Repair, 0)
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(repairs) == 0 {
		return repairs, nil
	}

	ids := make([]uuid.UUID, 0, len(repairs))
	for _, rep := range repairs {
		ids = append(ids, rep.ID)
	}
	usages, err := r.usages(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range repairs {
		repairs[i].Parts = usages[repairs[i].ID]
	}

	return repairs, nil
}

func (r *repository) Summary(ctx context.Context) (*model.RepairSummary, error) {
	sqlStr, args, err := r.sb.
		Select("status", "count(*)",
			"coalesce(sum(total_cost), 0)", "coalesce(sum(profit), 0)", "coalesce(sum(labor_cost), 0)").
		From(repairsTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := &model.RepairSummary{
		ByStatus: make(map[model.RepairStatus]int64, len(model.RepairStatuses)),
		Revenue:  decimal.Zero,
		Profit:   decimal.Zero,
		Labor:    decimal.Zero,
	}
	for _, st := range model.RepairStatuses {
		s.ByStatus[st] = 0
	}

	for rows.Next() {
		var (
			status                 string
			count                  int64
			revenue, profit, labor decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &revenue, &profit, &labor); err != nil {
			return nil, err
		}

		st := model.RepairStatus(status)
		s.Total += count
		s.ByStatus[st] = count

		switch st {
		case model.StatusPending, model.StatusInProgress:
			s.Open += count
		case model.StatusCompleted, model.StatusArchived:
			s.Revenue = s.Revenue.Add(revenue)
			s.Profit = s.Profit.Add(profit)
			s.Labor = s.Labor.Add(labor)
		}
	}

	return s, rows.Err()
}

func (r *repository) selectRepairs() sq.SelectBuilder {
	return r.sb.
		Select(repairColumns...).
		From(repairsTable + " r").
		LeftJoin("brands b ON b.id = r.brand_id").
		LeftJoin("device_models m ON m.id = r.model_id")
}

func (r *repository) status(ctx context.Context, id uuid.UUID) (model.RepairStatus, error) {
	sqlStr, args, err := r.sb.Select("status").From(repairsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", err
	}

	var status string
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrRepairNotFound
		}
		return "", err
	}

	return model.RepairStatus(status), nil
}

func (r *repository) usages(ctx context.Context, repairIDs []uuid.UUID) (map[uuid.UUID][]model.PartUsage, error) {
	sqlStr, args, err := r.sb.
		Select("id", "repair_id", "part_id", "part_name", "quantity", "price_at_time", "purchase_price_at_time").
		From(usagesTable).
		Where(sq.Eq{"repair_id": repairIDs}).
		OrderBy("part_name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]model.PartUsage, len(repairIDs))
	for rows.Next() {
		var u model.PartUsage
		if err := rows.Scan(
			&u.ID, &u.RepairID, &u.PartID, &u.PartName, &u.Quantity, &u.PriceAtTime, &u.PurchasePriceAtTime,
		); err != nil {
			return nil, err
		}
		out[u.RepairID] = append(out[u.RepairID], u)
	}

	return out, rows.Err()
}

func scanRepair(row pgx.Row) (*model.Repair, error) {
	var (
		rep    model.Repair
		status string
	)
	err := row.Scan(
		&rep.ID,
		&rep.CustomerName,
		&rep.CustomerPhone,
		&rep.BrandID,
		&rep.ModelID,
		&rep.BrandName,
		&rep.ModelName,
		&rep.IssueType,
		&rep.Description,
		&status,
		&rep.LaborCost,
		&rep.PartsCost,
		&rep.TotalCost,
		&rep.Profit,
		&rep.CreatedAt,
		&rep.UpdatedAt,
		&rep.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	rep.Status = model.RepairStatus(status)

	return &rep, nil
}
