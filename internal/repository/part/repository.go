package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/db/pgerr"
)

const (
	partsTable     = "spare_parts"
	movementsTable = "stock_movements"
)

var partColumns = []string{
	"id", "name", "category", "screen_quality", "brand_id", "model_id", "quantity",
	"purchase_price", "selling_price", "low_stock_threshold", "created_at", "updated_at",
}

var movementColumns = []string{
	"id", "part_id", "type", "delta", "quantity_after", "repair_id", "note", "created_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the part and journals its opening stock in one transaction.
func (r *repository) Create(ctx context.Context, p *model.SparePart) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.sb.
		Insert(partsTable).
		Columns("name", "category", "screen_quality", "brand_id", "model_id", "quantity",
			"purchase_price", "selling_price", "low_stock_threshold").
		Values(p.Name, p.Category, p.ScreenQuality, p.BrandID, p.ModelID, p.Quantity,
			p.PurchasePrice, p.SellingPrice, p.LowStockThreshold).
		Suffix("RETURNING id, created_at, updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		switch {
		case pgerr.IsForeignKeyViolation(err):
			return uuid.Nil, model.ErrModelNotFound
		case pgerr.IsCheckViolation(err):
			return uuid.Nil, fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
		}
		return uuid.Nil, err
	}

	if p.Quantity > 0 {
		err := r.insertMovement(ctx, tx, model.StockMovement{
			PartID:        p.ID,
			Type:          model.MovementInitial,
			Delta:         p.Quantity,
			QuantityAfter: p.Quantity,
			CreatedAt:     p.CreatedAt,
		})
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	return p.ID, nil
}

func (r *repository) PartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	q := r.sb.
		Select(partColumns...).
		From(partsTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPart(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return p, nil
}

// UpdateQuantity swaps the quantity only if it still equals upd.From and
// writes the journal row in the same transaction.
func (r *repository) UpdateQuantity(ctx context.Context, upd model.QuantityUpdate) error {
	if upd.To < 0 {
		return model.ErrValidation
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.sb.
		Update(partsTable).
		Set("quantity", upd.To).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": upd.PartID, "quantity": upd.From})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		if pgerr.IsCheckViolation(err) {
			return model.ErrStockConflict
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		exists, err := r.exists(ctx, tx, upd.PartID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrPartNotFound
		}
		return model.ErrStockConflict
	}

	mv := upd.Movement
	mv.PartID = upd.PartID
	if err := r.insertMovement(ctx, tx, mv); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]model.SparePart, error) {
	q := r.sb.
		Select(partColumns...).
		From(partsTable).
		OrderBy("name ASC")

	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where(sq.ILike{"name": "%" + s + "%"})
	}
	if filter.Category != "" {
		q = q.Where(sq.Expr("lower(category) = lower(?)", filter.Category))
	}
	if filter.BrandID != nil {
		q = q.Where(sq.Eq{"brand_id": *filter.BrandID})
	}
	if filter.ModelID != nil {
		q = q.Where(sq.Eq{"model_id": *filter.ModelID})
	}
	if filter.LowStockOnly {
		q = q.Where("quantity <= low_stock_threshold")
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

	parts := make([]model.SparePart, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, *p)
	}

	return parts, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.Delete(partsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) Movements(ctx context.Context, partID uuid.UUID) ([]model.StockMovement, error) {
	q := r.sb.
		Select(movementColumns...).
		From(movementsTable).
		Where(sq.Eq{"part_id": partID}).
		OrderBy("created_at ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0)
	for rows.Next() {
		var (
			mv  model.StockMovement
			typ string
		)
		if err := rows.Scan(
			&mv.ID, &mv.PartID, &typ, &mv.Delta, &mv.QuantityAfter, &mv.RepairID, &mv.Note, &mv.CreatedAt,
		); err != nil {
			return nil, err
		}
		mv.Type = model.MovementType(typ)
		movements = append(movements, mv)
	}

	return movements, rows.Err()
}

func (r *repository) insertMovement(ctx context.Context, tx pgx.Tx, mv model.StockMovement) error {
	if mv.ID == uuid.Nil {
		mv.ID = uuid.New()
	}

	q := r.sb.
		Insert(movementsTable).
		Columns("id", "part_id", "type", "delta", "quantity_after", "repair_id", "note").
		Values(mv.ID, mv.PartID, string(mv.Type), mv.Delta, mv.QuantityAfter, mv.RepairID, mv.Note)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) exists(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	sqlStr, args, err := r.sb.
		Select("1").
		From(partsTable).
		Where(sq.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var ok bool
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&ok); err != nil {
		return false, err
	}

	return ok, nil
}

func scanPart(row pgx.Row) (*model.SparePart, error) {
	var p model.SparePart
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.ScreenQuality,
		&p.BrandID,
		&p.ModelID,
		&p.Quantity,
		&p.PurchasePrice,
		&p.SellingPrice,
		&p.LowStockThreshold,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
