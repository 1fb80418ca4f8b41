package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/db/pgerr"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCatalogRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) CreateBrand(ctx context.Context, b *model.Brand) (uuid.UUID, error) {
	sqlStr, args, err := r.sb.
		Insert("brands").
		Columns("name").
		Values(b.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return uuid.Nil, model.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return b.ID, nil
}

func (r *repository) BrandByID(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	sqlStr, args, err := r.brandsQuery().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var b model.Brand
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.ModelCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBrandNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) Brands(ctx context.Context, search string) ([]model.Brand, error) {
	q := r.brandsQuery().OrderBy("b.name ASC")
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where(sq.ILike{"b.name": "%" + s + "%"})
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

	brands := make([]model.Brand, 0)
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.ModelCount); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *repository) CreateModel(ctx context.Context, m *model.DeviceModel) (uuid.UUID, error) {
	sqlStr, args, err := r.sb.
		Insert("device_models").
		Columns("brand_id", "name").
		Values(m.BrandID, m.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return uuid.Nil, model.ErrAlreadyExists
		case pgerr.IsForeignKeyViolation(err):
			return uuid.Nil, model.ErrBrandNotFound
		}
		return uuid.Nil, err
	}

	return m.ID, nil
}

func (r *repository) Models(ctx context.Context, brandID *uuid.UUID) ([]model.DeviceModel, error) {
	q := r.sb.
		Select("id", "brand_id", "name", "created_at").
		From("device_models").
		OrderBy("name ASC")
	if brandID != nil {
		q = q.Where(sq.Eq{"brand_id": *brandID})
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

	models := make([]model.DeviceModel, 0)
	for rows.Next() {
		var m model.DeviceModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	return models, rows.Err()
}

func (r *repository) ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error) {
	sqlStr, args, err := r.sb.
		Select("id", "brand_id", "name", "created_at").
		From("device_models").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m model.DeviceModel
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&m.ID, &m.BrandID, &m.Name, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrModelNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) brandsQuery() sq.SelectBuilder {
	return r.sb.
		Select("b.id", "b.name", "b.created_at", "count(m.id)").
		From("brands b").
		LeftJoin("device_models m ON m.brand_id = b.id").
		GroupBy("b.id")
}
