package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-workshop/internal/model"
)

// The workshop has a single settings row with id 1.
const settingsRowID = 1

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewSettingsRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Settings(ctx context.Context) (*model.WorkshopSettings, error) {
	sqlStr, args, err := r.sb.
		Select("name", "address", "phone", "thank_you_message", "updated_at").
		From("workshop_settings").
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s model.WorkshopSettings
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&s.Name, &s.Address, &s.Phone, &s.ThankYouMessage, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.WorkshopSettings{}, nil
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *model.WorkshopSettings) error {
	sqlStr, args, err := r.sb.
		Insert("workshop_settings").
		Columns("id", "name", "address", "phone", "thank_you_message").
		Values(settingsRowID, s.Name, s.Address, s.Phone, s.ThankYouMessage).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			thank_you_message = EXCLUDED.thank_you_message,
			updated_at = now()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	return r.pool.QueryRow(ctx, sqlStr, args...).Scan(&s.UpdatedAt)
}
