package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/wakuli/retail-analytics-api/infrastructure/database/postgres"
	"github.com/wakuli/retail-analytics-api/internal/domain"
)

const (
	storeInvestmentsTable = "store_investments"

	investmentColumns = "store_code, opened, buildout_cost, equipment_cost, furniture_cost, working_capital, total_investment"
)

type InvestmentRepository interface {
	Upsert(entry *domain.InvestmentEntry) error
	GetByStoreCode(storeCode string) (*domain.InvestmentEntry, error)
	List() ([]domain.InvestmentEntry, error)
}

type investmentRepository struct {
	conn *postgres.Connection
}

func NewInvestmentRepository(conn *postgres.Connection) InvestmentRepository {
	return &investmentRepository{
		conn: conn,
	}
}

func (r *investmentRepository) Upsert(entry *domain.InvestmentEntry) error {
	query, args, err := squirrel.
		Insert(storeInvestmentsTable).
		Columns("store_code", "opened", "buildout_cost", "equipment_cost", "furniture_cost", "working_capital", "total_investment").
		Values(
			entry.StoreCode,
			entry.Opened,
			entry.BuildoutCost,
			entry.EquipmentCost,
			entry.FurnitureCost,
			entry.WorkingCapital,
			entry.Total,
		).
		Suffix(`
			ON CONFLICT (store_code) DO UPDATE SET
				opened = EXCLUDED.opened,
				buildout_cost = EXCLUDED.buildout_cost,
				equipment_cost = EXCLUDED.equipment_cost,
				furniture_cost = EXCLUDED.furniture_cost,
				working_capital = EXCLUDED.working_capital,
				total_investment = EXCLUDED.total_investment,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build investment upsert: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to save investment for store %s: %w", entry.StoreCode, err)
	}

	return nil
}

func (r *investmentRepository) GetByStoreCode(storeCode string) (*domain.InvestmentEntry, error) {
	query, args, err := squirrel.
		Select(investmentColumns).
		From(storeInvestmentsTable).
		Where(squirrel.Eq{"store_code": storeCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build investment query: %w", err)
	}

	var entry domain.InvestmentEntry
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.StoreCode,
		&entry.Opened,
		&entry.BuildoutCost,
		&entry.EquipmentCost,
		&entry.FurnitureCost,
		&entry.WorkingCapital,
		&entry.Total,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load investment for store %s: %w", storeCode, err)
	}

	return &entry, nil
}

func (r *investmentRepository) List() ([]domain.InvestmentEntry, error) {
	query, args, err := squirrel.
		Select(investmentColumns).
		From(storeInvestmentsTable).
		OrderBy("store_code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build investments query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.InvestmentEntry, 0)
	for rows.Next() {
		var entry domain.InvestmentEntry
		if err := rows.Scan(
			&entry.StoreCode,
			&entry.Opened,
			&entry.BuildoutCost,
			&entry.EquipmentCost,
			&entry.FurnitureCost,
			&entry.WorkingCapital,
			&entry.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating investment rows: %w", err)
	}

	return entries, nil
}
