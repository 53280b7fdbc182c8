package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/internal/server/storage"
)

// GetOwnerCountables retrieves every counter and phase row of an owner
// Counters are returned first, each group ordered by created_at
func (s *Storage) GetOwnerCountables(ctx context.Context, owner uuid.UUID) ([]models.Countable, error) {
	counters, err := s.getCounters(ctx, owner)
	if err != nil {
		return nil, err
	}

	phases, err := s.getPhases(ctx, owner)
	if err != nil {
		return nil, err
	}

	return append(counters, phases...), nil
}

func (s *Storage) getCounters(ctx context.Context, owner uuid.UUID) (nodes []models.Countable, err error) {
	query := `
		SELECT id, owner_id, parent_id, name, created_at, last_edit, is_deleted
		FROM counters
		WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query counters: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	nodes = []models.Countable{}
	for rows.Next() {
		var (
			id, ownerID         string
			parent              sql.NullString
			createdAt, lastEdit int64
			deleted             int
			c                   models.Counter
		)

		if err := rows.Scan(&id, &ownerID, &parent, &c.Name, &createdAt, &lastEdit, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan counter: %w", err)
		}

		if c.ID, err = models.ParseCountableID(id); err != nil {
			return nil, fmt.Errorf("invalid counter id %q: %w", id, err)
		}
		if c.OwnerID, err = uuid.Parse(ownerID); err != nil {
			return nil, fmt.Errorf("invalid owner id %q: %w", ownerID, err)
		}
		if parent.Valid {
			p, err := models.ParseCountableID(parent.String)
			if err != nil {
				return nil, fmt.Errorf("invalid parent id %q: %w", parent.String, err)
			}
			c.Parent = &p
		}
		c.Children = []models.CountableID{}
		c.CreatedAt = unixNanoToTime(createdAt)
		c.LastEdit = unixNanoToTime(lastEdit)
		c.IsDeleted = intToBool(deleted)

		nodes = append(nodes, models.FromCounter(&c))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counters: %w", err)
	}

	return nodes, nil
}

func (s *Storage) getPhases(ctx context.Context, owner uuid.UUID) (nodes []models.Countable, err error) {
	query := `
		SELECT id, owner_id, parent_id, name, count, elapsed, hunt_type,
		       has_charm, success, created_at, last_edit, is_deleted
		FROM phases
		WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query phases: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	nodes = []models.Countable{}
	for rows.Next() {
		var (
			id, ownerID, parent        string
			huntType                   string
			elapsed                    int64
			createdAt, lastEdit        int64
			hasCharm, success, deleted int
			p                          models.Phase
		)

		err := rows.Scan(
			&id, &ownerID, &parent, &p.Name, &p.Count, &elapsed, &huntType,
			&hasCharm, &success, &createdAt, &lastEdit, &deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase: %w", err)
		}

		if p.ID, err = models.ParseCountableID(id); err != nil {
			return nil, fmt.Errorf("invalid phase id %q: %w", id, err)
		}
		if p.OwnerID, err = uuid.Parse(ownerID); err != nil {
			return nil, fmt.Errorf("invalid owner id %q: %w", ownerID, err)
		}
		if p.Parent, err = models.ParseCountableID(parent); err != nil {
			return nil, fmt.Errorf("invalid parent id %q: %w", parent, err)
		}
		p.HuntType = models.HuntType(huntType)
		p.Elapsed = time.Duration(elapsed)
		p.HasCharm = intToBool(hasCharm)
		p.Success = intToBool(success)
		p.CreatedAt = unixNanoToTime(createdAt)
		p.LastEdit = unixNanoToTime(lastEdit)
		p.IsDeleted = intToBool(deleted)

		nodes = append(nodes, models.FromPhase(&p))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phases: %w", err)
	}

	return nodes, nil
}

// SaveCountables creates or replaces nodes in a single transaction
func (s *Storage) SaveCountables(ctx context.Context, owner uuid.UUID, nodes []models.Countable) (err error) {
	// Проверяем все узлы до начала транзакции
	for _, c := range nodes {
		switch {
		case c.Kind == models.KindCounter && c.Counter != nil && c.Phase == nil:
			if c.Counter.OwnerID != owner {
				return fmt.Errorf("counter %s: %w", c.Counter.ID, storage.ErrOwnerMismatch)
			}
		case c.Kind == models.KindPhase && c.Phase != nil && c.Counter == nil:
			if c.Phase.OwnerID != owner {
				return fmt.Errorf("phase %s: %w", c.Phase.ID, storage.ErrOwnerMismatch)
			}
		default:
			return fmt.Errorf("node %s of kind %q: %w", c.ID(), c.Kind, storage.ErrInvalidCountable)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, c := range nodes {
		if c.Kind == models.KindCounter {
			err = upsertCounter(ctx, tx, c.Counter)
		} else {
			err = upsertPhase(ctx, tx, c.Phase)
		}
		if err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func upsertCounter(ctx context.Context, tx *sql.Tx, c *models.Counter) error {
	query := `
		INSERT INTO counters (id, owner_id, parent_id, name, created_at, last_edit, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			parent_id = excluded.parent_id,
			name = excluded.name,
			created_at = excluded.created_at,
			last_edit = excluded.last_edit,
			is_deleted = excluded.is_deleted
	`

	var parent sql.NullString
	if c.Parent != nil {
		parent = sql.NullString{String: c.Parent.String(), Valid: true}
	}

	_, err := tx.ExecContext(ctx, query,
		c.ID.String(),
		c.OwnerID.String(),
		parent,
		c.Name,
		timeToUnixNano(c.CreatedAt),
		timeToUnixNano(c.LastEdit),
		boolToInt(c.IsDeleted),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert counter %s: %w", c.ID, err)
	}

	// Узел мог раньше быть фазой
	if _, err := tx.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, c.ID.String()); err != nil {
		return fmt.Errorf("failed to drop phase row %s: %w", c.ID, err)
	}

	return nil
}

func upsertPhase(ctx context.Context, tx *sql.Tx, p *models.Phase) error {
	query := `
		INSERT INTO phases (
			id, owner_id, parent_id, name, count, elapsed, hunt_type,
			has_charm, success, created_at, last_edit, is_deleted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			parent_id = excluded.parent_id,
			name = excluded.name,
			count = excluded.count,
			elapsed = excluded.elapsed,
			hunt_type = excluded.hunt_type,
			has_charm = excluded.has_charm,
			success = excluded.success,
			created_at = excluded.created_at,
			last_edit = excluded.last_edit,
			is_deleted = excluded.is_deleted
	`

	_, err := tx.ExecContext(ctx, query,
		p.ID.String(),
		p.OwnerID.String(),
		p.Parent.String(),
		p.Name,
		p.Count,
		int64(p.Elapsed),
		string(p.HuntType),
		boolToInt(p.HasCharm),
		boolToInt(p.Success),
		timeToUnixNano(p.CreatedAt),
		timeToUnixNano(p.LastEdit),
		boolToInt(p.IsDeleted),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert phase %s: %w", p.ID, err)
	}

	// Узел мог раньше быть счетчиком
	if _, err := tx.ExecContext(ctx, `DELETE FROM counters WHERE id = ?`, p.ID.String()); err != nil {
		return fmt.Errorf("failed to drop counter row %s: %w", p.ID, err)
	}

	return nil
}

// ListOwners returns every owner that has at least one row
func (s *Storage) ListOwners(ctx context.Context) (owners []uuid.UUID, err error) {
	query := `
		SELECT owner_id FROM counters
		UNION
		SELECT owner_id FROM phases
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	owners = []uuid.UUID{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owner, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid owner id %q: %w", raw, err)
		}
		owners = append(owners, owner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owners: %w", err)
	}

	slices.SortFunc(owners, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	return owners, nil
}
