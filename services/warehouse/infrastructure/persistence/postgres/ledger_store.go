// Package postgres implements the warehouse LedgerStore against PostgreSQL.
// All writes of one invocation share a single transaction, and staged domain
// events are published through the Watermill SQL outbox inside that same
// transaction, so an aborted invocation leaves neither rows nor events.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/warehouse/pkg/database"
	"github.com/ghuser/warehouse/pkg/events"
	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
	"github.com/ghuser/warehouse/services/warehouse/domain/repositories"
)

// LedgerStore implements repositories.LedgerStore against PostgreSQL.
type LedgerStore struct {
	db  *database.Database
	bus *events.EventBus
}

// NewLedgerStore returns a LedgerStore backed by the given connection pool
// and event bus. A nil bus disables event publishing (tests, migrations).
func NewLedgerStore(db *database.Database, bus *events.EventBus) *LedgerStore {
	return &LedgerStore{db: db, bus: bus}
}

// Update implements repositories.LedgerStore. Events staged via Publish are
// flushed through a transaction-bound publisher just before commit.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx repositories.LedgerTx) error) error {
	return s.db.WithTx(ctx, func(sqlTx *sql.Tx) error {
		tx := &ledgerTx{querier: sqlTx}
		if err := fn(tx); err != nil {
			return err
		}
		return s.flushEvents(sqlTx, tx.staged)
	})
}

// View implements repositories.LedgerStore. Reads go straight to the pool;
// invocations are serialized by contract, so the pool always reflects the
// most recently committed invocation.
func (s *LedgerStore) View(ctx context.Context, fn func(v repositories.LedgerView) error) error {
	return fn(&ledgerTx{querier: s.db.DB()})
}

func (s *LedgerStore) flushEvents(sqlTx *sql.Tx, staged []stagedEvent) error {
	if s.bus == nil || len(staged) == 0 {
		return nil
	}
	pub, err := s.bus.NewTxPublisher(sqlTx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	for _, ev := range staged {
		payload, err := json.Marshal(ev.payload)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set("event_version", "1")
		if err := pub.Publish(ev.topic, msg); err != nil {
			return fmt.Errorf("publish to %s: %w", ev.topic, err)
		}
	}
	return nil
}

type stagedEvent struct {
	topic   string
	payload any
}

// querier is satisfied by both *sql.Tx and *sql.DB, letting ledgerTx serve
// as the transaction and the read-only view.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type ledgerTx struct {
	querier querier
	staged  []stagedEvent
}

func (t *ledgerTx) Item(ctx context.Context, itemID uint64) (*models.Item, error) {
	row := t.querier.QueryRowContext(ctx, `
		SELECT name, total_quantity, available_quantity, data, frozen, no_update_after
		FROM warehouse_items
		WHERE item_id = $1`,
		int64(itemID),
	)

	var (
		name          string
		totalQty      int64
		availableQty  int64
		rawData       []byte
		frozen        bool
		noUpdateAfter sql.NullTime
	)
	if err := row.Scan(&name, &totalQty, &availableQty, &rawData, &frozen, &noUpdateAfter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, warehousedomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}

	data, err := unmarshalData(rawData)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", itemID, err)
	}

	return &models.Item{
		ID:                itemID,
		Name:              models.ItemName(name),
		TotalQuantity:     uint64(totalQty),
		AvailableQuantity: uint64(availableQty),
		Data:              data,
		Gate:              gateFromColumns(frozen, noUpdateAfter),
	}, nil
}

func (t *ledgerTx) PutItem(ctx context.Context, item *models.Item) error {
	rawData, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("marshal item data: %w", err)
	}
	frozen, noUpdateAfter := gateToColumns(item.Gate)

	_, err = t.querier.ExecContext(ctx, `
		INSERT INTO warehouse_items (item_id, name, total_quantity, available_quantity, data, frozen, no_update_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE SET
			name = EXCLUDED.name,
			total_quantity = EXCLUDED.total_quantity,
			available_quantity = EXCLUDED.available_quantity,
			data = EXCLUDED.data,
			frozen = EXCLUDED.frozen,
			no_update_after = EXCLUDED.no_update_after`,
		int64(item.ID), item.Name.String(), int64(item.TotalQuantity), int64(item.AvailableQuantity),
		rawData, frozen, noUpdateAfter,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

func (t *ledgerTx) Instance(ctx context.Context, itemID, instanceNumber uint64) (*models.Instance, error) {
	row := t.querier.QueryRowContext(ctx, `
		SELECT user_id, data
		FROM warehouse_instances
		WHERE item_id = $1 AND instance_number = $2`,
		int64(itemID), int64(instanceNumber),
	)

	var (
		userID  string
		rawData []byte
	)
	if err := row.Scan(&userID, &rawData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, warehousedomain.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("query instance: %w", err)
	}

	data, err := unmarshalData(rawData)
	if err != nil {
		return nil, fmt.Errorf("instance (%d,%d): %w", itemID, instanceNumber, err)
	}

	return &models.Instance{
		ItemID:         itemID,
		InstanceNumber: instanceNumber,
		UserID:         userID,
		Data:           data,
	}, nil
}

func (t *ledgerTx) PutInstance(ctx context.Context, instance *models.Instance) error {
	rawData, err := json.Marshal(instance.Data)
	if err != nil {
		return fmt.Errorf("marshal instance data: %w", err)
	}

	_, err = t.querier.ExecContext(ctx, `
		INSERT INTO warehouse_instances (item_id, instance_number, user_id, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id, instance_number) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			data = EXCLUDED.data`,
		int64(instance.ItemID), int64(instance.InstanceNumber), instance.UserID, rawData,
	)
	if err != nil {
		return fmt.Errorf("upsert instance: %w", err)
	}
	return nil
}

func (t *ledgerTx) Owners(ctx context.Context) (models.OwnerSet, error) {
	rows, err := t.querier.QueryContext(ctx, `
		SELECT address FROM warehouse_owners ORDER BY position`)
	if err != nil {
		return models.OwnerSet{}, fmt.Errorf("query owners: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var addrs []string
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return models.OwnerSet{}, fmt.Errorf("scan owner: %w", err)
		}
		addrs = append(addrs, addr)
	}
	if err := rows.Err(); err != nil {
		return models.OwnerSet{}, fmt.Errorf("iterate owners: %w", err)
	}
	return models.NewOwnerSet(addrs...), nil
}

// PutOwners replaces the whole owner set. The set is small and invocations
// are serialized, so delete-and-reinsert keeps positions dense without any
// bookkeeping.
func (t *ledgerTx) PutOwners(ctx context.Context, owners models.OwnerSet) error {
	if _, err := t.querier.ExecContext(ctx, `DELETE FROM warehouse_owners`); err != nil {
		return fmt.Errorf("clear owners: %w", err)
	}
	for i, addr := range owners.List() {
		if _, err := t.querier.ExecContext(ctx, `
			INSERT INTO warehouse_owners (position, address) VALUES ($1, $2)`,
			i, addr,
		); err != nil {
			return fmt.Errorf("insert owner: %w", err)
		}
	}
	return nil
}

func (t *ledgerTx) InventoryEntry(ctx context.Context, userID string, itemID, instanceNumber uint64) (*models.InventoryEntry, error) {
	row := t.querier.QueryRowContext(ctx, `
		SELECT data
		FROM warehouse_inventory
		WHERE user_id = $1 AND item_id = $2 AND instance_number = $3`,
		userID, int64(itemID), int64(instanceNumber),
	)

	var rawData []byte
	if err := row.Scan(&rawData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, warehousedomain.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("query inventory entry: %w", err)
	}

	data, err := unmarshalData(rawData)
	if err != nil {
		return nil, fmt.Errorf("inventory entry (%s,%d,%d): %w", userID, itemID, instanceNumber, err)
	}

	return &models.InventoryEntry{
		UserID:         userID,
		ItemID:         itemID,
		InstanceNumber: instanceNumber,
		Data:           data,
	}, nil
}

func (t *ledgerTx) PutInventoryEntry(ctx context.Context, entry *models.InventoryEntry) error {
	rawData, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("marshal inventory data: %w", err)
	}

	_, err = t.querier.ExecContext(ctx, `
		INSERT INTO warehouse_inventory (user_id, item_id, instance_number, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, item_id, instance_number) DO UPDATE SET
			data = EXCLUDED.data`,
		entry.UserID, int64(entry.ItemID), int64(entry.InstanceNumber), rawData,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory entry: %w", err)
	}
	return nil
}

func (t *ledgerTx) Publish(topic string, payload any) error {
	t.staged = append(t.staged, stagedEvent{topic: topic, payload: payload})
	return nil
}

func unmarshalData(raw []byte) (models.DataMap, error) {
	data := models.DataMap{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal data: %w", err)
	}
	return data, nil
}

// gateFromColumns maps the two persisted gate columns back to the tagged
// variant. A frozen row wins over any deadline.
func gateFromColumns(frozen bool, noUpdateAfter sql.NullTime) models.Gate {
	switch {
	case frozen:
		return models.FrozenGate()
	case noUpdateAfter.Valid:
		return models.MutableUntilGate(noUpdateAfter.Time.UTC())
	default:
		return models.MutableGate()
	}
}

func gateToColumns(gate models.Gate) (bool, sql.NullTime) {
	switch gate.Kind {
	case models.GateFrozen:
		return true, sql.NullTime{}
	case models.GateMutableUntil:
		return false, sql.NullTime{Time: gate.Until.UTC(), Valid: true}
	default:
		return false, sql.NullTime{}
	}
}
