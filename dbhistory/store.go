package dbhistory

import (
	"context"
	"database/sql"
	"encoding/json"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// Store persists terminal transaction records to PostgreSQL. It satisfies
// txservice.HistoryStore; persistence failures are surfaced to the caller
// and the engine treats them as best effort.
type Store struct {
	dbConnStr string
}

// NewStore creates a new history store with the provided connection string.
//
// Parameters:
// - connStr: the database connection string.
//
// Returns:
// - *Store: a pointer to the newly created Store instance.
func NewStore(connStr string) *Store {
	return &Store{dbConnStr: connStr}
}

// SaveTransaction inserts or updates a terminal transaction record.
//
// Parameters:
// - ctx: the context for managing the request.
// - tx: the terminal transaction record.
//
// Returns:
// - error: an error if the database operation fails.
func (s *Store) SaveTransaction(ctx context.Context, tx *commontypes.Transaction) error {
	db, err := sql.Open("postgres", s.dbConnStr)
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer db.Close()

	var receiptJSON []byte
	if tx.Receipt != nil {
		receiptJSON, err = json.Marshal(tx.Receipt)
		if err != nil {
			return errors.Wrap(err, "failed to encode receipt")
		}
	}

	var failure *string
	if tx.Err != nil {
		msg := tx.Err.Error()
		failure = &msg
	}

	_, err = db.ExecContext(ctx, `
       INSERT INTO transaction_history (
           tracking_id,
           chain_hash,
           chain_type,
           chain_id,
           wallet_id,
           from_address,
           status,
           start_time,
           end_time,
           receipt,
           failure
       ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
       ON CONFLICT (tracking_id)
       DO UPDATE SET
           chain_hash = EXCLUDED.chain_hash,
           status = EXCLUDED.status,
           end_time = EXCLUDED.end_time,
           receipt = EXCLUDED.receipt,
           failure = EXCLUDED.failure`,
		tx.TrackingID,
		tx.Hash,
		tx.ChainType.String(),
		tx.ChainID,
		tx.WalletID,
		tx.From,
		tx.Status.String(),
		tx.StartTime,
		tx.EndTime,
		receiptJSON,
		failure,
	)

	return err
}

// TransactionsByWallet retrieves the persisted terminal records for a wallet.
//
// Parameters:
// - ctx: the context for managing the request.
// - walletID: the identifier of the wallet.
//
// Returns:
// - []*commontypes.Transaction: the persisted records, newest first.
// - error: an error if the database operation fails.
func (s *Store) TransactionsByWallet(ctx context.Context, walletID string) ([]*commontypes.Transaction, error) {
	db, err := sql.Open("postgres", s.dbConnStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
       SELECT tracking_id, chain_hash, chain_type, chain_id, wallet_id,
              from_address, status, start_time, end_time, receipt
       FROM transaction_history
       WHERE wallet_id = $1
       ORDER BY start_time DESC`,
		walletID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query transaction history")
	}
	defer rows.Close()

	var result []*commontypes.Transaction
	for rows.Next() {
		var (
			tx          commontypes.Transaction
			chainType   string
			status      string
			receiptJSON []byte
		)
		if err := rows.Scan(
			&tx.TrackingID,
			&tx.Hash,
			&chainType,
			&tx.ChainID,
			&tx.WalletID,
			&tx.From,
			&status,
			&tx.StartTime,
			&tx.EndTime,
			&receiptJSON,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan transaction history row")
		}

		tx.ChainType = commontypes.ParseChainType(chainType)
		tx.Status = commontypes.TxStatus(status)
		if len(receiptJSON) > 0 {
			receipt := &commontypes.Receipt{}
			if err := json.Unmarshal(receiptJSON, receipt); err == nil {
				tx.Receipt = receipt
			}
		}

		result = append(result, &tx)
	}

	return result, rows.Err()
}
