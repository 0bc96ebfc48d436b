package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Import represents one statement import batch
type Import struct {
	ID           string    `json:"id"`
	ImportedAt   time.Time `json:"imported_at"`
	SourceFile   string    `json:"source_file"`
	BankID       string    `json:"bank_id"`
	AcctID       string    `json:"acct_id"`
	Currency     string    `json:"currency"`
	Transactions int       `json:"transactions"`
}

// Transaction represents one stored statement transaction. Amounts are
// stored as their exact decimal text, never as floating point.
type Transaction struct {
	ImportID string    `json:"import_id"`
	AcctID   string    `json:"acct_id"`
	FitID    string    `json:"fit_id"`
	TrnType  string    `json:"trn_type"`
	DtPosted time.Time `json:"dt_posted"`
	Amount   string    `json:"amount"`
	Name     string    `json:"name"`
	Memo     string    `json:"memo,omitempty"`
	CurSym   string    `json:"cur_sym,omitempty"`
	CurType  string    `json:"cur_type,omitempty"`
}

// TransactionFilter defines criteria for querying transactions
type TransactionFilter struct {
	ImportID  string
	AcctID    string
	TrnType   string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
	Offset    int
}

// StatementStore defines the interface for statement persistence
type StatementStore interface {
	// SaveImport stores an import batch with its transactions.
	// Transactions whose FITID was already imported for the same
	// account are skipped; the returned counts are (stored, skipped).
	SaveImport(ctx context.Context, imp *Import, txns []*Transaction) (int, int, error)

	// ListImports returns all import batches, newest first
	ListImports(ctx context.Context) ([]*Import, error)

	// QueryTransactions retrieves transactions by filter criteria
	QueryTransactions(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)

	// Stats returns store statistics
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Vacuum optimizes the underlying storage
	Vacuum(ctx context.Context) error

	Close() error
}

// SQLiteStatementStore implements StatementStore using SQLite
type SQLiteStatementStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/statements.db",
	}
}

// NewSQLiteStatementStore creates a new SQLite-based statement store
func NewSQLiteStatementStore(cfg SQLiteConfig) (*SQLiteStatementStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStatementStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStatementStore) initSchema() error {
	schema := `
	-- Import batches
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		imported_at DATETIME NOT NULL,
		source_file TEXT NOT NULL,
		bank_id TEXT,
		acct_id TEXT NOT NULL,
		currency TEXT,
		transactions INTEGER NOT NULL
	);

	-- Statement transactions; FITID is unique per account
	CREATE TABLE IF NOT EXISTS transactions (
		import_id TEXT NOT NULL REFERENCES imports(id),
		acct_id TEXT NOT NULL,
		fit_id TEXT NOT NULL,
		trn_type TEXT NOT NULL,
		dt_posted DATETIME,
		amount TEXT NOT NULL,
		name TEXT,
		memo TEXT,
		cur_sym TEXT,
		cur_type TEXT,
		PRIMARY KEY (acct_id, fit_id)
	);

	CREATE INDEX IF NOT EXISTS idx_txn_import ON transactions(import_id);
	CREATE INDEX IF NOT EXISTS idx_txn_posted ON transactions(dt_posted DESC);
	CREATE INDEX IF NOT EXISTS idx_txn_type ON transactions(trn_type);
	CREATE INDEX IF NOT EXISTS idx_imports_time ON imports(imported_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveImport stores an import batch with its transactions
func (s *SQLiteStatementStore) SaveImport(ctx context.Context, imp *Import, txns []*Transaction) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if imp.ID == "" {
		imp.ID = uuid.New().String()
	}
	if imp.ImportedAt.IsZero() {
		imp.ImportedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(import_id, acct_id, fit_id, trn_type, dt_posted, amount, name, memo, cur_sym, cur_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	var stored, skipped int
	for _, txn := range txns {
		txn.ImportID = imp.ID
		txn.AcctID = imp.AcctID
		result, err := stmt.ExecContext(ctx, txn.ImportID, txn.AcctID, txn.FitID, txn.TrnType,
			txn.DtPosted, txn.Amount, txn.Name, txn.Memo, txn.CurSym, txn.CurType)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to insert transaction %s: %w", txn.FitID, err)
		}

		affected, _ := result.RowsAffected()
		if affected == 0 {
			skipped++
		} else {
			stored++
		}
	}

	imp.Transactions = stored
	_, err = tx.ExecContext(ctx, `
		INSERT INTO imports (id, imported_at, source_file, bank_id, acct_id, currency, transactions)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, imp.ID, imp.ImportedAt, imp.SourceFile, imp.BankID, imp.AcctID, imp.Currency, imp.Transactions)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert import batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stored, skipped, nil
}

// ListImports returns all import batches, newest first
func (s *SQLiteStatementStore) ListImports(ctx context.Context) ([]*Import, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, imported_at, source_file, bank_id, acct_id, currency, transactions
		FROM imports ORDER BY imported_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query imports: %w", err)
	}
	defer rows.Close()

	var imports []*Import
	for rows.Next() {
		var imp Import
		var bankID, currency sql.NullString

		if err := rows.Scan(&imp.ID, &imp.ImportedAt, &imp.SourceFile, &bankID,
			&imp.AcctID, &currency, &imp.Transactions); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}

		imp.BankID = bankID.String
		imp.Currency = currency.String
		imports = append(imports, &imp)
	}

	return imports, nil
}

// QueryTransactions retrieves transactions based on filter criteria
func (s *SQLiteStatementStore) QueryTransactions(ctx context.Context, filter TransactionFilter) ([]*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT import_id, acct_id, fit_id, trn_type, dt_posted, amount, name, memo, cur_sym, cur_type
		FROM transactions WHERE 1=1`
	var args []interface{}

	if filter.ImportID != "" {
		query += " AND import_id = ?"
		args = append(args, filter.ImportID)
	}
	if filter.AcctID != "" {
		query += " AND acct_id = ?"
		args = append(args, filter.AcctID)
	}
	if filter.TrnType != "" {
		query += " AND trn_type = ?"
		args = append(args, filter.TrnType)
	}
	if !filter.StartDate.IsZero() {
		query += " AND dt_posted >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND dt_posted <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY dt_posted DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []*Transaction
	for rows.Next() {
		var txn Transaction
		var dtPosted sql.NullTime
		var name, memo, curSym, curType sql.NullString

		if err := rows.Scan(&txn.ImportID, &txn.AcctID, &txn.FitID, &txn.TrnType, &dtPosted,
			&txn.Amount, &name, &memo, &curSym, &curType); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if dtPosted.Valid {
			txn.DtPosted = dtPosted.Time
		}
		txn.Name = name.String
		txn.Memo = memo.String
		txn.CurSym = curSym.String
		txn.CurType = curType.String

		txns = append(txns, &txn)
	}

	return txns, nil
}

// Stats returns store statistics
func (s *SQLiteStatementStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var totalImports, totalTxns int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM imports`).Scan(&totalImports)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&totalTxns)
	stats["total_imports"] = totalImports
	stats["total_transactions"] = totalTxns

	typeCounts := make(map[string]int64)
	rows, _ := s.db.QueryContext(ctx, `SELECT trn_type, COUNT(*) FROM transactions GROUP BY trn_type`)
	if rows != nil {
		defer rows.Close()
		for rows.Next() {
			var trnType string
			var count int64
			rows.Scan(&trnType, &count)
			typeCounts[trnType] = count
		}
	}
	stats["transactions_by_type"] = typeCounts

	var lastImport sql.NullTime
	s.db.QueryRowContext(ctx, `SELECT MAX(imported_at) FROM imports`).Scan(&lastImport)
	if lastImport.Valid {
		stats["last_import"] = lastImport.Time
	}

	return stats, nil
}

// Vacuum optimizes the database
func (s *SQLiteStatementStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `VACUUM`)
	return err
}

// Close closes the database connection
func (s *SQLiteStatementStore) Close() error {
	return s.db.Close()
}

// MemoryStatementStore is an in-memory implementation for testing
type MemoryStatementStore struct {
	mu      sync.RWMutex
	imports []*Import
	txns    []*Transaction
	seen    map[string]bool
}

// NewMemoryStatementStore creates a new in-memory statement store
func NewMemoryStatementStore() *MemoryStatementStore {
	return &MemoryStatementStore{
		imports: make([]*Import, 0),
		txns:    make([]*Transaction, 0),
		seen:    make(map[string]bool),
	}
}

// SaveImport stores an import batch with its transactions
func (s *MemoryStatementStore) SaveImport(ctx context.Context, imp *Import, txns []*Transaction) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if imp.ID == "" {
		imp.ID = uuid.New().String()
	}
	if imp.ImportedAt.IsZero() {
		imp.ImportedAt = time.Now()
	}

	var stored, skipped int
	for _, txn := range txns {
		key := imp.AcctID + "\x00" + txn.FitID
		if s.seen[key] {
			skipped++
			continue
		}
		s.seen[key] = true
		txn.ImportID = imp.ID
		txn.AcctID = imp.AcctID
		s.txns = append(s.txns, txn)
		stored++
	}

	imp.Transactions = stored
	s.imports = append(s.imports, imp)
	return stored, skipped, nil
}

// ListImports returns all import batches, newest first
func (s *MemoryStatementStore) ListImports(ctx context.Context) ([]*Import, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*Import, len(s.imports))
	for i, imp := range s.imports {
		results[len(s.imports)-1-i] = imp
	}
	return results, nil
}

// QueryTransactions retrieves transactions based on filter criteria
func (s *MemoryStatementStore) QueryTransactions(ctx context.Context, filter TransactionFilter) ([]*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Transaction
	for _, txn := range s.txns {
		if filter.ImportID != "" && txn.ImportID != filter.ImportID {
			continue
		}
		if filter.AcctID != "" && txn.AcctID != filter.AcctID {
			continue
		}
		if filter.TrnType != "" && txn.TrnType != filter.TrnType {
			continue
		}
		if !filter.StartDate.IsZero() && txn.DtPosted.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && txn.DtPosted.After(filter.EndDate) {
			continue
		}
		results = append(results, txn)
	}

	if filter.Offset > 0 && filter.Offset < len(results) {
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Stats returns store statistics
func (s *MemoryStatementStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	typeCounts := make(map[string]int64)
	for _, txn := range s.txns {
		typeCounts[txn.TrnType]++
	}

	return map[string]interface{}{
		"total_imports":        int64(len(s.imports)),
		"total_transactions":   int64(len(s.txns)),
		"transactions_by_type": typeCounts,
	}, nil
}

// Vacuum is a no-op for the in-memory store
func (s *MemoryStatementStore) Vacuum(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStatementStore) Close() error {
	return nil
}
