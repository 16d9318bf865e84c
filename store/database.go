// database.go - Kern-Datenbank-Funktionen
// Enthält: database struct, newDatabase, Close, init, Migrationen

package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite-Treiber registrieren
)

// currentSchemaVersion definiert die aktuelle Datenbank-Schema-Version.
// Wird bei Schema-Änderungen erhöht, die Migrationen erfordern.
const currentSchemaVersion = 3

// database umhüllt die SQLite-Verbindung.
// SQLite verwaltet sein eigenes Locking für konkurrierende Zugriffe:
// - Mehrere Leser können gleichzeitig auf die Datenbank zugreifen
// - Schreiber werden serialisiert (nur ein Schreiber gleichzeitig)
// - WAL-Modus erlaubt Lesern, Schreiber nicht zu blockieren
// Daher benötigen wir keine Application-Level-Locks für Datenbankoperationen.
type database struct {
	conn *sql.DB
}

// newDatabase erstellt eine neue Datenbankverbindung
func newDatabase(dbPath string) (*database, error) {
	// Datenbankverbindung öffnen
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verbindung testen
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &database{conn: conn}

	// Schema initialisieren
	if err := db.init(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	return db, nil
}

// Close schließt die Datenbankverbindung
func (db *database) Close() error {
	_, _ = db.conn.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
	return db.conn.Close()
}

// init initialisiert das Datenbankschema
func (db *database) init() error {
	if _, err := db.conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		instance_id TEXT NOT NULL DEFAULT '',
		schema_version INTEGER NOT NULL DEFAULT %d
	);

	-- Standard-Meta-Zeile einfügen falls nicht vorhanden
	INSERT OR IGNORE INTO meta (id) VALUES (1);

	CREATE TABLE IF NOT EXISTS experiments (
		id TEXT PRIMARY KEY,
		corpus TEXT NOT NULL,
		model TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT 'latest',
		config TEXT NOT NULL,
		params INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (corpus, model, tag)
	);

	CREATE INDEX IF NOT EXISTS idx_experiments_corpus ON experiments(corpus);

	CREATE TABLE IF NOT EXISTS evals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment_id TEXT NOT NULL,
		split TEXT NOT NULL,
		epoch INTEGER NOT NULL DEFAULT 0,
		wer REAL NOT NULL DEFAULT 0,
		cer REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (experiment_id) REFERENCES experiments(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_evals_experiment_id ON evals(experiment_id);
	`, currentSchemaVersion)

	if _, err := db.conn.Exec(schema); err != nil {
		return err
	}

	// Schema-Version prüfen und bei Bedarf migrieren
	if err := db.migrate(); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}

// migrate führt Datenbank-Schema-Migrationen durch
func (db *database) migrate() error {
	version, err := db.getSchemaVersion()
	if err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	// Migrationen für jede Version durchführen
	for version < currentSchemaVersion {
		switch version {
		case 1:
			// Migration von Version 1 zu 2: notes Spalte hinzufügen
			if err := db.migrateV1ToV2(); err != nil {
				return fmt.Errorf("migrate v1 to v2: %w", err)
			}
			version = 2
		case 2:
			// Migration von Version 2 zu 3: epoch Spalte für evals hinzufügen
			if err := db.migrateV2ToV3(); err != nil {
				return fmt.Errorf("migrate v2 to v3: %w", err)
			}
			version = 3
		default:
			// Unbekannte Version: auf aktuelle Version setzen
			version = currentSchemaVersion
		}
	}

	return db.setSchemaVersion(version)
}

// migrateV1ToV2 fügt die notes Spalte zur experiments Tabelle hinzu
func (db *database) migrateV1ToV2() error {
	_, err := db.conn.Exec(`ALTER TABLE experiments ADD COLUMN notes TEXT NOT NULL DEFAULT ''`)
	if duplicateColumnError(err) {
		return nil
	}
	return err
}

// migrateV2ToV3 fügt die epoch Spalte zur evals Tabelle hinzu
func (db *database) migrateV2ToV3() error {
	_, err := db.conn.Exec(`ALTER TABLE evals ADD COLUMN epoch INTEGER NOT NULL DEFAULT 0`)
	if duplicateColumnError(err) {
		return nil
	}
	return err
}

// getSchemaVersion liest die Schema-Version aus der meta Tabelle
func (db *database) getSchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow(`SELECT schema_version FROM meta WHERE id = 1`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// setSchemaVersion setzt die Schema-Version in der meta Tabelle
func (db *database) setSchemaVersion(version int) error {
	_, err := db.conn.Exec(`UPDATE meta SET schema_version = ? WHERE id = 1`, version)
	return err
}

// getID liest die Instanz-ID aus der meta Tabelle
func (db *database) getID() (string, error) {
	var id string
	err := db.conn.QueryRow(`SELECT instance_id FROM meta WHERE id = 1`).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// setID setzt die Instanz-ID in der meta Tabelle
func (db *database) setID(id string) error {
	_, err := db.conn.Exec(`UPDATE meta SET instance_id = ? WHERE id = 1`, id)
	return err
}

// duplicateColumnError prüft ob ein SQLite-Fehler eine doppelte Spalte meldet
func duplicateColumnError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
