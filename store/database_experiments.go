// database_experiments.go - Experiment CRUD Operationen
// Enthält: getExperiments, getExperiment, saveExperiment, deleteExperiment,
// addEval, getEvals

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/resona-asr/resona/types/experiment"
)

// ErrNotFound meldet ein unbekanntes Experiment
var ErrNotFound = errors.New("experiment not found")

// getExperiments gibt alle Experimente zurück, zuletzt geänderte zuerst
func (db *database) getExperiments() ([]Experiment, error) {
	query := `
		SELECT id, corpus, model, tag, config, params, notes, created_at, updated_at
		FROM experiments
		ORDER BY updated_at DESC, corpus, model, tag
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query experiments: %w", err)
	}
	defer rows.Close()

	var experiments []Experiment
	for rows.Next() {
		var exp Experiment
		err := rows.Scan(
			&exp.ID,
			&exp.Name.Corpus,
			&exp.Name.Model,
			&exp.Name.Tag,
			&exp.Config,
			&exp.Params,
			&exp.Notes,
			&exp.CreatedAt,
			&exp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan experiment: %w", err)
		}

		experiments = append(experiments, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiments: %w", err)
	}

	return experiments, nil
}

// getExperiment gibt ein Experiment unter seinem Namen zurück
func (db *database) getExperiment(name experiment.Name) (*Experiment, error) {
	query := `
		SELECT id, corpus, model, tag, config, params, notes, created_at, updated_at
		FROM experiments
		WHERE corpus = ? AND model = ? AND tag = ?
	`

	var exp Experiment
	err := db.conn.QueryRow(query, name.Corpus, name.Model, name.Tag).Scan(
		&exp.ID,
		&exp.Name.Corpus,
		&exp.Name.Model,
		&exp.Name.Tag,
		&exp.Config,
		&exp.Params,
		&exp.Notes,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("query experiment: %w", err)
	}

	return &exp, nil
}

// saveExperiment legt ein Experiment an oder aktualisiert es unter seinem
// Namen. Die ID bleibt bei Aktualisierungen stabil.
func (db *database) saveExperiment(exp Experiment) (*Experiment, error) {
	query := `
		INSERT INTO experiments (id, corpus, model, tag, config, params, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (corpus, model, tag) DO UPDATE SET
			config = excluded.config,
			params = excluded.params,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := db.conn.Exec(query,
		exp.ID,
		exp.Name.Corpus,
		exp.Name.Model,
		exp.Name.Tag,
		exp.Config,
		exp.Params,
		exp.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("save experiment: %w", err)
	}

	return db.getExperiment(exp.Name)
}

// deleteExperiment löscht ein Experiment samt seiner Evals
func (db *database) deleteExperiment(name experiment.Name) error {
	result, err := db.conn.Exec(`
		DELETE FROM experiments
		WHERE corpus = ? AND model = ? AND tag = ?
	`, name.Corpus, name.Model, name.Tag)
	if err != nil {
		return fmt.Errorf("delete experiment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete experiment: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return nil
}

// addEval speichert ein Evaluations-Ergebnis für ein Experiment
func (db *database) addEval(name experiment.Name, eval Eval) (*Eval, error) {
	exp, err := db.getExperiment(name)
	if err != nil {
		return nil, err
	}

	result, err := db.conn.Exec(`
		INSERT INTO evals (experiment_id, split, epoch, wer, cer)
		VALUES (?, ?, ?, ?, ?)
	`, exp.ID, eval.Split, eval.Epoch, eval.WER, eval.CER)
	if err != nil {
		return nil, fmt.Errorf("save eval: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("save eval: %w", err)
	}

	eval.ID = id
	eval.ExperimentID = exp.ID
	eval.CreatedAt = time.Now()
	return &eval, nil
}

// getEvals gibt die Evaluations-Ergebnisse eines Experiments zurück
func (db *database) getEvals(name experiment.Name) ([]Eval, error) {
	exp, err := db.getExperiment(name)
	if err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT id, experiment_id, split, epoch, wer, cer, created_at
		FROM evals
		WHERE experiment_id = ?
		ORDER BY split, epoch, id
	`, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("query evals: %w", err)
	}
	defer rows.Close()

	var evals []Eval
	for rows.Next() {
		var eval Eval
		err := rows.Scan(
			&eval.ID,
			&eval.ExperimentID,
			&eval.Split,
			&eval.Epoch,
			&eval.WER,
			&eval.CER,
			&eval.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan eval: %w", err)
		}

		evals = append(evals, eval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evals: %w", err)
	}

	return evals, nil
}
