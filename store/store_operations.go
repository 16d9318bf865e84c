// Modul: store_operations.go
// Beschreibung: Store-Operationen fuer Experimente und Evals.
// Enthaelt alle CRUD-Operationen auf der Datenbank.

package store

import (
	"github.com/google/uuid"

	"github.com/resona-asr/resona/types/experiment"
)

func (s *Store) Experiments() ([]Experiment, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	return s.db.getExperiments()
}

func (s *Store) Experiment(name experiment.Name) (*Experiment, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	return s.db.getExperiment(name)
}

// SaveExperiment legt ein Experiment an oder aktualisiert es unter seinem
// Namen und gibt den gespeicherten Stand zurueck.
func (s *Store) SaveExperiment(exp Experiment) (*Experiment, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	if exp.ID == "" {
		u, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		// The generated ID only sticks for new rows, updates keep the old one
		exp.ID = u.String()
	}

	return s.db.saveExperiment(exp)
}

func (s *Store) DeleteExperiment(name experiment.Name) error {
	if err := s.ensureDB(); err != nil {
		return err
	}

	return s.db.deleteExperiment(name)
}

func (s *Store) AddEval(name experiment.Name, eval Eval) (*Eval, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	return s.db.addEval(name, eval)
}

func (s *Store) Evals(name experiment.Name) ([]Eval, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	return s.db.getEvals(name)
}
