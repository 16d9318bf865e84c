// Modul: types.go
// Beschreibung: Datentypen und Strukturen fuer den Store.
// Enthaelt Experiment und Eval.

package store

import (
	"time"

	"github.com/resona-asr/resona/types/experiment"
)

// Experiment ist eine gespeicherte Trainings-Konfiguration unter einem
// corpus/model:tag Namen. Config ist das kanonische YAML.
type Experiment struct {
	ID        string
	Name      experiment.Name
	Config    string
	Params    uint64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Eval ist ein gemeldetes Evaluations-Ergebnis eines Experiments auf
// einem Datensplit.
type Eval struct {
	ID           int64
	ExperimentID string
	Split        string
	Epoch        int
	WER          float64
	CER          float64
	CreatedAt    time.Time
}
