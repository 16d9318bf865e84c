// enums.go - Feste Wertemengen der String-Felder
// Enthaelt: zulaessige Werte und Encoder-Typ-Pruefungen
package config

import "strings"

// Zulaessige Werte der String-Felder, entsprechend dem Vokabular
// des Trainers.
var (
	Units           = []string{"char", "wp", "word", "phone"}
	ConvActivations = []string{"relu", "prelu", "hard_tanh", "maxout"}
	EncTypes        = []string{"blstm", "lstm", "conv_blstm", "conv_lstm", "lc_blstm", "conv_lc_blstm", "cnn"}
	SubsampleTypes  = []string{"drop", "concat", "max_pool"}
	AttnTypes       = []string{"content", "location", "dot", "add", "luong_dot", "luong_general", "luong_concat", "mocha"}
	DecTypes        = []string{"lstm", "gru"}
	InitDecStates   = []string{"zero", "mean", "final"}
	Optimizers      = []string{"adam", "adadelta", "adagrad", "sgd", "momentum", "nesterov", "noam"}
	LRDecayTypes    = []string{"always", "metric", "warmup"}
	Metrics         = []string{"edit_distance", "loss", "accuracy", "ppl"}

	// Leer bedeutet: kein Latenz-Term in der MoChA-Zielfunktion
	MochaLatencyMetrics = []string{"decot", "minlt", "ctc_sync"}
)

// isLatencyControlled prueft ob der Encoder-Typ in Chunks mit begrenztem
// Kontext arbeitet
func isLatencyControlled(encType string) bool {
	return strings.Contains(encType, "lc_")
}

// hasConvFrontend prueft ob der Encoder-Typ ein Konvolutions-Frontend
// vor den RNN-Schichten hat
func hasConvFrontend(encType string) bool {
	return strings.HasPrefix(encType, "conv_") || encType == "cnn"
}

// isBidirectional prueft ob die RNN-Schichten in beide Richtungen laufen
func isBidirectional(encType string) bool {
	return strings.Contains(encType, "blstm")
}
