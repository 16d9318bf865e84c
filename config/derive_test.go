// derive_test.go - Unit Tests fuer die abgeleiteten Groessen
//
// Testet Subsampling-Faktor, Frame-Rate, Chunk-Latenz und Parameterschaetzung.
package config

import "testing"

// offline liefert eine Offline-Konfiguration ohne Conv-Frontend
func offline() *Config {
	config := Default()
	config.EncType = "blstm"
	config.ConvChannels = nil
	config.ConvKernelSizes = nil
	config.ConvStrides = nil
	config.ConvPoolings = nil
	config.LcChunkSizeLeft = 0
	config.LcChunkSizeRight = 0
	config.Subsample = IntList{1, 2, 2, 1, 1}
	return config
}

// TestTotalEncoderSubsampling testet den Gesamt-Subsampling-Faktor
func TestTotalEncoderSubsampling(t *testing.T) {
	if got := Default().TotalEncoderSubsampling(); got != 4 {
		t.Errorf("TotalEncoderSubsampling = %d, erwartet 4", got)
	}

	// Ohne Conv-Frontend zaehlen nur Frame-Skipping und RNN-Subsampling
	if got := offline().TotalEncoderSubsampling(); got != 4 {
		t.Errorf("TotalEncoderSubsampling = %d, erwartet 4", got)
	}

	config := Default()
	config.ConvStrides = ShapeList{{2, 2}, {1, 1}}
	if got := config.TotalEncoderSubsampling(); got != 8 {
		t.Errorf("TotalEncoderSubsampling mit Stride 2 = %d, erwartet 8", got)
	}

	config = offline()
	config.NSkips = 3
	if got := config.TotalEncoderSubsampling(); got != 12 {
		t.Errorf("TotalEncoderSubsampling mit n_skips 3 = %d, erwartet 12", got)
	}
}

// TestOutputFrameRateMs testet die Frame-Periode am Encoder-Ausgang
func TestOutputFrameRateMs(t *testing.T) {
	if got := Default().OutputFrameRateMs(); got != 40 {
		t.Errorf("OutputFrameRateMs = %d, erwartet 40", got)
	}
}

// TestChunkLatencyMs testet die algorithmische Latenz
func TestChunkLatencyMs(t *testing.T) {
	if got := Default().ChunkLatencyMs(); got != 800 {
		t.Errorf("ChunkLatencyMs = %d, erwartet 800", got)
	}

	if got := offline().ChunkLatencyMs(); got != 0 {
		t.Errorf("ChunkLatencyMs offline = %d, erwartet 0", got)
	}

	// Unbegrenzter linker Kontext zaehlt nicht zur Latenz
	config := Default()
	config.LcChunkSizeLeft = -1
	if got := config.ChunkLatencyMs(); got != 400 {
		t.Errorf("ChunkLatencyMs mit unbegrenztem linken Kontext = %d, erwartet 400", got)
	}
}

// TestStreamable testet die Streaming-Erkennung
func TestStreamable(t *testing.T) {
	if !Default().Streamable() {
		t.Error("Default sollte streamingfaehig sein")
	}

	if offline().Streamable() {
		t.Error("Offline-BLSTM sollte nicht streamingfaehig sein")
	}

	// Latenz-kontrollierter Encoder allein reicht nicht
	config := Default()
	config.AttnType = "location"
	if config.Streamable() {
		t.Error("Nicht-monotone Attention sollte nicht streamingfaehig sein")
	}
}

// TestEstimateParams testet die Plausibilitaet der Parameterschaetzung
func TestEstimateParams(t *testing.T) {
	params := Default().EstimateParams()
	if params < 10_000_000 || params > 200_000_000 {
		t.Errorf("EstimateParams = %d, erwartet einen Wert zwischen 10M und 200M", params)
	}

	// Mehr Encoder-Einheiten bedeuten mehr Parameter
	wider := Default()
	wider.EncNUnits = 1024
	if wider.EstimateParams() <= params {
		t.Errorf("EstimateParams mit enc_n_units 1024 = %d, erwartet mehr als %d", wider.EstimateParams(), params)
	}

	// Gebundene Embeddings sparen die Softmax-Matrix
	tied := Default()
	tied.TieEmbedding = true
	if tied.EstimateParams() >= params {
		t.Errorf("EstimateParams mit tie_embedding = %d, erwartet weniger als %d", tied.EstimateParams(), params)
	}
}

// TestSummarize testet die Zusammenfassung der abgeleiteten Groessen
func TestSummarize(t *testing.T) {
	config := Default()
	summary := config.Summarize()

	if summary.Params != config.EstimateParams() {
		t.Errorf("Summary.Params = %d, erwartet %d", summary.Params, config.EstimateParams())
	}
	if summary.SizeBytes != 4*summary.Params {
		t.Errorf("Summary.SizeBytes = %d, erwartet %d", summary.SizeBytes, 4*summary.Params)
	}
	if summary.Subsampling != 4 {
		t.Errorf("Summary.Subsampling = %d, erwartet 4", summary.Subsampling)
	}
	if summary.OutputFrameRateMs != 40 {
		t.Errorf("Summary.OutputFrameRateMs = %d, erwartet 40", summary.OutputFrameRateMs)
	}
	if summary.ChunkLatencyMs != 800 {
		t.Errorf("Summary.ChunkLatencyMs = %d, erwartet 800", summary.ChunkLatencyMs)
	}
	if !summary.Streamable {
		t.Error("Summary.Streamable = false, erwartet true")
	}
}
