// derive.go - Abgeleitete Groessen einer Konfiguration
// Enthaelt: Subsampling-Faktor, Frame-Rate, Chunk-Latenz, Parameterschaetzung
package config

import "strings"

// frameMs ist die Frame-Periode des Feature-Frontends in Millisekunden
const frameMs = 10

// BytesPerParam ist die Groesse eines fp32-Gewichts in Bytes
const BytesPerParam = 4

// TotalEncoderSubsampling gibt den Gesamt-Subsampling-Faktor entlang der
// Zeitachse zurueck: Frame-Skipping, Konvolutions-Strides und -Poolings
// sowie die Subsampling-Faktoren der RNN-Schichten.
func (c *Config) TotalEncoderSubsampling() int {
	factor := max(c.NSkips, 1)

	if hasConvFrontend(c.EncType) {
		factor *= c.ConvStrides.TimeProduct()
		factor *= c.ConvPoolings.TimeProduct()
	}

	for _, s := range c.Subsample {
		if s > 1 {
			factor *= s
		}
	}

	return factor
}

// OutputFrameRateMs gibt die Frame-Periode am Encoder-Ausgang in
// Millisekunden zurueck, bei 10ms Eingangs-Frames
func (c *Config) OutputFrameRateMs() int {
	return frameMs * c.TotalEncoderSubsampling()
}

// ChunkLatencyMs gibt die algorithmische Latenz der latenz-kontrollierten
// Verarbeitung in Millisekunden zurueck, 0 fuer Offline-Encoder. Gerechnet
// wird der unguenstigste Fall: das erste Frame eines Chunks wartet auf den
// ganzen Chunk plus den rechten Kontext.
func (c *Config) ChunkLatencyMs() int {
	if !isLatencyControlled(c.EncType) {
		return 0
	}

	return (max(c.LcChunkSizeLeft, 0) + max(c.LcChunkSizeRight, 0)) * frameMs
}

// Streamable meldet ob die Konfiguration einen streamingfaehigen Erkenner
// beschreibt: latenz-kontrollierter Encoder und monotone Attention
func (c *Config) Streamable() bool {
	return isLatencyControlled(c.EncType) && c.AttnType == "mocha"
}

// EstimateParams schaetzt die Parameterzahl des beschriebenen Netzes.
// Gezaehlt werden Konvolutions-, Gate-, Projektions-, Attention-,
// Embedding- und Softmax-Gewichte samt Bias-Termen.
func (c *Config) EstimateParams() uint64 {
	var total uint64

	// Konvolutions-Frontend
	if hasConvFrontend(c.EncType) && len(c.ConvChannels) > 0 {
		in := c.ConvInChannel
		for i, out := range c.ConvChannels {
			kt, kf := 3, 3
			if i < len(c.ConvKernelSizes) {
				kt, kf = c.ConvKernelSizes[i].Time(), c.ConvKernelSizes[i].Freq()
			}

			total += uint64(out*in*kt*kf + out)
			if c.ConvBatchNorm {
				total += uint64(2 * out)
			}

			in = out
		}
	}

	// Encoder-RNN
	if c.EncType != "cnn" {
		in := c.encRNNInputDim()
		dirs := 1
		if isBidirectional(c.EncType) {
			dirs = 2
		}

		for range c.EncNLayers {
			total += uint64(dirs) * rnnParams(in, c.EncNUnits, 4)

			out := dirs * c.EncNUnits
			if c.EncNProjs > 0 {
				total += uint64(out*c.EncNProjs + c.EncNProjs)
				out = c.EncNProjs
			}

			in = out
		}
	}

	encOut := c.encOutputDim()

	// Attention-Energie
	total += uint64(c.AttnNHeads) * uint64((encOut+c.DecNUnits+1)*c.AttnDim)
	switch c.AttnType {
	case "mocha":
		// zweite Energieschicht fuer die chunkweise Gewichtung
		total += uint64((encOut + c.DecNUnits + 1) * c.AttnDim)
	case "location":
		total += uint64(c.AttnConvNChannels*c.AttnConvWidth + c.AttnConvNChannels*c.AttnDim)
	}

	// Decoder-RNN mit Input-Feeding
	in := c.EmbDim + encOut
	for range c.DecNLayers {
		total += rnnParams(in, c.DecNUnits, rnnGates(c.DecType))

		out := c.DecNUnits
		if c.DecNProjs > 0 {
			total += uint64(out*c.DecNProjs + c.DecNProjs)
			out = c.DecNProjs
		}

		in = out
	}

	decOut := c.DecNUnits
	if c.DecNProjs > 0 {
		decOut = c.DecNProjs
	}

	// Embedding, Bottleneck und Ausgabeschicht
	total += uint64(c.VocabSize * c.EmbDim)
	total += uint64((decOut+encOut)*c.EmbDim + c.EmbDim)
	if !c.TieEmbedding {
		total += uint64(c.EmbDim*c.VocabSize + c.VocabSize)
	}

	// CTC-Kopf
	if c.CTCWeight > 0 {
		total += uint64(encOut*c.VocabSize + c.VocabSize)
	}

	return total
}

// EstimateSizeBytes schaetzt die Modellgroesse in Bytes bei fp32-Gewichten
func (c *Config) EstimateSizeBytes() uint64 {
	return BytesPerParam * c.EstimateParams()
}

// Summary fasst die abgeleiteten Groessen einer Konfiguration zusammen
type Summary struct {
	Params            uint64 `json:"params"`
	SizeBytes         uint64 `json:"size_bytes"`
	Subsampling       int    `json:"subsampling"`
	OutputFrameRateMs int    `json:"output_frame_rate_ms"`
	ChunkLatencyMs    int    `json:"chunk_latency_ms"`
	Streamable        bool   `json:"streamable"`
}

// Summarize berechnet alle abgeleiteten Groessen
func (c *Config) Summarize() Summary {
	return Summary{
		Params:            c.EstimateParams(),
		SizeBytes:         c.EstimateSizeBytes(),
		Subsampling:       c.TotalEncoderSubsampling(),
		OutputFrameRateMs: c.OutputFrameRateMs(),
		ChunkLatencyMs:    c.ChunkLatencyMs(),
		Streamable:        c.Streamable(),
	}
}

// encRNNInputDim gibt die Eingangsdimension der ersten RNN-Schicht zurueck
func (c *Config) encRNNInputDim() int {
	if hasConvFrontend(c.EncType) && len(c.ConvChannels) > 0 {
		freq := c.InputDim
		if c.ConvInChannel > 1 {
			freq = c.InputDim / c.ConvInChannel
		}

		for i := range c.ConvChannels {
			if i < len(c.ConvStrides) && c.ConvStrides[i].Freq() > 1 {
				freq = ceilDiv(freq, c.ConvStrides[i].Freq())
			}
			if i < len(c.ConvPoolings) && c.ConvPoolings[i].Freq() > 1 {
				freq = ceilDiv(freq, c.ConvPoolings[i].Freq())
			}
		}

		return c.ConvChannels[len(c.ConvChannels)-1] * freq
	}

	return c.InputDim * c.NStacks * c.NSplices
}

// encOutputDim gibt die Dimension der Encoder-Ausgabe zurueck
func (c *Config) encOutputDim() int {
	if c.EncType == "cnn" {
		return c.encRNNInputDim()
	}
	if c.EncNProjs > 0 {
		return c.EncNProjs
	}
	if isBidirectional(c.EncType) {
		return 2 * c.EncNUnits
	}
	return c.EncNUnits
}

// ceilDiv teilt a durch b und rundet auf
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// rnnParams zaehlt die Gewichte einer RNN-Schicht
func rnnParams(in, units, gates int) uint64 {
	return uint64(gates * ((in+units)*units + units))
}

// rnnGates gibt die Gate-Anzahl des Zelltyps zurueck
func rnnGates(typ string) int {
	if strings.Contains(typ, "gru") {
		return 3
	}
	return 4
}
