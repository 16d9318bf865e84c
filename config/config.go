// Package config - Schema und Defaults der Trainings-Konfiguration
// Enthaelt: Config-Struktur, Default()
package config

// Config ist der flache Hyperparameter-Satz eines Trainingslaufes.
// Die YAML-Schluessel entsprechen dem Vokabular des Trainers; wenn du
// ein neues Feld hinzufuegst, ergaenze auch Default() und Validate().
type Config struct {
	// Daten und Feature-Frontend
	Unit            string `yaml:"unit"`
	InputDim        int    `yaml:"input_dim"`
	VocabSize       int    `yaml:"vocab_size"`
	NStacks         int    `yaml:"n_stacks"`
	NSkips          int    `yaml:"n_skips"`
	NSplices        int    `yaml:"n_splices"`
	MinNFrames      int    `yaml:"min_n_frames"`
	MaxNFrames      int    `yaml:"max_n_frames"`
	SortStopEpoch   int    `yaml:"sort_stop_epoch"`
	DynamicBatching bool   `yaml:"dynamic_batching"`

	// Konvolutions-Frontend
	ConvInChannel   int       `yaml:"conv_in_channel"`
	ConvChannels    IntList   `yaml:"conv_channels"`
	ConvKernelSizes ShapeList `yaml:"conv_kernel_sizes"`
	ConvStrides     ShapeList `yaml:"conv_strides"`
	ConvPoolings    ShapeList `yaml:"conv_poolings"`
	ConvBatchNorm   bool      `yaml:"conv_batch_norm"`
	ConvActivation  string    `yaml:"conv_activation"`

	// Encoder
	EncType          string  `yaml:"enc_type"`
	EncNUnits        int     `yaml:"enc_n_units"`
	EncNProjs        int     `yaml:"enc_n_projs"`
	EncNLayers       int     `yaml:"enc_n_layers"`
	EncResidual      bool    `yaml:"enc_residual"`
	Subsample        IntList `yaml:"subsample"`
	SubsampleType    string  `yaml:"subsample_type"`
	LcChunkSizeLeft  int     `yaml:"lc_chunk_size_left"`
	LcChunkSizeRight int     `yaml:"lc_chunk_size_right"`

	// Attention
	AttnType             string  `yaml:"attn_type"`
	AttnDim              int     `yaml:"attn_dim"`
	AttnNHeads           int     `yaml:"attn_n_heads"`
	AttnSharpeningFactor float64 `yaml:"attn_sharpening_factor"`
	AttnSigmoidSmoothing bool    `yaml:"attn_sigmoid_smoothing"`
	AttnConvNChannels    int     `yaml:"attn_conv_n_channels"`
	AttnConvWidth        int     `yaml:"attn_conv_width"`

	// MoChA
	MochaChunkSize          int     `yaml:"mocha_chunk_size"`
	MochaNHeadsMono         int     `yaml:"mocha_n_heads_mono"`
	MochaNHeadsChunk        int     `yaml:"mocha_n_heads_chunk"`
	MochaInitR              float64 `yaml:"mocha_init_r"`
	MochaEps                float64 `yaml:"mocha_eps"`
	MochaStd                float64 `yaml:"mocha_std"`
	MochaNoDenominator      bool    `yaml:"mocha_no_denominator"`
	Mocha1DConv             bool    `yaml:"mocha_1dconv"`
	MochaQuantityLossWeight float64 `yaml:"mocha_quantity_loss_weight"`
	MochaLatencyMetric      string  `yaml:"mocha_latency_metric"`
	MochaLatencyLossWeight  float64 `yaml:"mocha_latency_loss_weight"`

	// Decoder
	DecType           string  `yaml:"dec_type"`
	DecNUnits         int     `yaml:"dec_n_units"`
	DecNProjs         int     `yaml:"dec_n_projs"`
	DecNLayers        int     `yaml:"dec_n_layers"`
	EmbDim            int     `yaml:"emb_dim"`
	TieEmbedding      bool    `yaml:"tie_embedding"`
	InitDecState      string  `yaml:"init_dec_state"`
	SsProb            float64 `yaml:"ss_prob"`
	SsStartEpoch      int     `yaml:"ss_start_epoch"`
	LsmProb           float64 `yaml:"lsm_prob"`
	LogitsTemperature float64 `yaml:"logits_temperature"`
	ParamInit         float64 `yaml:"param_init"`

	// Zielfunktion
	CTCWeight   float64 `yaml:"ctc_weight"`
	CTCLsmProb  float64 `yaml:"ctc_lsm_prob"`
	MBRTraining bool    `yaml:"mbr_training"`
	MBRCeWeight float64 `yaml:"mbr_ce_weight"`
	MBRNbest    int     `yaml:"mbr_nbest"`

	// Optimierung
	Optimizer               string  `yaml:"optimizer"`
	LR                      float64 `yaml:"lr"`
	LRDecayType             string  `yaml:"lr_decay_type"`
	LRDecayStartEpoch       int     `yaml:"lr_decay_start_epoch"`
	LRDecayRate             float64 `yaml:"lr_decay_rate"`
	LRDecayPatientNEpochs   int     `yaml:"lr_decay_patient_n_epochs"`
	WarmupStartLR           float64 `yaml:"warmup_start_lr"`
	WarmupNSteps            int     `yaml:"warmup_n_steps"`
	ConvertToSGDEpoch       int     `yaml:"convert_to_sgd_epoch"`
	NEpochs                 int     `yaml:"n_epochs"`
	BatchSize               int     `yaml:"batch_size"`
	AccumGradNSteps         int     `yaml:"accum_grad_n_steps"`
	ClipGradNorm            float64 `yaml:"clip_grad_norm"`
	WeightDecay             float64 `yaml:"weight_decay"`
	EarlyStopPatientNEpochs int     `yaml:"early_stop_patient_n_epochs"`
	EvalStartEpoch          int     `yaml:"eval_start_epoch"`
	Metric                  string  `yaml:"metric"`
	PrintStep               int     `yaml:"print_step"`

	// Regularisierung
	DropoutIn      float64 `yaml:"dropout_in"`
	DropoutEnc     float64 `yaml:"dropout_enc"`
	DropoutDec     float64 `yaml:"dropout_dec"`
	DropoutEmb     float64 `yaml:"dropout_emb"`
	DropoutAtt     float64 `yaml:"dropout_att"`
	WeightNoiseStd float64 `yaml:"weight_noise_std"`

	// Dekodierung
	RecogBeamWidth         int     `yaml:"recog_beam_width"`
	RecogMaxLenRatio       float64 `yaml:"recog_max_len_ratio"`
	RecogMinLenRatio       float64 `yaml:"recog_min_len_ratio"`
	RecogLengthPenalty     float64 `yaml:"recog_length_penalty"`
	RecogCoveragePenalty   float64 `yaml:"recog_coverage_penalty"`
	RecogCoverageThreshold float64 `yaml:"recog_coverage_threshold"`
	RecogCTCWeight         float64 `yaml:"recog_ctc_weight"`
	RecogLMWeight          float64 `yaml:"recog_lm_weight"`
	RecogSoftmaxSmoothing  float64 `yaml:"recog_softmax_smoothing"`
	RecogChunkSync         bool    `yaml:"recog_chunk_sync"`
}

// Default ist der Standard-Satz von Hyperparametern: ein streamingfaehiges
// Conv-LC-BLSTM/MoChA-Rezept. Felder, die eine geladene Konfiguration nicht
// setzt, behalten diese Werte.
func Default() *Config {
	return &Config{
		Unit:            "wp",
		InputDim:        80,
		VocabSize:       10000,
		NStacks:         1,
		NSkips:          1,
		NSplices:        1,
		MinNFrames:      40,
		MaxNFrames:      2000,
		SortStopEpoch:   100,
		DynamicBatching: true,

		ConvInChannel:   1,
		ConvChannels:    IntList{32, 32},
		ConvKernelSizes: ShapeList{{3, 3}, {3, 3}},
		ConvStrides:     ShapeList{{1, 1}, {1, 1}},
		ConvPoolings:    ShapeList{{2, 2}, {2, 2}},
		ConvActivation:  "relu",

		EncType:          "conv_lc_blstm",
		EncNUnits:        512,
		EncNLayers:       5,
		Subsample:        IntList{1, 1, 1, 1, 1},
		SubsampleType:    "drop",
		LcChunkSizeLeft:  40,
		LcChunkSizeRight: 40,

		AttnType:             "mocha",
		AttnDim:              512,
		AttnNHeads:           1,
		AttnSharpeningFactor: 1.0,
		AttnConvNChannels:    10,
		AttnConvWidth:        201,

		MochaChunkSize:          1,
		MochaNHeadsMono:         1,
		MochaNHeadsChunk:        1,
		MochaInitR:              -4,
		MochaEps:                1e-6,
		MochaStd:                1.0,
		MochaQuantityLossWeight: 1.0,

		DecType:           "lstm",
		DecNUnits:         1024,
		DecNLayers:        1,
		EmbDim:            512,
		InitDecState:      "zero",
		SsProb:            0.2,
		SsStartEpoch:      5,
		LsmProb:           0.1,
		LogitsTemperature: 1.0,
		ParamInit:         0.1,

		CTCWeight:   0.3,
		CTCLsmProb:  0.1,
		MBRCeWeight: 0.01,
		MBRNbest:    4,

		Optimizer:               "adam",
		LR:                      1e-3,
		LRDecayType:             "always",
		LRDecayStartEpoch:       10,
		LRDecayRate:             0.9,
		WarmupStartLR:           1e-4,
		ConvertToSGDEpoch:       0,
		NEpochs:                 25,
		BatchSize:               32,
		AccumGradNSteps:         1,
		ClipGradNorm:            5.0,
		WeightDecay:             1e-6,
		EarlyStopPatientNEpochs: 5,
		EvalStartEpoch:          1,
		Metric:                  "edit_distance",
		PrintStep:               200,

		DropoutEnc: 0.4,
		DropoutDec: 0.4,
		DropoutEmb: 0.4,

		RecogBeamWidth:        10,
		RecogMaxLenRatio:      1.0,
		RecogMinLenRatio:      0.2,
		RecogCTCWeight:        0.3,
		RecogSoftmaxSmoothing: 1.0,
	}
}
