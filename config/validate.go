// validate.go - Invarianten-Pruefung der Konfiguration
// Enthaelt: FieldError, Validate, Valid, Warnings
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// FieldError meldet einen unzulaessigen Feldwert
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// Validate prueft alle Invarianten und gibt jede Verletzung als eigenen
// Fehler zurueck. Eine leere Liste bedeutet: die Konfiguration ist gueltig.
func (c *Config) Validate() []error {
	var errs []error
	report := func(field string, value any, reason string) {
		errs = append(errs, &FieldError{Field: field, Value: value, Reason: reason})
	}

	// Wertemengen
	for _, e := range []struct {
		field  string
		value  string
		values []string
	}{
		{"unit", c.Unit, Units},
		{"conv_activation", c.ConvActivation, ConvActivations},
		{"enc_type", c.EncType, EncTypes},
		{"subsample_type", c.SubsampleType, SubsampleTypes},
		{"attn_type", c.AttnType, AttnTypes},
		{"dec_type", c.DecType, DecTypes},
		{"init_dec_state", c.InitDecState, InitDecStates},
		{"optimizer", c.Optimizer, Optimizers},
		{"lr_decay_type", c.LRDecayType, LRDecayTypes},
		{"metric", c.Metric, Metrics},
	} {
		if !slices.Contains(e.values, e.value) {
			report(e.field, e.value, "must be one of "+strings.Join(e.values, ", "))
		}
	}

	if c.MochaLatencyMetric != "" && !slices.Contains(MochaLatencyMetrics, c.MochaLatencyMetric) {
		report("mocha_latency_metric", c.MochaLatencyMetric, "must be one of "+strings.Join(MochaLatencyMetrics, ", "))
	}

	// Wahrscheinlichkeiten und Gewichte in [0, 1]
	for _, p := range []struct {
		field string
		value float64
	}{
		{"dropout_in", c.DropoutIn},
		{"dropout_enc", c.DropoutEnc},
		{"dropout_dec", c.DropoutDec},
		{"dropout_emb", c.DropoutEmb},
		{"dropout_att", c.DropoutAtt},
		{"ss_prob", c.SsProb},
		{"lsm_prob", c.LsmProb},
		{"ctc_weight", c.CTCWeight},
		{"ctc_lsm_prob", c.CTCLsmProb},
		{"mbr_ce_weight", c.MBRCeWeight},
		{"recog_ctc_weight", c.RecogCTCWeight},
	} {
		if p.value < 0 || p.value > 1 {
			report(p.field, p.value, "must be in [0, 1]")
		}
	}

	// Zaehler ab 1
	for _, p := range []struct {
		field string
		value int
	}{
		{"input_dim", c.InputDim},
		{"vocab_size", c.VocabSize},
		{"n_stacks", c.NStacks},
		{"n_skips", c.NSkips},
		{"n_splices", c.NSplices},
		{"min_n_frames", c.MinNFrames},
		{"max_n_frames", c.MaxNFrames},
		{"enc_n_units", c.EncNUnits},
		{"enc_n_layers", c.EncNLayers},
		{"attn_dim", c.AttnDim},
		{"attn_n_heads", c.AttnNHeads},
		{"dec_n_units", c.DecNUnits},
		{"dec_n_layers", c.DecNLayers},
		{"emb_dim", c.EmbDim},
		{"n_epochs", c.NEpochs},
		{"batch_size", c.BatchSize},
		{"accum_grad_n_steps", c.AccumGradNSteps},
		{"print_step", c.PrintStep},
		{"recog_beam_width", c.RecogBeamWidth},
	} {
		if p.value < 1 {
			report(p.field, p.value, "must be at least 1")
		}
	}

	// Nicht-negative Gewichte
	for _, p := range []struct {
		field string
		value float64
	}{
		{"attn_sharpening_factor", c.AttnSharpeningFactor},
		{"mocha_eps", c.MochaEps},
		{"mocha_std", c.MochaStd},
		{"mocha_quantity_loss_weight", c.MochaQuantityLossWeight},
		{"mocha_latency_loss_weight", c.MochaLatencyLossWeight},
		{"param_init", c.ParamInit},
		{"weight_decay", c.WeightDecay},
		{"clip_grad_norm", c.ClipGradNorm},
		{"weight_noise_std", c.WeightNoiseStd},
		{"recog_min_len_ratio", c.RecogMinLenRatio},
		{"recog_length_penalty", c.RecogLengthPenalty},
		{"recog_coverage_penalty", c.RecogCoveragePenalty},
		{"recog_lm_weight", c.RecogLMWeight},
	} {
		if p.value < 0 {
			report(p.field, p.value, "must not be negative")
		}
	}

	// Nicht-negative Zaehler
	for _, p := range []struct {
		field string
		value int
	}{
		{"enc_n_projs", c.EncNProjs},
		{"dec_n_projs", c.DecNProjs},
		{"sort_stop_epoch", c.SortStopEpoch},
		{"ss_start_epoch", c.SsStartEpoch},
		{"lr_decay_start_epoch", c.LRDecayStartEpoch},
		{"lr_decay_patient_n_epochs", c.LRDecayPatientNEpochs},
		{"warmup_n_steps", c.WarmupNSteps},
		{"convert_to_sgd_epoch", c.ConvertToSGDEpoch},
		{"early_stop_patient_n_epochs", c.EarlyStopPatientNEpochs},
		{"eval_start_epoch", c.EvalStartEpoch},
		{"attn_conv_n_channels", c.AttnConvNChannels},
		{"attn_conv_width", c.AttnConvWidth},
	} {
		if p.value < 0 {
			report(p.field, p.value, "must not be negative")
		}
	}

	// Echt positive Werte
	if c.LR <= 0 {
		report("lr", c.LR, "must be greater than 0")
	}
	if c.LRDecayRate <= 0 || c.LRDecayRate > 1 {
		report("lr_decay_rate", c.LRDecayRate, "must be in (0, 1]")
	}
	if c.LogitsTemperature <= 0 {
		report("logits_temperature", c.LogitsTemperature, "must be greater than 0")
	}
	if c.RecogMaxLenRatio <= 0 {
		report("recog_max_len_ratio", c.RecogMaxLenRatio, "must be greater than 0")
	}
	if c.RecogSoftmaxSmoothing <= 0 {
		report("recog_softmax_smoothing", c.RecogSoftmaxSmoothing, "must be greater than 0")
	}

	// Eingangslaengen
	if c.MinNFrames > c.MaxNFrames {
		report("min_n_frames", c.MinNFrames, fmt.Sprintf("must not exceed max_n_frames (%d)", c.MaxNFrames))
	}

	// Konvolutions-Frontend: alle Listen gleich lang
	if n := len(c.ConvChannels); len(c.ConvKernelSizes) != n || len(c.ConvStrides) != n || len(c.ConvPoolings) != n {
		report("conv_channels", c.ConvChannels.String(),
			fmt.Sprintf("conv_channels, conv_kernel_sizes, conv_strides and conv_poolings must have matching lengths (got %d, %d, %d, %d)",
				n, len(c.ConvKernelSizes), len(c.ConvStrides), len(c.ConvPoolings)))
	}

	if hasConvFrontend(c.EncType) {
		if len(c.ConvChannels) == 0 {
			report("conv_channels", "", fmt.Sprintf("required for enc_type %s", c.EncType))
		}
		if c.ConvInChannel < 1 {
			report("conv_in_channel", c.ConvInChannel, "must be at least 1")
		}
	}

	// Subsampling: ein Faktor je Encoder-Schicht
	if len(c.Subsample) > 0 && len(c.Subsample) != c.EncNLayers {
		report("subsample", c.Subsample.String(),
			fmt.Sprintf("must have one factor per encoder layer (enc_n_layers is %d)", c.EncNLayers))
	}
	for _, factor := range c.Subsample {
		if factor < 1 {
			report("subsample", c.Subsample.String(), "factors must be at least 1")
			break
		}
	}

	// Latenz-kontrollierte Chunks
	if isLatencyControlled(c.EncType) {
		// -1 bedeutet: unbegrenzter linker Kontext
		if c.LcChunkSizeLeft < -1 {
			report("lc_chunk_size_left", c.LcChunkSizeLeft, "must be -1, 0, or positive")
		}
		if c.LcChunkSizeRight < 0 {
			report("lc_chunk_size_right", c.LcChunkSizeRight, "must not be negative")
		}
	} else {
		if c.LcChunkSizeLeft != 0 || c.LcChunkSizeRight != 0 {
			report("enc_type", c.EncType, "lc_chunk_size_left and lc_chunk_size_right require a latency-controlled encoder")
		}
		if c.RecogChunkSync {
			report("recog_chunk_sync", c.RecogChunkSync, "requires a latency-controlled encoder")
		}
	}

	// Location-Attention braucht ein symmetrisches Faltungsfenster
	if c.AttnConvWidth > 0 && c.AttnConvWidth%2 == 0 {
		report("attn_conv_width", c.AttnConvWidth, "must be odd")
	}

	// MoChA-Felder nur mit MoChA-Attention
	if c.AttnType == "mocha" {
		if c.MochaChunkSize < 1 {
			report("mocha_chunk_size", c.MochaChunkSize, "must be at least 1")
		}
		if c.MochaNHeadsMono < 1 {
			report("mocha_n_heads_mono", c.MochaNHeadsMono, "must be at least 1")
		}
		if c.MochaNHeadsChunk < 1 {
			report("mocha_n_heads_chunk", c.MochaNHeadsChunk, "must be at least 1")
		}
		if c.MochaLatencyLossWeight > 0 && c.MochaLatencyMetric == "" {
			report("mocha_latency_metric", c.MochaLatencyMetric, "required when mocha_latency_loss_weight is set")
		}
	} else {
		if c.MochaQuantityLossWeight > 0 {
			report("mocha_quantity_loss_weight", c.MochaQuantityLossWeight, "requires attn_type mocha")
		}
		if c.MochaLatencyMetric != "" {
			report("mocha_latency_metric", c.MochaLatencyMetric, "requires attn_type mocha")
		}
		if c.MochaLatencyLossWeight > 0 {
			report("mocha_latency_loss_weight", c.MochaLatencyLossWeight, "requires attn_type mocha")
		}
	}

	// Scheduled Sampling braucht eine Anlaufphase
	if c.SsProb > 0 && c.SsStartEpoch < 1 {
		report("ss_start_epoch", c.SsStartEpoch, "must be at least 1 when ss_prob is set")
	}

	// MBR-Feintuning setzt auf N-Bestenlisten aus der Strahlsuche auf
	if c.MBRTraining {
		if c.RecogBeamWidth <= 1 {
			report("recog_beam_width", c.RecogBeamWidth, "must be greater than 1 for mbr_training")
		}
		if c.MBRNbest < 1 {
			report("mbr_nbest", c.MBRNbest, "must be at least 1")
		} else if c.MBRNbest > c.RecogBeamWidth {
			report("mbr_nbest", c.MBRNbest, fmt.Sprintf("must not exceed recog_beam_width (%d)", c.RecogBeamWidth))
		}
	}

	// Warmup
	if c.WarmupNSteps > 0 {
		if c.WarmupStartLR <= 0 {
			report("warmup_start_lr", c.WarmupStartLR, "must be greater than 0 when warmup_n_steps is set")
		} else if c.WarmupStartLR > c.LR {
			report("warmup_start_lr", c.WarmupStartLR, fmt.Sprintf("must not exceed lr (%g)", c.LR))
		}
	}
	if c.Optimizer == "noam" && c.WarmupNSteps == 0 {
		report("warmup_n_steps", c.WarmupNSteps, "required for the noam optimizer")
	}

	// Hypothesenlaengen
	if c.RecogMinLenRatio > c.RecogMaxLenRatio {
		report("recog_min_len_ratio", c.RecogMinLenRatio,
			fmt.Sprintf("must not exceed recog_max_len_ratio (%g)", c.RecogMaxLenRatio))
	}

	return errs
}

// Valid fasst Validate zu einem einzelnen Fehler zusammen
func (c *Config) Valid() error {
	errs := c.Validate()
	if len(errs) == 0 {
		return nil
	}

	return errors.Join(errs...)
}

// Warnings meldet zulaessige, aber vermutlich unbeabsichtigte Kombinationen
func (c *Config) Warnings() []string {
	var warnings []string

	if c.CTCWeight == 1 {
		warnings = append(warnings, "ctc_weight 1.0 leaves the attention decoder untrained")
	}
	if c.RecogCTCWeight > 0 && c.CTCWeight == 0 {
		warnings = append(warnings, "recog_ctc_weight is set but the model trains no CTC branch")
	}
	if c.SsProb > 0 && c.SsStartEpoch > c.NEpochs {
		warnings = append(warnings, fmt.Sprintf("scheduled sampling starts in epoch %d, after the final epoch %d", c.SsStartEpoch, c.NEpochs))
	}

	return warnings
}
