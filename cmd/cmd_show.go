// cmd_show.go - Show Command und Konfigurations-Anzeige
// Hauptfunktionen: ShowHandler, showInfo
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/config"
	"github.com/resona-asr/resona/format"
	"github.com/resona-asr/resona/types/experiment"
)

// ShowHandler - Zeigt eine Konfigurationsdatei oder ein gespeichertes Experiment an
func ShowHandler(cmd *cobra.Command, args []string) error {
	asYAML, err := cmd.Flags().GetBool("yaml")
	if err != nil {
		return err
	}
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}

	cfg, notes, evals, err := resolveShowTarget(cmd, args[0])
	if err != nil {
		return err
	}

	if len(sets) > 0 {
		overrides := make(map[string]string, len(sets))
		for _, kv := range sets {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid --set %q, expected key=value", kv)
			}
			overrides[k] = v
		}
		if err := cfg.Apply(overrides); err != nil {
			return err
		}
	}

	if asYAML {
		return cfg.Save(os.Stdout)
	}

	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return showInfo(cfg, notes, evals, width, os.Stdout)
}

// looksLikeFile - Erkennt Argumente die eine Datei meinen muessen
func looksLikeFile(arg string) bool {
	switch filepath.Ext(arg) {
	case ".yaml", ".yml":
		return true
	}
	return isRecipeFile(arg)
}

// resolveShowTarget laedt das Argument als lokale Datei oder, wenn keine
// existiert, als Experiment-Namen vom Server.
func resolveShowTarget(cmd *cobra.Command, arg string) (*config.Config, []string, []api.EvalResponse, error) {
	if _, err := os.Stat(arg); err == nil {
		// Anzeige soll auch Altbestaende mit unbekannten Schluesseln rendern
		cfg, notes, err := loadConfigArg(arg, true)
		if err != nil {
			return nil, nil, nil, err
		}
		return cfg, notes, nil, nil
	} else if looksLikeFile(arg) {
		return nil, nil, nil, err
	}

	if name := experiment.ParseName(arg); name.IsValid() {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, nil, nil, err
		}

		resp, err := client.Show(cmd.Context(), &api.ShowRequest{Name: arg})
		if err != nil {
			return nil, nil, nil, err
		}

		cfg, err := config.Load(strings.NewReader(resp.Config), config.WithLenient())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("stored configuration for %s: %w", arg, err)
		}

		var notes []string
		if resp.Notes != "" {
			notes = strings.Split(resp.Notes, "\n")
		}
		return cfg, notes, resp.Evals, nil
	}

	return nil, nil, nil, fmt.Errorf("%q is neither a configuration file nor an experiment name", arg)
}

// showInfo - Gibt die Konfiguration als Abschnittstabellen aus
func showInfo(cfg *config.Config, notes []string, evals []api.EvalResponse, width int, w io.Writer) error {
	tableRender := func(header string, rows func() [][]string) {
		fmt.Fprintln(w, " ", header)
		table := tablewriter.NewWriter(w)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")

		table.AppendBulk(rows())
		table.Render()
		fmt.Fprintln(w)
	}

	sum := cfg.Summarize()

	tableRender("Model", func() (rows [][]string) {
		rows = append(rows, []string{"", "unit", cfg.Unit})
		rows = append(rows, []string{"", "vocabulary", format.HumanNumber(uint64(cfg.VocabSize))})
		rows = append(rows, []string{"", "input dim", strconv.Itoa(cfg.InputDim)})
		rows = append(rows, []string{"", "parameters", format.HumanNumber(sum.Params)})
		rows = append(rows, []string{"", "size", format.HumanBytes2(sum.SizeBytes)})
		return
	})

	tableRender("Encoder", func() (rows [][]string) {
		rows = append(rows, []string{"", "type", cfg.EncType})
		rows = append(rows, []string{"", "layers", strconv.Itoa(cfg.EncNLayers)})
		rows = append(rows, []string{"", "units", strconv.Itoa(cfg.EncNUnits)})
		if cfg.EncNProjs > 0 {
			rows = append(rows, []string{"", "projections", strconv.Itoa(cfg.EncNProjs)})
		}
		rows = append(rows, []string{"", "subsample", fmt.Sprintf("%s (%s)", cfg.Subsample.String(), cfg.SubsampleType)})
		if len(cfg.ConvChannels) > 0 {
			rows = append(rows, []string{"", "conv channels", cfg.ConvChannels.String()})
			rows = append(rows, []string{"", "conv kernels", cfg.ConvKernelSizes.String()})
			rows = append(rows, []string{"", "conv strides", cfg.ConvStrides.String()})
			rows = append(rows, []string{"", "conv poolings", cfg.ConvPoolings.String()})
		}
		if cfg.LcChunkSizeLeft != 0 || cfg.LcChunkSizeRight != 0 {
			rows = append(rows, []string{"", "lc chunks", fmt.Sprintf("%d left / %d right", cfg.LcChunkSizeLeft, cfg.LcChunkSizeRight)})
		}
		return
	})

	tableRender("Attention", func() (rows [][]string) {
		rows = append(rows, []string{"", "type", cfg.AttnType})
		rows = append(rows, []string{"", "dim", strconv.Itoa(cfg.AttnDim)})
		rows = append(rows, []string{"", "heads", strconv.Itoa(cfg.AttnNHeads)})
		if cfg.AttnType == "mocha" {
			rows = append(rows, []string{"", "chunk size", strconv.Itoa(cfg.MochaChunkSize)})
			rows = append(rows, []string{"", "mono heads", strconv.Itoa(cfg.MochaNHeadsMono)})
			rows = append(rows, []string{"", "chunk heads", strconv.Itoa(cfg.MochaNHeadsChunk)})
			if cfg.MochaQuantityLossWeight > 0 {
				rows = append(rows, []string{"", "quantity loss", formatFloat(cfg.MochaQuantityLossWeight)})
			}
			if cfg.MochaLatencyMetric != "" {
				rows = append(rows, []string{"", "latency loss", fmt.Sprintf("%s %s", cfg.MochaLatencyMetric, formatFloat(cfg.MochaLatencyLossWeight))})
			}
		}
		return
	})

	tableRender("Decoder", func() (rows [][]string) {
		rows = append(rows, []string{"", "type", cfg.DecType})
		rows = append(rows, []string{"", "layers", strconv.Itoa(cfg.DecNLayers)})
		rows = append(rows, []string{"", "units", strconv.Itoa(cfg.DecNUnits)})
		rows = append(rows, []string{"", "embedding dim", strconv.Itoa(cfg.EmbDim)})
		if cfg.TieEmbedding {
			rows = append(rows, []string{"", "tied embedding", "yes"})
		}
		rows = append(rows, []string{"", "ctc weight", formatFloat(cfg.CTCWeight)})
		if cfg.MBRTraining {
			rows = append(rows, []string{"", "mbr training", fmt.Sprintf("nbest %d, ce weight %s", cfg.MBRNbest, formatFloat(cfg.MBRCeWeight))})
		}
		return
	})

	tableRender("Optimization", func() (rows [][]string) {
		rows = append(rows, []string{"", "optimizer", cfg.Optimizer})
		rows = append(rows, []string{"", "lr", formatFloat(cfg.LR)})
		if cfg.LRDecayType != "" {
			rows = append(rows, []string{"", "lr decay", fmt.Sprintf("%s from epoch %d, rate %s", cfg.LRDecayType, cfg.LRDecayStartEpoch, formatFloat(cfg.LRDecayRate))})
		}
		if cfg.WarmupNSteps > 0 {
			rows = append(rows, []string{"", "warmup", fmt.Sprintf("%d steps from lr %s", cfg.WarmupNSteps, formatFloat(cfg.WarmupStartLR))})
		}
		rows = append(rows, []string{"", "epochs", strconv.Itoa(cfg.NEpochs)})
		rows = append(rows, []string{"", "batch size", strconv.Itoa(cfg.BatchSize)})
		if cfg.AccumGradNSteps > 1 {
			rows = append(rows, []string{"", "grad accumulation", strconv.Itoa(cfg.AccumGradNSteps)})
		}
		rows = append(rows, []string{"", "clip grad norm", formatFloat(cfg.ClipGradNorm)})
		rows = append(rows, []string{"", "metric", cfg.Metric})
		return
	})

	tableRender("Decoding", func() (rows [][]string) {
		rows = append(rows, []string{"", "beam width", strconv.Itoa(cfg.RecogBeamWidth)})
		rows = append(rows, []string{"", "ctc weight", formatFloat(cfg.RecogCTCWeight)})
		if cfg.RecogLMWeight > 0 {
			rows = append(rows, []string{"", "lm weight", formatFloat(cfg.RecogLMWeight)})
		}
		rows = append(rows, []string{"", "length penalty", formatFloat(cfg.RecogLengthPenalty)})
		if cfg.RecogChunkSync {
			rows = append(rows, []string{"", "chunk sync", "yes"})
		}
		return
	})

	tableRender("Streaming", func() (rows [][]string) {
		rows = append(rows, []string{"", "subsampling", fmt.Sprintf("x%d", sum.Subsampling)})
		rows = append(rows, []string{"", "frame rate", fmt.Sprintf("%d ms", sum.OutputFrameRateMs)})
		if sum.ChunkLatencyMs > 0 {
			rows = append(rows, []string{"", "chunk latency", fmt.Sprintf("%d ms", sum.ChunkLatencyMs)})
		}
		streamable := "no"
		if sum.Streamable {
			streamable = "yes"
		}
		rows = append(rows, []string{"", "streamable", streamable})
		return
	})

	if len(evals) > 0 {
		tableRender("Evals", func() (rows [][]string) {
			for _, ev := range evals {
				rows = append(rows, []string{
					"",
					ev.Split,
					fmt.Sprintf("epoch %d", ev.Epoch),
					fmt.Sprintf("wer %.2f", ev.WER),
					fmt.Sprintf("cer %.2f", ev.CER),
					format.HumanTimeLower(ev.CreatedAt, ""),
				})
			}
			return
		})
	}

	if len(notes) > 0 {
		tableRender("Notes", func() (rows [][]string) {
			for _, note := range notes {
				for _, line := range wrapText(note, width-8) {
					rows = append(rows, []string{"", line})
				}
			}
			return
		})
	}

	return nil
}

// formatFloat - Formatiert Gleitkommawerte ohne ueberfluessige Nullen
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// newShowCmd - Erstellt den show Command
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show TARGET",
		Short: "Show a configuration file or a stored experiment",
		Args:  cobra.ExactArgs(1),
		RunE:  ShowHandler,
	}

	showCmd.Flags().Bool("yaml", false, "Print the configuration as YAML instead of tables")
	showCmd.Flags().StringArray("set", nil, "Override a key before rendering (key=value, repeatable)")

	return showCmd
}
