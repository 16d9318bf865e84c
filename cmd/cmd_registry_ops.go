// cmd_registry_ops.go - Registry-Operationen: Eval und Delete Handler
// Hauptfunktionen: EvalHandler, DeleteHandler, newEvalCmd, newRmCmd
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/api"
)

// EvalHandler - Traegt ein Evaluationsergebnis zu einem Experiment ein
func EvalHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	wer, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid WER %q: %w", args[2], err)
	}
	cer, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid CER %q: %w", args[3], err)
	}
	epoch, _ := cmd.Flags().GetInt("epoch")

	req := api.EvalRequest{Name: args[0], Split: args[1], Epoch: epoch, WER: wer, CER: cer}
	resp, err := client.AddEval(cmd.Context(), &req)
	if err != nil {
		return err
	}

	fmt.Printf("recorded %s: wer %.2f cer %.2f for '%s'\n", resp.Split, resp.WER, resp.CER, args[0])
	return nil
}

// DeleteHandler - Loescht ein oder mehrere Experimente
func DeleteHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	for _, arg := range args {
		if err := client.Delete(cmd.Context(), &api.DeleteRequest{Name: arg}); err != nil {
			return err
		}
		fmt.Printf("deleted '%s'\n", arg)
	}
	return nil
}

// newEvalCmd - Erstellt den eval Command
func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:     "eval EXPERIMENT SPLIT WER CER",
		Short:   "Record an evaluation result for an experiment",
		Args:    cobra.ExactArgs(4),
		PreRunE: checkServerHeartbeat,
		RunE:    EvalHandler,
	}

	evalCmd.Flags().Int("epoch", 0, "Checkpoint epoch the result was measured at")

	return evalCmd
}

// newRmCmd - Erstellt den rm Command
func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm EXPERIMENT [EXPERIMENT...]",
		Short:   "Remove an experiment",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: checkServerHeartbeat,
		RunE:    DeleteHandler,
	}
}
