package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/wirekit/checkpoint"
	"github.com/reoring/wirekit/internal/demo"
)

func checkpointCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "checkpoint",
		Short: "Write and inspect checkpoints",
	}
	c.AddCommand(checkpointWriteCmd(a), checkpointShowCmd(a))
	return c
}

func checkpointWriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write FILE",
		Short: "Write the sample demo state to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := checkpoint.Save(f, a.reg, demo.SampleState(), checkpoint.WithLogger(a.logger)); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.logger.Info("checkpoint written", zap.String("path", args[0]))
			return nil
		},
	}
}

func checkpointShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Restore FILE through the registry and print every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := checkpoint.ReadEnvelopes(f)
			if err != nil {
				return err
			}
			tc := a.reg.TextCodec()
			out := cmd.OutOrStdout()
			for _, e := range entries {
				// Restoring proves every type id resolves before anything prints.
				if _, err := a.reg.Unbox(e.Envelope); err != nil {
					return fmt.Errorf("entry %q: %w", e.Key, err)
				}
			}
			for _, e := range entries {
				text, err := tc.MarshalEnvelope(e.Envelope, a.format)
				if err != nil {
					return fmt.Errorf("entry %q: %w", e.Key, err)
				}
				fmt.Fprintf(out, "# %s\n%s\n", e.Key, text)
			}
			return nil
		},
	}
}
