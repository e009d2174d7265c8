// fmsctl is the operator CLI for the tracker daemon: trigger syncs, pull
// XLSX exports, and inspect the plan-date rule table.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/resolver"
)

var Version = "dev"

func main() {
	var addr string

	rootCmd := &cobra.Command{
		Use:     "fmsctl",
		Short:   "Operator CLI for the FMS production tracker",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "localhost:8080", "fmsd gRPC address")

	rootCmd.AddCommand(syncCmd(&addr))
	rootCmd.AddCommand(exportCmd(&addr))
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func syncCmd(addr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sheet synchronization pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			queued, _ := cmd.Flags().GetBool("async")

			conn, err := dial(*addr)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			resp, err := v1.NewSyncServiceClient(conn).SyncSheet(ctx, &v1.SyncSheetRequest{Async: queued})
			if err != nil {
				return err
			}
			if resp.GetQueued() {
				fmt.Println("sync queued")
				return nil
			}
			fmt.Printf("fetched %d rows, upserted %d records, %d step tasks (%dms)\n",
				resp.GetRowsFetched(), resp.GetRowsUpserted(), resp.GetTasksUpserted(), resp.GetElapsedMs())
			return nil
		},
	}

	cmd.Flags().Bool("async", false, "Queue the sync instead of waiting for it")

	return cmd
}

func exportCmd(addr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [output.xlsx]",
		Short: "Export step tasks as an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskStatus, _ := cmd.Flags().GetString("status")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			conn, err := dial(*addr)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			resp, err := v1.NewTasksServiceClient(conn).ExportStepTasks(ctx, &v1.ExportStepTasksRequest{
				Status:   taskStatus,
				PlanFrom: from,
				PlanTo:   to,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], resp.GetXlsx(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", args[0], len(resp.GetXlsx()))
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by task status (Pending, Completed)")
	cmd.Flags().String("from", "", "Plan date lower bound (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Plan date upper bound (YYYY-MM-DD)")

	return cmd
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [ruleset.json]",
		Short: "Print the plan-date decision table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rules := resolver.DefaultRuleSet()
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				if rules, err = resolver.LoadRuleSet(data); err != nil {
					return fmt.Errorf("load %s: %w", args[0], err)
				}
			}
			fmt.Print(rules.Describe())
			return nil
		},
	}

	return cmd
}
