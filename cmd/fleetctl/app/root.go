package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/internal/business/fleet"
	"github.com/fleetflow/fleetflow-api/internal/platform/config"
	firestoreclient "github.com/fleetflow/fleetflow-api/internal/platform/firestore"
	"github.com/fleetflow/fleetflow-api/internal/platform/log"
	"github.com/fleetflow/fleetflow-api/internal/repository"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the fleetctl command tree.
func NewRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fleetctl",
		Short:        "Inspect FleetFlow records from the command line",
		SilenceUsage: true,
	}
	cmd.SetContext(ctx)
	cmd.AddCommand(newStatusCommand(), newVehiclesCommand())
	return cmd
}

func connect(ctx context.Context) (*firestore.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := log.Init(log.Options{Name: "fleetctl", Level: cfg.LogLevel, Format: "console"}); err != nil {
		return nil, err
	}
	client, source, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.L().Debug("connected to Firestore", zap.String("project", cfg.FirebaseProjectID), zap.String("credentials", source))
	return client, nil
}

func newStatusCommand() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the fleet status breakdown and utilization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			vehicles := repository.NewVehicleRepository(client)
			var snapshots fleet.SnapshotStore
			if save {
				snapshots = repository.NewStatsRepository(client)
			}
			svc := fleet.NewService(vehicles, snapshots, fleet.NewAggregator(nil), nil, log.L())
			report, err := svc.FleetStatus(ctx)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "persist the result as the dashboard snapshot")
	return cmd
}

func newVehiclesCommand() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			items, err := repository.NewVehicleRepository(client).List(ctx)
			if err != nil {
				return err
			}
			renderVehicles(cmd.OutOrStdout(), items, status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only show vehicles with this status")
	return cmd
}

func renderStatus(w io.Writer, report fleet.StatusReport) {
	if report.Stale {
		fmt.Fprintf(w, "Stale snapshot from %s: live vehicle data could not be classified\n\n", report.ComputedAt.UTC().Format(time.RFC3339))
	}
	status := report.FleetStatus
	table := uitable.New()
	table.AddRow("STATUS", "LABEL", "VEHICLES")
	for _, g := range status.Groups {
		table.AddRow(g.Status, g.Label, g.Value)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "\nTotal: %d  Active: %d  Utilization: %d%%\n", status.Total, status.Active, status.Utilization)
}

func renderVehicles(w io.Writer, vehicles []model.Vehicle, status string) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "NAME", "PLATE", "MAKE/MODEL", "STATUS", "DRIVER")
	for _, v := range vehicles {
		if status != "" && string(v.Status) != status {
			continue
		}
		table.AddRow(v.ID, v.Name, v.LicensePlate, v.Make+" "+v.Model, v.Status, v.AssignedDriverID)
	}
	fmt.Fprintln(w, table)
}
