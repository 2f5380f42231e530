/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/proofly/proofly/cmd/common"
	"github.com/proofly/proofly/internal/logfields"
	noopmetrics "github.com/proofly/proofly/pkg/observability/metrics/noop"
)

const (
	taskFlagName  = "task"
	taskEnvKey    = "PROOFLY_MAINTENANCE_TASK"
	taskFlagUsage = "Maintenance task to run. Supported tasks are [reanchor, reconcile, audit]. " +
		commonEnvVarUsageText + taskEnvKey

	limitFlagName  = "limit"
	limitEnvKey    = "PROOFLY_MAINTENANCE_LIMIT"
	limitFlagUsage = "Maximum number of credentials processed by the reanchor and audit tasks. " +
		"Defaults to the task default. " + commonEnvVarUsageText + limitEnvKey

	taskReanchor  = "reanchor"
	taskReconcile = "reconcile"
	taskAudit     = "audit"
)

// GetMaintenanceCmd returns the Cobra maintenance command. It runs a single repair task against the
// configured stores and ledger, then prints the task report as JSON.
func GetMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Run a proofly maintenance task",
		Long:  "Anchor degraded credentials, rebuild student credential indexes or audit stored artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := cmdutils.GetUserSetVarFromString(cmd, taskFlagName, taskEnvKey, false)
			if err != nil {
				return err
			}

			limit, err := getLimit(cmd)
			if err != nil {
				return err
			}

			params, err := getServiceParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get maintenance parameters: %w", err)
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			report, err := runMaintenance(ctx, params, task, limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(report)
		},
	}

	createServiceFlags(cmd)

	cmd.Flags().StringP(taskFlagName, "", "", taskFlagUsage)
	cmd.Flags().StringP(limitFlagName, "", "", limitFlagUsage)

	return cmd
}

func getLimit(cmd *cobra.Command) (int, error) {
	str := cmdutils.GetUserSetOptionalVarFromString(cmd, limitFlagName, limitEnvKey)
	if str == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(str)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid value of %s [%s]", limitFlagName, str)
	}

	return limit, nil
}

func runMaintenance(ctx context.Context, params *startupParameters, task string, limit int) (interface{}, error) {
	switch task {
	case taskReanchor, taskReconcile, taskAudit:
	default:
		return nil, fmt.Errorf("unsupported maintenance task: %s", task)
	}

	c, err := buildComponents(ctx, params, noop.NewTracerProvider())
	if err != nil {
		return nil, err
	}

	defer c.Close()

	svc := c.reanchorService(noopmetrics.GetMetrics())

	logger.Infoc(ctx, "Running maintenance task", logfields.WithCommand(task))

	switch task {
	case taskReanchor:
		return svc.ReanchorPending(ctx, limit)
	case taskReconcile:
		return svc.ReconcileStudentIndex(ctx)
	default:
		return svc.AuditArtifacts(ctx, limit)
	}
}
