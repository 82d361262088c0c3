package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inmuebles-api/internal/domain/rentschedule"
	"github.com/jhoicas/inmuebles-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inmuebles-api/pkg/config"
	"github.com/jhoicas/inmuebles-api/pkg/logger"
)

// rentctl agrupa las tareas operativas que no viven en el servidor HTTP:
// aplicar el esquema y marcar como LATE los pagos DUE ya vencidos.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rentctl",
		Short: "Herramientas operativas de inmuebles-api",
	}

	rootCmd.AddCommand(migrateCmd(), markLateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*logger.Logger, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	return log, cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema de la base de datos (idempotente)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log, cfg, err := setup()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Info().Msg("esquema aplicado")
			return nil
		},
	}
}

func markLateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "mark-late",
		Short: "Marca como LATE los pagos DUE con fecha de vencimiento pasada",
		Long: "Recorre los pagos en estado DUE cuya fecha de vencimiento es anterior a hoy " +
			"y los pasa a LATE. Es idempotente: una segunda ejecución no encuentra candidatos. " +
			"Con --dry-run solo informa cuántos pagos se marcarían.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log, cfg, err := setup()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			rentRepo := postgres.NewRentPaymentRepository(pool)
			// Fecha calendario, sin hora: un pago que vence hoy todavía no está atrasado.
			today := rentschedule.DayOf(time.Now().UTC())

			if dryRun {
				count, err := rentRepo.CountLateCandidates(ctx, today)
				if err != nil {
					return err
				}
				log.Info().
					Int64("candidatos", count).
					Str("fecha", today.Format("2006-01-02")).
					Msg("dry-run: pagos que se marcarían como LATE")
				return nil
			}

			marked, err := rentRepo.MarkLate(ctx, today)
			if err != nil {
				return err
			}
			log.Info().
				Int64("marcados", marked).
				Str("fecha", today.Format("2006-01-02")).
				Msg("pagos marcados como LATE")
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "solo informa, no escribe")
	return cmd
}
