package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/santiagovOK/legajos/internal/adapters/cli"
	"github.com/santiagovOK/legajos/internal/adapters/repository/postgres"
	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
	"github.com/santiagovOK/legajos/internal/platform/config"
	pg "github.com/santiagovOK/legajos/internal/platform/db/postgres"
	"github.com/santiagovOK/legajos/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fail(err)
	}

	log := logging.New(cfg.Log.Level)

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database pool")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	fileRepo := postgres.NewPersonnelFileRepository(pool)

	fileSvc := personnelfile.NewService(fileRepo)
	employeeSvc := employee.NewService(employeeRepo, fileSvc, pg.NewScopeManager(pool, log))

	root := cli.NewRootCmd(
		cli.NewEmployeeAdapter(employeeSvc, os.Stdout),
		cli.NewFileAdapter(fileSvc, os.Stdout),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fail(err)
	}
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
