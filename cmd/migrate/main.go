package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := apply(ctx, *atlasBin, *dir, cfg.DB.BuildDSN(), *dryRun)
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		logger.Info("適用しました", "version", f.Version, "description", f.Description)
	}
	logger.Info("マイグレーション完了", "current", res.Current, "target", res.Target, "dry_run", *dryRun)
}

func apply(ctx context.Context, atlasBin, dir, dsn string, dryRun bool) (*atlasexec.MigrateApply, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to prepare migration directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to start atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return nil, errs.Wrap(err, "atlas migrate apply failed")
	}
	return res, nil
}
