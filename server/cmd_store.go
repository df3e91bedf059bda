package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"acpc-thunderdome/server/acpc"
	"acpc-thunderdome/server/store"
)

var errNoDatabase = errors.New("DATABASE_URL is not set (use --db or .env)")

func openStore(ctx context.Context, dsn string, migrate bool) (*store.DB, error) {
	if dsn == "" {
		return nil, errNoDatabase
	}
	db, err := store.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}
	if migrate {
		if err := store.Migrate(ctx, db); err != nil {
			db.Close(ctx)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Println("migrated")
	}
	return db, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the match state archive tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := dsnFlag(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		db, err := openStore(ctx, dsn, true)
		if err != nil {
			return err
		}
		db.Close(ctx)
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive [file]",
	Short: "Parse match state lines and store them in the archive",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := dsnFlag(cmd)
		if err != nil {
			return err
		}
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()
		res, err := scanStates(in)
		if err != nil {
			return err
		}

		var states []*acpc.MatchState
		for _, r := range res {
			if r.Err != nil {
				pterm.Warning.Printfln("skipping line %d: %v", r.Line, r.Err)
				continue
			}
			states = append(states, r.State)
		}

		ctx := cmd.Context()
		db, err := openStore(ctx, dsn, cfg.AutoMigrate)
		if err != nil {
			return err
		}
		defer db.Close(ctx)
		if err := db.InsertStates(ctx, states); err != nil {
			return err
		}
		pterm.Success.Printfln("archived %d states (%d skipped)", len(states), countBad(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.PersistentFlags().String("db", "", "Postgres DSN (default $DATABASE_URL)")
}
