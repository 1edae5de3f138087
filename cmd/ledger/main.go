// Command ledger works with the expense ledger from a terminal. It reads
// the same configuration as the API server and opens the same slot.
//
//	ledger ls
//	ledger summary
//	ledger add -title 拉麵 -amount 1200 -category food -payment cash
//	ledger rm <id>
//	ledger export > ledger.txt
//	ledger import -yes < ledger.txt
package main

import (
	"context"
	"os"

	"github.com/dafibh/tabi/tabi-backend/internal/config"
	"github.com/dafibh/tabi/tabi-backend/internal/repository"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()
	slots, closeSlots, err := repository.OpenSlotStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SlotBackend).Msg("Failed to open slot store")
	}

	ledger := service.NewLedgerService(slots, cfg.TripLocation)
	ledger.Load(ctx)

	code := 0
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, ledger); err != nil {
		log.Error().Err(err).Msg("ledger")
		code = exitCode(err)
	}
	closeSlots()
	os.Exit(code)
}
