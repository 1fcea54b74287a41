// The trains command keeps a roster of trains (destination, type, route
// number) in a SQLite file.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/msokolov/rosters/internal/logging"
	"github.com/msokolov/rosters/internal/render"
	"github.com/msokolov/rosters/internal/storage/sqlite"
)

var (
	app = kingpin.New("trains", "Manage a roster of trains.")

	dbPath = app.Flag("db", "The database file name.").
		Default(sqlite.DefaultTrainsPath).Envar("TRAINS_DB").String()

	addCmd  = app.Command("add", "Add a new train.")
	addDest = addCmd.Flag("destination", "The train's destination.").
		Short('d').Required().String()
	addType = addCmd.Flag("typ", "The train's type.").
		Short('t').Required().String()
	addNum = addCmd.Flag("num", "The train's route number.").
		Short('n').Required().Int()

	displayCmd = app.Command("display", "Display all trains.")

	selectCmd  = app.Command("select", "Select trains by type.")
	selectType = selectCmd.Flag("type", "The required type.").
			Short('T').Required().String()
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	app.Version("0.1.0")
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	store, err := sqlite.OpenTrains(*dbPath)
	if err != nil {
		logging.Fatalf("open roster %s: %v", *dbPath, err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		logging.Fatalf("init schema: %v", err)
	}

	switch command {
	case addCmd.FullCommand():
		if err := store.Add(ctx, *addDest, *addType, *addNum); err != nil {
			logging.Fatalf("add train: %v", err)
		}
		logging.Debugf("added train to %q (type %q, route %d) in %s",
			*addDest, *addType, *addNum, store.Path())

	case displayCmd.FullCommand():
		trains, err := store.SelectAll(ctx)
		if err != nil {
			logging.Fatalf("display trains: %v", err)
		}
		render.Trains(os.Stdout, trains)

	case selectCmd.FullCommand():
		trains, err := store.SelectByType(ctx, *selectType)
		if err != nil {
			logging.Fatalf("select trains: %v", err)
		}
		render.Trains(os.Stdout, trains)
	}
}
