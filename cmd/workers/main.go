// The workers command keeps a roster of workers (name, post, hire year)
// in a SQLite file.
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
	app = kingpin.New("workers", "Manage a roster of workers.")

	dbPath = app.Flag("db", "The database file name.").
		Default(sqlite.DefaultWorkersPath).Envar("WORKERS_DB").String()

	addCmd  = app.Command("add", "Add a new worker.")
	addName = addCmd.Flag("name", "The worker's name.").
		Short('n').Required().String()
	addPost = addCmd.Flag("post", "The worker's post.").
		Short('p').Required().String()
	addYear = addCmd.Flag("year", "The year of hiring.").
		Short('y').Required().Int()

	displayCmd = app.Command("display", "Display all workers.")

	selectCmd    = app.Command("select", "Select workers by employment period.")
	selectPeriod = selectCmd.Flag("period", "The minimum number of years employed.").
			Short('P').Required().Int()
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	app.Version("0.1.0")
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	store, err := sqlite.OpenWorkers(*dbPath)
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
		if err := store.Add(ctx, *addName, *addPost, *addYear); err != nil {
			logging.Fatalf("add worker: %v", err)
		}
		logging.Debugf("added worker %q (post %q, year %d) to %s",
			*addName, *addPost, *addYear, store.Path())

	case displayCmd.FullCommand():
		workers, err := store.SelectAll(ctx)
		if err != nil {
			logging.Fatalf("display workers: %v", err)
		}
		render.Workers(os.Stdout, workers)

	case selectCmd.FullCommand():
		if *selectPeriod < 0 {
			app.Fatalf("period must be non-negative, got %d", *selectPeriod)
		}
		workers, err := store.SelectByPeriod(ctx, *selectPeriod)
		if err != nil {
			logging.Fatalf("select workers: %v", err)
		}
		render.Workers(os.Stdout, workers)
	}
}
