package main

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/geoshapes/shape-api/internal/logger"
)

// Schema migration CLI: `migrate up`, `migrate down [n]`, `migrate version`,
// `migrate force <v>`.  The database URL comes from DATABASE_URL, or is
// assembled from the same DB_* variables the server uses.

func main() {
	_ = godotenv.Load()
	log := logger.New(os.Getenv("APP_ENV"))

	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = "./migrations"
	}

	m, err := migrate.New("file://"+path, databaseURL(log))
	if err != nil {
		log.Fatal().Err(err).Msg("migration init failed")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("up failed")
		}
		log.Info().Msg("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatal().Str("arg", args[1]).Msg("down: invalid steps argument")
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("down failed")
		}
		log.Info().Int("steps", steps).Msg("migrations: down completed")

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("version failed")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("migrations: current version")

	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Str("arg", args[1]).Msg("force: invalid version argument")
		}
		if err := m.Force(v); err != nil {
			log.Fatal().Err(err).Msg("force failed")
		}
		log.Info().Int("version", v).Msg("migrations: version forced")

	default:
		usage()
		os.Exit(1)
	}
}

// databaseURL prefers DATABASE_URL and otherwise builds a mysql:// URL from
// the DB_* variables.
func databaseURL(log zerolog.Logger) string {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u
	}
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		log.Fatal().Msg("set DATABASE_URL or DB_HOST/DB_PORT/DB_USER/DB_NAME")
	}
	auth := os.Getenv("DB_USER")
	if pass := os.Getenv("DB_PASS"); pass != "" {
		auth += ":" + url.QueryEscape(pass)
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("mysql://%s@tcp(%s:%s)/%s", auth, host, port, name)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down [steps]|version|force <version>>")
}
