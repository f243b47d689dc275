package main

import (
	"context"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geodict/geodict/api"
	"github.com/geodict/geodict/backends"
	"github.com/geodict/geodict/config"
	"github.com/geodict/geodict/gazetteer"
)

var (
	app = kingpin.New(
		"geodict",
		"Placemaker-compatible geocoding service")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEODICT_DEBUG").
		Bool()
	configFile = app.Arg("config-path", "Path to the config.").
			Required().
			File()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := config.Parse(*configFile)
	if err != nil {
		log.Fatalf(err.Error())
	}

	index, err := gazetteer.LoadIndex(afero.NewOsFs(), conf.Gazetteer.Data)
	if err != nil {
		log.Fatalf(err.Error())
	}

	log.WithFields(log.Fields{
		"path":      conf.Gazetteer.Data,
		"phrases":   index.Len(),
		"max_words": index.MaxWords(),
	}).Info("Gazetteer loaded")

	locator, err := makeLocator(conf)
	if err != nil {
		log.Fatalf(err.Error())
	}

	db, err := backends.OpenStreetDatabase(conf.StreetDatabase.DSN)
	if err != nil {
		log.Fatalf(err.Error())
	}
	defer db.Close()

	geocoder, err := backends.NewPostgresGeocoder(db, conf.StreetDatabase.CacheSize)
	if err != nil {
		log.Fatalf(err.Error())
	}

	rootCtx, cancel := makeRootContext()
	defer cancel()

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: api.MakeServer(gazetteer.NewExtractor(index), locator, geocoder),
	}

	go func() {
		<-rootCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(), 5*time.Second)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.WithFields(log.Fields{
		"listen": conf.Listen,
	}).Info("Starting the server")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(err.Error())
	}
}
