package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/errors"

	"github.com/geodict/geodict/backends"
	"github.com/geodict/geodict/config"
)

const version = "0.0.1"

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeLocator(conf *config.Config) (backends.IPLocator, error) {
	switch conf.IPDatabase.Flavor {
	case "maxmind":
		locator, err := backends.NewMaxmindLocator(conf.IPDatabase.Path)
		if err != nil {
			return nil, errors.Annotate(err, "cannot open the maxmind database")
		}

		return locator, nil
	case "ip2location":
		return backends.NewIP2LocationLocator(conf.IPDatabase.Path), nil
	}

	return nil, errors.Errorf("unsupported IP database flavor %s",
		conf.IPDatabase.Flavor)
}
