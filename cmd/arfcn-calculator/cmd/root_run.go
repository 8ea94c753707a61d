package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mwk/arfcn-calculator/internal/api"
	"github.com/mwk/arfcn-calculator/internal/band"
	"github.com/mwk/arfcn-calculator/internal/config"
	"github.com/mwk/arfcn-calculator/internal/monitoring"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ARFCN API and monitoring endpoints",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	tasks := []func() error{
		setSyslog,
		setupBand,
		printStartMessage,
		setupMonitoring,
		setupAPI,
	}

	for _, t := range tasks {
		if err := t(); err != nil {
			log.Fatal(err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	exitChan := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	log.WithField("signal", <-sigChan).Info("signal received")
	go func() {
		log.Warning("stopping arfcn-calculator")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := api.Stop(ctx); err != nil {
			log.Fatal(err)
		}
		exitChan <- struct{}{}
	}()
	select {
	case <-exitChan:
	case s := <-sigChan:
		log.WithField("signal", s).Info("signal received, stopping immediately")
	}

	return nil
}

func setupBand() error {
	if err := band.Setup(); err != nil {
		return errors.Wrap(err, "setup band error")
	}
	return nil
}

func printStartMessage() error {
	var names []band.Name
	for _, b := range band.Bands() {
		names = append(names, b.Name)
	}

	log.WithFields(log.Fields{
		"version": version,
		"bands":   names,
		"docs":    "arfcn-calculator --help",
	}).Info("starting ARFCN Calculator")
	return nil
}

func setupMonitoring() error {
	if err := monitoring.Setup(config.C); err != nil {
		return errors.Wrap(err, "setup monitoring error")
	}
	return nil
}

func setupAPI() error {
	if err := api.Setup(config.C); err != nil {
		return errors.Wrap(err, "setup api error")
	}
	return nil
}
