package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"dailysteps/aggregators"
	"dailysteps/core"
	"dailysteps/fitness"
	"dailysteps/util"
)

func main() {
	// load config
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	// init provider
	auth := &fitness.InstalledAppAuthenticator{
		SecretPath: cfg.ClientSecretPath,
		TokenPath:  cfg.TokenCachePath,
	}
	svc := fitness.NewService(auth)

	// query today's window
	window := core.DayWindow(time.Now(), time.Local)
	log.WithFields(log.Fields{
		"start":    window.StartMillis,
		"end":      window.EndMillis,
		"duration": window.DurationMillis,
	}).Debug("computed query window")

	resp, err := svc.Aggregate(context.Background(), core.NewStepsRequest(window))
	if err != nil {
		log.Fatalf("failed to retrieve steps: %v", err)
	}

	steps, err := aggregators.Steps(resp)
	if err != nil {
		log.Fatalf("failed to extract steps: %v", err)
	}

	fmt.Printf("You have taken %d steps today!\n", steps)
}
