package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pricesentinel/internal/schedule"
	"pricesentinel/internal/service/monitor"
	"pricesentinel/ioc"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	settings := ioc.InitSettings()
	wallexCli := ioc.InitWallexCli(settings.RequestTimeout, settings.SymbolPace)
	coincatchCli := ioc.InitCoincatchCli(settings.RequestTimeout)

	opts := make([]monitor.Option, 0, 1)
	if notifier := ioc.InitTelegramNotifier(settings.RequestTimeout); notifier != nil {
		opts = append(opts, monitor.WithNotifier(notifier))
	}

	deviationSvc := monitor.NewDeviationMonitor(wallexCli, coincatchCli, wallexCli, settings.Threshold, opts...)
	task := monitor.NewDeviationMonitorTask(deviationSvc)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := schedule.NewScheduler(task, settings.CheckInterval)
	if err := sched.Start(ctx); err != nil {
		panic(err)
	}
	slog.Info("price deviation sentinel started", "interval", settings.CheckInterval)

	<-ctx.Done()
	slog.Info("shutting down")
}
