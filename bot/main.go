package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/egaotan/arbitrage-bot/bot/app"
	"github.com/egaotan/arbitrage-bot/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	go shutdown(cancel, quit)

	if len(os.Args) != 2 {
		panic("args is invalid")
	}
	workSpace := os.Args[1]
	os.Chdir(workSpace)

	infoJson, err := os.ReadFile(config.ConfigFile)
	if err != nil {
		panic(err)
	}
	var cfg config.Config
	err = json.Unmarshal(infoJson, &cfg)
	if err != nil {
		panic(err)
	}

	cfg.WorkSpace = workSpace
	workspace, _ := os.Getwd()
	fmt.Printf("work space: %s\n", workspace)

	oldVenues := cfg.Venues
	usableVenues := make([]*config.Venue, 0)
	for _, v := range oldVenues {
		if v.Usable {
			usableVenues = append(usableVenues, v)
		}
	}
	cfg.Venues = usableVenues

	bot := app.NewApp(ctx, &cfg)
	bot.Service()
}

func shutdown(cancel context.CancelFunc, quit chan os.Signal) {
	<-quit
	cancel()
}
