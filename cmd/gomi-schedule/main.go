package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	lib "github.com/theoremus-urban-solutions/gomi-schedule"
	"github.com/theoremus-urban-solutions/gomi-schedule/config"
	"github.com/theoremus-urban-solutions/gomi-schedule/formatter"
	"github.com/theoremus-urban-solutions/gomi-schedule/internal"
	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot|sample")
	configPath := flag.String("config", "", "path to config.yml (default: search ./config.yml)")
	query := flag.String("q", "", "ward query for oneshot mode")
	station := flag.String("station", "", "optional station for oneshot mode")
	out := flag.String("out", "", "samples directory for sample mode (overrides config)")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Config

	switch *mode {
	case "serve":
		lib.StartServer(cfg)
		lib.HandleGracefulShutdown()
	case "oneshot":
		if *query == "" {
			log.Fatal("-q is required in oneshot mode")
		}
		s, err := lib.NewLookupFromConfig(cfg).Schedule(context.Background(), *query, *station)
		if err != nil {
			log.Fatal(err)
		}
		buf, err := formatter.NewResponseBuilder().BuildJSON(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(buf))
	case "sample":
		dir := cfg.Server.SamplesDir
		if *out != "" {
			dir = *out
		}
		now := time.Now()
		path, err := schedule.WriteSample(dir, schedule.AdachiSample(now), now)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Updated dataset %s", path)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
