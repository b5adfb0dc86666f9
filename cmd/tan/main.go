package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tan "github.com/opendata-nantes/tan-go"
	"github.com/opendata-nantes/tan-go/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	op := flag.String("op", "nearby", "nearby|stops|schedule|wait")
	lat := flag.String("lat", "", "latitude in decimal degrees")
	lon := flag.String("lon", "", "longitude in decimal degrees")
	stop := flag.String("stop", "", "stop code, e.g. HBLI2")
	line := flag.String("line", "", "line number, e.g. C5")
	direction := flag.Int("direction", 0, "direction (0|1)")
	date := flag.String("date", "", "calendar date YYYY-MM-DD (schedule only)")
	count := flag.Int("count", 0, "max passages to return (wait only; 0 = all)")
	flag.Parse()

	tan.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}

	client := tan.NewClient(tan.Options{
		BaseURL:        config.Config.Client.BaseURL,
		ConnectTimeout: time.Duration(config.Config.Client.ConnectTimeoutMS) * time.Millisecond,
		RequestTimeout: time.Duration(config.Config.Client.RequestTimeoutMS) * time.Millisecond,
	})

	switch *mode {
	case "serve":
		tan.StartServer(client)
		tan.HandleGracefulShutdown()
	case "oneshot":
		result, err := runQuery(context.Background(), client, *op, queryArgs{
			lat:       *lat,
			lon:       *lon,
			stop:      *stop,
			line:      *line,
			direction: tan.Direction(*direction),
			date:      *date,
			count:     *count,
		})
		if err != nil {
			log.Fatalf("%s: %v", *op, err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

type queryArgs struct {
	lat, lon  string
	stop      string
	line      string
	direction tan.Direction
	date      string
	count     int
}

func runQuery(ctx context.Context, client *tan.Client, op string, a queryArgs) (any, error) {
	switch op {
	case "nearby":
		return client.NearbyStops(ctx, tan.Coordinate{Latitude: a.lat, Longitude: a.lon})
	case "stops":
		return client.AllStops(ctx)
	case "schedule":
		if a.date != "" {
			return client.ScheduleForStopOnDate(ctx, a.stop, a.line, a.direction, a.date)
		}
		return client.ScheduleForStop(ctx, a.stop, a.line, a.direction)
	case "wait":
		switch {
		case a.line != "":
			return client.WaitTimesForStopLine(ctx, a.stop, a.count, a.line)
		case a.count > 0:
			return client.WaitTimesForStopLimited(ctx, a.stop, a.count)
		default:
			return client.WaitTimesForStop(ctx, a.stop)
		}
	}
	return nil, fmt.Errorf("unknown op %q", op)
}
