// Package main provides the fable binary: it builds the world graph from a
// story document, prints a YAML report of the result, and tears the world
// down. A host program embedding the engine wraps the same build/teardown
// calls around its own interaction loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pcurran/fable/internal/config"
	"github.com/pcurran/fable/internal/game/inventory"
	"github.com/pcurran/fable/internal/game/world"
	"github.com/pcurran/fable/internal/observability"
)

// itemReport describes one item in the world report.
type itemReport struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Unlocks int    `yaml:"unlocks,omitempty"`
}

// entityReport describes one entity in the world report.
type entityReport struct {
	UID   string       `yaml:"uid"`
	Name  string       `yaml:"name"`
	Items []itemReport `yaml:"items,omitempty"`
}

// roomReport describes one room in the world report.
type roomReport struct {
	ID         int            `yaml:"id"`
	Name       string         `yaml:"name"`
	Lock       string         `yaml:"lock"`
	Neighbours []int          `yaml:"neighbours"`
	Items      []itemReport   `yaml:"items,omitempty"`
	Population []entityReport `yaml:"population,omitempty"`
}

// worldReport is the YAML document emitted on stdout after a build.
type worldReport struct {
	Title    string       `yaml:"title,omitempty"`
	Rooms    []roomReport `yaml:"rooms"`
	Dangling []int        `yaml:"dangling_connections,omitempty"`
}

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	storyPath := flag.String("story", "", "path to story XML file; overrides story.path from config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *storyPath != "" {
		cfg.Story.Path = *storyPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	start := time.Now()
	w, err := world.InitWorld(cfg.Story.Path, logger)
	if err != nil {
		logger.Error("building world", zap.String("story", cfg.Story.Path), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("world built",
		zap.String("title", w.Title),
		zap.Int("rooms", w.RoomCount()),
		zap.Int("entities", w.PopulationCount()),
		zap.Int("dangling_connections", len(w.DanglingConnections())),
		zap.Duration("elapsed", time.Since(start)),
	)

	report := buildReport(w)
	out, err := yaml.Marshal(report)
	if err != nil {
		logger.Error("marshalling world report", zap.Error(err))
		os.Exit(1)
	}
	fmt.Print(string(out))

	w.Destroy()
}

// buildReport flattens the connected world graph into the serializable
// report shape. Neighbour edges are reported as room ids so the report
// stays acyclic.
func buildReport(w *world.World) worldReport {
	report := worldReport{
		Title:    w.Title,
		Dangling: w.DanglingConnections(),
	}
	for _, r := range w.Rooms {
		rr := roomReport{
			ID:         r.ID,
			Name:       r.Name,
			Lock:       string(r.Lock),
			Neighbours: []int{},
		}
		for _, n := range r.Neighbours {
			rr.Neighbours = append(rr.Neighbours, n.ID)
		}
		rr.Items = itemReports(r.Inventory.Items())
		for _, e := range r.Population {
			rr.Population = append(rr.Population, entityReport{
				UID:   e.UID,
				Name:  e.Name,
				Items: itemReports(e.Inventory.Items()),
			})
		}
		report.Rooms = append(report.Rooms, rr)
	}
	return report
}

func itemReports(items []*inventory.Item) []itemReport {
	var out []itemReport
	for _, it := range items {
		ir := itemReport{ID: it.ID, Name: it.Name, Kind: it.Kind}
		if it.IsKey() {
			ir.Unlocks = it.UnlocksRoom
		}
		out = append(out, ir)
	}
	return out
}
