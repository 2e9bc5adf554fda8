package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KirkDiggler/montecarlo/internal/analyzer"
	"github.com/KirkDiggler/montecarlo/internal/config"
	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/game"
	"github.com/KirkDiggler/montecarlo/internal/report"
)

func main() {
	settings, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to read settings: %v", err)
	}

	def, err := config.LoadDefinition(settings.GameFile)
	if err != nil {
		log.Fatalf("Failed to load game definition: %v", err)
	}

	log.Printf("Simulating %q: %d dice, %d rolls", def.Name, len(def.Dice), settings.Rolls)

	switch def.Faces {
	case config.FaceKindString:
		err = run(os.Stdout, def, settings, config.ParseString)
	default:
		err = run(os.Stdout, def, settings, config.ParseInt)
	}
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

// run plays the defined game once and writes every statistic to w
func run[F dice.Face](w io.Writer, def *config.Definition, settings *config.Settings, parse func(string) (F, error)) error {
	diceList, err := config.BuildDice(def, parse, settings.Seed)
	if err != nil {
		return fmt.Errorf("build dice: %w", err)
	}

	g, err := game.New(diceList, nil)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if err := g.Play(settings.Rolls); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	rows, cols := g.Wide().Shape()
	log.Printf("Played %d rolls across %d dice", rows, cols)

	results, err := g.ShowResults(game.Form(settings.Form))
	if err != nil {
		return err
	}

	a, err := analyzer.New(g)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	if err := report.WriteSummary(w, def.Name, a.Summary()); err != nil {
		return err
	}

	sections := []struct {
		title string
		table report.Table
		limit int
	}{
		{title: "\nresults", table: results, limit: settings.ShowRows},
		{title: "\nface counts", table: a.FaceCountsPerRoll()},
		{title: "\ncombinations", table: a.ComboCount(), limit: settings.ShowRows},
		{title: "\npermutations", table: a.PermutationCount(), limit: settings.ShowRows},
	}
	for _, sec := range sections {
		if err := report.WriteTable(w, sec.title, sec.table, sec.limit); err != nil {
			return err
		}
	}

	log.Printf("Game %s finished at %s", g.ID(), g.PlayedAt().Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
