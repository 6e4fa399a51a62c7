package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/treiher/valens-client/internal/domain"
)

// The list commands serve the cached collections and work offline. Use
// 'sync' to refresh them from the server.

func (a *App) ListBodyWeight(ctx context.Context) error {
	entries, err := a.repo.ReadBodyWeight(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, bw := range entries {
		fmt.Printf("%s  %.1f kg\n", bw.Date, bw.Weight)
	}
	return nil
}

func (a *App) ListBodyFat(ctx context.Context) error {
	entries, err := a.repo.ReadBodyFat(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, bf := range entries {
		fmt.Printf("%s  %s\n", bf.Date, formatBodyFat(bf))
	}
	return nil
}

func (a *App) ListPeriod(ctx context.Context) error {
	entries, err := a.repo.ReadPeriod(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, p := range entries {
		fmt.Printf("%s  %s\n", p.Date, p.Intensity)
	}
	return nil
}

func (a *App) ListExercises(ctx context.Context) error {
	exercises, err := a.repo.ReadExercises(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, e := range exercises {
		fmt.Printf("%s  %s (%d muscles)\n", e.ID, e.Name, len(e.Muscles))
	}
	return nil
}

func (a *App) ListRoutines(ctx context.Context) error {
	routines, err := a.repo.ReadRoutines(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, r := range routines {
		archived := ""
		if r.Archived {
			archived = " [archived]"
		}
		fmt.Printf("%s  %s%s (%d sections)\n", r.ID, r.Name, archived, len(r.Sections))
	}
	return nil
}

func (a *App) ListTrainingSessions(ctx context.Context) error {
	trainingSessions, err := a.repo.ReadTrainingSessions(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, ts := range trainingSessions {
		fmt.Printf("%s  %s (%d elements)\n", ts.Date, ts.ID, len(ts.Elements))
	}
	return nil
}

func formatBodyFat(bf domain.BodyFat) string {
	var parts []string
	add := func(name string, v *uint8) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%d", name, *v))
		}
	}
	add("chest", bf.Chest)
	add("abdominal", bf.Abdominal)
	add("thigh", bf.Thigh)
	add("tricep", bf.Tricep)
	add("subscapular", bf.Subscapular)
	add("suprailiac", bf.Suprailiac)
	add("midaxillary", bf.Midaxillary)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
