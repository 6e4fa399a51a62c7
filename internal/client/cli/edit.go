package cli

import (
	"context"
	"strconv"

	"github.com/treiher/valens-client/internal/domain"
)

// AddBodyWeight creates a body-weight entry: add-bw <date> <weight>.
func (a *App) AddBodyWeight(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: add-bw <date> <weight>")
		return nil
	}

	date, err := domain.ParseDate(args[0])
	if err != nil {
		printlnFn("Invalid date:", args[0])
		return err
	}
	weight, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		printlnFn("Invalid weight:", args[1])
		return err
	}

	if _, err := a.repo.CreateBodyWeight(ctx, domain.BodyWeight{Date: date, Weight: weight}); err != nil {
		printError(err)
		return err
	}
	printlnFn("Added")
	return nil
}

// DeleteBodyWeight removes a body-weight entry: del-bw <date>.
func (a *App) DeleteBodyWeight(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: del-bw <date>")
		return nil
	}

	date, err := domain.ParseDate(args[0])
	if err != nil {
		printlnFn("Invalid date:", args[0])
		return err
	}

	if _, err := a.repo.DeleteBodyWeight(ctx, date); err != nil {
		printError(err)
		return err
	}
	printlnFn("Deleted")
	return nil
}

// AddPeriod creates a period entry: add-period <date> <intensity 1-4>.
func (a *App) AddPeriod(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: add-period <date> <intensity 1-4>")
		return nil
	}

	date, err := domain.ParseDate(args[0])
	if err != nil {
		printlnFn("Invalid date:", args[0])
		return err
	}
	value, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		printlnFn("Invalid intensity:", args[1])
		return err
	}
	intensity, err := domain.NewIntensity(uint8(value))
	if err != nil {
		printError(err)
		return err
	}

	if _, err := a.repo.CreatePeriod(ctx, domain.Period{Date: date, Intensity: intensity}); err != nil {
		printError(err)
		return err
	}
	printlnFn("Added")
	return nil
}
