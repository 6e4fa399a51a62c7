package cli

import (
	"context"
	"fmt"
)

// Sync refreshes every cached collection from the server. The first remote
// failure aborts; collections already refreshed stay refreshed.
func (a *App) Sync(ctx context.Context) error {
	bodyWeight, err := a.repo.SyncBodyWeight(ctx)
	if err != nil {
		printError(err)
		return err
	}
	bodyFat, err := a.repo.SyncBodyFat(ctx)
	if err != nil {
		printError(err)
		return err
	}
	period, err := a.repo.SyncPeriod(ctx)
	if err != nil {
		printError(err)
		return err
	}
	exercises, err := a.repo.SyncExercises(ctx)
	if err != nil {
		printError(err)
		return err
	}
	routines, err := a.repo.SyncRoutines(ctx)
	if err != nil {
		printError(err)
		return err
	}
	trainingSessions, err := a.repo.SyncTrainingSessions(ctx)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Synced: %d body weight, %d body fat, %d period, %d exercises, %d routines, %d workouts\n",
		len(bodyWeight), len(bodyFat), len(period), len(exercises), len(routines), len(trainingSessions))
	return nil
}
