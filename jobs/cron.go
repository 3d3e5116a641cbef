package jobs

import (
	"context"
	"time"

	"travelmore/utils"

	"github.com/robfig/cron/v3"
)

// AvailabilityRefresher re-derives room booking flags; implemented by the
// booking engine.
type AvailabilityRefresher interface {
	RecomputeAvailability(ctx context.Context, roomID uint, today time.Time) (bool, error)
}

// RoomLister returns the ids of all rooms in the catalog.
type RoomLister func() ([]uint, error)

var (
	availabilityRefresher AvailabilityRefresher
	listRooms             RoomLister
)

// SetAvailabilityRefresher wires the engine the nightly job runs against.
func SetAvailabilityRefresher(refresher AvailabilityRefresher, lister RoomLister) {
	availabilityRefresher = refresher
	listRooms = lister
}

// InitCronJobs registers the nightly availability refresh at midnight.
// Rooms whose last bookings departed yesterday flip back to available
// without waiting for traffic.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Running availability refresh at: %v", now)

		if availabilityRefresher == nil || listRooms == nil {
			utils.LogError("Availability refresher is not configured")
			return
		}

		roomIDs, err := listRooms()
		if err != nil {
			utils.LogError("Failed to list rooms: %v", err)
			return
		}

		for _, roomID := range roomIDs {
			if _, err := availabilityRefresher.RecomputeAvailability(context.Background(), roomID, now); err != nil {
				utils.LogError("Failed to refresh room %d: %v", roomID, err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
