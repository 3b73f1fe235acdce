package tracking_timeline

import (
	"time"

	"freightforge/internal/entities"
)

const etaOffset = 20 * time.Hour

var stages = []struct {
	status entities.TrackingStatus
	offset time.Duration
}{
	{status: entities.TrackingBookingConfirmed, offset: 0},
	{status: entities.TrackingInTransit, offset: 4 * time.Hour},
	{status: entities.TrackingArriving, offset: 16 * time.Hour},
}

type TimelineFactory struct{}

func New() *TimelineFactory {
	return &TimelineFactory{}
}

// Seed returns the projected tracking events of a new waybill and its ETA.
func (f *TimelineFactory) Seed(bookedAt time.Time) ([]entities.TrackingEvent, time.Time) {
	bookedAt = bookedAt.UTC()

	events := make([]entities.TrackingEvent, 0, len(stages))
	for _, stage := range stages {
		events = append(events, entities.TrackingEvent{
			Status: stage.status,
			At:     bookedAt.Add(stage.offset),
		})
	}

	return events, bookedAt.Add(etaOffset)
}

func (f *TimelineFactory) Delivered(at time.Time) entities.TrackingEvent {
	return entities.TrackingEvent{
		Status: entities.TrackingDelivered,
		At:     at.UTC(),
	}
}
