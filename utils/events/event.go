package events

import (
	"log"

	"erpoffice/models"
)

// LeaveEventType identifies a leave-application lifecycle event.
type LeaveEventType string

const (
	// LeaveSubmitted is published when an employee files a new application.
	LeaveSubmitted LeaveEventType = "LeaveSubmitted"

	// LeaveDecided is published when an admin approves or rejects one.
	LeaveDecided LeaveEventType = "LeaveDecided"
)

// LeaveEvent is the payload for leave notifications.
type LeaveEvent struct {
	Type          LeaveEventType
	Leave         models.Leave
	EmployeeName  string
	ApplicantRole models.Role
}

// LeaveEventBus carries leave events to the notifier consumer. The channel is
// buffered so publishing from an API handler never blocks.
var LeaveEventBus = make(chan LeaveEvent, 100)

// Publish enqueues an event, dropping it when the buffer is full.
func Publish(ev LeaveEvent) {
	select {
	case LeaveEventBus <- ev:
	default:
		log.Printf("leave event bus full, dropping %s event for leave %d", ev.Type, ev.Leave.ID)
	}
}
