package fcm

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"erpoffice/models"
	"erpoffice/utils/events"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Topic prefix for role-addressed notifications.
const FCMTopicPrefix = "topic_"

var fcmClient *messaging.Client

// Init prepares the Firebase messaging client. Callers skip it entirely when
// no FCM project is configured; the rest of the API works without it.
func Init(projectID string) error {
	log.Println("Initializing Firebase Admin SDK...")
	ctx := context.Background()
	config := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, config)
	if err != nil {
		return fmt.Errorf("initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("getting Firebase Messaging client: %w", err)
	}

	fcmClient = client
	log.Println("✅ Firebase Admin SDK initialized.")
	return nil
}

func mapRoleToTopic(role models.Role) string {
	return FCMTopicPrefix + string(role)
}

// StartNotifierConsumer drains the leave event bus and pushes a notification
// per event: submissions go to the admin topic, decisions go back to the
// applicant's role topic. Run it on its own goroutine.
func StartNotifierConsumer() {
	for ev := range events.LeaveEventBus {
		var topic, title, bodyText string

		switch ev.Type {
		case events.LeaveSubmitted:
			topic = mapRoleToTopic(models.RoleAdmin)
			title = "New leave application"
			bodyText = fmt.Sprintf("%s applied for leave (%s – %s)",
				ev.EmployeeName,
				ev.Leave.StartDate.Format("2006-01-02"),
				ev.Leave.EndDate.Format("2006-01-02"))
		case events.LeaveDecided:
			topic = mapRoleToTopic(ev.ApplicantRole)
			title = "Leave application update"
			bodyText = fmt.Sprintf("Leave request #%d is now %s", ev.Leave.ID, ev.Leave.Status)
		default:
			continue
		}

		msg := &messaging.Message{
			Topic: topic,
			Notification: &messaging.Notification{
				Title: title,
				Body:  bodyText,
			},
			Data: map[string]string{
				"leave_id": strconv.FormatUint(uint64(ev.Leave.ID), 10),
				"status":   string(ev.Leave.Status),
			},
		}

		if _, err := fcmClient.Send(context.Background(), msg); err != nil {
			log.Printf("failed to send FCM message to %s: %v", topic, err)
		}
	}
}
