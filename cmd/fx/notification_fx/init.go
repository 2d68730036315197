package notification_fx

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/repositories"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/services"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/scheduler"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideAppLocation, provideMailDispatcher, provideNotificationService),
	fx.Invoke(startMailDispatcher, startDailyPass),
)

func provideAppLocation() *time.Location {
	return utils.AppLocation()
}

func provideMailDispatcher(mail services.IMailService) services.MailDispatcher {
	workers := envInt("MAIL_WORKERS", 4)
	queueSize := envInt("MAIL_QUEUE_SIZE", 64)
	return services.NewMailDispatcher(mail, workers, queueSize)
}

func provideNotificationService(
	postRepo repositories.PostRepository,
	postStatus services.PostStatusClient,
	directory services.UserDirectoryClient,
	dispatcher services.MailDispatcher,
	loc *time.Location,
) services.NotificationServiceInterface {
	return services.NewNotificationService(postRepo, postStatus, directory, dispatcher, loc)
}

func startMailDispatcher(lc fx.Lifecycle, dispatcher services.MailDispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}

// startDailyPass wires the periodic trigger: one pass a day at the
// configured local time (default 00:30, matching the post service's
// reminder cadence).
func startDailyPass(lc fx.Lifecycle, service services.NotificationServiceInterface, loc *time.Location) {
	scheduleAt := os.Getenv("NOTIFY_SCHEDULE")
	if scheduleAt == "" {
		scheduleAt = "00:30"
	}

	hour, minute, err := scheduler.ParseScheduleTime(scheduleAt)
	if err != nil {
		log.Printf("Invalid NOTIFY_SCHEDULE %q, falling back to 00:30: %v", scheduleAt, err)
		hour, minute = 0, 30
	}

	daily := scheduler.NewDaily(hour, minute, loc, func(ctx context.Context) {
		if err := service.FetchPostsAndUpdate(ctx); err != nil {
			log.Printf("Scheduled notification pass failed: %v", err)
		}
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			daily.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			daily.Stop()
			return nil
		},
	})
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
