package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewNotificationController))
