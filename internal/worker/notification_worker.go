package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/repair-dashboard/internal/service"
)

// StartNotificationWorker attaches the audit notification subscribers to
// the event dispatcher. Dispatch is synchronous, so there is no goroutine
// to manage; "worker" here is the subscription lifecycle.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
