package reminder

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// DesktopNotifier shows a local desktop notification, falling back to a log
// line on headless hosts.
type DesktopNotifier struct {
	logger *zap.Logger
}

func NewDesktopNotifier(logger *zap.Logger) *DesktopNotifier {
	return &DesktopNotifier{logger: logger}
}

func (n *DesktopNotifier) Push(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		n.logger.Info("Local notification unavailable",
			zap.String("title", title),
			zap.String("message", message),
			zap.Error(err))
	}
}
