package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/internal/interface/console"
)

// StepLogger attaches a logger tagged with a unique step_id to every menu
// step and records the resulting transition.
func StepLogger(logger *logrus.Logger) console.Middleware {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Context) (console.State, error) {
			if logger == nil {
				return next(c)
			}
			entry := logger.WithField("step_id", uuid.New().String()).WithField("state", c.State.String())
			if c.Session != nil {
				entry = entry.WithField("sid", c.Session.ID)
			}
			c.Log = entry

			start := time.Now()
			state, err := next(c)
			entry.WithFields(logrus.Fields{
				"next":    state.String(),
				"latency": time.Since(start).String(),
			}).Debug("menu step")
			return state, err
		}
	}
}
