package intent

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Local is the simulated backend: it logs every intent and acknowledges it
// with the confirmation text the site used to show.
type Local struct {
	Log *logrus.Logger
}

// NewLocal returns a Local backend writing to log.
func NewLocal(log *logrus.Logger) *Local {
	return &Local{Log: log}
}

// Emit implements Sink.
func (l *Local) Emit(ctx context.Context, in Intent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.Log != nil {
		l.Log.WithFields(logrus.Fields{
			"intent": in.ID,
			"action": in.Action,
		}).Info(in.Describe())
	}
	return nil
}

// Acknowledgement returns the success message for an accepted intent.
func Acknowledgement(in Intent) string {
	p := in.Payload
	switch in.Action {
	case Login:
		return "Login successful! Welcome back!"
	case Signup:
		return fmt.Sprintf("Account created successfully! Welcome to FundFlow, %s!", p["name"])
	case SocialLogin:
		return fmt.Sprintf("Logging in with %s", p["platform"])
	case Logout:
		return "Logged out successfully!"
	case CreateProject:
		return "Project created successfully!"
	case Donate:
		return fmt.Sprintf("Thank you for backing this project with $%s!", p["amount"])
	case CancelProject:
		return "Project has been successfully cancelled. All backers will be refunded."
	case DeleteAccount:
		return "Account deletion process initiated."
	case ReportProject:
		return "Thank you for your report. We will review it shortly."
	case ReportComment:
		return "Comment reported. Thank you for your feedback."
	case AddCategory:
		return fmt.Sprintf("Category %q added successfully!", p["name"])
	case RateProject:
		return fmt.Sprintf("Thank you for your %s/10 rating!", p["rating"])
	case OpenProject:
		return fmt.Sprintf("Opening project: %s", p["title"])
	case Search:
		return fmt.Sprintf("Searching for: %s", p["term"])
	default:
		return "Done."
	}
}
