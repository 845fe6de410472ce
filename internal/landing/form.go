package landing

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/titans986/waiting-list-site/internal/models"
)

// Status is where a Form is in its submit lifecycle.
type Status int

const (
	Idle Status = iota
	Submitting
	Submitted
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Registrar sends a signup to the registration endpoint.
type Registrar interface {
	Register(ctx context.Context, email string) (*models.RegisterResponse, error)
}

// Form is the Go model of the email form that waitlist.js runs in the
// browser: one visitor, one page view. It lets Go callers (and the tests)
// drive the same submit rules against the endpoint through a Registrar.
// It is not safe for concurrent use.
type Form struct {
	email     string
	status    Status
	registrar Registrar
	log       logrus.FieldLogger
}

func NewForm(registrar Registrar, log logrus.FieldLogger) *Form {
	return &Form{registrar: registrar, log: log}
}

func (f *Form) Email() string  { return f.email }
func (f *Form) Status() Status { return f.status }

// Submitted reports whether the server has confirmed the signup.
func (f *Form) Submitted() bool { return f.status == Submitted }

// SetEmail updates the input value. The form is read-only once submitted.
func (f *Form) SetEmail(v string) {
	if f.status == Submitted {
		return
	}
	f.email = v
}

// Submit sends the current email. An empty email sends nothing. On success
// the form becomes Submitted and the input is cleared; on failure the error
// is logged and the form returns to Idle unchanged.
func (f *Form) Submit(ctx context.Context) {
	if f.status != Idle || f.email == "" {
		return
	}

	f.status = Submitting
	if _, err := f.registrar.Register(ctx, f.email); err != nil {
		f.log.WithError(err).Error("waitlist signup failed")
		f.status = Idle
		return
	}

	f.status = Submitted
	f.email = ""
}
