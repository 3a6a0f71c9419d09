package controlpanel

import (
	"errors"
	"fmt"
)

// ConfigError signals a broken or incomplete panel configuration. No remote
// call is attempted when one is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("control panel configuration error: %s", e.Reason)
}

// IsConfigError reports whether err is a panel configuration problem.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// NotFoundError signals that a referenced local entity does not exist.
type NotFoundError struct {
	Kind string // "customer", "hosting", "vps", "website", "control panel"
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IsNotFound reports whether err references a missing local entity.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// MappingNotFoundError signals that no active plan mapping exists for a local
// package. Callers must not guess a plan id; this aborts the sync.
type MappingNotFoundError struct {
	ControlPanelID uint
	LocalPlanType  string
	LocalPlanID    uint
}

func (e *MappingNotFoundError) Error() string {
	return fmt.Sprintf("no active plan mapping for panel=%d type=%s plan=%d (create a plan mapping first)",
		e.ControlPanelID, e.LocalPlanType, e.LocalPlanID)
}

// IsMappingNotFound reports whether err is a missing plan mapping.
func IsMappingNotFound(err error) bool {
	var me *MappingNotFoundError
	return errors.As(err, &me)
}

// RemoteError carries the upstream failure detail of a control panel call so
// the calling UI can render an actionable message.
type RemoteError struct {
	Op      string // e.g. "create subscription"
	Status  int    // HTTP status, 0 when the request never completed
	Message string
	Timeout bool
}

func (e *RemoteError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("control panel %s failed: status=%d %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("control panel %s failed: %s", e.Op, e.Message)
}

// NotFound reports whether the remote entity is gone. This is not a caller
// facing failure; it drives the recreate/re-discovery paths.
func (e *RemoteError) NotFound() bool {
	return e.Status == 404 || e.Status == 410
}

// Conflict reports whether the remote system claims the entity already exists.
func (e *RemoteError) Conflict() bool {
	return e.Status == 409
}

// Transient reports whether retrying the whole operation may succeed.
func (e *RemoteError) Transient() bool {
	if e.Timeout {
		return true
	}
	return e.Status == 408 || e.Status == 429 || e.Status >= 500
}

// IsRemoteNotFound reports whether err is a remote not-found condition.
func IsRemoteNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.NotFound()
}

// IsRemoteConflict reports whether err is a remote duplicate/conflict signal.
func IsRemoteConflict(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Conflict()
}

// IsRemoteTransient reports whether err is worth retrying by the caller.
func IsRemoteTransient(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Transient()
}
