package domain

// Status is the application-level lifecycle of a transfer job. It is a
// superset of the states the external gateway reports: the gateway never
// distinguishes a queued-but-not-submitted job, and it folds every terminal
// outcome into a single Completed report that we re-classify.
type Status int

const (
	StatusNone Status = iota
	StatusQueued
	StatusTransferring
	StatusWaiting
	StatusWaitingForRetry
	StatusWaitingForWiFi
	StatusWaitingForExternalPower
	StatusWaitingForExternalPowerDueToBatterySaverMode
	StatusWaitingForNonVoiceBlockingNetwork
	StatusPaused
	StatusCompleted
	StatusFailed
	StatusFailedServer
	StatusCanceled
)

var statusNames = map[Status]string{
	StatusNone:                    "None",
	StatusQueued:                  "Queued",
	StatusTransferring:            "Transferring",
	StatusWaiting:                 "Waiting",
	StatusWaitingForRetry:         "WaitingForRetry",
	StatusWaitingForWiFi:          "WaitingForWiFi",
	StatusWaitingForExternalPower: "WaitingForExternalPower",
	StatusWaitingForExternalPowerDueToBatterySaverMode: "WaitingForExternalPowerDueToBatterySaverMode",
	StatusWaitingForNonVoiceBlockingNetwork:            "WaitingForNonVoiceBlockingNetwork",
	StatusPaused:       "Paused",
	StatusCompleted:    "Completed",
	StatusFailed:       "Failed",
	StatusFailedServer: "FailedServer",
	StatusCanceled:     "Canceled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Terminal reports whether no further transition can occur without
// re-enqueueing the job.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusFailedServer, StatusCanceled:
		return true
	default:
		return false
	}
}

// ExternalStatus is the raw state reported by the transfer gateway.
type ExternalStatus int

const (
	ExternalNone ExternalStatus = iota
	ExternalTransferring
	ExternalWaiting
	ExternalWaitingForWiFi
	ExternalWaitingForExternalPower
	ExternalWaitingForExternalPowerDueToBatterySaverMode
	ExternalWaitingForNonVoiceBlockingNetwork
	ExternalPaused
	ExternalCompleted
	// ExternalUnknown means the gateway lost track of the request. The
	// underlying handle is no longer usable, so reports carrying it are
	// dropped without touching the job.
	ExternalUnknown
)

// StatusReport is one asynchronous status notification from the gateway.
// ResponseCode is the protocol-level response code, 0 when the transfer
// never reached the remote side.
type StatusReport struct {
	Status       ExternalStatus
	ResponseCode int
	Err          error
}
