package domain

import (
	stderrors "errors"
	"fmt"

	"transfer-lab/errors"
)

// Reclassify maps a transient gateway status onto the application status.
// The boolean is false when the report must not produce any transition
// (the gateway lost track of the request).
//
// A Waiting report is split by response-code band: a 5xx code means the
// remote rejected the attempt and the gateway is backing off before a retry.
func Reclassify(ext ExternalStatus, responseCode int) (Status, bool) {
	switch ext {
	case ExternalNone:
		return StatusNone, true
	case ExternalTransferring:
		return StatusTransferring, true
	case ExternalPaused:
		return StatusPaused, true
	case ExternalWaiting:
		if responseCode >= 500 && responseCode <= 599 {
			return StatusWaitingForRetry, true
		}
		return StatusWaiting, true
	case ExternalWaitingForExternalPower:
		return StatusWaitingForExternalPower, true
	case ExternalWaitingForExternalPowerDueToBatterySaverMode:
		return StatusWaitingForExternalPowerDueToBatterySaverMode, true
	case ExternalWaitingForNonVoiceBlockingNetwork:
		return StatusWaitingForNonVoiceBlockingNetwork, true
	case ExternalWaitingForWiFi:
		// Matches the shipped mapping: a WiFi-gated transfer drops back to
		// None instead of a dedicated waiting state. See DESIGN.md.
		return StatusNone, true
	case ExternalUnknown:
		return StatusNone, false
	default:
		return StatusNone, false
	}
}

// ClassifyTerminal resolves a Completed gateway report into the final job
// status. The gateway folds success and failure into one terminal report;
// the split is ours, driven by the carried error and the response code.
//
// Success codes outside 200/206 have no defined handling: the gateway is
// assumed to resolve redirects internally, so reaching this path means an
// assumption broke. We fail loudly instead of guessing.
func ClassifyTerminal(responseCode int, err error) Status {
	if err == nil {
		switch {
		case responseCode == 200 || responseCode == 206:
			return StatusCompleted
		case responseCode >= 200 && responseCode < 400:
			panic(fmt.Sprintf("no defined handling for success status code %d", responseCode))
		}
	}

	if stderrors.Is(err, errors.ErrRequestRemoved) {
		return StatusCanceled
	}

	switch {
	case responseCode >= 400 && responseCode <= 499:
		return StatusFailed
	case responseCode >= 500 && responseCode <= 599:
		return StatusFailedServer
	default:
		// Includes code 0: the transfer never started (e.g. malformed URI).
		return StatusFailed
	}
}
