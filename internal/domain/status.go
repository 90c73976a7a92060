package domain

import (
	"fmt"
	"googleapi-client/internal/platform/apperr"
	"strconv"
)

// Status values returned in the "status" field of Maps and Places responses.
type Status string

const (
	StatusOK                   Status = "OK"
	StatusZeroResults          Status = "ZERO_RESULTS"
	StatusNotFound             Status = "NOT_FOUND"
	StatusOverQueryLimit       Status = "OVER_QUERY_LIMIT"
	StatusOverDailyLimit       Status = "OVER_DAILY_LIMIT"
	StatusRequestDenied        Status = "REQUEST_DENIED"
	StatusInvalidRequest       Status = "INVALID_REQUEST"
	StatusMaxWaypointsExceeded Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusMaxRouteLengthExceed Status = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusUnknownError         Status = "UNKNOWN_ERROR"
)

// MapsStatus is embedded by responses of the legacy Maps/Places web services.
type MapsStatus struct {
	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Succeeded reports whether the status denotes a usable answer.
// ZERO_RESULTS is a valid, empty answer.
func (s MapsStatus) Succeeded() bool {
	return s.Status == StatusOK || s.Status == StatusZeroResults
}

// ErrorObject is the error envelope of the newer Google APIs
// (Roads, Geolocation, Custom Search, YouTube, Translate).
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

type APIError struct {
	Error *ErrorObject `json:"error,omitempty"`
}

// Err converts a failed status into an apperr.KindAPIStatus error.
func (s MapsStatus) Err() error {
	if s.Succeeded() {
		return nil
	}

	msg := string(s.Status)
	if s.ErrorMessage != "" {
		msg += ": " + s.ErrorMessage
	}
	return apperr.New(apperr.KindAPIStatus, msg).WithStatus(string(s.Status))
}

// Err converts a populated error envelope into an apperr.KindAPIStatus error.
func (a APIError) Err() error {
	if a.Error == nil {
		return nil
	}

	status := a.Error.Status
	if status == "" {
		status = strconv.Itoa(a.Error.Code)
	}
	return apperr.New(apperr.KindAPIStatus, fmt.Sprintf("%s: %s", status, a.Error.Message)).WithStatus(status)
}
