// Package timezone pins every wall-clock and calendar-date computation to the
// application timezone configured through APP_TIMEZONE (IANA names such as
// "UTC" or "Europe/London"). It falls back to UTC when the variable is unset
// or unknown.
//
// Booking dates are calendar days; ParseDate returns midnight of that day in
// the application location so that ranges compare consistently.
package timezone
