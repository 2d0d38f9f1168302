// Package calendar lists today's events through the gcalcli command.
//
// The section is unavailable, not failed, when gcalcli is not on PATH.
package calendar
