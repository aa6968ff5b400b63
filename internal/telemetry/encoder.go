// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package telemetry formats hand articulation data into the plain
// text wire format and broadcasts it as UDP datagrams.
package telemetry

import (
	"fmt"
	"strings"

	"github.com/relabs-tech/hand_computer/internal/orientation"
)

// WristLine formats a wrist message: side tag, position, then raw
// quaternion, all at 3 decimal places.
func WristLine(side string, pos orientation.Vec3, q orientation.Quaternion) string {
	return fmt.Sprintf("%s wrist:, %.3f, %.3f, %.3f, %.3f, %.3f, %.3f, %.3f",
		side, pos.X, pos.Y, pos.Z, q.X, q.Y, q.Z, q.W)
}

// HandLine formats an angle message: side tag, then the 16 joint
// angles in frame order at 1 decimal place.
func HandLine(side string, angles [16]float64) string {
	var b strings.Builder
	b.WriteString(side)
	b.WriteString(" hand:")
	for _, a := range angles {
		fmt.Fprintf(&b, ", %.1f", a)
	}
	return b.String()
}

// PoseLine formats a pose-change message with the lower-case state
// name.
func PoseLine(state string) string {
	return "Fist: " + state
}
