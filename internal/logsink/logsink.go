// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package logsink provides the tagged log collector that pipeline
// components report failures through. The sink is injected, not a
// process-wide singleton, so tests can inspect what each component
// reported.
package logsink

import (
	"fmt"
	"log"
	"sync"
)

// Sink accepts tagged text messages. Messages with the same source
// tag are retained in append order.
type Sink interface {
	Log(source, message string)
	Logf(source, format string, args ...any)
}

// Collector is an in-memory Sink with per-tag retrieval. Safe for
// concurrent use; MQTT callbacks and the pipeline share one instance.
type Collector struct {
	mu      sync.Mutex
	entries map[string][]string
	echo    bool
}

// NewCollector creates a Collector. With echo set, every message is
// also written to the standard logger.
func NewCollector(echo bool) *Collector {
	return &Collector{
		entries: make(map[string][]string),
		echo:    echo,
	}
}

func (c *Collector) Log(source, message string) {
	c.mu.Lock()
	c.entries[source] = append(c.entries[source], message)
	c.mu.Unlock()

	if c.echo {
		log.Printf("%s: %s", source, message)
	}
}

func (c *Collector) Logf(source, format string, args ...any) {
	c.Log(source, fmt.Sprintf(format, args...))
}

// Get returns a copy of all messages logged under source, in append
// order.
func (c *Collector) Get(source string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := c.entries[source]
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Log(string, string)          {}
func (Nop) Logf(string, string, ...any) {}
