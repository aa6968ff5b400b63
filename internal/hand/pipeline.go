// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package hand

import (
	"github.com/relabs-tech/hand_computer/internal/logsink"
	"github.com/relabs-tech/hand_computer/internal/telemetry"
	"github.com/relabs-tech/hand_computer/internal/tracking"
)

// DefaultMinInterval is the minimum time between processed passes,
// in seconds. Upstream tracking callbacks may fire faster than we
// want to send.
const DefaultMinInterval = 0.01

// gate throttles pipeline passes: accumulate elapsed time, allow one
// pass when the minimum interval is reached.
type gate struct {
	interval float64
	accum    float64
}

func (g *gate) tick(dt float64) bool {
	g.accum += dt
	if g.accum < g.interval {
		return false
	}
	g.accum = 0
	return true
}

// Result is what one processed pass produced, for consumers that
// want the values beyond the datagram stream (MQTT, web).
type Result struct {
	Wrist        *Wrist
	Frame        *Frame
	State        State
	StateChanged bool
}

// Pipeline is the per-hand processing chain: scheduler gate, angle
// and wrist extraction, telemetry encoding and broadcast, and the
// debounced fist classification.
//
// Process is invoked synchronously from a caller-owned loop, one
// call per tracking update. It never blocks, never panics through,
// and never lets an error escape; all failures go to the sink.
type Pipeline struct {
	provider   tracking.Provider
	extractor  *Extractor
	classifier *Classifier
	anglesOut  *telemetry.Broadcaster
	poseOut    *telemetry.Broadcaster
	sink       logsink.Sink
	gate       gate
	closed     bool
}

// NewPipeline assembles a pipeline. anglesOut carries wrist and hand
// messages (fail-open); poseOut carries pose change messages
// (fail-stop). The pipeline takes ownership of both broadcasters.
func NewPipeline(provider tracking.Provider, extractor *Extractor, classifier *Classifier,
	anglesOut, poseOut *telemetry.Broadcaster, minInterval float64, sink logsink.Sink) *Pipeline {
	return &Pipeline{
		provider:   provider,
		extractor:  extractor,
		classifier: classifier,
		anglesOut:  anglesOut,
		poseOut:    poseOut,
		sink:       sink,
		gate:       gate{interval: minInterval},
	}
}

// Process runs one pipeline pass. dt is the elapsed time since the
// previous call in seconds. Returns nil when the gate suppressed the
// pass or the pipeline is closed.
func (p *Pipeline) Process(dt float64) *Result {
	if p.closed || !p.gate.tick(dt) {
		return nil
	}

	side := p.provider.Side()

	if !p.provider.Tracked() {
		p.sink.Logf("hand pipeline", "%s hand not tracked, skipping pass", side)
		return p.observe(StateNotTracked)
	}

	joints, err := p.provider.Joints()
	if err != nil {
		p.sink.Logf("hand pipeline", "%s joint retrieval failed: %v", side, err)
		return p.observe(StateError)
	}

	res := &Result{State: p.classifier.Last()}

	if root, err := p.provider.Root(); err != nil {
		p.sink.Logf("hand pipeline", "%s root pose failed: %v", side, err)
	} else if wrist, err := p.extractor.Wrist(&root); err == nil {
		res.Wrist = &wrist
		p.anglesOut.Send(telemetry.WristLine(side, wrist.Position, wrist.Orientation))
	}

	frame, err := p.extractor.Frame(joints)
	if err != nil {
		// logged by the extractor; no partial frame, no classification
		return res
	}
	res.Frame = &frame
	p.anglesOut.Send(telemetry.HandLine(side, frame.Values()))

	state := p.classifier.Classify(frame.PrimaryFlexions())
	res.State = state
	res.StateChanged = p.classifier.Observe(state)
	if res.StateChanged {
		p.poseOut.Send(telemetry.PoseLine(state.String()))
	}

	return res
}

// observe routes a non-extraction state (untracked, error) through
// the classifier's edge detection and emits on change.
func (p *Pipeline) observe(s State) *Result {
	changed := p.classifier.Observe(s)
	if changed {
		p.poseOut.Send(telemetry.PoseLine(s.String()))
	}
	return &Result{State: s, StateChanged: changed}
}

// Close releases both transport handles. Safe to call more than
// once, including on a partially initialized pipeline.
func (p *Pipeline) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var first error
	if p.anglesOut != nil {
		first = p.anglesOut.Close()
	}
	if p.poseOut != nil {
		if err := p.poseOut.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
