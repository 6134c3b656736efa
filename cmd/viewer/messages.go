package main

import "github.com/rxtech-lab/argo-kline/internal/types"

// ChartComputedMsg carries the payload of a finished chart pass.
type ChartComputedMsg struct {
	Seq     int
	Payload types.OptionList
}

// ComputeErrorMsg indicates a failed chart pass.
type ComputeErrorMsg struct {
	Seq int
	Err error
}
