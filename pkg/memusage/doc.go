// Package memusage provides an advisory view of the current process's memory
// footprint for diagnostic logging.
//
// It answers one question: is resident memory above a caller-chosen
// threshold? LogIfAbove emits a structured warning when it is and a debug
// line when it is not, and never takes corrective action.
//
//	memusage.LogIfAbove(log, 512) // warn above 512 MB RSS
package memusage
