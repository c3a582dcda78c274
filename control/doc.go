// Package control
// Author: theMoor9
//
// Runtime configuration snapshots and metrics for the SolidArx framework.
// The facade publishes the resolved sizing view and allocation counters
// here so operators can observe the memory core without touching it.
package control
