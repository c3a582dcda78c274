// Package network
// Author: theMoor9
//
// Connection management as an explicit state machine. A ConnectionManager
// drives an injected Dialer through Disconnected, Connecting, Connected
// and Failed, retrying with a doubling backoff up to a configured attempt
// budget. It knows nothing about concrete drivers or user interaction;
// failures are returned, never fatal.
package network
