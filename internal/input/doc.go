// Package input provides InputSource implementations for the analysis controller.
package input
