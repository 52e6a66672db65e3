// Package config provides configuration structures and utilities for spamscan.
// It defines the options of the classification client, the local service,
// the spam filter rules and report generation preferences.
package config
