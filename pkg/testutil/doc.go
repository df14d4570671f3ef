// Package testutil provides helpers shared by docmap tests: temporary files,
// environment isolation and log capture.
package testutil
