// Package integration holds tests that cross foundation module boundaries.
//
// Package: integration
// Title: mdwkit Foundation Integration Tests
// Description: Verifies that config, valuex, stringx, filex and the error and
//              log packages agree on data and error conventions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of integration test suite
// - 2026-10-19 v0.2.0: Suite rebuilt around the text and value modules
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - configuration trees handed out as independent copies
// - documents read from disk, cloned, edited and written back
// - text operations driven by configured values
//
// Error Integration Tests (error_integration_test.go):
// - error codes surviving wraps across module boundaries
// - exit status and log level derived from one error value
//
// Run with:
//
//	go test ./foundation/test/integration/...
package integration
