// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the fluent ErrorBuilder and the standard constructors
//              every mdwkit module uses for rejected calls.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: InvalidArgument and UnsupportedStructure constructors

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	code := eb.code
	if code == "" {
		code = getModuleErrorCode(eb.module, eb.operation)
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithDetails(eb.details).WithDetail("module", eb.module)
	if eb.operation != "" {
		err = err.WithDetail("operation", eb.operation).
			WithOperation(eb.module + "." + eb.operation)
	}

	// severity goes last so WithCode cannot override a builder choice
	return err.WithCode(code).WithSeverity(eb.severity)
}

// InvalidArgument reports an argument outside a function's documented domain
func InvalidArgument(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// UnsupportedStructure reports input a structural operation cannot handle,
// such as a cycle or a value that is not plain data.
func UnsupportedStructure(module, operation, path, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("unsupported structure at %s: %s", path, reason).
		Code(mdwerror.CodeUnsupportedStructure).
		Detail("path", path).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, cause error, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid %s input", expectedFormat).
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, code mdwerror.Code, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(code).
		Severity(mdwerror.GetSeverityFromCode(code)).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

func detailString(err error, key string) string {
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		return ""
	}
	s, _ := mdwErr.Details()[key].(string)
	return s
}
