package domain

import "fmt"

// FileNotFoundError indicates the deployment manifest does not exist
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("could not find YAML file at %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// ParseError indicates the manifest could not be decoded or its version field is
// missing or not a semantic version
type ParseError struct {
	Path   string
	Key    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to read version from %s", e.Path)
	if e.Key != "" {
		msg += fmt.Sprintf(" (key %q)", e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidNetworkError indicates a network name outside the supported set
type InvalidNetworkError struct {
	Value string
}

func (e *InvalidNetworkError) Error() string {
	return fmt.Sprintf("invalid network: %q. Must be one of: %s", e.Value, networkNames())
}

// LookupError indicates the network's required version could not be resolved
type LookupError struct {
	Network Network
	Source  string
	Err     error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("failed to resolve required version for %s", e.Network)
	if e.Source != "" {
		msg += " from " + e.Source
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error { return e.Err }
