package lsp

import "encoding/json"

// TraceValue is the verbosity of server tracing.
type TraceValue string

const (
	TraceOff      TraceValue = "off"
	TraceMessages TraceValue = "messages"
	TraceVerbose  TraceValue = "verbose"
)

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// InitializeParams is the first request of a session. RootURI is
// emitted even when null; the protocol treats an explicit null and an
// omitted value differently from the other optional fields here, so
// the field carries no omitempty.
type InitializeParams struct {
	WorkDoneProgressParams
	ProcessID             *int               `json:"processId"`
	ClientInfo            *ClientInfo        `json:"clientInfo,omitempty"`
	RootPath              *string            `json:"rootPath,omitempty"`
	RootURI               *DocumentURI       `json:"rootUri"`
	InitializationOptions json.RawMessage    `json:"initializationOptions,omitempty"`
	Capabilities          ClientCapabilities `json:"capabilities"`
	Trace                 TraceValue         `json:"trace,omitempty"`
	WorkspaceFolders      []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

// InitializeError is the error data of a failed initialize request.
type InitializeError struct {
	Retry bool `json:"retry"`
}

type InitializedParams struct{}

type CancelParams struct {
	ID IntOrString `json:"id"`
}

// Registration dynamically registers a capability; RegisterOptions is
// method-specific.
type Registration struct {
	ID              string          `json:"id"`
	Method          string          `json:"method"`
	RegisterOptions json.RawMessage `json:"registerOptions,omitempty"`
}

type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}

type Unregistration struct {
	ID     string `json:"id"`
	Method string `json:"method"`
}

type UnregistrationParams struct {
	// The protocol misspells this key; it is kept for compatibility.
	Unregisterations []Unregistration `json:"unregisterations"`
}
