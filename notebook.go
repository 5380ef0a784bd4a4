package lsp

import "encoding/json"

// NotebookCellKind is the kind of a notebook cell.
type NotebookCellKind int

const (
	// NotebookCellKindMarkup is formatted source used for display.
	NotebookCellKindMarkup NotebookCellKind = 1
	// NotebookCellKindCode is source code.
	NotebookCellKindCode NotebookCellKind = 2
)

func (k *NotebookCellKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(NotebookCellKindMarkup) || v > int(NotebookCellKindCode) {
		return &InvalidEnumValueError{Type: "NotebookCellKind", Value: v, Expected: "1 or 2"}
	}
	*k = NotebookCellKind(v)
	return nil
}

// NotebookDocument is a notebook and its cells. Cell documents live in
// their own text documents, identified per cell.
type NotebookDocument struct {
	URI          DocumentURI     `json:"uri"`
	NotebookType string          `json:"notebookType"`
	Version      int             `json:"version"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	Cells        []NotebookCell  `json:"cells"`
}

// NotebookCell points at the text document holding the cell's content.
// A cell's document URI is unique across all notebooks.
type NotebookCell struct {
	Kind             NotebookCellKind  `json:"kind"`
	Document         DocumentURI       `json:"document"`
	Metadata         json.RawMessage   `json:"metadata,omitempty"`
	ExecutionSummary *ExecutionSummary `json:"executionSummary,omitempty"`
}

// ExecutionSummary records where a cell sits in its notebook's execution
// order and whether the run succeeded, if the client knows.
type ExecutionSummary struct {
	ExecutionOrder int   `json:"executionOrder"`
	Success        *bool `json:"success,omitempty"`
}

type NotebookDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

type VersionedNotebookDocumentIdentifier struct {
	Version int         `json:"version"`
	URI     DocumentURI `json:"uri"`
}

// NotebookDocumentFilter matches notebooks by type, URI scheme or glob
// pattern. At least one property must be set.
type NotebookDocumentFilter struct {
	NotebookType string `json:"notebookType,omitempty"`
	Scheme       string `json:"scheme,omitempty"`
	Pattern      string `json:"pattern,omitempty"`
}

// NotebookFilter is either a notebook type ("*" matches every notebook)
// or a structured filter. The string variant is tried first.
type NotebookFilter struct {
	Type   *string
	Filter *NotebookDocumentFilter
}

func (f NotebookFilter) MarshalJSON() ([]byte, error) {
	if f.Type != nil {
		return json.Marshal(*f.Type)
	}
	if f.Filter != nil {
		return json.Marshal(*f.Filter)
	}
	return []byte("null"), nil
}

func (f *NotebookFilter) UnmarshalJSON(data []byte) error {
	*f = NotebookFilter{}
	switch jsonKind(data) {
	case '"':
		f.Type = new(string)
		return json.Unmarshal(data, f.Type)
	case '{':
		f.Filter = new(NotebookDocumentFilter)
		return strictUnmarshal(data, f.Filter)
	}
	return &NoVariantMatchedError{Type: "NotebookFilter"}
}

type NotebookCellSelector struct {
	Language string `json:"language"`
}

// NotebookSelector picks the notebooks and cells to sync. At least one
// of Notebook and Cells must be set; a selector with only a notebook
// filter syncs every cell of matching notebooks, one with only cell
// selectors syncs every notebook containing a matching cell.
type NotebookSelector struct {
	Notebook *NotebookFilter        `json:"notebook,omitempty"`
	Cells    []NotebookCellSelector `json:"cells,omitempty"`
}

type NotebookDocumentSyncOptions struct {
	NotebookSelector []NotebookSelector `json:"notebookSelector"`
	Save             bool               `json:"save,omitempty"`
}

type NotebookDocumentSyncRegistrationOptions struct {
	NotebookDocumentSyncOptions
	StaticRegistrationOptions
}

// NotebookDocumentSyncServerCapabilities is either plain sync options
// or registration options carrying an id. The plain variant is tried
// first.
type NotebookDocumentSyncServerCapabilities struct {
	Options             *NotebookDocumentSyncOptions
	RegistrationOptions *NotebookDocumentSyncRegistrationOptions
}

func (c NotebookDocumentSyncServerCapabilities) MarshalJSON() ([]byte, error) {
	if c.Options != nil {
		return json.Marshal(*c.Options)
	}
	if c.RegistrationOptions != nil {
		return json.Marshal(*c.RegistrationOptions)
	}
	return []byte("null"), nil
}

func (c *NotebookDocumentSyncServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = NotebookDocumentSyncServerCapabilities{}
	if jsonKind(data) != '{' {
		return &NoVariantMatchedError{Type: "NotebookDocumentSyncServerCapabilities"}
	}
	opts := new(NotebookDocumentSyncOptions)
	if err := strictUnmarshal(data, opts); err == nil {
		c.Options = opts
		return nil
	}
	reg := new(NotebookDocumentSyncRegistrationOptions)
	if err := strictUnmarshal(data, reg); err == nil {
		c.RegistrationOptions = reg
		return nil
	}
	return &NoVariantMatchedError{Type: "NotebookDocumentSyncServerCapabilities"}
}

type NotebookDocumentSyncClientCapabilities struct {
	DynamicRegistration    bool `json:"dynamicRegistration,omitempty"`
	ExecutionSummaryReport bool `json:"executionSummaryReport,omitempty"`
}

type NotebookDocumentClientCapabilities struct {
	Synchronization NotebookDocumentSyncClientCapabilities `json:"synchronization"`
}

type DidOpenNotebookDocumentParams struct {
	NotebookDocument NotebookDocument `json:"notebookDocument"`
	// CellTextDocuments holds the text documents backing the cells.
	CellTextDocuments []TextDocumentItem `json:"cellTextDocuments"`
}

// DidChangeNotebookDocumentParams moves a notebook, its cells and the
// cell text documents from one state to the next; the version on the
// identifier is the version after all changes are applied.
type DidChangeNotebookDocumentParams struct {
	NotebookDocument VersionedNotebookDocumentIdentifier `json:"notebookDocument"`
	Change           NotebookDocumentChangeEvent         `json:"change"`
}

type NotebookDocumentChangeEvent struct {
	Metadata json.RawMessage             `json:"metadata,omitempty"`
	Cells    *NotebookDocumentCellChange `json:"cells,omitempty"`
}

type NotebookDocumentCellChange struct {
	Structure *NotebookDocumentCellChangeStructure `json:"structure,omitempty"`
	// Data carries changed cell properties (kind, metadata, execution
	// summary), not cell content.
	Data        []NotebookCell                      `json:"data,omitempty"`
	TextContent []NotebookDocumentChangeTextContent `json:"textContent,omitempty"`
}

type NotebookDocumentCellChangeStructure struct {
	Array    NotebookCellArrayChange  `json:"array"`
	DidOpen  []TextDocumentItem       `json:"didOpen,omitempty"`
	DidClose []TextDocumentIdentifier `json:"didClose,omitempty"`
}

// NotebookCellArrayChange splices Cells over DeleteCount cells starting
// at Start.
type NotebookCellArrayChange struct {
	Start       int            `json:"start"`
	DeleteCount int            `json:"deleteCount"`
	Cells       []NotebookCell `json:"cells,omitempty"`
}

type NotebookDocumentChangeTextContent struct {
	Document VersionedTextDocumentIdentifier  `json:"document"`
	Changes  []TextDocumentContentChangeEvent `json:"changes"`
}

type DidSaveNotebookDocumentParams struct {
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
}

type DidCloseNotebookDocumentParams struct {
	NotebookDocument  NotebookDocumentIdentifier `json:"notebookDocument"`
	CellTextDocuments []TextDocumentIdentifier   `json:"cellTextDocuments"`
}
