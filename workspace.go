package lsp

import "encoding/json"

// WorkspaceEdit is a set of changes to many resources. Changes keeps
// the nil/empty distinction on the wire: a nil map omits the "changes"
// key entirely, an empty map emits {"changes":{}}.
type WorkspaceEdit struct {
	Changes         map[DocumentURI][]TextEdit `json:"changes,omitempty"`
	DocumentChanges *DocumentChanges           `json:"documentChanges,omitempty"`
}

func (e WorkspaceEdit) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 2)
	if e.Changes != nil {
		out["changes"] = e.Changes
	}
	if e.DocumentChanges != nil {
		out["documentChanges"] = e.DocumentChanges
	}
	return json.Marshal(out)
}

// DocumentChanges is either plain text-document edits or a sequence of
// operations that may also create, rename and delete files. The plain
// variant is tried first.
type DocumentChanges struct {
	Edits      *[]TextDocumentEdit
	Operations *[]DocumentChangeOperation
}

func (c DocumentChanges) MarshalJSON() ([]byte, error) {
	if c.Edits != nil {
		return json.Marshal(*c.Edits)
	}
	if c.Operations != nil {
		return json.Marshal(*c.Operations)
	}
	return []byte("null"), nil
}

func (c *DocumentChanges) UnmarshalJSON(data []byte) error {
	*c = DocumentChanges{}
	if jsonKind(data) != '[' {
		return &NoVariantMatchedError{Type: "DocumentChanges"}
	}
	edits := new([]TextDocumentEdit)
	if err := strictUnmarshal(data, edits); err == nil {
		c.Edits = edits
		return nil
	}
	ops := new([]DocumentChangeOperation)
	if err := json.Unmarshal(data, ops); err == nil {
		c.Operations = ops
		return nil
	}
	return &NoVariantMatchedError{Type: "DocumentChanges"}
}

// ResourceOperationKind names the file operations a client supports in
// workspace edits.
type ResourceOperationKind string

const (
	ResourceOperationCreate ResourceOperationKind = "create"
	ResourceOperationRename ResourceOperationKind = "rename"
	ResourceOperationDelete ResourceOperationKind = "delete"
)

// FailureHandlingKind says how a client deals with a workspace edit
// failing halfway through.
type FailureHandlingKind string

const (
	FailureHandlingAbort                 FailureHandlingKind = "abort"
	FailureHandlingTransactional         FailureHandlingKind = "transactional"
	FailureHandlingTextOnlyTransactional FailureHandlingKind = "textOnlyTransactional"
	FailureHandlingUndo                  FailureHandlingKind = "undo"
)

type CreateFileOptions struct {
	Overwrite      bool `json:"overwrite,omitempty"`
	IgnoreIfExists bool `json:"ignoreIfExists,omitempty"`
}

type CreateFile struct {
	Kind    ResourceOperationKind `json:"kind"` // always "create"
	URI     DocumentURI           `json:"uri"`
	Options *CreateFileOptions    `json:"options,omitempty"`
}

type RenameFileOptions struct {
	Overwrite      bool `json:"overwrite,omitempty"`
	IgnoreIfExists bool `json:"ignoreIfExists,omitempty"`
}

type RenameFile struct {
	Kind    ResourceOperationKind `json:"kind"` // always "rename"
	OldURI  DocumentURI           `json:"oldUri"`
	NewURI  DocumentURI           `json:"newUri"`
	Options *RenameFileOptions    `json:"options,omitempty"`
}

type DeleteFileOptions struct {
	Recursive         bool `json:"recursive,omitempty"`
	IgnoreIfNotExists bool `json:"ignoreIfNotExists,omitempty"`
}

type DeleteFile struct {
	Kind    ResourceOperationKind `json:"kind"` // always "delete"
	URI     DocumentURI           `json:"uri"`
	Options *DeleteFileOptions    `json:"options,omitempty"`
}

// DocumentChangeOperation is one entry of an operation sequence: a file
// operation (discriminated by its "kind" key) or a text-document edit.
type DocumentChangeOperation struct {
	Create *CreateFile
	Rename *RenameFile
	Delete *DeleteFile
	Edit   *TextDocumentEdit
}

func (o DocumentChangeOperation) MarshalJSON() ([]byte, error) {
	if o.Create != nil {
		return json.Marshal(*o.Create)
	}
	if o.Rename != nil {
		return json.Marshal(*o.Rename)
	}
	if o.Delete != nil {
		return json.Marshal(*o.Delete)
	}
	if o.Edit != nil {
		return json.Marshal(*o.Edit)
	}
	return []byte("null"), nil
}

func (o *DocumentChangeOperation) UnmarshalJSON(data []byte) error {
	*o = DocumentChangeOperation{}
	var head struct {
		Kind ResourceOperationKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	switch head.Kind {
	case ResourceOperationCreate:
		o.Create = new(CreateFile)
		return json.Unmarshal(data, o.Create)
	case ResourceOperationRename:
		o.Rename = new(RenameFile)
		return json.Unmarshal(data, o.Rename)
	case ResourceOperationDelete:
		o.Delete = new(DeleteFile)
		return json.Unmarshal(data, o.Delete)
	case "":
		edit := new(TextDocumentEdit)
		if err := strictUnmarshal(data, edit); err == nil {
			o.Edit = edit
			return nil
		}
	}
	return &NoVariantMatchedError{Type: "DocumentChangeOperation"}
}

type ApplyWorkspaceEditParams struct {
	Label string        `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

type ApplyWorkspaceEditResponse struct {
	Applied       bool   `json:"applied"`
	FailureReason string `json:"failureReason,omitempty"`
}

type ExecuteCommandParams struct {
	WorkDoneProgressParams
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

type ExecuteCommandOptions struct {
	WorkDoneProgressOptions
	Commands []string `json:"commands"`
}

// DidChangeConfigurationParams carries the client's settings blob. The
// shape is tool-defined, so it stays opaque JSON.
type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings"`
}

// FileChangeType is the kind of a watched-file event.
type FileChangeType int

const (
	FileChangeCreated FileChangeType = 1
	FileChangeChanged FileChangeType = 2
	FileChangeDeleted FileChangeType = 3
)

func (t *FileChangeType) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(FileChangeCreated) || v > int(FileChangeDeleted) {
		return &InvalidEnumValueError{Type: "FileChangeType", Value: v, Expected: "1, 2 or 3"}
	}
	*t = FileChangeType(v)
	return nil
}

type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

// WatchKind is the set of file events a watcher is interested in,
// encoded as OR'd bits.
type WatchKind int

const (
	WatchCreate WatchKind = 1
	WatchChange WatchKind = 2
	WatchDelete WatchKind = 4
)

// Has reports whether all bits of flag are set.
func (k WatchKind) Has(flag WatchKind) bool {
	return k&flag == flag
}

func (k *WatchKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	// Unknown bits are rejected outright, never masked off.
	if v&^int(WatchCreate|WatchChange|WatchDelete) != 0 {
		return &InvalidFlagBitsError{Type: "WatchKind", Value: v}
	}
	*k = WatchKind(v)
	return nil
}

type FileSystemWatcher struct {
	GlobPattern string `json:"globPattern"`
	// Kind defaults to watching all three event types when omitted.
	Kind *WatchKind `json:"kind,omitempty"`
}

type DidChangeWatchedFilesRegistrationOptions struct {
	Watchers []FileSystemWatcher `json:"watchers"`
}

type WorkspaceFolder struct {
	URI  DocumentURI `json:"uri"`
	Name string      `json:"name"`
}

type WorkspaceFoldersChangeEvent struct {
	Added   []WorkspaceFolder `json:"added"`
	Removed []WorkspaceFolder `json:"removed"`
}

type DidChangeWorkspaceFoldersParams struct {
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

type WorkspaceFoldersServerCapabilities struct {
	Supported           bool          `json:"supported,omitempty"`
	ChangeNotifications *BoolOrString `json:"changeNotifications,omitempty"`
}

type WorkspaceEditClientCapabilities struct {
	DocumentChanges    bool                    `json:"documentChanges,omitempty"`
	ResourceOperations []ResourceOperationKind `json:"resourceOperations,omitempty"`
	FailureHandling    *FailureHandlingKind    `json:"failureHandling,omitempty"`
}
