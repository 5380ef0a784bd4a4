package lsp

import "encoding/json"

// CodeActionKind is a hierarchical, dot-separated identifier such as
// "refactor.extract.function". The set is open.
type CodeActionKind string

const (
	Empty                 CodeActionKind = ""
	QuickFix              CodeActionKind = "quickfix"
	Refactor              CodeActionKind = "refactor"
	RefactorExtract       CodeActionKind = "refactor.extract"
	RefactorInline        CodeActionKind = "refactor.inline"
	RefactorRewrite       CodeActionKind = "refactor.rewrite"
	Source                CodeActionKind = "source"
	SourceOrganizeImports CodeActionKind = "source.organizeImports"
)

type CodeActionContext struct {
	Diagnostics []Diagnostic     `json:"diagnostics"`
	Only        []CodeActionKind `json:"only,omitempty"`
}

type CodeActionParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeAction is a change or command that can be applied to code.
type CodeAction struct {
	Title       string          `json:"title"`
	Kind        *CodeActionKind `json:"kind,omitempty"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
	IsPreferred bool            `json:"isPreferred,omitempty"`
	Edit        *WorkspaceEdit  `json:"edit,omitempty"`
	Command     *Command        `json:"command,omitempty"`
}

// CodeActionOrCommand is a bare command or a code action literal. The
// command variant is tried first; a command's "command" key is a
// string, a code action's is an object, so the shapes never collide.
type CodeActionOrCommand struct {
	Command *Command
	Action  *CodeAction
}

func (c CodeActionOrCommand) MarshalJSON() ([]byte, error) {
	if c.Command != nil {
		return json.Marshal(*c.Command)
	}
	if c.Action != nil {
		return json.Marshal(*c.Action)
	}
	return []byte("null"), nil
}

func (c *CodeActionOrCommand) UnmarshalJSON(data []byte) error {
	*c = CodeActionOrCommand{}
	if jsonKind(data) != '{' {
		return &NoVariantMatchedError{Type: "CodeActionOrCommand"}
	}
	// The command key is required on the command variant; without the
	// check a bare {"title": ...} would never reach the action variant.
	cmd := new(Command)
	if err := strictUnmarshal(data, cmd); err == nil && cmd.Command != "" {
		c.Command = cmd
		return nil
	}
	action := new(CodeAction)
	if err := strictUnmarshal(data, action); err == nil {
		c.Action = action
		return nil
	}
	return &NoVariantMatchedError{Type: "CodeActionOrCommand"}
}

type CodeActionResponse []CodeActionOrCommand

type CodeActionOptions struct {
	WorkDoneProgressOptions
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`
}

type CodeActionKindCapability struct {
	ValueSet []CodeActionKind `json:"valueSet"`
}

type CodeActionLiteralSupport struct {
	CodeActionKind CodeActionKindCapability `json:"codeActionKind"`
}

type CodeActionClientCapabilities struct {
	DynamicRegistration      bool                      `json:"dynamicRegistration,omitempty"`
	CodeActionLiteralSupport *CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`
	IsPreferredSupport       bool                      `json:"isPreferredSupport,omitempty"`
}
