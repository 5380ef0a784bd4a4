package lsp

import "encoding/json"

// CompletionTriggerKind says how a completion request was started.
type CompletionTriggerKind int

const (
	CompletionInvoked                         CompletionTriggerKind = 1
	CompletionTriggerCharacter                CompletionTriggerKind = 2
	CompletionTriggerForIncompleteCompletions CompletionTriggerKind = 3
)

func (k *CompletionTriggerKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(CompletionInvoked) || v > int(CompletionTriggerForIncompleteCompletions) {
		return &InvalidEnumValueError{Type: "CompletionTriggerKind", Value: v, Expected: "1, 2 or 3"}
	}
	*k = CompletionTriggerKind(v)
	return nil
}

// CompletionItemKind is the kind of a completion entry.
type CompletionItemKind int

const (
	TextCompletion          CompletionItemKind = 1
	MethodCompletion        CompletionItemKind = 2
	FunctionCompletion      CompletionItemKind = 3
	ConstructorCompletion   CompletionItemKind = 4
	FieldCompletion         CompletionItemKind = 5
	VariableCompletion      CompletionItemKind = 6
	ClassCompletion         CompletionItemKind = 7
	InterfaceCompletion     CompletionItemKind = 8
	ModuleCompletion        CompletionItemKind = 9
	PropertyCompletion      CompletionItemKind = 10
	UnitCompletion          CompletionItemKind = 11
	ValueCompletion         CompletionItemKind = 12
	EnumCompletion          CompletionItemKind = 13
	KeywordCompletion       CompletionItemKind = 14
	SnippetCompletion       CompletionItemKind = 15
	ColorCompletion         CompletionItemKind = 16
	FileCompletion          CompletionItemKind = 17
	ReferenceCompletion     CompletionItemKind = 18
	FolderCompletion        CompletionItemKind = 19
	EnumMemberCompletion    CompletionItemKind = 20
	ConstantCompletion      CompletionItemKind = 21
	StructCompletion        CompletionItemKind = 22
	EventCompletion         CompletionItemKind = 23
	OperatorCompletion      CompletionItemKind = 24
	TypeParameterCompletion CompletionItemKind = 25
)

func (k *CompletionItemKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(TextCompletion) || v > int(TypeParameterCompletion) {
		return &InvalidEnumValueError{Type: "CompletionItemKind", Value: v, Expected: "a value between 1 and 25"}
	}
	*k = CompletionItemKind(v)
	return nil
}

// CompletionItemTag adds extra rendering hints to a completion item.
type CompletionItemTag int

const (
	CompletionItemTagDeprecated CompletionItemTag = 1
)

func (t *CompletionItemTag) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v != int(CompletionItemTagDeprecated) {
		return &InvalidEnumValueError{Type: "CompletionItemTag", Value: v, Expected: "1"}
	}
	*t = CompletionItemTag(v)
	return nil
}

// InsertTextFormat says whether an insert text is plain text or a
// snippet.
type InsertTextFormat int

const (
	PlainTextTextFormat InsertTextFormat = 1
	SnippetTextFormat   InsertTextFormat = 2
)

func (f *InsertTextFormat) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(PlainTextTextFormat) || v > int(SnippetTextFormat) {
		return &InvalidEnumValueError{Type: "InsertTextFormat", Value: v, Expected: "1 or 2"}
	}
	*f = InsertTextFormat(v)
	return nil
}

type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter string                `json:"triggerCharacter,omitempty"`
}

type CompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context *CompletionContext `json:"context,omitempty"`
}

type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// Documentation is either a plain string or markup content.
type Documentation struct {
	Str    *string
	Markup *MarkupContent
}

func (d Documentation) MarshalJSON() ([]byte, error) {
	if d.Str != nil {
		return json.Marshal(*d.Str)
	}
	if d.Markup != nil {
		return json.Marshal(*d.Markup)
	}
	return []byte("null"), nil
}

func (d *Documentation) UnmarshalJSON(data []byte) error {
	*d = Documentation{}
	switch jsonKind(data) {
	case '"':
		d.Str = new(string)
		return json.Unmarshal(data, d.Str)
	case '{':
		d.Markup = new(MarkupContent)
		return strictUnmarshal(data, d.Markup)
	}
	return &NoVariantMatchedError{Type: "Documentation"}
}

// InsertReplaceEdit is an edit with separate ranges for inserting and
// for replacing existing text.
type InsertReplaceEdit struct {
	NewText string `json:"newText"`
	Insert  Range  `json:"insert"`
	Replace Range  `json:"replace"`
}

// CompletionTextEdit is either a plain text edit or an insert/replace
// edit. The plain variant is tried first.
type CompletionTextEdit struct {
	Edit        *TextEdit
	ReplaceEdit *InsertReplaceEdit
}

func (e CompletionTextEdit) MarshalJSON() ([]byte, error) {
	if e.Edit != nil {
		return json.Marshal(*e.Edit)
	}
	if e.ReplaceEdit != nil {
		return json.Marshal(*e.ReplaceEdit)
	}
	return []byte("null"), nil
}

func (e *CompletionTextEdit) UnmarshalJSON(data []byte) error {
	*e = CompletionTextEdit{}
	edit := new(TextEdit)
	if err := strictUnmarshal(data, edit); err == nil {
		e.Edit = edit
		return nil
	}
	replace := new(InsertReplaceEdit)
	if err := strictUnmarshal(data, replace); err == nil {
		e.ReplaceEdit = replace
		return nil
	}
	return &NoVariantMatchedError{Type: "CompletionTextEdit"}
}

// CompletionItem is one completion proposal. Absent optional fields
// have documented fallbacks; most notably a falsy insertText falls back
// to the label.
type CompletionItem struct {
	Label               string              `json:"label"`
	Kind                *CompletionItemKind `json:"kind,omitempty"`
	Tags                []CompletionItemTag `json:"tags,omitempty"`
	Detail              string              `json:"detail,omitempty"`
	Documentation       *Documentation      `json:"documentation,omitempty"`
	Deprecated          bool                `json:"deprecated,omitempty"`
	Preselect           bool                `json:"preselect,omitempty"`
	SortText            string              `json:"sortText,omitempty"`
	FilterText          string              `json:"filterText,omitempty"`
	InsertText          string              `json:"insertText,omitempty"`
	InsertTextFormat    *InsertTextFormat   `json:"insertTextFormat,omitempty"`
	TextEdit            *CompletionTextEdit `json:"textEdit,omitempty"`
	AdditionalTextEdits []TextEdit          `json:"additionalTextEdits,omitempty"`
	CommitCharacters    []string            `json:"commitCharacters,omitempty"`
	Command             *Command            `json:"command,omitempty"`
	Data                json.RawMessage     `json:"data,omitempty"`
}

// CompletionResponse is either a bare item array or a completion list.
// The array variant is tried first.
type CompletionResponse struct {
	Items *[]CompletionItem
	List  *CompletionList
}

func (r CompletionResponse) MarshalJSON() ([]byte, error) {
	if r.Items != nil {
		return json.Marshal(*r.Items)
	}
	if r.List != nil {
		return json.Marshal(*r.List)
	}
	return []byte("null"), nil
}

func (r *CompletionResponse) UnmarshalJSON(data []byte) error {
	*r = CompletionResponse{}
	switch jsonKind(data) {
	case '[':
		r.Items = new([]CompletionItem)
		return json.Unmarshal(data, r.Items)
	case '{':
		r.List = new(CompletionList)
		return strictUnmarshal(data, r.List)
	}
	return &NoVariantMatchedError{Type: "CompletionResponse"}
}

type CompletionOptions struct {
	WorkDoneProgressOptions
	ResolveProvider     bool     `json:"resolveProvider,omitempty"`
	TriggerCharacters   []string `json:"triggerCharacters,omitempty"`
	AllCommitCharacters []string `json:"allCommitCharacters,omitempty"`
}

type CompletionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CompletionOptions
}

// CompletionItemCapability describes completion-item features the
// client understands. TagSupport accepts both the historical boolean
// form and the structured form.
type CompletionItemCapability struct {
	SnippetSupport          bool                           `json:"snippetSupport,omitempty"`
	CommitCharactersSupport bool                           `json:"commitCharactersSupport,omitempty"`
	DocumentationFormat     []MarkupKind                   `json:"documentationFormat,omitempty"`
	DeprecatedSupport       bool                           `json:"deprecatedSupport,omitempty"`
	PreselectSupport        bool                           `json:"preselectSupport,omitempty"`
	TagSupport              *TagSupport[CompletionItemTag] `json:"tagSupport,omitempty"`
	InsertReplaceSupport    bool                           `json:"insertReplaceSupport,omitempty"`
	ResolveSupport          *ResolveSupportCapability      `json:"resolveSupport,omitempty"`
}

func (c *CompletionItemCapability) UnmarshalJSON(data []byte) error {
	type alias CompletionItemCapability
	aux := struct {
		*alias
		TagSupport json.RawMessage `json:"tagSupport"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeTagSupport[CompletionItemTag](aux.TagSupport)
	if err != nil {
		return err
	}
	c.TagSupport = ts
	return nil
}

// ResolveSupportCapability lists item properties a client can resolve
// lazily.
type ResolveSupportCapability struct {
	Properties []string `json:"properties"`
}

type CompletionItemKindCapability struct {
	ValueSet []CompletionItemKind `json:"valueSet,omitempty"`
}

type CompletionClientCapabilities struct {
	DynamicRegistration bool                          `json:"dynamicRegistration,omitempty"`
	CompletionItem      *CompletionItemCapability     `json:"completionItem,omitempty"`
	CompletionItemKind  *CompletionItemKindCapability `json:"completionItemKind,omitempty"`
	ContextSupport      bool                          `json:"contextSupport,omitempty"`
}
