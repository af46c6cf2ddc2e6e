package backup

// ErrorKind is the closed set of failure categories surfaced by the backup
// codec and the import orchestrator. The first four are produced by Decode;
// InvalidReference and WriteFailed only by import.
type ErrorKind string

const (
	KindInvalidJSON              ErrorKind = "INVALID_JSON"
	KindUnsupportedSchemaVersion ErrorKind = "UNSUPPORTED_SCHEMA_VERSION"
	KindMissingRequiredSection   ErrorKind = "MISSING_REQUIRED_SECTION"
	KindInvalidFieldValue        ErrorKind = "INVALID_FIELD_VALUE"
	KindInvalidReference         ErrorKind = "INVALID_REFERENCE"
	KindWriteFailed              ErrorKind = "WRITE_FAILED"
)

// DecodeError reports why a backup document could not be decoded.
type DecodeError struct {
	Kind   ErrorKind
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

// ImportError reports why an import was rejected or failed to persist. Err
// carries the underlying storage error for WriteFailed kinds.
type ImportError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *ImportError) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func decodeErrf(kind ErrorKind, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Detail: detail}
}
