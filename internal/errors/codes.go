package errors

// Error codes for the sequent toolchain.
// These codes are used in diagnostics and by the language server so that the
// same problem is reported with the same identifier everywhere.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors

const (
	// E0100: A token that cannot start or continue the current construct
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended in the middle of a definition
	ErrorUnexpectedEOF = "E0101"

	// E0102: Malformed token (unterminated string, literal out of range, stray character)
	ErrorLexical = "E0102"

	// E0900: Source file could not be read
	ErrorReadFile = "E0900"

	// E0901: Invalid .sequent.yaml configuration
	ErrorConfig = "E0901"
)

// GetErrorDescription returns a human-readable description of an error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Unexpected token"
	case ErrorUnexpectedEOF:
		return "Unexpected end of file"
	case ErrorLexical:
		return "Malformed token"
	case ErrorReadFile:
		return "Source file could not be read"
	case ErrorConfig:
		return "Invalid configuration"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
