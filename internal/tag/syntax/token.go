package syntax

type token struct {
	typ   TokenType
	lit   string
	start int
	end   int
}

// TokenType is the type of token.
type TokenType string

const (
	_Error TokenType = "Error"

	_Key       TokenType = "Key"
	_Colon     TokenType = ":"
	_Value     TokenType = "Value"
	_Semicolon TokenType = ";"

	_EOF TokenType = "EOF"
)
