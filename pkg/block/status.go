package block

import "errors"

// ErrCorruption is the sentinel every Corruption status wraps. Callers that
// only care whether a cursor hit corruption, not the detail message, test
// for it with errors.Is(cursor.Status(), block.ErrCorruption).
var ErrCorruption = errors.New("corruption")

// corruption is the sticky error a Cursor reports after a decode failure or
// a violated structural invariant. Once set it never clears.
type corruption struct {
	msg string
}

func newCorruption(msg string) error {
	return &corruption{msg: msg}
}

func (c *corruption) Error() string {
	return c.msg
}

func (c *corruption) Unwrap() error {
	return ErrCorruption
}
