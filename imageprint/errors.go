package imageprint

import "github.com/pkg/errors"

// ErrUnsupportedTerminal is returned by PrintRasTerm when the terminal
// supports none of the image protocols.
var ErrUnsupportedTerminal = errors.New("imageprint: terminal supports neither kitty, iterm nor sixel images")
