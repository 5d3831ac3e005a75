package display

import (
	"fmt"
	"os"

	"github.com/backmassage/scaleup/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `                _
 ___  ___ __ _| | ___ _   _ _ __
/ __|/ __/ _`+"`"+` | |/ _ \ | | | '_ \
\__ \ (_| (_| | |  __/ |_| | |_) |
|___/\___\__,_|_|\___|\__,_| .__/
                           |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
