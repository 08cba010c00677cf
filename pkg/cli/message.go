package cli

import (
	"fmt"
	"io"
	"os"
)

// Output is where coloured messages are written.
var Output io.Writer = os.Stdout

func paint(colour, message string, newline bool) {
	if newline {
		_, _ = fmt.Fprintln(Output, colour+message+Reset)
		return
	}

	_, _ = fmt.Fprint(Output, colour+message+Reset)
}

func Error(message string)     { paint(RedColour, message, false) }
func Errorln(message string)   { paint(RedColour, message, true) }
func Success(message string)   { paint(GreenColour, message, false) }
func Successln(message string) { paint(GreenColour, message, true) }
func Warning(message string)   { paint(YellowColour, message, false) }
func Warningln(message string) { paint(YellowColour, message, true) }
func Magenta(message string)   { paint(MagentaColour, message, false) }
func Magentaln(message string) { paint(MagentaColour, message, true) }
func Blue(message string)      { paint(BlueColour, message, false) }
func Blueln(message string)    { paint(BlueColour, message, true) }
func Cyan(message string)      { paint(CyanColour, message, false) }
func Cyanln(message string)    { paint(CyanColour, message, true) }
func Gray(message string)      { paint(GrayColour, message, false) }
func Grayln(message string)    { paint(GrayColour, message, true) }
