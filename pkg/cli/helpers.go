package cli

import (
	"fmt"
	"os"
	"os/exec"
)

func ClearScreen() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		Errorln(fmt.Sprintf("Could not clear screen. Error: %s", err.Error()))
	}
}

// Banner prints a titled section header used by the operator console.
func Banner(title string) {
	Cyanln("==============================")
	Cyanln("  " + title)
	Cyanln("==============================")
}
